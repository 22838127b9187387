package lexer

import (
	"rvasm/internal/diag"
	"rvasm/internal/source"
)

// BagAdapter адаптирует *diag.Bag под lexer.Reporter: классификация лексера
// отображается на коды diag, всё репортится с Severity Error.
type BagAdapter struct {
	Bag *diag.Bag
}

func (a *BagAdapter) Report(kind ReportKind, sp source.Span, msg string) {
	code := diag.UnknownCode
	switch kind {
	case ReportUnknownChar:
		code = diag.LexUnknownChar
	case ReportNumberOverflow:
		code = diag.LexNumberOverflow
	}
	diag.ReportError(diag.BagReporter{Bag: a.Bag}, code, sp, msg).Emit()
}
