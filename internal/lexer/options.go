package lexer

import (
	"rvasm/internal/source"
)

// ReportKind классифицирует диагностики лексера, не привязываясь к кодам diag.
type ReportKind uint8

const (
	// ReportUnknownChar marks a byte that matches no lexical rule.
	ReportUnknownChar ReportKind = iota
	// ReportNumberOverflow marks an integer literal that exceeds 32 bits.
	ReportNumberOverflow
)

// Reporter — тонкий интерфейс, чтобы не тянуть diag сюда.
// Лексер **только вызывает** его с параметрами; форматирует diag внешний слой.
type Reporter interface {
	Report(kind ReportKind, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil — тогда диагностики не собираются
}

func (lx *Lexer) report(kind ReportKind, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
