package lexer

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"rvasm/internal/token"
)

// scanNumber сканирует максимальный ран десятичных цифр и разбирает его как
// беззнаковое 32-битное число. Ран, чьё значение не помещается в uint32,
// нельзя представить токеном Number — это жёсткая ошибка вызова, а не
// обрезанное значение.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	// Сначала широкий разбор, затем сужение через safecast: и ран длиннее
	// uint64, и значение 2^32..2^64-1 дают одинаковый ErrNumberOverflow.
	wide, err := strconv.ParseUint(string(lex), 10, 64)
	var value uint32
	if err == nil {
		value, err = safecast.Conv[uint32](wide)
	}
	if err != nil {
		lx.report(ReportNumberOverflow, sp,
			fmt.Sprintf("integer literal %q does not fit in 32 bits", lex))
		return token.Token{Kind: token.Invalid, Span: sp},
			fmt.Errorf("%w: %q at offset %d", ErrNumberOverflow, lex, sp.Start)
	}

	return token.Token{Kind: token.Number, Span: sp, Text: lex, Value: value}, nil
}
