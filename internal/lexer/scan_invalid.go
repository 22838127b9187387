package lexer

import (
	"fmt"

	"rvasm/internal/token"
)

// scanInvalid оформляет нераспознанный байт как токен Invalid.
//
// Политика восстановления: курсор продвигается ЗА байт, так что следующий
// вызов Next продолжает с первого байта после него. Invalid.Span при этом
// указывает ровно на сам байт. Альтернатива (не двигать курсор и отдавать
// Invalid бесконечно) перекладывает прогресс на вызывающего; мы выбираем
// гарантию прогресса цикла драйвера.
func (lx *Lexer) scanInvalid() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	lx.cursor.Bump()

	sp := lx.cursor.SpanFrom(start)
	lx.report(ReportUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
	return token.Token{Kind: token.Invalid, Span: sp}
}
