package lexer

import (
	"rvasm/internal/token"
)

// scanIdentOrReserved сканирует максимальный alnum-ран, начинающийся со
// строчной буквы, и проверяет его через token.LookupReserved. Ран может
// содержать цифры после первой буквы ("a0", "x12"). Token.Text — ровно
// исходный срез, без копирования.
func (lx *Lexer) scanIdentOrReserved() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // первая буква уже проверена диспетчером
	for isAlnum(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	// Проверка на зарезервированное слово: точное совпадение, не префикс
	if k, ok := token.LookupReserved(string(lex)); ok {
		return token.Token{Kind: k, Span: sp, Text: lex}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: lex}
}
