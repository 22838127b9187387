package lexer

// ASCII-классификаторы; Unicode в этом диалекте не поддерживается,
// вход трактуется как поток байтов.

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isAlnum — продолжение идентификатора: строчная буква или цифра.
func isAlnum(b byte) bool { return isLower(b) || isDec(b) }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
