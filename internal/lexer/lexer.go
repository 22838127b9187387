package lexer

import (
	"errors"

	"rvasm/internal/source"
	"rvasm/internal/token"
)

// ErrEmptyInput is returned by New when the provided buffer has no bytes:
// the cursor primes its first byte at construction and needs at least one.
var ErrEmptyInput = errors.New("lexer: empty input buffer")

// ErrNumberOverflow is returned by Next when the digits of an integer
// literal do not fit in an unsigned 32-bit value.
var ErrNumberOverflow = errors.New("lexer: integer literal overflows uint32")

// Lexer превращает заимствованный байтовый буфер в последовательность
// токенов, по одному на вызов Next. Экземпляр не потокобезопасен;
// независимые экземпляры над разными буферами не разделяют состояния.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New создаёт лексер над содержимым файла. Буфер должен быть непустым
// и не должен изменяться, пока лексер (и выданные им токены) живы.
func New(file *source.File, opts Options) (*Lexer, error) {
	if len(file.Content) == 0 {
		return nil, ErrEmptyInput
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}, nil
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
//
// Нераспознанный байт — это значение (токен Invalid), а не ошибка: вызов
// репортит диагностику, пропускает байт и возвращает Invalid со спаном на
// нём, так что цикл драйвера всегда двигается вперёд. Единственная жёсткая
// ошибка — переполнение числового литерала; её нечем представить в виде
// токена, поэтому она уходит вызывающему.
func (lx *Lexer) Next() (token.Token, error) {
	lx.skipWhitespace()

	switch ch := lx.cursor.Peek(); {
	case ch == ',':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		return token.Token{Kind: token.Comma, Span: lx.cursor.SpanFrom(start)}, nil

	case isLower(ch):
		return lx.scanIdentOrReserved(), nil

	case isDec(ch):
		return lx.scanNumber()

	case ch == 0:
		// сторожевой байт: конец входа, курсор дальше не двигаем
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil

	default:
		return lx.scanInvalid(), nil
	}
}

// Tokenize прогоняет лексер до EOF включительно и возвращает все токены.
// Останавливается на первой жёсткой ошибке, возвращая уже собранный префикс.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx, err := New(file, opts)
	if err != nil {
		return nil, err
	}
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// skipWhitespace пропускает ASCII-пробелы перед каждым токеном.
func (lx *Lexer) skipWhitespace() {
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off(), End: lx.cursor.Off()}
}
