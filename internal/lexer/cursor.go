package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"rvasm/internal/source"
)

// Cursor представляет собой позицию в буфере. Хранит текущий байт вместе со
// смещением lookahead-байта: один байт просмотра вперёд без повторной
// индексации на каждом чтении.
type Cursor struct {
	file *source.File
	// limit is the exclusive upper bound for offsets; set from len(file.Content).
	limit uint32
	off   uint32 // смещение текущего байта
	next  uint32 // смещение lookahead-байта
	ch    byte   // текущий байт; сторожевой 0 на/за концом буфера
}

// NewCursor creates a cursor over the file content and primes the first byte.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	c := Cursor{file: f, limit: limit}
	c.Bump() // off=0, next=1, ch=Content[0] (буфер непустой — проверяет New)
	return c
}

// EOF проверяет, достигнут ли конец буфера.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek возвращает текущий байт, либо сторожевой 0 за концом буфера.
func (c *Cursor) Peek() byte {
	return c.ch
}

// PeekAhead возвращает lookahead-байт, не двигая курсор.
func (c *Cursor) PeekAhead() byte {
	if c.next >= c.limit {
		return 0
	}
	return c.file.Content[c.next]
}

// Bump перемещает курсор на один байт: ch берётся из lookahead-позиции,
// off и next сдвигаются вперёд. За концом буфера курсор замирает на limit,
// так что повторные вызовы безопасны и идемпотентны.
func (c *Cursor) Bump() {
	if c.next >= c.limit {
		c.ch = 0
		c.off = c.limit
		return
	}
	c.ch = c.file.Content[c.next]
	c.off = c.next
	c.next++
}

// Off возвращает байтовое смещение текущего байта.
func (c *Cursor) Off() uint32 {
	return c.off
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.file.ID,
		Start: uint32(m),
		End:   c.off,
	}
}
