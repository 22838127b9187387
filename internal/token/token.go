package token

import (
	"bytes"
	"fmt"

	"rvasm/internal/source"
)

// Token represents a single source token with its location.
//
// Text — срез исходного буфера (без копирования); он валиден, пока жив
// буфер, из которого лексер читал. Value заполнено только для Number.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  []byte
	Value uint32
}

// Equal reports value equality between two tokens. Kinds must match;
// Ident/Opcode/Register compare their text content byte-for-byte, Number
// compares the decoded value. Spans never participate: the same lexeme at
// two positions is still the same token value.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Ident, Opcode, Register:
		return bytes.Equal(t.Text, other.Text)
	case Number:
		return t.Value == other.Value
	default:
		// Invalid, EOF, Comma не несут полезной нагрузки
		return true
	}
}

// IsReserved reports whether the token was resolved through the
// reserved-word table.
func (t Token) IsReserved() bool {
	switch t.Kind {
	case Opcode, Register:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind == Number }

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value)
	case Ident, Opcode, Register:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
