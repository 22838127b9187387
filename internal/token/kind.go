package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a byte that matches no lexical rule.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier that is not a reserved word.
	Ident
	// Opcode represents an instruction mnemonic.
	Opcode // li
	// Register represents a register name.
	Register // a0

	// Number represents an unsigned 32-bit integer literal.
	Number

	// Comma represents the comma punctuation token.
	Comma // ,
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Opcode:
		return "Opcode"
	case Register:
		return "Register"
	case Number:
		return "Number"
	case Comma:
		return "Comma"
	}
	return "Unknown"
}
