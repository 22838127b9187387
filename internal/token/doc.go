// Package token defines lexical token kinds for the rvasm assembly dialect.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Exactly one Kind is active per token; Value is meaningful only for Number.
//   - Reserved words (mnemonics, register names) are resolved by the lexer
//     through LookupReserved; the table is fixed at init and never mutated.
package token
