package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rvasm/internal/source"
	"rvasm/internal/token"
)

// CheckTokenInvariants runs a minimal set of span invariants on a token stream:
// 1) every span lies within the buffer bounds and is well-formed
// 2) spans are ordered and non-overlapping (the cursor never backtracks)
// 3) text-carrying tokens alias the buffer exactly (Span matches Text)
// 4) the stream ends with exactly one EOF carrying an empty span
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	prevEnd := uint32(0)
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d span is inverted: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span overlaps previous: start=%d prevEnd=%d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		if len(tok.Text) > 0 {
			if sp.Len() != uint32(len(tok.Text)) {
				return fmt.Errorf("token %d: span length %d does not match text length %d", i, sp.Len(), len(tok.Text))
			}
			if string(sf.Content[sp.Start:sp.End]) != string(tok.Text) {
				return fmt.Errorf("token %d: text %q does not match buffer slice %q",
					i, tok.Text, sf.Content[sp.Start:sp.End])
			}
		}

		if tok.Kind == token.EOF {
			if i != len(tokens)-1 {
				return fmt.Errorf("token %d: EOF before end of stream", i)
			}
			if !sp.Empty() {
				return fmt.Errorf("EOF span must be empty, got %v", sp)
			}
		}
	}

	if tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	return nil
}
