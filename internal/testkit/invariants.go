// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"codeclass/internal/token"
)

// CheckTokenInvariants runs the invariants every complete token stream of
// src must satisfy:
// 1) exactly one EOF, and it is last
// 2) every kind is valid and only EOF has empty text
// 3) the texts concatenate back to src
// 4) each token starts at the line/column reached by its predecessors
func CheckTokenInvariants(src string, tokens []token.Token) error {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		return fmt.Errorf("source too large: %w", err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	if last := tokens[len(tokens)-1]; last.Kind != token.EOF {
		return fmt.Errorf("last token is %v, want eof", last.Kind)
	}

	var b strings.Builder
	line, col := 1, 1
	for i, t := range tokens {
		if !t.Kind.Valid() {
			return fmt.Errorf("token %d: invalid kind %d", i, t.Kind)
		}
		if t.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("token %d: eof before the end", i)
		}
		if t.Kind != token.EOF && t.Text == "" {
			return fmt.Errorf("token %d: empty %v", i, t.Kind)
		}
		if t.Line != line || t.Column != col {
			return fmt.Errorf("token %d (%v %q) at %d:%d, want %d:%d", i, t.Kind, t.Text, t.Line, t.Column, line, col)
		}
		line, col = advance(t.Text, line, col)
		b.WriteString(t.Text)
	}
	if b.String() != src {
		return fmt.Errorf("round trip mismatch: %q != %q", b.String(), src)
	}
	return nil
}

// advance moves a 1-based position over text. "\r\n", "\n" and a lone
// "\r" each end a line; every other rune is one column.
func advance(text string, line, col int) (int, int) {
	for i := 0; i < len(text); {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			fallthrough
		case '\n':
			line, col = line+1, 1
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		col++
	}
	return line, col
}
