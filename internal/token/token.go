package token

import "fmt"

// Token represents a single source token with its starting position.
// Line and Column are 1-based; Column counts runes.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// IsQuotedString reports whether the token is a single- or double-quoted string.
func (t Token) IsQuotedString() bool {
	return t.Kind == DoubleQuotedString || t.Kind == SingleQuotedString
}

// IsLayout reports whether the token carries no lexical content (whitespace, line ends, EOF).
func (t Token) IsLayout() bool {
	switch t.Kind {
	case WhiteSpace, Eol, EOF:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}
