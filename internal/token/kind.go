package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown marks a character outside every other rule.
	Unknown Kind = iota
	// Word is a letter followed by letters or underscores.
	Word
	// Number is a run of digits with at most one fractional part.
	Number
	// DoubleQuotedString is a "..." literal, "" escapes a quote.
	DoubleQuotedString
	// SingleQuotedString is a '...' literal, '' escapes a quote.
	SingleQuotedString
	// WhiteSpace is a run of spaces and tabs.
	WhiteSpace

	EqualsSign        // =
	PlusSign          // +
	Hyphen            // -
	Slash             // /
	Comma             // ,
	FullStop          // .
	Asterisk          // *
	Tilde             // ~
	ExclamationMark   // !
	AtSign            // @
	Hash              // #
	Dollar            // $
	Percent           // %
	CircumflexAccent  // ^
	Ampersand         // &
	LeftParenthesis   // (
	RightParenthesis  // )
	LeftCurlyBracket  // {
	RightCurlyBracket // }
	LeftBracket       // [
	RightBracket      // ]
	Colon             // :
	SemiColon         // ;
	LessThanSign      // <
	GreaterThanSign   // >
	QuestionMark      // ?
	VerticalLine      // |
	Backslash         // \
	GraveAccent       // `
	SingleQuote       // '
	Underscore        // _

	// Eol is one line terminator: CR, LF or CRLF.
	Eol
	// EOF marks the end of the source input.
	EOF

	kindCount
)

// KindCount is the number of distinct kinds.
const KindCount = int(kindCount)

var kindNames = [kindCount]string{
	Unknown:            "unknown",
	Word:               "word",
	Number:             "number",
	DoubleQuotedString: "dqstring",
	SingleQuotedString: "sqstring",
	WhiteSpace:         "whitespace",
	EqualsSign:         "equals",
	PlusSign:           "plus",
	Hyphen:             "hyphen",
	Slash:              "slash",
	Comma:              "comma",
	FullStop:           "fullstop",
	Asterisk:           "asterisk",
	Tilde:              "tilde",
	ExclamationMark:    "exclamation",
	AtSign:             "at",
	Hash:               "hash",
	Dollar:             "dollar",
	Percent:            "percent",
	CircumflexAccent:   "circumflex",
	Ampersand:          "ampersand",
	LeftParenthesis:    "lparen",
	RightParenthesis:   "rparen",
	LeftCurlyBracket:   "lbrace",
	RightCurlyBracket:  "rbrace",
	LeftBracket:        "lbracket",
	RightBracket:       "rbracket",
	Colon:              "colon",
	SemiColon:          "semicolon",
	LessThanSign:       "lt",
	GreaterThanSign:    "gt",
	QuestionMark:       "question",
	VerticalLine:       "pipe",
	Backslash:          "backslash",
	GraveAccent:        "grave",
	SingleQuote:        "squote",
	Underscore:         "underscore",
	Eol:                "eol",
	EOF:                "eof",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// GoString makes %#v output readable in test failures.
func (k Kind) GoString() string {
	return fmt.Sprintf("token.Kind(%s)", k.String())
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// IsSymbol reports whether k is a single-character punctuation kind.
func (k Kind) IsSymbol() bool {
	return k >= EqualsSign && k <= Underscore
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Unknown, false
}
