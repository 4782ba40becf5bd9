package lexer

import (
	"fmt"
	"io"
	"iter"
	"unicode"

	"codeclass/internal/token"
)

// Lexer turns source text into a finite token sequence ending in exactly one EOF.
type Lexer struct {
	src    string
	cursor Cursor
	opts   Options
}

// New creates a lexer over src.
func New(src string, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// NewReader reads r to the end and creates a lexer over its contents.
func NewReader(r io.Reader, opts Options) (*Lexer, error) {
	if r == nil {
		return nil, fmt.Errorf("lexer: nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lexer: read source: %w", err)
	}
	return New(string(data), opts), nil
}

// Tokenize collects every token of src, EOF included.
func Tokenize(src string) []token.Token {
	return New(src, Options{}).Collect()
}

// Reset restarts the lexer from the beginning of its source.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.src)
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	for {
		if lx.cursor.EOF() {
			return token.Token{
				Kind:   token.EOF,
				Text:   "",
				Line:   lx.cursor.Line,
				Column: lx.cursor.Col,
			}
		}

		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t':
			if lx.opts.SkipWhitespace {
				lx.skipWhitespace()
				continue
			}
			return lx.scanWhitespace()
		case isDec(ch):
			return lx.scanNumber()
		case ch == '\r' || ch == '\n':
			return lx.scanEol()
		case ch == '"':
			return lx.scanQuoted('"', token.DoubleQuotedString)
		case ch == '\'':
			return lx.scanQuoted('\'', token.SingleQuotedString)
		}

		if r, _ := lx.cursor.PeekRune(); unicode.IsLetter(r) {
			return lx.scanWord()
		}
		if k, ok := token.SymbolKind(ch); ok {
			return lx.scanSymbol(k)
		}
		return lx.scanUnknown()
	}
}

// All returns the token sequence of the whole source. Every iteration
// restarts from the beginning, so the sequence can be ranged over repeatedly.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		lx.Reset()
		for {
			tok := lx.Next()
			if !yield(tok) || tok.Kind == token.EOF {
				return
			}
		}
	}
}

// Collect returns All as a slice.
func (lx *Lexer) Collect() []token.Token {
	tokens := make([]token.Token, 0, len(lx.src)/3+1)
	for tok := range lx.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func (lx *Lexer) emit(kind token.Kind, m Mark) token.Token {
	return token.Token{
		Kind:   kind,
		Text:   lx.cursor.TextFrom(m),
		Line:   m.line,
		Column: m.col,
	}
}
