package lexer

import "codeclass/internal/token"

// scanQuoted reads up to the next unescaped quote. A doubled quote is an
// escaped quote and stays in the literal; raw newlines are content but still
// advance the line counter. An unterminated literal runs to the end of input.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\r' || b == '\n':
			lx.cursor.BumpNewline()
		case b == quote:
			lx.cursor.Bump()
			if !lx.cursor.Eat(quote) {
				return lx.emit(kind, start)
			}
		default:
			lx.cursor.BumpRune()
		}
	}
	return lx.emit(kind, start)
}
