package lexer

import "codeclass/internal/token"

// Number: DIGIT+ ("." DIGIT*)?
// The first '.' is part of the number even when no digit follows it; a
// second '.' ends the number and is left for the next token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // first digit

	hadDot := false
	for {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.' && !hadDot:
			hadDot = true
			lx.cursor.Bump()
		default:
			return lx.emit(token.Number, start)
		}
	}
}
