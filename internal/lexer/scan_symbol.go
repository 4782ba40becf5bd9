package lexer

import "codeclass/internal/token"

func (lx *Lexer) scanSymbol(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(kind, start)
}

// scanUnknown consumes one rune (or one byte of invalid UTF-8).
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpRune()
	return lx.emit(token.Unknown, start)
}
