package lexer

import "codeclass/internal/token"

// ' ' и '\t' коалесцируются в один WhiteSpace; перевод строки сюда не входит.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	lx.skipWhitespace()
	return lx.emit(token.WhiteSpace, start)
}

func (lx *Lexer) skipWhitespace() {
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		lx.cursor.Bump()
	}
}

// CR, LF и CRLF дают ровно один Eol.
func (lx *Lexer) scanEol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpNewline()
	return lx.emit(token.Eol, start)
}
