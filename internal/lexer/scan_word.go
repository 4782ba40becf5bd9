package lexer

import (
	"unicode"

	"codeclass/internal/token"
)

// Word: буква, затем буквы или '_'. Цифры в слово не входят.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpRune()
	for {
		r, sz := lx.cursor.PeekRune()
		if sz == 0 || !(r == '_' || unicode.IsLetter(r)) {
			break
		}
		lx.cursor.BumpRune()
	}
	return lx.emit(token.Word, start)
}
