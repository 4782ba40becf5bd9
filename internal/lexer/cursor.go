package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в исходном тексте вместе со строкой и колонкой.
type Cursor struct {
	src string
	Off uint32
	// Limit is the exclusive upper bound for Off; defaults to len(src).
	Limit uint32
	// Line and Col are 1-based; Col counts runes.
	Line int
	Col  int
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{
		src:   src,
		Off:   0,
		Limit: limit,
		Line:  1,
		Col:   1,
	}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 reads the current and the next byte; ok is false when fewer than two remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// PeekRune decodes the rune at the cursor. size is 0 at EOF; invalid UTF-8
// yields utf8.RuneError with size 1.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.src[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.src[c.Off:c.Limit])
}

// Bump advances past one byte on the current line and returns it.
// Only call it on ASCII bytes; use BumpRune for anything else.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	c.Col++
	return b
}

// BumpRune advances past one rune on the current line.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bump rune overflow: %w", err))
	}
	c.Off += usz
	c.Col++
}

// BumpNewline consumes CR, LF or CRLF and moves to the start of the next line.
// It returns false when the cursor is not on a line terminator.
func (c *Cursor) BumpNewline() bool {
	switch c.Peek() {
	case '\r':
		c.Off++
		if c.Peek() == '\n' {
			c.Off++ // CRLF одной единицей
		}
	case '\n':
		c.Off++
	default:
		return false
	}
	c.Line++
	c.Col = 1
	return true
}

// Mark это метка начала токена: смещение и позиция.
type Mark struct {
	off  uint32
	line int
	col  int
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// TextFrom returns the source slice between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return c.src[m.off:c.Off]
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.Line = m.line
	c.Col = m.col
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}
