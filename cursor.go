package natsort

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// cursor is a scanning position within an input string.
type cursor struct {
	input string
	off   uint32
	limit uint32
}

func newCursor(input string) cursor {
	limit, err := safecast.Conv[uint32](len(input))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return cursor{
		input: input,
		off:   0,
		limit: limit,
	}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek decodes the rune at the cursor without consuming it. Invalid UTF-8
// decodes as utf8.RuneError with size 1, so every byte is consumed by
// exactly one token.
func (c *cursor) peek() (r rune, size uint32) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	b := c.input[c.off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRuneInString(c.input[c.off:])
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, usz
}

// bump advances the cursor past the current rune.
func (c *cursor) bump() {
	_, sz := c.peek()
	c.off += sz
}

// mark remembers a position so a Span can be cut later.
type mark uint32

func (c *cursor) mark() mark {
	return mark(c.off)
}

func (c *cursor) spanFrom(m mark) Span {
	return Span{Start: uint32(m), End: c.off}
}

func (c *cursor) slice(sp Span) string {
	return c.input[sp.Start:sp.End]
}
