package flat

import "github.com/arloliu/flatesd/section"

// cursor is a bounded append position inside a caller-owned buffer.
//
// buf is the whole flat event cut to the declared capacity, so nothing can be
// written past it. Offsets handed out are relative to the payload start.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte, contentSize int) cursor {
	return cursor{buf: buf, pos: section.HeaderSize + contentSize}
}

// offset returns the current position relative to the payload start.
func (c *cursor) offset() int {
	return c.pos - section.HeaderSize
}

// free returns the number of bytes left before the capacity limit.
func (c *cursor) free() int {
	return len(c.buf) - c.pos
}

// tail returns the unwritten remainder of the buffer.
func (c *cursor) tail() []byte {
	return c.buf[c.pos:]
}

// advance moves the position past n freshly written bytes.
func (c *cursor) advance(n int) {
	c.pos += n
}
