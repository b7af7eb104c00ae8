// Package binary decodes and encodes the Fallout 2 SAVE.DAT preamble and
// the per-map state files. All integers on the wire are big-endian.
//
// The original format understanding comes from
// https://falloutmods.fandom.com/wiki/SAVE.DAT_File_Format and from the
// F12SE editor; several byte ranges remain undocumented and are passed
// through opaquely.
package binary

import (
	"encoding/binary"
	"fmt"
)

// cursor is an explicit read position over an in-memory buffer. Codecs
// thread it through every decode step so the consumption order is the
// byte order of the file, with no hidden state. Offsets survive into
// error messages so a caller can tell where a file went bad.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// remaining returns how many bytes are left to consume.
func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// take consumes n bytes and returns them as a view into the underlying
// buffer. Callers that retain the bytes must copy them out.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("take %d at offset %d: %w", n, c.off, ErrNegativeCount)
	}
	if c.remaining() < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, c.off, c.remaining(), ErrInsufficientData)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// taken is like take but copies, for bytes that outlive the buffer.
func (c *cursor) taken(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (c *cursor) skip(n int) error {
	_, err := c.take(n)
	return err
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}
