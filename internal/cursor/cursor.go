// Package cursor provides a bounds-checked, byte-order-aware reader over
// a fixed byte buffer.
package cursor

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrTruncated is returned whenever a read would cross the buffer end.
var ErrTruncated = errors.New("cursor: truncated read")

// Cursor is a position within a byte buffer. Reads and Skip move it
// forward; Seek can set it to any offset. All multi-byte reads use the
// configured byte order.
type Cursor struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// New returns a Cursor over data starting at offset 0, using order for
// multi-byte reads.
func New(data []byte, order binary.ByteOrder) *Cursor {
	return &Cursor{data: data, order: order}
}

// At returns a Cursor over data starting at the given offset.
func At(data []byte, offset int, order binary.ByteOrder) *Cursor {
	return &Cursor{data: data, pos: offset, order: order}
}

// Pos returns the current offset within the buffer.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to an absolute offset, without bounds checking
// (out-of-range reads still fail via ErrTruncated).
func (c *Cursor) Seek(pos int) { c.pos = pos }

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int) { c.pos += n }

// Remaining returns how many bytes are left in the buffer.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

func (c *Cursor) need(n int) error {
	if n < 0 || c.pos < 0 || c.pos+n > len(c.data) {
		return ErrTruncated
	}
	return nil
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadU16 reads an unsigned 16-bit integer.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := c.order.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadI16 reads a signed 16-bit integer.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads an unsigned 32-bit integer.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := c.order.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadI32 reads a signed 32-bit integer.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF32 reads a 32-bit IEEE float.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes reads a fixed-length sub-slice. The returned slice aliases
// the underlying buffer; callers that need to retain it beyond the
// buffer's lifetime should copy it.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
