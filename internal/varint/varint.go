// Package varint reads the big-endian base-128 varint used by newer
// Wwise bank versions to encode an event's action count.
package varint

import "github.com/kelindar/bnkpatch/internal/cursor"

// Read decodes a varint starting at the cursor's current position,
// accumulating value = (value << 7) | (b & 0x7F) and stopping after the
// first byte whose high bit is clear.
func Read(c *cursor.Cursor) (uint64, error) {
	var value uint64
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		value = (value << 7) | uint64(b&0x7F)
		if b&0x80 == 0 {
			return value, nil
		}
	}
}
