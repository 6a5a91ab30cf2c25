package cursor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Reads(t *testing.T) {
	data := []byte{0x01, 0x03, 0x04, 0xAA, 0xBB, 'h', 'i'}
	c := New(data, binary.LittleEndian)

	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	u16, err := c.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0403), u16)

	u16b, err := c.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBBAA), u16b)

	bs, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), bs)

	assert.Equal(t, 0, c.Remaining())
}

func TestCursor_Truncated(t *testing.T) {
	c := New([]byte{0x01, 0x02}, binary.LittleEndian)

	_, err := c.ReadU32()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCursor_BigEndian(t *testing.T) {
	c := New([]byte{0x00, 0x00, 0x00, 0x05}, binary.BigEndian)
	v, err := c.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)
}

func TestCursor_SkipAndSeek(t *testing.T) {
	c := New([]byte{1, 2, 3, 4, 5}, binary.LittleEndian)
	c.Skip(2)
	b, err := c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(3), b)

	c.Seek(0)
	b, err = c.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), b)
}
