package varint

import (
	"encoding/binary"
	"testing"

	"github.com/kelindar/bnkpatch/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_SingleByte(t *testing.T) {
	c := cursor.New([]byte{0x05}, binary.LittleEndian)
	v, err := Read(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)
}

func TestRead_MultiByte(t *testing.T) {
	// 300 = 0b1_00101100 -> bytes: 0x82, 0x2C (high bit set on all but last)
	c := cursor.New([]byte{0x82, 0x2C}, binary.LittleEndian)
	v, err := Read(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
}

func TestRead_Truncated(t *testing.T) {
	c := cursor.New([]byte{0x82}, binary.LittleEndian)
	_, err := Read(c)
	assert.Error(t, err)
}
