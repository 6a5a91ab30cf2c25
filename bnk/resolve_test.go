package bnk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelindar/bnkpatch/internal/bnktest"
)

func TestResolve_ViaPlaylist(t *testing.T) {
	builder := bnktest.New(binary.LittleEndian, 150)
	hircBytes := bnktest.NewHirc(builder).
		Event(0xE1, 0xA1).
		PlayAction(0xA1, 0xC1).
		Container(0xC1, nil, []uint32{0x51}).
		Sound(0x51, 0xDEAD).
		Bytes()

	data := builder.
		WithAudio(0xDEAD, []byte{1, 2, 3, 4}).
		WithHIRC(hircBytes).
		Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	resolved := b.Resolve()
	assert.Equal(t, []uint32{0xDEAD}, resolved["225"]) // 0xE1 == 225
}

func TestResolve_ViaChildrenFallback(t *testing.T) {
	builder := bnktest.New(binary.LittleEndian, 150)
	hircBytes := bnktest.NewHirc(builder).
		Event(0xE1, 0xA1).
		PlayAction(0xA1, 0xC1).
		Container(0xC1, []uint32{0x51}, nil).
		Sound(0x51, 0xDEAD).
		Bytes()

	data := builder.
		WithAudio(0xDEAD, []byte{1, 2, 3, 4}).
		WithHIRC(hircBytes).
		Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	resolved := b.Resolve()
	assert.Equal(t, []uint32{0xDEAD}, resolved["225"])
}

func TestResolve_CycleTerminates(t *testing.T) {
	builder := bnktest.New(binary.LittleEndian, 150)
	hircBytes := bnktest.NewHirc(builder).
		Event(0xE1, 0xA1).
		PlayAction(0xA1, 0xC1).
		Container(0xC1, []uint32{0xC2}, nil).
		Container(0xC2, []uint32{0xC1}, nil). // cycle back to C1
		Bytes()

	data := builder.WithHIRC(hircBytes).Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	resolved := b.Resolve()
	assert.Empty(t, resolved["225"])
}

func TestResolve_SourceNotInIndexIgnored(t *testing.T) {
	builder := bnktest.New(binary.LittleEndian, 150)
	hircBytes := bnktest.NewHirc(builder).
		Event(0xE1, 0xA1).
		PlayAction(0xA1, 0xC1).
		Container(0xC1, nil, []uint32{0x51}).
		Sound(0x51, 0xBEEF). // 0xBEEF never added to the index
		Bytes()

	data := builder.WithHIRC(hircBytes).Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	resolved := b.Resolve()
	assert.Empty(t, resolved["225"])
}
