package bnk

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelindar/bnkpatch/internal/bnktest"
	"github.com/kelindar/bnkpatch/internal/source"
)

func TestCatalog(t *testing.T) {
	data := bnktest.New(binary.LittleEndian, 140).
		WithAudio(0x01, []byte{1, 2, 3}).
		WithAudio(0x02, []byte{4, 5}).
		Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	assert.Equal(t, map[uint32]uint32{0x01: 3, 0x02: 2}, b.Catalog())
}

func TestExport_OriginalNeverReplacement(t *testing.T) {
	data := bnktest.New(binary.LittleEndian, 140).
		WithAudio(0x01, []byte{1, 2, 3}).
		Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)
	require.NoError(t, b.QueueReplacement(0x01, source.Memory{9, 9}))

	var out bytes.Buffer
	require.NoError(t, b.Export(0x01, &out))
	assert.Equal(t, []byte{1, 2, 3}, out.Bytes())
}

func TestExport_UnknownID(t *testing.T) {
	data := bnktest.New(binary.LittleEndian, 140).Bytes()
	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	var out bytes.Buffer
	err = b.Export(0x99, &out)
	assert.ErrorIs(t, err, ErrUnknownAudioID)
}

func TestExportAll(t *testing.T) {
	data := bnktest.New(binary.LittleEndian, 140).
		WithAudio(0x01, []byte{1, 2, 3}).
		WithAudio(0x02, []byte{4, 5}).
		Bytes()

	b, err := Parse(data, binary.LittleEndian)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, b.ExportAll(dir))

	got, err := os.ReadFile(filepath.Join(dir, "1.wem"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
