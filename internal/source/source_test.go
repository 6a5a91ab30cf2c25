package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := Memory([]byte{1, 2, 3})
	assert.Equal(t, 3, m.Length())
	data, err := m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "replacement.wem")
	require.NoError(t, os.WriteFile(path, []byte("audio-bytes"), 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)
	assert.Equal(t, len("audio-bytes"), f.Length())

	data, err := f.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), data)
}

func TestFile_MissingStat(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing.wem"))
	assert.Error(t, err)
}
