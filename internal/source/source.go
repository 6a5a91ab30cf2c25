// Package source provides ByteSource implementations used to supply
// replacement audio payloads to a patch operation, grounded on
// internal/mul.Entry3D's offset/length/decoded shape generalized to a
// standalone, file- or memory-backed source.
package source

import (
	"fmt"
	"os"

	"codeberg.org/go-mmap/mmap"
)

// Memory is a ByteSource backed by an in-memory byte slice.
type Memory []byte

func (m Memory) Length() int { return len(m) }

func (m Memory) ReadAll() ([]byte, error) { return m, nil }

// File is a ByteSource backed by a file on disk, read lazily on ReadAll
// via mmap so large replacement payloads are not loaded until needed.
type File struct {
	path string
	size int64
}

// NewFile stats path without opening it, so Length() is cheap. A missing
// file fails here, at the stat; the contents are only read by ReadAll.
func NewFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: stat %s: %w", path, err)
	}
	return &File{path: path, size: info.Size()}, nil
}

func (f *File) Length() int { return int(f.size) }

func (f *File) ReadAll() ([]byte, error) {
	h, err := mmap.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", f.path, err)
	}
	defer h.Close()

	buf := make([]byte, f.size)
	if _, err := h.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("source: read %s: %w", f.path, err)
	}
	return buf, nil
}
