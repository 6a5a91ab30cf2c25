// Package bnk parses, patches, and resolves Wwise soundbank (.bnk) files:
// a chunked container holding a header, an audio index, a concatenated
// data blob, and an optional object hierarchy.
package bnk

import (
	"encoding/binary"
	"fmt"

	"github.com/kelindar/bnkpatch/internal/hirc"
)

// ByteSource supplies a replacement payload for a patched audio entry.
// The core never interprets the bytes it returns.
type ByteSource interface {
	Length() int
	ReadAll() ([]byte, error)
}

// ReplacementPlan maps an audio ID to the source that should replace it.
type ReplacementPlan map[uint32]ByteSource

// IndexEntry describes one entry in the audio index: the audio's
// original offset and size within dataBlob, plus any queued
// replacement (last writer wins, see QueueReplacement).
type IndexEntry struct {
	ID          uint32
	Offset      uint32
	Size        uint32
	Replacement ByteSource
}

// Bank is the in-memory representation of a parsed soundbank file. One
// Bank is owned by exactly one caller at a time; it holds no internal
// synchronization because it has no lazy or background state to race
// over (see DESIGN.md for why this differs from the teacher's SDK).
type Bank struct {
	order binary.ByteOrder

	headerBytes   []byte
	index         []IndexEntry
	dataBlob      []byte
	trailingBytes []byte
	hasIndex      bool

	hierarchy    hirc.Result
	hasHierarchy bool

	audioFileIDs map[uint32]struct{}
}

// Version returns the BKHD version field, or 0 if the bank has no
// header (which Parse never permits — a bank always has one).
func (b *Bank) Version() uint32 {
	if len(b.headerBytes) < 4 {
		return 0
	}
	return b.order.Uint32(b.headerBytes[:4])
}

// ByteOrder returns the multi-byte integer order the bank was parsed
// and will be serialized with.
func (b *Bank) ByteOrder() binary.ByteOrder { return b.order }

// HasIndex reports whether the bank carries a DIDX audio index.
func (b *Bank) HasIndex() bool { return b.hasIndex }

// AudioIDs returns every audio ID present in the index, in index order.
func (b *Bank) AudioIDs() []uint32 {
	ids := make([]uint32, len(b.index))
	for i, e := range b.index {
		ids[i] = e.ID
	}
	return ids
}

func (b *Bank) entry(id uint32) (int, bool) {
	for i, e := range b.index {
		if e.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (b *Bank) originalPayload(e IndexEntry) ([]byte, error) {
	end := int(e.Offset) + int(e.Size)
	if end > len(b.dataBlob) {
		return nil, fmt.Errorf("bnk: index entry %d out of bounds: %w", e.ID, ErrTruncated)
	}
	return b.dataBlob[e.Offset:end], nil
}
