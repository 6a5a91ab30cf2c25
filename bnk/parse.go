package bnk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"codeberg.org/go-mmap/mmap"

	"github.com/kelindar/bnkpatch/internal/chunk"
	"github.com/kelindar/bnkpatch/internal/cursor"
	"github.com/kelindar/bnkpatch/internal/hirc"
)

// Parse builds a Bank from a complete in-memory bank byte stream. It
// runs two independent passes over data: a top-level chunk scan that
// collects the header, audio index, data blob and trailing bytes, and
// (if a HIRC chunk is present) a hierarchy parse. Both passes always
// run — patching does not need the hierarchy and resolution does not
// need the data blob, but neither is expensive enough to defer, unlike
// the teacher's per-file lazy opens.
func Parse(data []byte, order binary.ByteOrder) (*Bank, error) {
	version, headerPayload, _, err := chunk.ReadHeader(data, order)
	if err != nil {
		if errors.Is(err, chunk.ErrBadHeader) {
			return nil, fmt.Errorf("bnk: parsing header: %w", ErrBadHeader)
		}
		return nil, fmt.Errorf("bnk: parsing header: %w: %v", ErrTruncated, err)
	}

	chunks, trailing, err := chunk.Scan(data[chunk.SkipEnvelope(data):], order)
	if err != nil {
		return nil, fmt.Errorf("bnk: scanning chunks: %w", err)
	}

	b := &Bank{
		order:         order,
		headerBytes:   headerPayload,
		trailingBytes: trailing,
		audioFileIDs:  make(map[uint32]struct{}),
	}

	if didx, ok := chunk.Find(chunks, "DIDX"); ok {
		entries, err := parseIndex(didx, order)
		if err != nil {
			return nil, err
		}
		b.index = entries
		b.hasIndex = true
		for _, e := range entries {
			b.audioFileIDs[e.ID] = struct{}{}
		}
	}

	if data2, ok := chunk.Find(chunks, "DATA"); ok {
		b.dataBlob = data2
	}

	// The hierarchy pass scans leniently, so a HIRC chunk placed after an
	// unrecognized chunk is still found. A truncation error from that scan
	// only ends the search; the chunks found before it are still used.
	lenient, _ := chunk.ScanLenient(data[chunk.SkipEnvelope(data):], order)
	if hircPayload, ok := chunk.Find(lenient, "HIRC"); ok {
		res, err := hirc.ParseObjects(hircPayload, version, order)
		if err != nil {
			return nil, fmt.Errorf("bnk: parsing hierarchy: %w", err)
		}
		b.hierarchy = res
		b.hasHierarchy = true
	}

	return b, nil
}

// Open mmaps path, copies the whole file into one heap buffer and parses
// that buffer as a bank; the Bank's header, index, data and trailing
// slices alias the buffer. The mapping is released before Open returns;
// Open never holds a file handle open past its own return.
func Open(path string, order binary.ByteOrder) (*Bank, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bnk: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("bnk: stat %s: %w", path, err)
	}

	buf := make([]byte, info.Size())
	if _, err := f.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("bnk: reading %s: %w", path, err)
	}

	return Parse(buf, order)
}

func parseIndex(payload []byte, order binary.ByteOrder) ([]IndexEntry, error) {
	if len(payload)%12 != 0 {
		return nil, fmt.Errorf("bnk: DIDX payload not a multiple of 12 bytes: %w", ErrTruncated)
	}
	c := cursor.New(payload, order)
	n := len(payload) / 12
	entries := make([]IndexEntry, 0, n)
	for i := 0; i < n; i++ {
		id, err := c.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("bnk: reading DIDX entry %d: %w", i, err)
		}
		offset, _ := c.ReadU32()
		size, _ := c.ReadU32()
		entries = append(entries, IndexEntry{ID: id, Offset: offset, Size: size})
	}
	return entries, nil
}
