// Package chunk scans the top-level chunked container that wraps a
// Wwise bank file: a sequence of tag[4]|size[u32]|payload[size] triples.
package chunk

import (
	"encoding/binary"
	"errors"
)

// ErrBadHeader is returned when the expected BKHD magic is absent.
var ErrBadHeader = errors.New("chunk: missing BKHD header")

// ErrTruncated is returned when the chunk framing is cut short: a tag or
// size field is incomplete, or a chunk's declared size runs past the end
// of the data.
var ErrTruncated = errors.New("chunk: truncated container framing")

// recognized is the set of top-level tags the patch pipeline expects;
// anything else halts scanning and is preserved as trailing bytes.
var recognized = map[string]bool{
	"BKHD": true,
	"DIDX": true,
	"DATA": true,
	"HIRC": true,
}

// Chunk is one tag+payload pair yielded by a scan.
type Chunk struct {
	Tag     string
	Payload []byte
}

// SkipEnvelope consumes the optional 12-byte "AKBK" envelope that may
// precede the header chunk, returning the offset to resume scanning
// from. It does not itself validate that a BKHD chunk follows.
func SkipEnvelope(data []byte) int {
	if len(data) >= 4 && string(data[:4]) == "AKBK" {
		return 12
	}
	return 0
}

// ReadHeader validates that data (after any AKBK envelope) begins with
// a BKHD chunk and returns its version field plus its raw payload.
func ReadHeader(data []byte, order binary.ByteOrder) (version uint32, payload []byte, rest []byte, err error) {
	start := SkipEnvelope(data)
	if start+8 > len(data) || string(data[start:start+4]) != "BKHD" {
		return 0, nil, nil, ErrBadHeader
	}
	size := int(order.Uint32(data[start+4 : start+8]))
	if start+8+size > len(data) {
		return 0, nil, nil, ErrTruncated
	}
	payload = data[start+8 : start+8+size]
	if len(payload) < 4 {
		return 0, nil, nil, ErrBadHeader
	}
	version = order.Uint32(payload[:4])
	return version, payload, data[start+8+size:], nil
}

// Scan walks chunks starting at data (top-level container scan used by
// the patch pipeline), using order for each chunk's size field. It
// stops at the first tag outside the recognized set, returning the
// chunks seen so far and the unconsumed remainder (beginning at that
// tag) as trailing bytes.
func Scan(data []byte, order binary.ByteOrder) (chunks []Chunk, trailing []byte, err error) {
	pos := 0
	for pos < len(data) {
		if pos+8 > len(data) {
			return nil, nil, ErrTruncated
		}
		tag := string(data[pos : pos+4])
		size := int(order.Uint32(data[pos+4 : pos+8]))

		if !recognized[tag] {
			return chunks, data[pos:], nil
		}
		if pos+8+size > len(data) {
			return nil, nil, ErrTruncated
		}

		chunks = append(chunks, Chunk{Tag: tag, Payload: data[pos+8 : pos+8+size]})
		pos += 8 + size
	}
	return chunks, nil, nil
}

// ScanLenient walks every chunk in data (hierarchy-parsing pass), using
// order for each chunk's size field, and skips unrecognized tags rather
// than halting on them.
func ScanLenient(data []byte, order binary.ByteOrder) (chunks []Chunk, err error) {
	pos := 0
	for pos+8 <= len(data) {
		tag := string(data[pos : pos+4])
		size := int(order.Uint32(data[pos+4 : pos+8]))
		if pos+8+size > len(data) {
			return chunks, ErrTruncated
		}

		chunks = append(chunks, Chunk{Tag: tag, Payload: data[pos+8 : pos+8+size]})
		pos += 8 + size
	}
	return chunks, nil
}

// Find returns the payload of the first chunk with the given tag.
func Find(chunks []Chunk, tag string) ([]byte, bool) {
	for _, c := range chunks {
		if c.Tag == tag {
			return c.Payload, true
		}
	}
	return nil, false
}
