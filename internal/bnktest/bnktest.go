// Package bnktest builds synthetic bank byte streams for tests. There
// is no external fixture corpus for this domain (unlike the teacher's
// ultima-sdk-testdata), so fixtures are assembled programmatically.
package bnktest

import "encoding/binary"

// IndexEntry is one audio entry to bake into a built bank's DIDX/DATA
// chunks.
type IndexEntry struct {
	ID      uint32
	Payload []byte
}

// Builder assembles a bank byte stream field by field.
type Builder struct {
	order   binary.ByteOrder
	version uint32
	entries []IndexEntry
	hirc    []byte
	trailer []byte
}

// New starts a builder using the given byte order and BKHD version.
func New(order binary.ByteOrder, version uint32) *Builder {
	return &Builder{order: order, version: version}
}

// WithAudio appends one audio entry, in call order, to the index/data
// chunks.
func (b *Builder) WithAudio(id uint32, payload []byte) *Builder {
	b.entries = append(b.entries, IndexEntry{ID: id, Payload: payload})
	return b
}

// WithHIRC sets the raw HIRC chunk payload (see HircBuilder for building
// one from typed records).
func (b *Builder) WithHIRC(payload []byte) *Builder {
	b.hirc = payload
	return b
}

// WithTrailing appends bytes after all recognized chunks.
func (b *Builder) WithTrailing(raw []byte) *Builder {
	b.trailer = raw
	return b
}

func (b *Builder) u32(v uint32) []byte {
	buf := make([]byte, 4)
	b.order.PutUint32(buf, v)
	return buf
}

func (b *Builder) chunk(tag string, payload []byte) []byte {
	out := append([]byte(tag), b.u32(uint32(len(payload)))...)
	return append(out, payload...)
}

// Bytes renders the full bank byte stream.
func (b *Builder) Bytes() []byte {
	var out []byte

	header := b.u32(b.version)
	out = append(out, b.chunk("BKHD", header)...)

	idx := make([]byte, 0, len(b.entries)*12)
	var data []byte
	var offset uint32
	for _, e := range b.entries {
		idx = append(idx, b.u32(e.ID)...)
		idx = append(idx, b.u32(offset)...)
		idx = append(idx, b.u32(uint32(len(e.Payload)))...)
		data = append(data, e.Payload...)
		offset += uint32(len(e.Payload))
	}
	out = append(out, b.chunk("DIDX", idx)...)
	out = append(out, b.chunk("DATA", data)...)

	if b.hirc != nil {
		out = append(out, b.chunk("HIRC", b.hirc)...)
	}
	if b.trailer != nil {
		out = append(out, b.trailer...)
	}
	return out
}
