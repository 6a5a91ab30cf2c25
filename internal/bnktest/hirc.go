package bnktest

import "encoding/binary"

// HircBuilder assembles a raw HIRC chunk payload out of typed object
// records, using the short (version>48) object header: type byte + u32
// size.
type HircBuilder struct {
	order   binary.ByteOrder
	version uint32
	records [][]byte
}

func NewHirc(b *Builder) *HircBuilder {
	return &HircBuilder{order: b.order, version: b.version}
}

// varint encodes v as a big-endian base-128 varint.
func varint(v uint64) []byte {
	out := []byte{byte(v & 0x7F)}
	for v >>= 7; v > 0; v >>= 7 {
		out = append([]byte{byte(v&0x7F) | 0x80}, out...)
	}
	return out
}

func (h *HircBuilder) u32(v uint32) []byte {
	buf := make([]byte, 4)
	h.order.PutUint32(buf, v)
	return buf
}

func (h *HircBuilder) u16(v uint16) []byte {
	buf := make([]byte, 2)
	h.order.PutUint16(buf, v)
	return buf
}

func (h *HircBuilder) record(objType byte, payload []byte) {
	rec := append([]byte{objType}, h.u32(uint32(len(payload)))...)
	rec = append(rec, payload...)
	h.records = append(h.records, rec)
}

// Event appends an Event record with the given action IDs. The action
// count is a varint when the builder's version is above 122, else a
// plain u32.
func (h *HircBuilder) Event(id uint32, actionIDs ...uint32) *HircBuilder {
	payload := h.u32(id)
	if h.version > 122 {
		payload = append(payload, varint(uint64(len(actionIDs)))...)
	} else {
		payload = append(payload, h.u32(uint32(len(actionIDs)))...)
	}
	for _, a := range actionIDs {
		payload = append(payload, h.u32(a)...)
	}
	h.record(0x04, payload)
	return h
}

// PlayAction appends an Action record of type 1027 targeting target.
func (h *HircBuilder) PlayAction(id, target uint32) *HircBuilder {
	payload := h.u32(id)
	payload = append(payload, h.u16(1027)...)
	payload = append(payload, h.u32(target)...)
	h.record(0x03, payload)
	return h
}

// Sound appends a Sound record whose source ID is source.
func (h *HircBuilder) Sound(id, source uint32) *HircBuilder {
	payload := h.u32(id)
	payload = append(payload, make([]byte, 5)...)
	payload = append(payload, h.u32(source)...)
	h.record(0x02, payload)
	return h
}

// Container appends a Container record with an empty fixed-field
// prefix (well under the 84-byte skip threshold), the given children
// IDs, and the given playlist entries (IDs only, weight 0, using the
// wide/byte-weight-free version>56 && version<=... layout is not
// relevant here since weights are unused by resolution).
func (h *HircBuilder) Container(id uint32, children []uint32, playlist []uint32) *HircBuilder {
	payload := h.u32(id)
	payload = append(payload, h.u16(0)...)          // loop_count
	payload = append(payload, make([]byte, 4)...)   // extra loop bytes (version>72)
	payload = append(payload, make([]byte, 12)...)  // transition times
	payload = append(payload, h.u16(0)...)          // avoid repeat count
	payload = append(payload, []byte{0, 0, 0}...)   // transition_mode, random_mode, mode
	payload = append(payload, 0)                    // bitvector flags (version>89)

	payload = append(payload, h.u32(uint32(len(children)))...)
	for _, c := range children {
		payload = append(payload, h.u32(c)...)
	}

	payload = append(payload, h.u16(uint16(len(playlist)))...)
	for _, p := range playlist {
		payload = append(payload, h.u32(p)...)
		payload = append(payload, h.u32(0)...) // weight
	}

	h.record(0x05, payload)
	return h
}

// Bytes renders the HIRC chunk payload: a u32 object count followed by
// the accumulated records.
func (h *HircBuilder) Bytes() []byte {
	out := h.u32(uint32(len(h.records)))
	for _, r := range h.records {
		out = append(out, r...)
	}
	return out
}
