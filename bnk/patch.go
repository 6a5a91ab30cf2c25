package bnk

import (
	"encoding/binary"
	"fmt"
	"io"
)

// QueueReplacement records that id's payload should be replaced by src
// the next time Serialize runs. Queuing the same id twice keeps the
// most recent source. Returns ErrUnknownAudioID if id is not present in
// the audio index.
func (b *Bank) QueueReplacement(id uint32, src ByteSource) error {
	idx, ok := b.entry(id)
	if !ok {
		return fmt.Errorf("bnk: queuing replacement for %d: %w", id, ErrUnknownAudioID)
	}
	b.index[idx].Replacement = src
	return nil
}

// QueuePlan queues every entry in plan via QueueReplacement, stopping
// at the first unknown ID.
func (b *Bank) QueuePlan(plan ReplacementPlan) error {
	for id, src := range plan {
		if err := b.QueueReplacement(id, src); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes the bank to sink, re-framing the header, rebuilding
// the audio index from queued replacements (or original sizes where
// none were queued), re-emitting the data blob with replacements
// substituted, and copying the trailing bytes verbatim. The bank's own
// index and data blob are left unchanged, so Catalog and Export still
// report the original entries. All replacement bytes are read and all
// sizes computed
// before any bytes are written to sink, so a ReplacementUnreadable
// error never leaves a partial bank behind.
func (b *Bank) Serialize(sink io.Writer) error {
	if !b.hasIndex {
		return fmt.Errorf("bnk: serializing bank with no audio index: %w", ErrMissingIndex)
	}

	payloads := make([][]byte, len(b.index))
	var offset uint32
	newIndex := make([]IndexEntry, len(b.index))
	for i, e := range b.index {
		payload, err := b.resolvedPayload(e)
		if err != nil {
			return err
		}
		payloads[i] = payload
		newIndex[i] = IndexEntry{ID: e.ID, Offset: offset, Size: uint32(len(payload))}
		offset += uint32(len(payload))
	}

	w := &sinkWriter{w: sink, order: b.order}
	w.writeChunk("BKHD", b.headerBytes)
	w.writeIndexChunk(newIndex)
	w.writeDataChunk(payloads)
	w.writeRaw(b.trailingBytes)
	if w.err != nil {
		return fmt.Errorf("bnk: writing output: %w: %v", ErrSinkFailure, w.err)
	}
	return nil
}

func (b *Bank) resolvedPayload(e IndexEntry) ([]byte, error) {
	if e.Replacement == nil {
		return b.originalPayload(e)
	}
	data, err := e.Replacement.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("bnk: reading replacement for %d: %w: %v", e.ID, ErrReplacementUnreadable, err)
	}
	return data, nil
}

// sinkWriter accumulates the first write error and becomes a no-op
// after that, so Serialize's call sequence reads linearly without an
// error check after every write.
type sinkWriter struct {
	w     io.Writer
	order binary.ByteOrder
	err   error
}

func (w *sinkWriter) writeRaw(p []byte) {
	if w.err != nil || len(p) == 0 {
		return
	}
	_, w.err = w.w.Write(p)
}

func (w *sinkWriter) writeU32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	_, w.err = w.w.Write(buf[:])
}

func (w *sinkWriter) writeChunk(tag string, payload []byte) {
	if w.err != nil {
		return
	}
	w.writeRaw([]byte(tag))
	w.writeU32(uint32(len(payload)))
	w.writeRaw(payload)
}

func (w *sinkWriter) writeIndexChunk(entries []IndexEntry) {
	if w.err != nil {
		return
	}
	w.writeRaw([]byte("DIDX"))
	w.writeU32(uint32(len(entries) * 12))
	for _, e := range entries {
		w.writeU32(e.ID)
		w.writeU32(e.Offset)
		w.writeU32(e.Size)
	}
}

func (w *sinkWriter) writeDataChunk(payloads [][]byte) {
	if w.err != nil {
		return
	}
	total := 0
	for _, p := range payloads {
		total += len(p)
	}
	w.writeRaw([]byte("DATA"))
	w.writeU32(uint32(total))
	for _, p := range payloads {
		w.writeRaw(p)
	}
}
