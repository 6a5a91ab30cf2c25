// Package mock provides a lightweight in-memory fake of the bnk.Bank
// surface for downstream callers to exercise their own code against,
// without constructing real bank byte streams.
package mock

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Bank's lookups when an ID is absent.
var ErrNotFound = errors.New("mock: not found")

// Bank is a fake bnk.Bank: callers populate its maps directly instead
// of parsing bytes.
type Bank struct {
	Catalog   map[uint32]uint32
	Payloads  map[uint32][]byte
	Resolved  map[string][]uint32
	StatsData StatsSnapshot
}

// StatsSnapshot holds a subset of bnk.Stats's fields (it has no
// TotalDataBytes or TrailingBytes) for callers that want to assert on
// stats without importing the real package.
type StatsSnapshot struct {
	Version        uint32
	AudioCount     int
	EventCount     int
	ActionCount    int
	SoundCount     int
	ContainerCount int
}

// New creates an empty mock Bank.
func New() *Bank {
	return &Bank{
		Catalog:  make(map[uint32]uint32),
		Payloads: make(map[uint32][]byte),
		Resolved: make(map[string][]uint32),
	}
}

// Add registers an audio entry's original payload and catalog size.
func (b *Bank) Add(id uint32, payload []byte) {
	b.Payloads[id] = payload
	b.Catalog[id] = uint32(len(payload))
}

// AddResolved registers a precomputed event resolution.
func (b *Bank) AddResolved(eventID string, audioIDs []uint32) {
	b.Resolved[eventID] = audioIDs
}

// Export writes the payload registered for id to sink.
func (b *Bank) Export(id uint32, sink io.Writer) error {
	payload, ok := b.Payloads[id]
	if !ok {
		return ErrNotFound
	}
	_, err := sink.Write(payload)
	return err
}

// Resolve returns the precomputed event→audio mapping as-is.
func (b *Bank) Resolve() map[string][]uint32 { return b.Resolved }

// Stats returns the precomputed stats snapshot.
func (b *Bank) Stats() StatsSnapshot { return b.StatsData }
