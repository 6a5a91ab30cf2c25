package hirc

import (
	"encoding/binary"
	"fmt"

	"github.com/kelindar/bnkpatch/internal/cursor"
	"github.com/kelindar/bnkpatch/internal/varint"
)

const (
	objSound     = 0x02
	objAction    = 0x03
	objEvent     = 0x04
	objContainer = 0x05
)

// ParseObjects parses the payload of a HIRC chunk: a u32 object count
// followed by that many version-dispatched records. A record's declared
// size is authoritative — the parser always advances to the next record
// by that size, regardless of how many bytes its own decoder consumed,
// so a malformed or partially-understood record never desynchronizes
// the stream (spec §4.D).
func ParseObjects(data []byte, version uint32, order binary.ByteOrder) (Result, error) {
	pred := NewPredicates(version)
	c := cursor.New(data, order)

	count, err := c.ReadU32()
	if err != nil {
		return Result{}, fmt.Errorf("hirc: reading object count: %w", err)
	}

	// count is an untrusted u32 read straight from the HIRC payload;
	// cap the table preallocation hint instead of trusting it outright,
	// since a single malformed-but-in-bounds record could otherwise
	// claim billions of objects.
	hint := clampCount(count, c.Remaining()/4)
	res := Result{
		Actions:    newActionTable(hint),
		Sounds:     newSoundTable(hint),
		Containers: newContainerTable(hint),
	}

	for i := 0; i < int(count); i++ {
		if c.Remaining() == 0 {
			break
		}

		objType, size, err := readObjectHeader(c, pred)
		if err != nil {
			break
		}

		bodyStart := c.Pos()
		bodyEnd := bodyStart + size
		if bodyEnd > len(data) {
			bodyEnd = len(data)
		}
		body := data[bodyStart:bodyEnd]

		switch objType {
		case objEvent:
			if ev, ok := parseEvent(body, pred, order); ok {
				res.Events = append(res.Events, ev)
			}
		case objAction:
			if a, ok := parseAction(body, order); ok {
				res.Actions.add(a)
			}
		case objSound:
			if s, ok := parseSound(body, order); ok {
				res.Sounds.add(s)
			}
		case objContainer:
			if ct, ok := parseContainer(body, pred, order); ok {
				res.Containers.add(ct)
			}
		}

		c.Seek(bodyStart + size)
	}

	return res, nil
}

// clampCount bounds an untrusted count (read directly from record
// bytes) by what the remaining buffer could actually hold, so a
// corrupt count can't force a multi-gigabyte preallocation.
func clampCount(count uint32, max int) int {
	if max < 0 {
		return 0
	}
	if uint64(count) > uint64(max) {
		return max
	}
	return int(count)
}

// readObjectHeader reads a record's type and declared size, whose width
// depends on version (spec §4.D).
func readObjectHeader(c *cursor.Cursor, pred Predicates) (objType uint32, size int, err error) {
	if pred.ShortObjectHeader {
		t, err := c.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		sz, err := c.ReadU32()
		if err != nil {
			return 0, 0, err
		}
		return uint32(t), int(sz), nil
	}

	t, err := c.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	sz, err := c.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	return t, int(sz), nil
}

// parseSound reads a Sound record: sound_id, then optionally 4 skipped
// bytes + 1 skipped byte + source_id when at least 13 bytes remain.
func parseSound(body []byte, order binary.ByteOrder) (Sound, bool) {
	if len(body) < 4 {
		return Sound{}, false
	}
	c := cursor.New(body, order)
	id, _ := c.ReadU32()

	if len(body) < 13 {
		return Sound{ID: id}, true
	}

	c.Skip(4)
	c.Skip(1)
	source, err := c.ReadU32()
	if err != nil {
		return Sound{ID: id}, true
	}
	return Sound{ID: id, Source: &source}, true
}

// parseAction reads an Action record: action_id, optional action_type
// (u16), optional target_id (u32).
func parseAction(body []byte, order binary.ByteOrder) (Action, bool) {
	if len(body) < 4 {
		return Action{}, false
	}
	c := cursor.New(body, order)
	id, _ := c.ReadU32()
	a := Action{ID: id}

	if len(body)-4 >= 2 {
		t, _ := c.ReadU16()
		a.Type = &t
	}
	if c.Remaining() >= 4 {
		target, _ := c.ReadU32()
		a.Target = &target
	}
	return a, true
}

// parseEvent reads an Event record: event_id, then an action count
// (varint when version>122, else u32), then that many u32 action IDs.
func parseEvent(body []byte, pred Predicates, order binary.ByteOrder) (Event, bool) {
	if len(body) < 4 {
		return Event{}, false
	}
	c := cursor.New(body, order)
	id, _ := c.ReadU32()
	ev := Event{ID: id}

	var count uint64
	var err error
	if pred.VarintActionCount {
		count, err = varint.Read(c)
	} else {
		var v uint32
		v, err = c.ReadU32()
		count = uint64(v)
	}
	if err != nil {
		return ev, true
	}

	for i := uint64(0); i < count; i++ {
		aid, err := c.ReadU32()
		if err != nil {
			break
		}
		ev.Actions = append(ev.Actions, aid)
	}
	return ev, true
}
