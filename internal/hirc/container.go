package hirc

import (
	"encoding/binary"

	"github.com/kelindar/bnkpatch/internal/cursor"
)

// parseContainer reads a Container record. Each field group is read only
// if enough bytes remain; once a group comes up short, later groups are
// skipped (spec §4.D: "the missing fields become none and the parser
// stops reading that group").
func parseContainer(body []byte, pred Predicates, order binary.ByteOrder) (Container, bool) {
	if len(body) < 4 {
		return Container{}, false
	}
	c := cursor.New(body, order)
	id, _ := c.ReadU32()
	ct := Container{ID: id}

	truncated := !readLoopCount(c, pred, &ct)
	if !truncated {
		truncated = !readTransitionTimes(c, pred, &ct)
	}
	if !truncated {
		truncated = !readAvoidRepeatCount(c, &ct)
	}
	if !truncated {
		readModesAndFlags(c, pred, &ct)
	}

	// §9 open question #1: the original always skips size-84 bytes
	// *relative to wherever parsing ended up*, not to a fixed absolute
	// offset. This is a coarse alignment to an assumed 84-byte prefix
	// that only holds for some version bands. Reproduced verbatim.
	// TODO: verify against known-good banks per version band before
	// trusting child/playlist offsets on unfamiliar version ranges.
	if len(body) > 84 {
		c.Skip(len(body) - 84)
	}

	ct.Children = parseChildren(c)
	ct.Playlist = parsePlaylist(c, pred)
	return ct, true
}

func readLoopCount(c *cursor.Cursor, pred Predicates, ct *Container) bool {
	v, err := c.ReadI16()
	if err != nil {
		return false
	}
	ct.LoopCount = &v

	if pred.ExtraLoopBytes {
		if c.Remaining() < 4 {
			return false
		}
		c.Skip(4)
	}
	return true
}

func readTransitionTimes(c *cursor.Cursor, pred Predicates, ct *Container) bool {
	if c.Remaining() < 12 {
		return false
	}

	var t0, t1, t2 float32
	if pred.ContainerIntTimes {
		a, _ := c.ReadI32()
		b, _ := c.ReadI32()
		d, _ := c.ReadI32()
		t0, t1, t2 = float32(a), float32(b), float32(d)
	} else {
		a, _ := c.ReadF32()
		b, _ := c.ReadF32()
		d, _ := c.ReadF32()
		t0, t1, t2 = a, b, d
	}
	ct.TransitionTime, ct.TransModMin, ct.TransModMax = &t0, &t1, &t2
	return true
}

func readAvoidRepeatCount(c *cursor.Cursor, ct *Container) bool {
	v, err := c.ReadU16()
	if err != nil {
		return false
	}
	ct.AvoidRepeatCount = &v
	return true
}

func readModesAndFlags(c *cursor.Cursor, pred Predicates, ct *Container) {
	if c.Remaining() < 3 {
		return
	}
	tm, _ := c.ReadByte()
	rm, _ := c.ReadByte()
	md, _ := c.ReadByte()
	ct.TransitionMode, ct.RandomMode, ct.Mode = &tm, &rm, &md

	if pred.BitvectorFlags {
		if c.Remaining() < 1 {
			return
		}
		bv, _ := c.ReadByte()
		ct.Flags = &ContainerFlags{
			UsingWeight:             bv&0x01 != 0,
			ResetPlayListAtEachPlay: bv&0x02 != 0,
			RestartBackward:         bv&0x04 != 0,
			Continuous:              bv&0x08 != 0,
			Global:                  bv&0x10 != 0,
		}
		return
	}

	if c.Remaining() < 5 {
		return
	}
	b0, _ := c.ReadByte()
	b1, _ := c.ReadByte()
	b2, _ := c.ReadByte()
	b3, _ := c.ReadByte()
	b4, _ := c.ReadByte()
	ct.Flags = &ContainerFlags{
		UsingWeight:             b0 != 0,
		ResetPlayListAtEachPlay: b1 != 0,
		RestartBackward:         b2 != 0,
		Continuous:              b3 != 0,
		Global:                  b4 != 0,
	}
}

func parseChildren(c *cursor.Cursor) []uint32 {
	count, err := c.ReadU32()
	if err != nil {
		return nil
	}

	// count is untrusted (read straight from the record); cap the
	// preallocation to what the buffer could actually hold instead of
	// trusting it outright.
	children := make([]uint32, 0, clampCount(count, c.Remaining()/4))
	for i := uint32(0); i < count; i++ {
		id, err := c.ReadU32()
		if err != nil {
			break
		}
		children = append(children, id)
	}
	return children
}

func parsePlaylist(c *cursor.Cursor, pred Predicates) []PlaylistItem {
	var count uint32
	if pred.ContainerWidePlaylistCount {
		v, err := c.ReadU32()
		if err != nil {
			return nil
		}
		count = v
	} else {
		v, err := c.ReadU16()
		if err != nil {
			return nil
		}
		count = uint32(v)
	}

	itemSize := 8
	if pred.ByteWeight {
		itemSize = 5
	}
	// count is untrusted (read straight from the record); cap the
	// preallocation to what the buffer could actually hold instead of
	// trusting it outright.
	items := make([]PlaylistItem, 0, clampCount(count, c.Remaining()/itemSize))
	for i := uint32(0); i < count; i++ {
		id, err := c.ReadU32()
		if err != nil {
			break
		}

		var weight int32
		if pred.ByteWeight {
			w, err := c.ReadByte()
			if err != nil {
				break
			}
			weight = int32(w)
		} else {
			w, err := c.ReadI32()
			if err != nil {
				break
			}
			weight = w
		}

		items = append(items, PlaylistItem{ID: id, Weight: weight})
	}
	return items
}
