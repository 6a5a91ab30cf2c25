package bnk

import (
	"sort"
	"strconv"

	"github.com/kelindar/intmap"

	"github.com/kelindar/bnkpatch/internal/hirc"
)

// Resolve computes, for every event in the bank's hierarchy, the set of
// audio IDs it can ultimately play. The result maps the event ID
// rendered as a decimal string to its resolved audio IDs sorted
// ascending, matching the public event-resolution output shape.
//
// Resolution never fails: dangling or unknown references simply
// contribute nothing to the set.
func (b *Bank) Resolve() map[string][]uint32 {
	out := make(map[string][]uint32, len(b.hierarchy.Events))
	for _, ev := range b.hierarchy.Events {
		ids := b.resolveEvent(ev)
		sorted := make([]uint32, 0, len(ids))
		for id := range ids {
			sorted = append(sorted, id)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		out[strconv.FormatUint(uint64(ev.ID), 10)] = sorted
	}
	return out
}

func (b *Bank) resolveEvent(ev hirc.Event) map[uint32]struct{} {
	result := make(map[uint32]struct{})
	visited := intmap.New(8, .95)
	for _, targetID := range ev.Actions {
		b.resolveReference(targetID, result, visited)
	}
	return result
}

// resolveReference walks one hierarchy reference — action, container or
// sound — adding any audio IDs it eventually reaches to result. visited
// guards container expansion against cycles so the walk always
// terminates.
func (b *Bank) resolveReference(id uint32, result map[uint32]struct{}, visited *intmap.Map) {
	if action, ok := b.hierarchy.Actions.Get(id); ok {
		if action.Type != nil && *action.Type == hirc.PlayActionType && action.Target != nil {
			b.resolveReference(*action.Target, result, visited)
		}
		return
	}

	if container, ok := b.hierarchy.Containers.Get(id); ok {
		b.expandContainer(container, result, visited)
		return
	}

	if sound, ok := b.hierarchy.Sounds.Get(id); ok {
		b.linkSound(sound, result)
		return
	}

	// Unknown ID: tolerate it as if it had been a sound ID — the lookup
	// above already failed, so there is nothing further to contribute.
}

func (b *Bank) expandContainer(ct hirc.Container, result map[uint32]struct{}, visited *intmap.Map) {
	if _, seen := visited.Load(ct.ID); seen {
		return
	}
	visited.Store(ct.ID, 1)

	if len(ct.Playlist) > 0 {
		for _, item := range ct.Playlist {
			b.resolveReference(item.ID, result, visited)
		}
		return
	}
	for _, childID := range ct.Children {
		b.resolveReference(childID, result, visited)
	}
}

func (b *Bank) linkSound(s hirc.Sound, result map[uint32]struct{}) {
	if s.Source == nil {
		return
	}
	if _, ok := b.audioFileIDs[*s.Source]; ok {
		result[*s.Source] = struct{}{}
	}
}
