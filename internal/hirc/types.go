// Package hirc parses the HIRC (hierarchy) chunk of a Wwise bank into
// typed object records, dispatching on the version-sensitive record
// layouts documented in spec §4.D.
package hirc

import "github.com/kelindar/intmap"

// Event is a named entry point that references a sequence of actions.
type Event struct {
	ID      uint32
	Actions []uint32
}

// Action is a behavior descriptor. Type 1027 ("play") references a
// container or sound via Target.
type Action struct {
	ID     uint32
	Type   *uint16
	Target *uint32
}

// PlayActionType is the action type value that denotes a "play" action.
const PlayActionType = 1027

// Sound is a leaf that references a single audio source ID.
type Sound struct {
	ID     uint32
	Source *uint32
}

// PlaylistItem is one entry in a container's playlist.
type PlaylistItem struct {
	ID     uint32
	Weight int32
}

// ContainerFlags holds the five boolean properties carried either as
// separate bytes (version<=89) or packed into one bitvector byte.
type ContainerFlags struct {
	UsingWeight             bool
	ResetPlayListAtEachPlay bool
	RestartBackward         bool
	Continuous              bool
	Global                  bool
}

// Container is a node grouping children with an optional playlist.
type Container struct {
	ID       uint32
	Children []uint32
	Playlist []PlaylistItem

	LoopCount        *int16
	TransitionTime   *float32
	TransModMin      *float32
	TransModMax      *float32
	AvoidRepeatCount *uint16
	TransitionMode   *uint8
	RandomMode       *uint8
	Mode             *uint8
	Flags            *ContainerFlags
}

// ActionTable, SoundTable and ContainerTable are ID-keyed lookup tables
// over hierarchy records. They hold their items in a dense slice and
// resolve IDs to slice positions through an intmap.Map, the same
// entries-slice-plus-hash-index shape internal/mul.Reader uses to map
// an audio ID to its Entry3D.
type ActionTable struct {
	items []Action
	index *intmap.Map
}

func newActionTable(hint int) *ActionTable {
	return &ActionTable{index: intmap.New(hint, 0.95)}
}

func (t *ActionTable) add(a Action) {
	t.index.Store(a.ID, uint32(len(t.items)))
	t.items = append(t.items, a)
}

// Get looks up an action by ID.
func (t *ActionTable) Get(id uint32) (Action, bool) {
	idx, ok := t.index.Load(id)
	if !ok {
		return Action{}, false
	}
	return t.items[idx], true
}

// Len returns the number of actions in the table.
func (t *ActionTable) Len() int { return len(t.items) }

type SoundTable struct {
	items []Sound
	index *intmap.Map
}

func newSoundTable(hint int) *SoundTable {
	return &SoundTable{index: intmap.New(hint, 0.95)}
}

func (t *SoundTable) add(s Sound) {
	t.index.Store(s.ID, uint32(len(t.items)))
	t.items = append(t.items, s)
}

// Get looks up a sound by ID.
func (t *SoundTable) Get(id uint32) (Sound, bool) {
	idx, ok := t.index.Load(id)
	if !ok {
		return Sound{}, false
	}
	return t.items[idx], true
}

// Len returns the number of sounds in the table.
func (t *SoundTable) Len() int { return len(t.items) }

type ContainerTable struct {
	items []Container
	index *intmap.Map
}

func newContainerTable(hint int) *ContainerTable {
	return &ContainerTable{index: intmap.New(hint, 0.95)}
}

func (t *ContainerTable) add(c Container) {
	t.index.Store(c.ID, uint32(len(t.items)))
	t.items = append(t.items, c)
}

// Get looks up a container by ID.
func (t *ContainerTable) Get(id uint32) (Container, bool) {
	idx, ok := t.index.Load(id)
	if !ok {
		return Container{}, false
	}
	return t.items[idx], true
}

// Len returns the number of containers in the table.
func (t *ContainerTable) Len() int { return len(t.items) }

// Result is the full set of hierarchy tables parsed from one HIRC chunk.
type Result struct {
	Events     []Event
	Actions    *ActionTable
	Sounds     *SoundTable
	Containers *ContainerTable
}
