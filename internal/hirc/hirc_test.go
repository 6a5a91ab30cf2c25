package hirc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// objectLong builds one HIRC record with a long (version<=48 style) header.
func objectLong(objType uint32, payload []byte) []byte {
	return append(append(u32(objType), u32(uint32(len(payload)))...), payload...)
}

// objectShort builds one HIRC record with a short (version>48) header.
func objectShort(objType byte, payload []byte) []byte {
	return append(append([]byte{objType}, u32(uint32(len(payload)))...), payload...)
}

func TestParseObjects_Sound(t *testing.T) {
	// sound_id(4) + 4 skip + 1 skip + source_id(4) = 13 bytes
	payload := append(append(u32(0x100), make([]byte, 5)...), u32(0xDEAD)...)
	obj := objectShort(0x02, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 150, binary.LittleEndian)
	require.NoError(t, err)

	s, ok := res.Sounds.Get(0x100)
	require.True(t, ok)
	require.NotNil(t, s.Source)
	assert.Equal(t, uint32(0xDEAD), *s.Source)
}

func TestParseObjects_Sound_Short(t *testing.T) {
	payload := u32(0x200) // only ID, no source
	obj := objectShort(0x02, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 150, binary.LittleEndian)
	require.NoError(t, err)

	s, ok := res.Sounds.Get(0x200)
	require.True(t, ok)
	assert.Nil(t, s.Source)
}

func TestParseObjects_Action(t *testing.T) {
	payload := append(append(u32(0x300), u16(1027)...), u32(0x500)...)
	obj := objectShort(0x03, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 150, binary.LittleEndian)
	require.NoError(t, err)

	a, ok := res.Actions.Get(0x300)
	require.True(t, ok)
	require.NotNil(t, a.Type)
	assert.Equal(t, uint16(1027), *a.Type)
	require.NotNil(t, a.Target)
	assert.Equal(t, uint32(0x500), *a.Target)
}

func TestParseObjects_Event_Varint(t *testing.T) {
	// version > 122: action count is a varint, here count=2
	payload := append(append(u32(0x400), byte(2)), append(u32(0xAAA), u32(0xBBB)...)...)
	obj := objectShort(0x04, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 140, binary.LittleEndian)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, uint32(0x400), res.Events[0].ID)
	assert.Equal(t, []uint32{0xAAA, 0xBBB}, res.Events[0].Actions)
}

func TestParseObjects_Event_U32Count(t *testing.T) {
	// version <= 122: action count is a plain u32
	payload := append(append(u32(0x401), u32(1)...), u32(0xCCC)...)
	obj := objectShort(0x04, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 100, binary.LittleEndian)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, []uint32{0xCCC}, res.Events[0].Actions)
}

func TestParseObjects_LongHeader(t *testing.T) {
	payload := u32(0x900)
	obj := objectLong(0x02, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 30, binary.LittleEndian) // version<=48: long header
	require.NoError(t, err)
	_, ok := res.Sounds.Get(0x900)
	assert.True(t, ok)
}

func TestParseObjects_UnknownTypeSkippedBySize(t *testing.T) {
	unknown := objectShort(0x7F, []byte{1, 2, 3, 4})
	sound := objectShort(0x02, u32(0x111))
	data := append(u32(2), append(unknown, sound...)...)

	res, err := ParseObjects(data, 150, binary.LittleEndian)
	require.NoError(t, err)
	_, ok := res.Sounds.Get(0x111)
	assert.True(t, ok)
}

func TestParseContainer_ChildrenAndPlaylist(t *testing.T) {
	// container_id(4) + loop(2) + extra-loop-bytes(4, version>72) +
	// transitions(12 floats) + avoid(2) + modes(3) + flags(1 bitvector,
	// version>89) = 28 bytes total, well under the 84-byte skip
	// threshold so the relative skip is a no-op here.
	payload := u32(0x700)
	payload = append(payload, u16(0)...)          // loop_count i16, value 0
	payload = append(payload, make([]byte, 4)...) // extra loop bytes (version>72)
	payload = append(payload, make([]byte, 12)...)
	payload = append(payload, u16(0)...)          // avoid repeat
	payload = append(payload, []byte{0, 0, 0}...) // transition_mode, random_mode, mode
	payload = append(payload, 0)                  // bitvector flags byte

	// children: count=1, id=0xAAA; playlist: count=1, {id:0xBBB weight:5}
	payload = append(payload, u32(1)...)
	payload = append(payload, u32(0xAAA)...)
	payload = append(payload, u16(1)...) // playlist count (u16, version>38)
	payload = append(payload, u32(0xBBB)...)
	payload = append(payload, u32(5)...) // weight i32 (version>56)

	obj := objectShort(0x05, payload)
	data := append(u32(1), obj...)

	res, err := ParseObjects(data, 150, binary.LittleEndian)
	require.NoError(t, err)

	ctn, ok := res.Containers.Get(0x700)
	require.True(t, ok)
	assert.Equal(t, []uint32{0xAAA}, ctn.Children)
	require.Len(t, ctn.Playlist, 1)
	assert.Equal(t, uint32(0xBBB), ctn.Playlist[0].ID)
	assert.Equal(t, int32(5), ctn.Playlist[0].Weight)
}
