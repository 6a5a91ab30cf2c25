package hirc

// Predicates encodes the version branch points scattered through the
// object-record layouts (§9 "Version dispatch": do not sprinkle numeric
// thresholds through the parser — compute them once per bank instead).
type Predicates struct {
	Version uint32

	ShortObjectHeader bool // version > 48: type is u8 instead of u32
	VarintActionCount bool // version > 122: event action count is a varint
	ContainerIntTimes bool // version <= 38: transition times are i32, not float32
	ContainerWidePlaylistCount bool // version <= 38: playlist count is u32, not u16
	ByteWeight        bool // version <= 56: playlist item weight is u8, not i32
	ExtraLoopBytes    bool // version > 72: loop-count group has 4 trailing bytes
	BitvectorFlags    bool // version > 89: container flags are one bitvector byte
}

// NewPredicates computes every version-sensitive branch point once.
func NewPredicates(version uint32) Predicates {
	return Predicates{
		Version:                    version,
		ShortObjectHeader:          version > 48,
		VarintActionCount:          version > 122,
		ContainerIntTimes:          version <= 38,
		ContainerWidePlaylistCount: version <= 38,
		ByteWeight:                 version <= 56,
		ExtraLoopBytes:             version > 72,
		BitvectorFlags:             version > 89,
	}
}
