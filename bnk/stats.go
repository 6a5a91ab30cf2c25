package bnk

// Stats summarizes the shape of a parsed bank.
type Stats struct {
	Version        uint32
	AudioCount     int
	TotalDataBytes int
	EventCount     int
	ActionCount    int
	SoundCount     int
	ContainerCount int
	TrailingBytes  int
}

// Stats computes a snapshot of the bank's current contents.
func (b *Bank) Stats() Stats {
	s := Stats{
		Version:        b.Version(),
		AudioCount:     len(b.index),
		TotalDataBytes: len(b.dataBlob),
		TrailingBytes:  len(b.trailingBytes),
	}
	if b.hasHierarchy {
		s.EventCount = len(b.hierarchy.Events)
		s.ActionCount = b.hierarchy.Actions.Len()
		s.SoundCount = b.hierarchy.Sounds.Len()
		s.ContainerCount = b.hierarchy.Containers.Len()
	}
	return s
}
