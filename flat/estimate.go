package flat

import (
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/section"
)

// EstimateSize returns an upper bound on the bytes SetFromESD needs for src.
//
// The bound covers the header, two vertex records, every trigger slot at the
// maximum name length, and for each source track the largest possible track
// record plus its offset table entry. V0 records are counted only when fillV0s
// is set. A nil src yields the size of an event without tracks or V0s.
func EstimateSize(src Source, fillV0s bool) int {
	size := section.HeaderSize +
		2*section.VertexSize +
		esd.MaxTriggerClasses*section.MaxTriggerSize

	if isNil(src) {
		return size
	}

	size += src.NumberOfTracks() * (section.MaxTrackSize + section.TrackTableEntrySize)
	if fillV0s {
		size += src.NumberOfV0s() * section.V0Size
	}

	return size
}
