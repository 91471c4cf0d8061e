package flat

import (
	"iter"

	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/section"
)

// NumberOfTriggerClasses returns the number of stored trigger records.
func (e *Event) NumberOfTriggerClasses() int {
	return int(e.hdr.NTriggerClasses)
}

// Triggers iterates over the stored trigger classes in slot order.
//
// Iteration stops early at a malformed record; Open and Reinitialize reject
// such buffers, so this only happens on memory modified after validation.
func (e *Event) Triggers() iter.Seq[esd.TriggerClass] {
	return func(yield func(esd.TriggerClass) bool) {
		if e.hdr.NTriggerClasses == 0 {
			return
		}

		data := e.sectionAt(e.hdr.TriggerOffset)
		for range e.hdr.NTriggerClasses {
			tc, n, err := section.ReadTrigger(data, e.engine)
			if err != nil {
				return
			}
			if !yield(tc) {
				return
			}
			data = data[n:]
		}
	}
}

// TriggerClasses returns the stored trigger classes in slot order.
func (e *Event) TriggerClasses() []esd.TriggerClass {
	classes := make([]esd.TriggerClass, 0, e.hdr.NTriggerClasses)
	for tc := range e.Triggers() {
		classes = append(classes, tc)
	}

	return classes
}

// FiredTriggerClasses returns the names of the stored classes whose bit is set
// in the trigger masks, each surrounded by single spaces, in stored order.
func (e *Event) FiredTriggerClasses() string {
	return esd.FiredClasses(e.TriggerClasses(), e.hdr.TriggerMask, e.hdr.TriggerMaskNext50)
}

// IsTriggerClassFired reports whether the stored class called name fired.
func (e *Event) IsTriggerClassFired(name string) bool {
	for tc := range e.Triggers() {
		if tc.Name == name {
			return esd.IsFired(e.hdr.TriggerMask, e.hdr.TriggerMaskNext50, tc.Index)
		}
	}

	return false
}

// PrimaryVertexTracks returns the vertex reconstructed from global tracks.
func (e *Event) PrimaryVertexTracks() (esd.Vertex, bool) {
	return e.primaryVertex(format.VertexTracks)
}

// PrimaryVertexSPD returns the vertex reconstructed from the SPD tracklets.
func (e *Event) PrimaryVertexSPD() (esd.Vertex, bool) {
	return e.primaryVertex(format.VertexSPD)
}

// PrimaryVertexTPC always reports absent: flat events never store a TPC vertex.
func (e *Event) PrimaryVertexTPC() (esd.Vertex, bool) {
	return e.primaryVertex(format.VertexTPC)
}

func (e *Event) primaryVertex(role format.VertexRole) (esd.Vertex, bool) {
	var off uint32
	switch role {
	case format.VertexTracks:
		if !e.hdr.HasVertexTracks() {
			return esd.Vertex{}, false
		}
		off = e.hdr.VertexTracksOffset
	case format.VertexSPD:
		if !e.hdr.HasVertexSPD() {
			return esd.Vertex{}, false
		}
		off = e.hdr.VertexSPDOffset
	default:
		return esd.Vertex{}, false
	}

	v, _, err := section.ReadVertex(e.sectionAt(off), e.engine)
	if err != nil {
		return esd.Vertex{}, false
	}

	return v, true
}

// NumberOfTracks returns the number of stored track records.
func (e *Event) NumberOfTracks() int {
	return int(e.hdr.NTracks)
}

// NumberOfTrackSlots returns the number of track offset table entries, which
// equals the track count of the source event.
func (e *Event) NumberOfTrackSlots() int {
	return int(e.hdr.NTrackSlots)
}

// sectionAt returns the payload from off to its end, or nil when off lies
// beyond it.
func (e *Event) sectionAt(off uint32) []byte {
	p := e.payload()
	if uint64(off) > uint64(len(p)) {
		return nil
	}

	return p[off:]
}

func (e *Event) trackTable() section.TrackTable {
	// Reinitialize guarantees the table fits inside the payload.
	table, _ := section.ViewTrackTable(e.sectionAt(e.hdr.TrackTableOffset), e.engine, int(e.hdr.NTrackSlots))
	return table
}

func (e *Event) trackList() []byte {
	return e.sectionAt(e.hdr.TracksOffset)
}

// TrackOffset returns the track list offset stored for source track slot, or
// section.AbsentTrack when that track was not stored or slot is out of range.
func (e *Event) TrackOffset(slot int) int64 {
	if slot < 0 || slot >= int(e.hdr.NTrackSlots) {
		return section.AbsentTrack
	}

	return e.trackTable().Offset(slot)
}

// Track decodes the track stored for source track slot.
func (e *Event) Track(slot int) (esd.Track, bool) {
	off := e.TrackOffset(slot)
	if off < 0 {
		return esd.Track{}, false
	}

	list := e.trackList()
	if off >= int64(len(list)) {
		return esd.Track{}, false
	}

	t, _, err := section.ReadTrack(list[off:], e.engine)
	if err != nil {
		return esd.Track{}, false
	}

	return t, true
}

// Tracks iterates over the stored tracks in list order, yielding the list
// position and the decoded track. Positions are dense; they differ from the
// source slots when some source tracks were absent.
func (e *Event) Tracks() iter.Seq2[int, esd.Track] {
	return func(yield func(int, esd.Track) bool) {
		if e.hdr.NTracks == 0 {
			return
		}

		data := e.trackList()
		for i := range int(e.hdr.NTracks) {
			t, n, err := section.ReadTrack(data, e.engine)
			if err != nil {
				return
			}
			if !yield(i, t) {
				return
			}
			data = data[n:]
		}
	}
}

// NumberOfV0s returns the number of stored V0 records.
func (e *Event) NumberOfV0s() int {
	return int(e.hdr.NV0s)
}

// V0s iterates over the stored V0 daughter index pairs.
func (e *Event) V0s() iter.Seq[esd.V0Indices] {
	return func(yield func(esd.V0Indices) bool) {
		if e.hdr.NV0s == 0 {
			return
		}

		data := e.sectionAt(e.hdr.V0Offset)
		for range e.hdr.NV0s {
			ids, err := section.ReadV0(data, e.engine)
			if err != nil {
				return
			}
			if !yield(ids) {
				return
			}
			data = data[section.V0Size:]
		}
	}
}
