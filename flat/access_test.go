package flat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/section"
)

func TestEvent_Triggers(t *testing.T) {
	ev := build(t, sampleEvent(1), true)

	require.Equal(t, 3, ev.NumberOfTriggerClasses())
	require.Equal(t, []esd.TriggerClass{{Name: "A", Index: 3}, {Name: "C", Index: 5}, {Name: "B", Index: 70}}, ev.TriggerClasses())

	require.True(t, ev.IsTriggerClassFired("A"))
	require.True(t, ev.IsTriggerClassFired("B"))
	require.False(t, ev.IsTriggerClassFired("C"))
	require.False(t, ev.IsTriggerClassFired("missing"))
	require.Equal(t, " A  B ", ev.FiredTriggerClasses())

	var first []string
	for tc := range ev.Triggers() {
		first = append(first, tc.Name)
		break
	}
	require.Equal(t, []string{"A"}, first)
}

func TestEvent_Vertices(t *testing.T) {
	src := sampleEvent(2)
	ev := build(t, src, true)

	require.Equal(t, uint8(section.VertexTracksMask|section.VertexSPDMask), ev.PrimaryVertexMask())

	v, ok := ev.PrimaryVertexTracks()
	require.True(t, ok)
	require.Equal(t, *src.PrimaryVertexTracks(), v)

	v, ok = ev.PrimaryVertexSPD()
	require.True(t, ok)
	require.Equal(t, *src.PrimaryVertexSPD(), v)

	// the source has a TPC vertex, a flat event never keeps it
	require.NotNil(t, src.PrimaryVertexTPC())
	_, ok = ev.PrimaryVertexTPC()
	require.False(t, ok)
}

func TestEvent_SparseTrackTable(t *testing.T) {
	src := esd.NewEvent()
	for i := range 5 {
		if i == 2 {
			src.AddTrack(nil)
			continue
		}
		src.AddTrack(sampleTrack(int32(i+1), i))
	}

	ev := build(t, src, true)
	require.Equal(t, 5, ev.NumberOfTrackSlots())
	require.Equal(t, 4, ev.NumberOfTracks())

	absent := 0
	prev := int64(-1)
	for slot := range ev.NumberOfTrackSlots() {
		off := ev.TrackOffset(slot)
		if off == section.AbsentTrack {
			absent++
			require.Equal(t, 2, slot)
			_, ok := ev.Track(slot)
			require.False(t, ok)
			continue
		}
		require.Greater(t, off, prev)
		prev = off

		got, ok := ev.Track(slot)
		require.True(t, ok)
		require.Equal(t, *src.Track(slot), got)
	}
	require.Equal(t, 1, absent)
	require.Equal(t, int64(0), ev.TrackOffset(0))
	require.Equal(t, section.AbsentTrack, ev.TrackOffset(-1))
	require.Equal(t, section.AbsentTrack, ev.TrackOffset(5))

	var labels []int32
	var positions []int
	for pos, tr := range ev.Tracks() {
		positions = append(positions, pos)
		labels = append(labels, tr.Label)
	}
	require.Equal(t, []int{0, 1, 2, 3}, positions)
	require.Equal(t, []int32{1, 2, 4, 5}, labels)

	dst := esd.NewEvent()
	ev.GetESDEvent(dst)
	require.Equal(t, 4, dst.NumberOfTracks())
	require.Equal(t, int32(4), dst.Track(2).Label)
}

func TestEvent_TrackOffsetsMatchRecordSizes(t *testing.T) {
	src := sampleEvent(6)
	ev := build(t, src, true)

	var want int64
	for slot := range src.NumberOfTracks() {
		require.Equal(t, want, ev.TrackOffset(slot))
		want += int64(section.TrackSize(src.Track(slot)))
	}

	hdr := ev.Header()
	require.Equal(t, hdr.TrackTableOffset+uint32(section.TrackTableSize(src.NumberOfTracks())), hdr.TracksOffset)
	require.Equal(t, int64(hdr.V0Offset), int64(hdr.TracksOffset)+want)
}

func TestEvent_V0s(t *testing.T) {
	src := sampleEvent(5)
	ev := build(t, src, true)

	require.Equal(t, 2, ev.NumberOfV0s())

	var got []esd.V0Indices
	for ids := range ev.V0s() {
		got = append(got, ids)
	}
	require.Equal(t, []esd.V0Indices{{Neg: 0, Pos: 1}, {Neg: 2, Pos: 3}}, got)

	ev = build(t, src, false)
	require.Zero(t, ev.NumberOfV0s())
	require.Zero(t, ev.Header().V0Offset)
}

// V0 daughter indices are stored as source slots and resolved against the
// dense rebuilt list, so a gap in the source tracks shifts or drops daughters.
func TestEvent_V0IndicesResolvedVerbatim(t *testing.T) {
	src := esd.NewEvent()
	for i := range 5 {
		if i == 2 {
			src.AddTrack(nil)
			continue
		}
		src.AddTrack(sampleTrack(int32(i+1), 0))
	}
	src.AddV0(esd.NewV0(src.Track(0), 0, src.Track(3), 3))
	src.AddV0(esd.NewV0(src.Track(3), 3, src.Track(4), 4))

	ev := build(t, src, true)
	require.Equal(t, 2, ev.NumberOfV0s())

	dst := esd.NewEvent()
	ev.GetESDEvent(dst)

	// second V0 points past the end of the four rebuilt tracks and is skipped
	require.Equal(t, 1, dst.NumberOfV0s())

	v0 := dst.V0(0)
	require.Equal(t, esd.V0Indices{Neg: 0, Pos: 3}, v0.V0Indices)
	require.Equal(t, *src.Track(0).Param(format.ParamRefitted), v0.NegParam)
	// rebuilt index 3 holds source track 4
	require.Equal(t, *src.Track(4).Param(format.ParamRefitted), v0.PosParam)
}
