package esd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/format"
)

func TestEvent_Scalars(t *testing.T) {
	ev := NewEvent()
	ev.SetMagneticField(0.5)
	ev.SetPeriodNumber(1)
	ev.SetRunNumber(-2)
	ev.SetOrbitNumber(3)
	ev.SetTimeStamp(4)
	ev.SetBunchCrossNumber(5)
	ev.SetEventSpecie(6)
	ev.SetTriggerMask(7)
	ev.SetTriggerMaskNext50(8)

	require.Equal(t, 0.5, ev.MagneticField())
	require.Equal(t, uint32(1), ev.PeriodNumber())
	require.Equal(t, int32(-2), ev.RunNumber())
	require.Equal(t, uint32(3), ev.OrbitNumber())
	require.Equal(t, uint32(4), ev.TimeStamp())
	require.Equal(t, uint16(5), ev.BunchCrossNumber())
	require.Equal(t, uint8(6), ev.EventSpecie())
	require.Equal(t, uint64(7), ev.TriggerMask())
	require.Equal(t, uint64(8), ev.TriggerMaskNext50())
}

func TestEvent_ResetAndStdContent(t *testing.T) {
	ev := NewEvent()
	ev.SetRunNumber(10)
	ev.SetTriggerClass("A", 1)
	ev.AddTrack(&Track{Label: 1})
	ev.AddV0(&V0{})

	ev.Reset()
	require.Zero(t, ev.RunNumber())
	require.Nil(t, ev.Run())
	require.Zero(t, ev.NumberOfTracks())
	require.Zero(t, ev.NumberOfV0s())

	// without a run, trigger classes are dropped
	ev.SetTriggerClass("A", 1)
	require.Nil(t, ev.TriggerClasses())

	ev.CreateStdContent()
	ev.SetTriggerClass("A", 1)
	require.Equal(t, []TriggerClass{{Name: "A", Index: 1}}, ev.TriggerClasses())
}

func TestEvent_Triggers(t *testing.T) {
	ev := NewEvent()
	ev.SetTriggerClass("A", 3)
	ev.SetTriggerClass("B", 70)
	ev.SetTriggerMaskNext50(1 << 6)

	require.False(t, ev.IsTriggerClassFired("A"))
	require.True(t, ev.IsTriggerClassFired("B"))
	require.False(t, ev.IsTriggerClassFired("nope"))
	require.Equal(t, " B ", ev.FiredTriggerClasses())
}

func TestEvent_VerticesAreCopied(t *testing.T) {
	ev := NewEvent()
	v := &Vertex{Position: [3]float64{1, 2, 3}, Status: true}

	ev.SetPrimaryVertexSPD(v)
	v.Position[0] = 100
	require.Equal(t, 1.0, ev.PrimaryVertexSPD().X())
	require.Equal(t, 2.0, ev.PrimaryVertexSPD().Y())
	require.Equal(t, 3.0, ev.PrimaryVertexSPD().Z())

	ev.SetPrimaryVertexTracks(nil)
	require.Nil(t, ev.PrimaryVertexTracks())
	require.Nil(t, ev.PrimaryVertexTPC())
}

func TestEvent_Tracks(t *testing.T) {
	ev := NewEvent()
	tr := &Track{Label: 5, TPCClusters: []TPCCluster{{PadRow: 1}}}
	tr.SetParam(format.ParamOuter, &ExternalTrackParam{X: 1})

	require.Equal(t, 0, ev.AddTrack(tr))
	require.Equal(t, 1, ev.AddTrack(nil))
	require.Equal(t, 2, ev.NumberOfTracks())

	tr.TPCClusters[0].PadRow = 9
	tr.Param(format.ParamOuter).X = 9
	got := ev.Track(0)
	require.Equal(t, uint8(1), got.TPCClusters[0].PadRow)
	require.Equal(t, float32(1), got.Param(format.ParamOuter).X)

	require.Nil(t, ev.Track(1))
	require.Nil(t, ev.Track(2))
	require.Nil(t, ev.Track(-1))

	require.True(t, ev.SetTrack(1, &Track{Label: 6}))
	require.Equal(t, int32(6), ev.Track(1).Label)
	require.True(t, ev.SetTrack(0, nil))
	require.Nil(t, ev.Track(0))
	require.False(t, ev.SetTrack(5, tr))
}

func TestEvent_V0s(t *testing.T) {
	ev := NewEvent()
	neg := &Track{}
	neg.SetParam(format.ParamRefitted, &ExternalTrackParam{Signed1Pt: -1})
	pos := &Track{}
	pos.SetParam(format.ParamRefitted, &ExternalTrackParam{Signed1Pt: 1})
	ev.AddTrack(neg)
	ev.AddTrack(pos)

	v0 := NewV0(ev.Track(0), 0, ev.Track(1), 1)
	require.Equal(t, 0, ev.AddV0(v0))
	require.Equal(t, 1, ev.AddV0(nil))

	got := ev.V0(0)
	require.Equal(t, 0, got.NegIndex())
	require.Equal(t, 1, got.PosIndex())
	require.Equal(t, float32(-1), got.NegParam.Signed1Pt)
	require.Equal(t, float32(1), got.PosParam.Signed1Pt)
	require.Nil(t, ev.V0(1))
	require.Nil(t, ev.V0(2))

	// no refitted param leaves the daughter param zero
	bare := NewV0(&Track{}, 3, pos, 1)
	require.Equal(t, ExternalTrackParam{}, bare.NegParam)
}

func TestTrack_Params(t *testing.T) {
	var tr Track
	require.Zero(t, tr.ParamMask())

	tr.SetParam(format.ParamInner, &ExternalTrackParam{})
	tr.SetParam(format.ParamOuter, &ExternalTrackParam{})
	require.Equal(t, format.ParamInner.Mask()|format.ParamOuter.Mask(), tr.ParamMask())

	tr.SetParam(format.ParamInner, nil)
	require.Equal(t, format.ParamOuter.Mask(), tr.ParamMask())

	tr.SetParam(format.TrackParamRole(format.NumTrackParams), &ExternalTrackParam{})
	require.Nil(t, tr.Param(format.TrackParamRole(format.NumTrackParams)))
}
