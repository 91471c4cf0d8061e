package flat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
)

func sampleParam(seed float32) *esd.ExternalTrackParam {
	p := &esd.ExternalTrackParam{
		Alpha:     seed * 0.1,
		X:         seed,
		Y:         seed + 0.5,
		Z:         -seed,
		Snp:       0.1,
		Tgl:       0.2,
		Signed1Pt: 1 / (seed + 1),
	}
	for i := range p.Covariance {
		p.Covariance[i] = seed + float32(i)
	}

	return p
}

func sampleTrack(label int32, nClusters int) *esd.Track {
	tr := &esd.Track{Label: label, Status: uint64(label) << 8, NITSClusters: uint16(label % 7)}
	tr.SetParam(format.ParamRefitted, sampleParam(float32(label)))
	if label%2 == 0 {
		tr.SetParam(format.ParamTPCInner, sampleParam(float32(label)+100))
	}
	for i := range nClusters {
		tr.TPCClusters = append(tr.TPCClusters, esd.TPCCluster{
			X: float32(i), Y: float32(label), Z: 1, SigmaY2: 0.1, SigmaZ2: 0.2, Charge: 50, QMax: 9, PadRow: uint8(i),
		})
	}

	return tr
}

func sampleVertex(z float64, contributors int32) *esd.Vertex {
	return &esd.Vertex{
		Position:      [3]float64{0.01, -0.02, z},
		Covariance:    [6]float64{1e-4, 0, 1e-4, 0, 0, 1e-3},
		Chi2:          1.5,
		NContributors: contributors,
		Status:        true,
	}
}

// sampleEvent builds a rich event with nTracks tracks, two fired trigger
// classes and one that did not fire, both vertices, and a V0 for every pair of
// neighbouring tracks.
func sampleEvent(nTracks int) *esd.Event {
	ev := esd.NewEvent()
	ev.SetMagneticField(-5.00668)
	ev.SetPeriodNumber(42)
	ev.SetRunNumber(246087)
	ev.SetOrbitNumber(0xABCDE)
	ev.SetTimeStamp(1444000000)
	ev.SetBunchCrossNumber(1234)
	ev.SetEventSpecie(2)

	ev.SetTriggerClass("A", 3)
	ev.SetTriggerClass("C", 5)
	ev.SetTriggerClass("B", 70)
	ev.SetTriggerMask(1 << 3)
	ev.SetTriggerMaskNext50(1 << (70 - 64))

	ev.SetPrimaryVertexTracks(sampleVertex(1.25, int32(nTracks)))
	ev.SetPrimaryVertexSPD(sampleVertex(1.5, 12))
	ev.SetPrimaryVertexTPC(sampleVertex(2, 3))

	for i := range nTracks {
		ev.AddTrack(sampleTrack(int32(i+1), i%4))
	}
	for i := 0; i+1 < nTracks; i += 2 {
		ev.AddV0(esd.NewV0(ev.Track(i), i, ev.Track(i+1), i+1))
	}

	return ev
}

func build(t *testing.T, src Source, fillV0s bool, opts ...Option) *Event {
	t.Helper()

	buf := make([]byte, EstimateSize(src, fillV0s))
	ev, err := New(buf, opts...)
	require.NoError(t, err)
	require.NoError(t, ev.SetFromESD(len(buf), src, fillV0s))

	return ev
}

// requireSameContent checks that got carries everything a flat event keeps of want.
func requireSameContent(t *testing.T, want, got *esd.Event, withV0s bool) {
	t.Helper()

	require.Equal(t, want.MagneticField(), got.MagneticField())
	require.Equal(t, want.PeriodNumber(), got.PeriodNumber())
	require.Equal(t, want.RunNumber(), got.RunNumber())
	require.Equal(t, want.OrbitNumber(), got.OrbitNumber())
	require.Equal(t, want.TimeStamp(), got.TimeStamp())
	require.Equal(t, want.BunchCrossNumber(), got.BunchCrossNumber())
	require.Equal(t, want.EventSpecie(), got.EventSpecie())
	require.Equal(t, want.TriggerMask(), got.TriggerMask())
	require.Equal(t, want.TriggerMaskNext50(), got.TriggerMaskNext50())
	require.Equal(t, want.TriggerClasses(), got.TriggerClasses())

	require.Equal(t, want.PrimaryVertexTracks(), got.PrimaryVertexTracks())
	require.Equal(t, want.PrimaryVertexSPD(), got.PrimaryVertexSPD())
	require.Nil(t, got.PrimaryVertexTPC())

	require.Equal(t, want.NumberOfTracks(), got.NumberOfTracks())
	for i := range want.NumberOfTracks() {
		require.Equal(t, *want.Track(i), *got.Track(i), "track %d", i)
	}

	if !withV0s {
		require.Zero(t, got.NumberOfV0s())
		return
	}
	require.Equal(t, want.NumberOfV0s(), got.NumberOfV0s())
	for i := range want.NumberOfV0s() {
		require.Equal(t, *want.V0(i), *got.V0(i), "v0 %d", i)
	}
}
