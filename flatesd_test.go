package flatesd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/format"
)

func newEvent(nTracks int) *esd.Event {
	ev := esd.NewEvent()
	ev.SetRunNumber(246087)
	ev.SetOrbitNumber(77)
	ev.SetBunchCrossNumber(12)
	ev.SetMagneticField(0.5)
	ev.SetTriggerClass("CINT7-B-NOPF-ALLNOTRD", 1)
	ev.SetTriggerMask(1 << 1)
	ev.SetPrimaryVertexTracks(&esd.Vertex{Position: [3]float64{0, 0, 3}, NContributors: int32(nTracks), Status: true})

	for i := range nTracks {
		tr := &esd.Track{Label: int32(i), Status: 1}
		tr.SetParam(format.ParamRefitted, &esd.ExternalTrackParam{X: float32(i), Signed1Pt: 0.5})
		tr.TPCClusters = []esd.TPCCluster{{X: 1, PadRow: uint8(i)}}
		ev.AddTrack(tr)
	}
	if nTracks >= 2 {
		ev.AddV0(esd.NewV0(ev.Track(0), 0, ev.Track(1), 1))
	}

	return ev
}

func TestMarshalUnmarshal(t *testing.T) {
	src := newEvent(5)

	data, err := Marshal(src, true)
	require.NoError(t, err)

	out, err := UnmarshalEvent(data)
	require.NoError(t, err)
	require.Equal(t, src.RunNumber(), out.RunNumber())
	require.Equal(t, src.OrbitNumber(), out.OrbitNumber())
	require.Equal(t, 5, out.NumberOfTracks())
	require.Equal(t, 1, out.NumberOfV0s())
	require.Equal(t, " CINT7-B-NOPF-ALLNOTRD ", out.FiredTriggerClasses())
	require.Equal(t, src.Track(3).Label, out.Track(3).Label)
	require.Equal(t, src.PrimaryVertexTracks().Z(), out.PrimaryVertexTracks().Z())
}

func TestOpen(t *testing.T) {
	data, err := Marshal(newEvent(3), false)
	require.NoError(t, err)

	fe, err := Open(data)
	require.NoError(t, err)
	require.Equal(t, 3, fe.NumberOfTracks())
	require.Zero(t, fe.NumberOfV0s())
	require.Equal(t, len(data), fe.Size())

	_, err = Open(data[:10])
	require.Error(t, err)
}

func TestUnmarshal_Corrupt(t *testing.T) {
	data, err := Marshal(newEvent(2), true)
	require.NoError(t, err)

	err = Unmarshal(data[:len(data)-1], esd.NewEvent())
	require.ErrorIs(t, err, errs.ErrInvalidContentSize)
}

func TestFrame(t *testing.T) {
	src := newEvent(4)

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			f, err := EncodeFrame(src, true, ct)
			require.NoError(t, err)

			// trailing bytes belong to the next frame
			fe, n, err := DecodeFrame(append(f, 0xFF, 0xFF))
			require.NoError(t, err)
			require.Equal(t, len(f), n)
			require.Equal(t, src.RunNumber(), fe.RunNumber())
			require.Equal(t, 4, fe.NumberOfTracks())
		})
	}
}

func TestDecodeFrame_Corrupt(t *testing.T) {
	f, err := EncodeFrame(newEvent(1), false, format.CompressionNone)
	require.NoError(t, err)

	f[len(f)-1] ^= 0xFF
	_, _, err = DecodeFrame(f)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}
