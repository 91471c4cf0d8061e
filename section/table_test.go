package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
)

func TestTrackTable(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, TrackTableSize(5)+3)

	table, err := NewTrackTable(buf, engine, 5)
	require.NoError(t, err)
	require.Equal(t, 5, table.Len())

	for i := range 5 {
		require.Equal(t, AbsentTrack, table.Offset(i))
	}

	table.SetOffset(0, 0)
	table.SetOffset(3, 512)

	view, err := ViewTrackTable(buf, engine, 5)
	require.NoError(t, err)
	require.Equal(t, int64(0), view.Offset(0))
	require.Equal(t, AbsentTrack, view.Offset(1))
	require.Equal(t, int64(512), view.Offset(3))

	require.Equal(t, AbsentTrack, view.Offset(-1))
	require.Equal(t, AbsentTrack, view.Offset(5))
}

func TestTrackTable_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := NewTrackTable(make([]byte, 15), engine, 2)
	require.ErrorIs(t, err, errs.ErrOutOfSpace)

	_, err = ViewTrackTable(make([]byte, 15), engine, 2)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	table, err := NewTrackTable(nil, engine, 0)
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())
}
