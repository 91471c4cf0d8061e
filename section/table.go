package section

import (
	"fmt"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
)

// TrackTable is a view over the track offset table of a flat event.
//
// Slot i holds the byte offset of source track i relative to the start of the
// track list, or AbsentTrack when that source track was not stored. The table
// always has one slot per source track, so indices taken from the source event
// (V0 daughters, for example) stay valid even when the stored list is sparse.
type TrackTable struct {
	data   []byte
	engine endian.EndianEngine
}

// TrackTableSize returns the encoded size of a table with n slots.
func TrackTableSize(n int) int {
	return n * TrackTableEntrySize
}

// NewTrackTable initializes an n-slot table at the start of dst, marking every
// slot absent.
//
// Returns:
//   - TrackTable: View over the initialized table
//   - error: ErrOutOfSpace if dst cannot hold n slots
func NewTrackTable(dst []byte, engine endian.EndianEngine, n int) (TrackTable, error) {
	size := TrackTableSize(n)
	if n < 0 || len(dst) < size {
		return TrackTable{}, fmt.Errorf("%w: track table of %d slots needs %d bytes, %d free", errs.ErrOutOfSpace, n, size, len(dst))
	}

	t := TrackTable{data: dst[:size], engine: engine}
	for i := range n {
		t.SetOffset(i, AbsentTrack)
	}

	return t, nil
}

// ViewTrackTable wraps an already encoded n-slot table at the start of src.
func ViewTrackTable(src []byte, engine endian.EndianEngine, n int) (TrackTable, error) {
	size := TrackTableSize(n)
	if n < 0 || len(src) < size {
		return TrackTable{}, fmt.Errorf("%w: track table of %d slots truncated", errs.ErrInvalidRecordSize, n)
	}

	return TrackTable{data: src[:size], engine: engine}, nil
}

// Len returns the number of slots.
func (t TrackTable) Len() int {
	return len(t.data) / TrackTableEntrySize
}

// Offset returns the offset stored in slot i, or AbsentTrack when i is out of range.
func (t TrackTable) Offset(i int) int64 {
	if i < 0 || i >= t.Len() {
		return AbsentTrack
	}

	return int64(t.engine.Uint64(t.data[i*TrackTableEntrySize:])) //nolint:gosec
}

// SetOffset stores off in slot i.
func (t TrackTable) SetOffset(i int, off int64) {
	t.engine.PutUint64(t.data[i*TrackTableEntrySize:], uint64(off)) //nolint:gosec
}
