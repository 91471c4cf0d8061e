package section

import (
	"fmt"
	"math"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/esd"
)

// WriteV0 encodes the daughter indices of a V0 at the start of dst.
// The indices refer to the source event's track collection.
func WriteV0(dst []byte, engine endian.EndianEngine, ids esd.V0Indices) (int, error) {
	if len(dst) < V0Size {
		return 0, fmt.Errorf("%w: V0 needs %d bytes, %d free", errs.ErrOutOfSpace, V0Size, len(dst))
	}
	if !fitsInt32(ids.Neg) || !fitsInt32(ids.Pos) {
		return 0, fmt.Errorf("%w: daughter indices %d/%d exceed the int32 range", errs.ErrInvalidV0, ids.Neg, ids.Pos)
	}
	engine.PutUint32(dst[0:4], uint32(int32(ids.Neg))) //nolint:gosec
	engine.PutUint32(dst[4:8], uint32(int32(ids.Pos))) //nolint:gosec

	return V0Size, nil
}

func fitsInt32(i int) bool {
	return int64(i) >= math.MinInt32 && int64(i) <= math.MaxInt32
}

// ReadV0 decodes the V0 record at the start of src.
func ReadV0(src []byte, engine endian.EndianEngine) (esd.V0Indices, error) {
	if len(src) < V0Size {
		return esd.V0Indices{}, fmt.Errorf("%w: V0 record truncated", errs.ErrInvalidRecordSize)
	}

	return esd.V0Indices{
		Neg: int(int32(engine.Uint32(src[0:4]))), //nolint:gosec
		Pos: int(int32(engine.Uint32(src[4:8]))), //nolint:gosec
	}, nil
}
