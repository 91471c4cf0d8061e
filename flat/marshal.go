package flat

import (
	"fmt"
	"slices"

	"github.com/arloliu/flatesd/errs"
)

// Marshal builds a flat event for src in freshly allocated memory.
//
// The buffer is sized with EstimateSize and the returned slice is clipped to
// the bytes actually used.
//
// Parameters:
//   - src: Rich event to encode
//   - fillV0s: Whether V0 records are appended
//   - opts: Optional byte order and logger settings
//
// Returns:
//   - []byte: Encoded flat event
//   - error: Any SetFromESD error
func Marshal(src Source, fillV0s bool, opts ...Option) ([]byte, error) {
	size := EstimateSize(src, fillV0s)
	buf := make([]byte, size)

	e, err := New(buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := e.SetFromESD(size, src, fillV0s); err != nil {
		return nil, err
	}

	return slices.Clip(e.Bytes()), nil
}

// CopyTo copies the in-use bytes into dst and opens the copy.
//
// Returns:
//   - *Event: Event backed by dst
//   - error: ErrInvalidCapacity if dst is shorter than Size, or any Open error
func (e *Event) CopyTo(dst []byte) (*Event, error) {
	if len(dst) < e.Size() {
		return nil, fmt.Errorf("%w: destination of %d bytes, event needs %d", errs.ErrInvalidCapacity, len(dst), e.Size())
	}
	n := copy(dst, e.Bytes())

	return Open(dst[:n], WithLogger(e.logger))
}
