package flat

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/internal/options"
	"github.com/arloliu/flatesd/section"
)

// Event is a flat event laid out in a caller-owned byte slice.
//
// The first section.HeaderSize bytes hold the header; the payload follows.
// Event keeps a decoded copy of the header so accessors do not need to parse
// it on every call. The copy is written back to the buffer whenever a section
// is committed.
type Event struct {
	buf    []byte
	hdr    section.EventHeader
	engine endian.EndianEngine
	logger *slog.Logger
}

// New wraps buf as an empty flat event.
//
// The header is written into buf immediately, so buf must hold at least
// section.HeaderSize bytes. The rest of buf is the space available to
// SetFromESD.
//
// Parameters:
//   - buf: Caller-owned memory, at least section.HeaderSize bytes
//   - opts: Optional byte order and logger settings
//
// Returns:
//   - *Event: Empty event backed by buf
//   - error: ErrInvalidCapacity if buf is too small
func New(buf []byte, opts ...Option) (*Event, error) {
	if len(buf) < section.HeaderSize {
		return nil, fmt.Errorf("%w: buffer of %d bytes cannot hold the %d byte header",
			errs.ErrInvalidCapacity, len(buf), section.HeaderSize)
	}

	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	e := &Event{buf: buf, logger: cfg.logger}
	e.hdr.SetBigEndian(cfg.bigEndian)
	e.engine = e.hdr.Engine()
	e.Reset()

	return e, nil
}

// Open wraps an already built flat event, wherever its bytes now live.
//
// The byte order is taken from the header; WithBigEndian and WithLittleEndian
// are ignored. Every section is validated before Open returns.
//
// Returns:
//   - *Event: Read-only view over data
//   - error: Header parse error or one of the Reinitialize validation errors
func Open(data []byte, opts ...Option) (*Event, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	e := &Event{buf: data, logger: cfg.logger}
	if err := e.Reinitialize(); err != nil {
		return nil, err
	}

	return e, nil
}

// Reset returns the event to the empty state: every count, size and offset is
// zero, no vertex is present. The byte order is kept. Reset is idempotent.
func (e *Event) Reset() {
	e.hdr.Reset()
	e.flush()
}

// Size returns the number of bytes in use, header included.
func (e *Event) Size() int {
	return section.HeaderSize + int(e.hdr.ContentSize)
}

// ContentSize returns the number of payload bytes in use.
func (e *Event) ContentSize() int {
	return int(e.hdr.ContentSize)
}

// Bytes returns the in-use prefix of the backing buffer. The slice aliases
// the buffer.
func (e *Event) Bytes() []byte {
	return e.buf[:e.Size()]
}

// Header returns a copy of the decoded header.
func (e *Event) Header() section.EventHeader {
	return e.hdr
}

// IsBigEndian reports whether the payload is big-endian.
func (e *Event) IsBigEndian() bool {
	return e.hdr.IsBigEndian()
}

func (e *Event) MagneticField() float64    { return e.hdr.MagneticField }
func (e *Event) PeriodNumber() uint32      { return e.hdr.PeriodNumber }
func (e *Event) RunNumber() int32          { return e.hdr.RunNumber }
func (e *Event) OrbitNumber() uint32       { return e.hdr.OrbitNumber }
func (e *Event) TimeStamp() uint32         { return e.hdr.TimeStamp }
func (e *Event) BunchCrossNumber() uint16  { return e.hdr.BunchCrossNumber }
func (e *Event) EventSpecie() uint8        { return e.hdr.EventSpecie }
func (e *Event) TriggerMask() uint64       { return e.hdr.TriggerMask }
func (e *Event) TriggerMaskNext50() uint64 { return e.hdr.TriggerMaskNext50 }
func (e *Event) PrimaryVertexMask() uint8  { return e.hdr.PrimaryVertexMask }

// payload returns the in-use payload bytes.
func (e *Event) payload() []byte {
	return e.buf[section.HeaderSize:e.Size()]
}

func (e *Event) flush() {
	_ = e.hdr.WriteToSlice(e.buf)
}

// StatusCode maps a SetFromESD result to the integer convention of the
// original build interface: 0 on success, -1 on any failure.
func StatusCode(err error) int {
	if err == nil {
		return 0
	}

	return -1
}

// IsOutOfSpace reports whether err was caused by the capacity running out.
func IsOutOfSpace(err error) bool {
	return errors.Is(err, errs.ErrOutOfSpace)
}

func checkCapacity(allocated, bufLen int) error {
	if allocated < section.HeaderSize || allocated > bufLen {
		return fmt.Errorf("%w: allocated %d, buffer %d, header %d",
			errs.ErrInvalidCapacity, allocated, bufLen, section.HeaderSize)
	}
	if uint64(allocated-section.HeaderSize) > math.MaxUint32 {
		return fmt.Errorf("%w: allocated %d exceeds the 32-bit content size", errs.ErrInvalidCapacity, allocated)
	}

	return nil
}
