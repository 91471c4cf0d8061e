// Package errs defines the sentinel errors returned by flatesd packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ...") at the
// point of failure, so callers should compare with errors.Is:
//
//	if err := ev.SetFromESD(len(buf), src, true); errors.Is(err, errs.ErrOutOfSpace) {
//	    // re-estimate and re-allocate
//	}
package errs

import "errors"

// Buffer construction errors.
var (
	// ErrInvalidCapacity is returned when the declared capacity is smaller than the
	// fixed event header or larger than the memory actually provided.
	ErrInvalidCapacity = errors.New("invalid buffer capacity")

	// ErrOutOfSpace is returned when a sub-record does not fit in the remaining
	// free space of the buffer. The buffer must be discarded.
	ErrOutOfSpace = errors.New("not enough space in flat event buffer")

	// ErrInvalidV0 is returned when the source event reports a V0 slot with no V0 in it.
	ErrInvalidV0 = errors.New("invalid V0 candidate")

	// ErrInvalidTrigger is returned when a trigger class cannot be encoded
	// (name too long or index out of the configurable range).
	ErrInvalidTrigger = errors.New("invalid trigger class")

	// ErrTooManyClusters is returned when a track carries more TPC clusters than a
	// track record can hold.
	ErrTooManyClusters = errors.New("too many TPC clusters")
)

// Buffer parsing errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidVersion      = errors.New("unsupported format version")
	ErrInvalidRecordSize   = errors.New("invalid record size")
	ErrOffsetOutOfRange    = errors.New("offset out of range")
	ErrInvalidContentSize  = errors.New("content size exceeds buffer")
	ErrInvalidSectionCount = errors.New("invalid section count")
)

// Framing and storage errors.
var (
	ErrInvalidFrame           = errors.New("invalid frame")
	ErrChecksumMismatch       = errors.New("frame checksum mismatch")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrFrameTooLarge          = errors.New("frame too large")
	ErrEventNotFound          = errors.New("event not found")
	ErrStoreClosed            = errors.New("store is closed")
	ErrInvalidKey             = errors.New("invalid event key")
)
