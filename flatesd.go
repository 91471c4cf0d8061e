// Package flatesd packs reconstructed detector events into flat, pointer-free
// byte buffers.
//
// A flat event is a fixed 96-byte header followed by a payload of trigger
// class records, primary vertex records, a track offset table, track records
// and V0 index pairs. Every section is addressed by an offset relative to the
// payload start, so a buffer can be copied to shared memory, written to a file
// or sent over a socket and read back in place without any pointer fix-ups.
//
// # Core Features
//
//   - Bounded build: SetFromESD never writes past the allocated capacity and
//     reports out-of-space instead of truncating silently
//   - Zero-copy reads: accessors and iterators decode records on demand from
//     the underlying bytes
//   - Relocation: Open re-parses and validates a copied buffer
//   - Framing: checksummed, optionally compressed frames for streams and files
//     (package frame)
//   - Archive: an embedded B+tree store keyed by run, orbit and bunch crossing
//     (package store)
//
// # Basic Usage
//
// Building a flat event from a rich event:
//
//	data, err := flatesd.Marshal(ev, true)
//	if err != nil {
//	    return err
//	}
//
// Reading it back:
//
//	fe, err := flatesd.Open(data)
//	if err != nil {
//	    return err
//	}
//	for slot, tr := range fe.Tracks() {
//	    fmt.Println(slot, tr.Label)
//	}
//
// Reconstructing a rich event:
//
//	out := esd.NewEvent()
//	if err := flatesd.Unmarshal(data, out); err != nil {
//	    return err
//	}
//
// Callers that manage their own memory (shared-memory segments, ring buffers)
// use flat.New and (*flat.Event).SetFromESD directly, sizing the region with
// flat.EstimateSize.
package flatesd

import (
	"github.com/arloliu/flatesd/esd"
	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/frame"
)

// Marshal encodes src into a new flat event buffer.
//
// Available options:
//   - flat.WithLittleEndian() / flat.WithBigEndian()
//   - flat.WithLogger(logger)
//
// Parameters:
//   - src: Rich event to encode, usually an *esd.Event
//   - fillV0s: Whether V0 index pairs are stored
//   - opts: Optional byte order and logger settings
//
// Returns:
//   - []byte: The flat event bytes
//   - error: Any build error, see errs.ErrOutOfSpace and errs.ErrInvalidV0
//
// Example:
//
//	data, err := flatesd.Marshal(ev, true, flat.WithBigEndian())
func Marshal(src flat.Source, fillV0s bool, opts ...flat.Option) ([]byte, error) {
	return flat.Marshal(src, fillV0s, opts...)
}

// Open wraps data as a flat event after validating its header and sections.
//
// The event reads directly from data; the caller must not modify data while
// the event is in use.
func Open(data []byte) (*flat.Event, error) {
	return flat.Open(data)
}

// Unmarshal validates data and reconstructs its content into dst.
//
// dst is reset first, so any previous content is discarded.
//
// Parameters:
//   - data: Flat event bytes
//   - dst: Destination rich event, usually an *esd.Event
//
// Returns:
//   - error: Any validation error from Open
func Unmarshal(data []byte, dst flat.Sink) error {
	fe, err := flat.Open(data)
	if err != nil {
		return err
	}
	fe.GetESDEvent(dst)

	return nil
}

// UnmarshalEvent is Unmarshal into a freshly allocated *esd.Event.
func UnmarshalEvent(data []byte) (*esd.Event, error) {
	ev := esd.NewEvent()
	if err := Unmarshal(data, ev); err != nil {
		return nil, err
	}

	return ev, nil
}

// EncodeFrame marshals src and wraps the result in a checksummed frame.
//
// Parameters:
//   - src: Rich event to encode
//   - fillV0s: Whether V0 index pairs are stored
//   - compression: Frame payload compression
//
// Returns:
//   - []byte: One complete frame, suitable for frame.Reader
//   - error: Any build or compression error
func EncodeFrame(src flat.Source, fillV0s bool, compression format.CompressionType) ([]byte, error) {
	data, err := flat.Marshal(src, fillV0s)
	if err != nil {
		return nil, err
	}

	return frame.Encode(data, compression)
}

// DecodeFrame decodes the first frame of data and opens it as a flat event.
//
// Returns:
//   - *flat.Event: The decoded event
//   - int: Number of bytes of data consumed by the frame
//   - error: Any frame or validation error
func DecodeFrame(data []byte) (*flat.Event, int, error) {
	raw, n, err := frame.Decode(data)
	if err != nil {
		return nil, 0, err
	}

	fe, err := flat.Open(raw)
	if err != nil {
		return nil, 0, err
	}

	return fe, n, nil
}
