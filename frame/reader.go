package frame

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/internal/options"
	"github.com/arloliu/flatesd/internal/pool"
)

// Reader reads flat events written by a Writer.
//
// Note: Reader is NOT thread-safe.
type Reader struct {
	r            io.Reader
	maxFrameSize int
	logger       *slog.Logger

	hdr     [HeaderSize]byte
	payload *pool.ByteBuffer
	frames  int
}

// NewReader creates a Reader on r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Reader{
		r:            r,
		maxFrameSize: cfg.maxFrameSize,
		logger:       cfg.logger,
		payload:      pool.NewByteBuffer(pool.FrameBufferDefaultSize),
	}, nil
}

// Next reads, verifies and opens the next event.
//
// Every returned event owns its memory and stays valid after later calls.
//
// Returns:
//   - *flat.Event: Validated event
//   - error: io.EOF at a clean end of stream, ErrInvalidFrame for a truncated
//     or malformed frame, ErrChecksumMismatch, or a flat.Open error
func (r *Reader) Next() (*flat.Event, error) {
	raw, _, err := r.NextRaw()
	if err != nil {
		return nil, err
	}

	ev, err := flat.Open(raw, flat.WithLogger(r.logger))
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", r.frames-1, err)
	}

	return ev, nil
}

// NextRaw reads and verifies the next frame and returns the raw event bytes
// without opening them.
func (r *Reader) NextRaw() ([]byte, Header, error) {
	n, err := io.ReadFull(r.r, r.hdr[:])
	switch {
	case errors.Is(err, io.EOF) && n == 0:
		return nil, Header{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, Header{}, fmt.Errorf("%w: frame %d header truncated at %d bytes", errs.ErrInvalidFrame, r.frames, n)
	case err != nil:
		return nil, Header{}, err
	}

	h, err := ParseHeader(r.hdr[:], r.maxFrameSize)
	if err != nil {
		return nil, Header{}, fmt.Errorf("frame %d: %w", r.frames, err)
	}

	r.payload.Resize(int(h.PayloadSize))
	if _, err := io.ReadFull(r.r, r.payload.Bytes()); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, Header{}, fmt.Errorf("%w: frame %d payload truncated", errs.ErrInvalidFrame, r.frames)
		}

		return nil, Header{}, err
	}

	raw, err := decodePayload(h, r.payload.Bytes())
	if err != nil {
		r.logger.Debug("frame rejected", "frame", r.frames, "error", err)
		return nil, Header{}, fmt.Errorf("frame %d: %w", r.frames, err)
	}
	r.frames++

	return raw, h, nil
}

// Frames returns the number of frames read successfully.
func (r *Reader) Frames() int {
	return r.frames
}
