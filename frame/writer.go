package frame

import (
	"io"
	"log/slog"

	"github.com/arloliu/flatesd/flat"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/internal/options"
	"github.com/arloliu/flatesd/internal/pool"
)

// Writer appends flat events to an io.Writer, one frame per event.
//
// Note: Writer is NOT thread-safe.
type Writer struct {
	w            io.Writer
	compression  format.CompressionType
	maxFrameSize int
	logger       *slog.Logger

	frames  int
	written int64
}

// NewWriter creates a Writer on w.
//
// Parameters:
//   - w: Destination stream
//   - opts: WithCompression, WithMaxFrameSize and WithLogger
//
// Returns:
//   - *Writer: New writer
//   - error: Invalid option value
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{
		w:            w,
		compression:  cfg.compression,
		maxFrameSize: cfg.maxFrameSize,
		logger:       cfg.logger,
	}, nil
}

// Write appends the in-use bytes of e as one frame.
func (w *Writer) Write(e *flat.Event) error {
	return w.WriteRaw(e.Bytes())
}

// WriteRaw appends raw as one frame. raw is expected to be a flat event but is
// not validated.
func (w *Writer) WriteRaw(raw []byte) error {
	h, payload, err := encodePayload(raw, w.compression, w.maxFrameSize)
	if err != nil {
		return err
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Resize(HeaderSize)
	_ = h.WriteToSlice(buf.Bytes())
	buf.Append(payload)

	n, err := buf.WriteTo(w.w)
	w.written += n
	if err != nil {
		return err
	}
	w.frames++

	w.logger.Debug("frame written",
		"compression", w.compression,
		"raw", h.RawSize,
		"payload", h.PayloadSize)

	return nil
}

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	return w.frames
}

// BytesWritten returns the number of bytes written to the stream so far.
func (w *Writer) BytesWritten() int64 {
	return w.written
}
