package frame

import (
	"fmt"

	"github.com/arloliu/flatesd/endian"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
)

const (
	Magic      uint16 = 0xEF20 // Magic identifies a frame header.
	Version           = 1      // Version is the only frame layout version.
	HeaderSize        = 24     // HeaderSize is the fixed frame header size.

	// DefaultMaxFrameSize caps RawSize and PayloadSize unless the reader is
	// configured otherwise.
	DefaultMaxFrameSize = 256 * 1024 * 1024
)

var le = endian.GetLittleEndianEngine()

// Header is the decoded frame header.
type Header struct {
	Compression format.CompressionType
	RawSize     uint32
	PayloadSize uint32
	Checksum    uint64
}

// Size returns the total frame size, header included.
func (h Header) Size() int {
	return HeaderSize + int(h.PayloadSize)
}

// WriteToSlice serializes the header into b[0:HeaderSize].
func (h Header) WriteToSlice(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrInvalidFrame, HeaderSize, len(b))
	}

	le.PutUint16(b[0:2], Magic)
	b[2] = Version
	b[3] = uint8(h.Compression)
	le.PutUint32(b[4:8], h.RawSize)
	le.PutUint32(b[8:12], h.PayloadSize)
	le.PutUint32(b[12:16], 0)
	le.PutUint64(b[16:24], h.Checksum)

	return nil
}

// ParseHeader decodes and validates a frame header.
//
// Returns:
//   - Header: Decoded header
//   - error: ErrInvalidFrame, ErrUnsupportedCompression, or ErrFrameTooLarge
//     when a size exceeds maxSize
func ParseHeader(b []byte, maxSize int) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header truncated at %d bytes", errs.ErrInvalidFrame, len(b))
	}
	if magic := le.Uint16(b[0:2]); magic != Magic {
		return Header{}, fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidFrame, magic)
	}
	if b[2] != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrInvalidFrame, b[2])
	}
	if reserved := le.Uint32(b[12:16]); reserved != 0 {
		return Header{}, fmt.Errorf("%w: reserved field 0x%08x", errs.ErrInvalidFrame, reserved)
	}

	h := Header{
		Compression: format.CompressionType(b[3]),
		RawSize:     le.Uint32(b[4:8]),
		PayloadSize: le.Uint32(b[8:12]),
		Checksum:    le.Uint64(b[16:24]),
	}

	if !h.Compression.IsValid() {
		return Header{}, fmt.Errorf("%w: compression id %d", errs.ErrUnsupportedCompression, b[3])
	}
	if uint64(h.RawSize) > uint64(maxSize) || uint64(h.PayloadSize) > uint64(maxSize) {
		return Header{}, fmt.Errorf("%w: raw %d, payload %d, limit %d",
			errs.ErrFrameTooLarge, h.RawSize, h.PayloadSize, maxSize)
	}
	if h.Compression == format.CompressionNone && h.RawSize != h.PayloadSize {
		return Header{}, fmt.Errorf("%w: uncompressed frame with raw %d and payload %d",
			errs.ErrInvalidFrame, h.RawSize, h.PayloadSize)
	}

	return h, nil
}
