package frame

import (
	"fmt"

	"github.com/arloliu/flatesd/compress"
	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
	"github.com/arloliu/flatesd/internal/hash"
)

// Encode returns raw wrapped in a single frame.
//
// Parameters:
//   - raw: Flat event bytes
//   - compression: Codec applied to raw
//
// Returns:
//   - []byte: Frame bytes
//   - error: ErrFrameTooLarge, ErrUnsupportedCompression or a codec error
func Encode(raw []byte, compression format.CompressionType) ([]byte, error) {
	return AppendEncode(nil, raw, compression)
}

// AppendEncode appends the frame for raw to dst.
func AppendEncode(dst, raw []byte, compression format.CompressionType) ([]byte, error) {
	h, payload, err := encodePayload(raw, compression, DefaultMaxFrameSize)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	dst = append(dst, make([]byte, HeaderSize)...)
	_ = h.WriteToSlice(dst[start:])

	return append(dst, payload...), nil
}

func encodePayload(raw []byte, compression format.CompressionType, maxSize int) (Header, []byte, error) {
	if len(raw) > maxSize {
		return Header{}, nil, fmt.Errorf("%w: event of %d bytes, limit %d", errs.ErrFrameTooLarge, len(raw), maxSize)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Header{}, nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%s compression: %w", compression, err)
	}
	if len(payload) > maxSize {
		return Header{}, nil, fmt.Errorf("%w: payload of %d bytes, limit %d", errs.ErrFrameTooLarge, len(payload), maxSize)
	}

	h := Header{
		Compression: compression,
		RawSize:     uint32(len(raw)),     //nolint:gosec
		PayloadSize: uint32(len(payload)), //nolint:gosec
		Checksum:    hash.Checksum(raw),
	}

	return h, payload, nil
}

// Decode decodes the frame at the start of data.
//
// Returns:
//   - []byte: Raw event bytes in newly allocated memory
//   - int: Frame size, the offset of the next frame
//   - error: ErrInvalidFrame, ErrChecksumMismatch, ErrUnsupportedCompression
//     or ErrFrameTooLarge
func Decode(data []byte) ([]byte, int, error) {
	h, err := ParseHeader(data, DefaultMaxFrameSize)
	if err != nil {
		return nil, 0, err
	}
	if len(data) < h.Size() {
		return nil, 0, fmt.Errorf("%w: frame needs %d bytes, %d available", errs.ErrInvalidFrame, h.Size(), len(data))
	}

	raw, err := decodePayload(h, data[HeaderSize:h.Size()])
	if err != nil {
		return nil, 0, err
	}

	return raw, h.Size(), nil
}

func decodePayload(h Header, payload []byte) ([]byte, error) {
	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := compress.DecompressInto(codec, make([]byte, 0, h.RawSize), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %v", errs.ErrInvalidFrame, h.Compression, err)
	}
	if len(raw) != int(h.RawSize) {
		return nil, fmt.Errorf("%w: decoded %d bytes, header says %d", errs.ErrInvalidFrame, len(raw), h.RawSize)
	}
	if sum := hash.Checksum(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return raw, nil
}
