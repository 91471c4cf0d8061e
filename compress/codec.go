package compress

import (
	"fmt"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
)

// Compressor compresses a whole block in one call.
//
// The returned slice is owned by the caller; the input is never modified.
// An empty input compresses to nil.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Decompress returns an error when data is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs that can decode straight into a
// caller-provided buffer. dst is used from dst[:0] up to its capacity.
type SizedDecompressor interface {
	DecompressTo(dst, data []byte) ([]byte, error)
}

// DecompressInto decodes data into dst when the codec supports it and falls
// back to Decompress otherwise.
func DecompressInto(d Decompressor, dst, data []byte) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressTo(dst, data)
	}

	return d.Decompress(data)
}

// CreateCodec returns a new codec for the compression type.
//
// Parameters:
//   - compressionType: Algorithm to use
//   - target: What the codec is for, used in the error message
//
// Returns:
//   - Codec: Codec for the type
//   - error: ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionSnappy:
		return NewSnappyCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec returns the shared built-in codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Types returns every compression type with a built-in codec, in ascending order.
func Types() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionSnappy,
	}
}
