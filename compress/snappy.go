package compress

import "github.com/golang/snappy"

// SnappyCompressor uses the Snappy block format.
type SnappyCompressor struct{}

var (
	_ Codec             = (*SnappyCompressor)(nil)
	_ SizedDecompressor = (*SnappyCompressor)(nil)
)

// NewSnappyCompressor creates a Snappy codec.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses data with Snappy.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a Snappy block.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Decode(nil, data)
}

// DecompressTo decodes into dst, allocating only if dst is too small.
func (c SnappyCompressor) DecompressTo(dst, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst[:0], nil
	}

	return snappy.Decode(dst[:cap(dst)], data)
}
