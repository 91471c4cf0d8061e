package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxLZ4Output bounds the buffer growth of Decompress, where the output size
// is unknown. Larger blocks must go through DecompressTo.
const maxLZ4Output = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses the raw LZ4 block format. The block carries no length,
// so Decompress has to guess the output size; prefer DecompressTo.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	// a bound-sized dst lets CompressBlock emit incompressible input as literals
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress decodes an LZ4 block of unknown output size.
//
// It starts with four times the input size and doubles on a short buffer, up
// to 128 MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; ; size *= 2 {
		if size > maxLZ4Output {
			size = maxLZ4Output
		}
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || size == maxLZ4Output {
			return nil, err
		}
	}
}

// DecompressTo decodes into the full capacity of dst, which must be at least
// the decompressed size.
func (c LZ4Compressor) DecompressTo(dst, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst[:0], nil
	}

	n, err := lz4.UncompressBlock(data, dst[:cap(dst)])
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
