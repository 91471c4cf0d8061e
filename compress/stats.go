package compress

import (
	"time"

	"github.com/arloliu/flatesd/format"
)

// CompressionStats describes one compression of a block.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
	Duration       time.Duration
}

// CompressionRatio returns compressed size over original size, or 0 for an
// empty original. Values below 1 mean the codec saved space.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the built-in codec for algorithm and reports
// the result. The compressed bytes are discarded.
func Measure(algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(algorithm)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	packed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, err
	}

	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(packed)),
		Duration:       time.Since(start),
	}, nil
}
