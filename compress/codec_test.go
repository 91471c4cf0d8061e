package compress

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatesd/errs"
	"github.com/arloliu/flatesd/format"
)

// eventLike produces bytes shaped like a flat event payload: runs of small
// float32 values with zeroed covariance gaps.
func eventLike(size int) []byte {
	rng := rand.New(rand.NewSource(int64(size)))
	b := make([]byte, size)
	for i := 0; i+4 <= size; i += 4 {
		if (i/4)%8 < 3 {
			continue
		}
		b[i] = byte(rng.Intn(256))
		b[i+1] = byte(rng.Intn(16))
		b[i+2] = 0x80
		b[i+3] = 0x3F
	}

	return b
}

func getAllCodecs() map[string]Codec {
	codecs := make(map[string]Codec)
	for _, ct := range Types() {
		codec, err := GetCodec(ct)
		if err != nil {
			panic(err)
		}
		codecs[ct.String()] = codec
	}

	return codecs
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range Types() {
		codec, err := CreateCodec(ct, "frame")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(99), "frame")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Contains(t, err.Error(), "frame")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			packed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, packed)

			raw, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Empty(t, raw)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 96, 1000, 64 * 1024, 1 << 20}

	for name, codec := range getAllCodecs() {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s/%d", name, size), func(t *testing.T) {
				data := eventLike(size)

				packed, err := codec.Compress(data)
				require.NoError(t, err)

				raw, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, data, raw)

				sized, err := DecompressInto(codec, make([]byte, 0, size), packed)
				require.NoError(t, err)
				require.Equal(t, data, sized)
			})
		}
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xFF, 0x00, 0xAB}, 50)

	for name, codec := range getAllCodecs() {
		if name == format.CompressionNone.String() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := eventLike(32 * 1024)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)
			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					packed, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					raw, err := codec.Decompress(packed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(data, raw) {
						errCh <- fmt.Errorf("%s: round trip mismatch", name)
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestNoOpCompressor_Aliases(t *testing.T) {
	data := []byte("flat")
	codec := NewNoOpCompressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &packed[0])

	dst := make([]byte, 0, 8)
	raw, err := codec.DecompressTo(dst, packed)
	require.NoError(t, err)
	require.Equal(t, data, raw)
	require.NotSame(t, &data[0], &raw[0])
}

func TestLZ4Compressor_LargeExpansion(t *testing.T) {
	// compresses far beyond the initial 4x guess of Decompress
	data := make([]byte, 1<<20)
	codec := NewLZ4Compressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(packed)*4, len(data))

	raw, err := codec.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, raw)
}

func TestLZ4Compressor_Incompressible(t *testing.T) {
	data := make([]byte, 4096)
	rand.New(rand.NewSource(7)).Read(data)
	codec := NewLZ4Compressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.NotEmpty(t, packed)
	require.LessOrEqual(t, len(packed), lz4.CompressBlockBound(len(data)))

	raw, err := codec.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, raw)

	dst, err := DecompressInto(codec, make([]byte, 0, len(data)), packed)
	require.NoError(t, err)
	require.Equal(t, data, dst)
}

func TestCompressionStats(t *testing.T) {
	s := CompressionStats{OriginalSize: 200, CompressedSize: 50}
	require.InDelta(t, 0.25, s.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())
	require.Zero(t, CompressionStats{}.SpaceSavings())

	data := eventLike(16 * 1024)
	stats, err := Measure(format.CompressionZstd, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Less(t, stats.CompressedSize, stats.OriginalSize)

	_, err = Measure(format.CompressionType(42), data)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}
