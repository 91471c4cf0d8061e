// Package compress provides the block codecs used to shrink flat event frames.
//
// A flat event is mostly float32 track parameters and cluster coordinates,
// which compress moderately; trigger names and zeroed covariance entries
// compress well. The codec is chosen per frame and recorded in the frame
// header, so readers never need to be told which one was used.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bytes are stored as they are.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Encoders and
//     decoders are pooled.
//   - S2 (format.CompressionS2): fast, Snappy-derived, better ratio than Snappy.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//   - Snappy (format.CompressionSnappy): for interoperability with readers
//     that only speak the Snappy block format.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(ev.Bytes())
//
// When the decompressed size is known in advance, as it is for frames, use
// DecompressInto with a destination of that capacity to avoid growing buffers:
//
//	raw, err := compress.DecompressInto(codec, make([]byte, 0, rawSize), packed)
//
// # Thread Safety
//
// All built-in codecs are stateless values and safe for concurrent use.
package compress
