package compress

// NoOpCompressor stores blocks unchanged.
type NoOpCompressor struct{}

var (
	_ Codec             = (*NoOpCompressor)(nil)
	_ SizedDecompressor = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates a codec that passes data through.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself.
//
// Note: the result aliases the input. Callers that keep it must not modify
// data afterwards.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result aliases the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressTo copies data into dst.
func (c NoOpCompressor) DecompressTo(dst, data []byte) ([]byte, error) {
	return append(dst[:0], data...), nil
}
