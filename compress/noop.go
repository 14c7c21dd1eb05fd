package compress

// NoOpCompressor passes data through unchanged. It provides the baseline row
// of a footprint report.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new passthrough codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
