package compress

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/jsonmax/format"
)

// ErrRoundTrip is returned by Measure when a codec does not reproduce its input.
var ErrRoundTrip = errors.New("compress: round trip mismatch")

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data.
	// The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original bytes of data.
	// It returns an error if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses the result and verifies it
// matches the input.
//
// Parameters:
//   - codec: Codec to exercise
//   - algorithm: Compression type recorded in the returned stats
//   - data: Payload bytes
//
// Returns:
//   - CompressionStats: Sizes and timings of the round trip
//   - error: Codec error, or ErrRoundTrip if the output differs from data
func Measure(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}
	if !bytes.Equal(restored, data) {
		return stats, fmt.Errorf("%s: %w", algorithm, ErrRoundTrip)
	}

	return stats, nil
}

// CreateCodec creates a new Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression: %s", compressionType)
	}
}

var builtinCodecs = newBuiltinCodecs()

func newBuiltinCodecs() map[format.CompressionType]Codec {
	codecs := make(map[format.CompressionType]Codec, len(AllTypes))
	for _, ct := range AllTypes {
		codec, err := CreateCodec(ct)
		if err != nil {
			panic(err)
		}
		codecs[ct] = codec
	}

	return codecs
}

// AllTypes lists the built-in compression types in report order.
var AllTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
