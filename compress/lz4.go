package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxDocumentSize bounds decompression; the largest sweep documents are a few
// hundred KiB.
const maxDocumentSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor reports the LZ4 block size of a document, the cheapest codec
// a streaming consumer could put in front of the parser.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes a document as a single LZ4 block.
//
// Returns:
//   - []byte: Compressed block (nil for an empty document)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress restores a block written by Compress.
//
// The block carries no decoded length. Digit text rarely compresses past 4x,
// so the buffer starts there and doubles until the block fits or
// maxDocumentSize is reached.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; ; size *= 2 {
		size = min(size, maxDocumentSize)

		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || size == maxDocumentSize {
			return nil, err
		}
	}
}
