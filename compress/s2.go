package compress

import "github.com/klauspost/compress/s2"

// S2Compressor reports the S2 size of a document.
//
// Documents are long runs of digits and separators, where the "better" S2
// encoder finds noticeably more matches than the default one at a small
// speed cost. The footprint table reports that size.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes a document as one S2 block. An empty document stays empty.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, s2.MaxEncodedLen(len(data)))

	return s2.EncodeBetter(dst, data), nil
}

// Decompress restores a block written by Compress. The decoded length is
// stored in the block header, so the output is allocated once.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, n), data)
}
