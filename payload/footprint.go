package payload

import (
	"github.com/arloliu/jsonmax/compress"
	"github.com/arloliu/jsonmax/format"
)

// Footprint measures the document size under each compression type.
//
// Every codec is round-tripped, so a returned row is also proof the codec
// reproduces the document. With no types given, all built-in codecs are
// measured in compress.AllTypes order.
//
// Parameters:
//   - doc: Document to measure
//   - types: Compression types to report
//
// Returns:
//   - []compress.CompressionStats: One row per type, in the given order
//   - error: Unknown compression type or codec failure
func Footprint(doc *Document, types ...format.CompressionType) ([]compress.CompressionStats, error) {
	if len(types) == 0 {
		types = compress.AllTypes
	}

	data := []byte(doc.Text)
	stats := make([]compress.CompressionStats, 0, len(types))
	for _, ct := range types {
		codec, err := compress.GetCodec(ct)
		if err != nil {
			return nil, err
		}

		s, err := compress.Measure(codec, ct, data)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}
