// Package compress provides the codecs used to measure the wire footprint of
// generated JSON payloads.
//
// A benchmark document is plain text: an id string and thousands of decimal
// uint64 literals. How well that text compresses tells how much a streaming
// consumer would actually read off the wire, so the sweep tool reports the
// document size under each codec next to the latency numbers.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): passthrough, the baseline size
//   - Zstd (format.CompressionZstd): best ratio, klauspost/compress/zstd
//   - S2 (format.CompressionS2): balanced, klauspost/compress/s2
//   - LZ4 (format.CompressionLZ4): fastest, pierrec/lz4 block format
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stats, err := compress.Measure(codec, format.CompressionZstd, []byte(doc.Text))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d -> %d bytes (%.1f%% saved)\n",
//	    stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool encoders and
// are safe for concurrent use.
package compress
