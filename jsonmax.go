// Package jsonmax benchmarks two ways of extracting the maximum of a large
// JSON integer array.
//
// The streaming strategy folds the array while it is being parsed and keeps
// only the running maximum. The whole-document strategy parses everything
// into a generic tree first and scans the array afterwards. Comparing their
// mean latency across document sizes shows what streaming buys.
//
// # Basic Usage
//
// Generate a document and extract its maximum:
//
//	import "github.com/arloliu/jsonmax"
//
//	doc, _ := jsonmax.Generate(1000) // 999 random uint64 values
//	custom, err := jsonmax.StreamMax(doc.Text)
//	whole, err := jsonmax.WholeMax(doc.Text)
//
// Measure both strategies and print the driver report:
//
//	report, err := jsonmax.Benchmark(1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteTo(os.Stderr)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. Use the
// extract, payload, bench and regression packages directly for fine-grained
// control (tree backends, sweeps, seeded generation, latency models).
package jsonmax

import (
	"github.com/arloliu/jsonmax/bench"
	"github.com/arloliu/jsonmax/extract"
	"github.com/arloliu/jsonmax/internal/hash"
	"github.com/arloliu/jsonmax/payload"
)

// Generate renders a benchmark document for the requested size. The values
// array holds size-1 random elements.
//
// Parameters:
//   - size: Requested size N (must be >= 1)
//   - opts: Generator options such as payload.WithSource
//
// Returns:
//   - *payload.Document: The rendered document
//   - error: payload.ErrInvalidSize if size < 1
func Generate(size int, opts ...payload.Option) (*payload.Document, error) {
	return payload.Generate(size, opts...)
}

// StreamMax extracts the maximum without materializing the array.
// An empty array yields extract.ErrNoValues.
func StreamMax(doc string) (uint64, error) {
	return extract.StreamMax(doc)
}

// WholeMax extracts the maximum after parsing the whole document into a tree.
// An empty array yields 0.
func WholeMax(doc string) (uint64, error) {
	return extract.WholeMax(doc)
}

// ScanMax extracts the maximum with a path query over the raw document.
func ScanMax(doc string) (uint64, error) {
	return extract.ScanMax(doc)
}

// Benchmark generates one document of the given size and measures the
// streaming and whole-document strategies against it, bench.Iterations calls
// each.
//
// Returns:
//   - *bench.Report: Mean latency per strategy ("Custom", "Whole")
//   - error: Generation or extraction error; a size of 1 fails because the
//     streaming strategy rejects the empty array
func Benchmark(size int, opts ...payload.Option) (*bench.Report, error) {
	runner, err := bench.NewRunner()
	if err != nil {
		return nil, err
	}

	report, _, err := runner.RunSize(size, opts...)

	return report, err
}

// Fingerprint returns the xxHash64 of a document, used to tell payloads apart
// in sweep logs.
func Fingerprint(doc string) uint64 {
	return hash.Fingerprint(doc)
}
