// Package bench measures extraction strategies against generated documents.
//
// The harness (Measure) calls an extractor a fixed number of times and
// reports the mean wall-clock latency in nanoseconds. A Runner measures
// several strategies against one document and produces a Report, which
// renders as the two-line CSV the jsonmax driver prints:
//
//	Size,Custom,Whole
//	1000,40213.5,98117.25
//
// Sweep repeats this over several sizes and runs, averaging the per-run means
// and keeping every sample for regression fitting.
package bench
