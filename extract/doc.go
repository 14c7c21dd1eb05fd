// Package extract computes the maximum of the "values" array of a benchmark
// document using interchangeable strategies.
//
// # Strategies
//
//   - StreamMax (format.StrategyStream, report column "Custom"): walks the
//     document with a json-iterator cursor and folds the array element by
//     element through the generic Seq visitor. Working memory does not grow
//     with the array length.
//   - WholeMax (format.StrategyWhole, report column "Whole"): parses the whole
//     document into a generic tree (map[string]any / []any / json.Number) and
//     scans the array afterwards. Memory grows linearly with the array.
//   - ScanMax (format.StrategyScan): locates the array with a gjson path query
//     and folds the raw elements without building a tree.
//
// # Known Deviation
//
// WholeMax seeds its running maximum with zero instead of the first element.
// An empty array therefore yields 0 rather than ErrNoValues. For the
// non-negative domain the benchmark generates this never changes a non-empty
// result, but the two paths are not interchangeable on empty input.
//
// # Schema
//
// StreamMax requires both "id" (a string, otherwise unused) and "values"
// (an array of uint64 literals), rejects duplicate fields and trailing data,
// and skips unknown fields. WholeMax and ScanMax only look at "values".
package extract
