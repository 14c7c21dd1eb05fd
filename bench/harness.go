package bench

import (
	"errors"
	"fmt"
	"time"
)

// Iterations is the number of calls Measure averages over.
const Iterations = 1000

// ErrInvalidIterations is returned when the iteration count is not positive.
var ErrInvalidIterations = errors.New("bench: iterations must be positive")

// Measure calls fn Iterations times and returns the mean latency in
// nanoseconds.
//
// Calls run sequentially with no warm-up and no outlier rejection. The result
// of fn is discarded; the first error aborts the measurement.
func Measure(fn func() (uint64, error)) (float64, error) {
	return MeasureN(fn, Iterations)
}

// MeasureN is Measure with a caller-chosen iteration count.
func MeasureN(fn func() (uint64, error), n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidIterations, n)
	}

	var total time.Duration
	for i := range n {
		start := time.Now()
		_, err := fn()
		total += time.Since(start)

		if err != nil {
			return 0, fmt.Errorf("iteration %d: %w", i, err)
		}
	}

	return float64(total.Nanoseconds()) / float64(n), nil
}
