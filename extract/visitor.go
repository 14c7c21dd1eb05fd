package extract

import "cmp"

// Seq is a forward-only cursor over the elements of a sequence.
type Seq[T any] interface {
	// Next decodes the next element. ok is false once the sequence is exhausted.
	Next() (v T, ok bool, err error)
}

// MaxOf folds seq into its largest element.
//
// Only the running maximum is kept, so memory use is independent of the
// sequence length. An empty sequence returns ErrNoValues; a cursor error is
// returned as-is.
func MaxOf[T cmp.Ordered](seq Seq[T]) (T, error) {
	var zero T

	best, ok, err := seq.Next()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNoValues
	}

	for {
		v, ok, err := seq.Next()
		if err != nil {
			return zero, err
		}
		if !ok {
			return best, nil
		}
		best = max(best, v)
	}
}
