package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sliceSeq[T any] struct {
	items []T
	pos   int
	// failAt makes Next fail when pos reaches it; negative disables.
	failAt int
}

func newSliceSeq[T any](items ...T) *sliceSeq[T] {
	return &sliceSeq[T]{items: items, failAt: -1}
}

func (s *sliceSeq[T]) Next() (T, bool, error) {
	var zero T
	if s.pos == s.failAt {
		return zero, false, errors.New("cursor failure")
	}
	if s.pos >= len(s.items) {
		return zero, false, nil
	}
	v := s.items[s.pos]
	s.pos++

	return v, true, nil
}

func TestMaxOf(t *testing.T) {
	t.Run("uint64", func(t *testing.T) {
		got, err := MaxOf[uint64](newSliceSeq[uint64](3, 1, 4, 1, 5, 9, 2, 6))
		require.NoError(t, err)
		require.Equal(t, uint64(9), got)
	})

	t.Run("single element", func(t *testing.T) {
		got, err := MaxOf[uint64](newSliceSeq[uint64](42))
		require.NoError(t, err)
		require.Equal(t, uint64(42), got)
	})

	t.Run("negative ints", func(t *testing.T) {
		got, err := MaxOf[int](newSliceSeq(-7, -3, -12))
		require.NoError(t, err)
		require.Equal(t, -3, got)
	})

	t.Run("strings", func(t *testing.T) {
		got, err := MaxOf[string](newSliceSeq("pear", "zucchini", "apple"))
		require.NoError(t, err)
		require.Equal(t, "zucchini", got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := MaxOf[uint64](newSliceSeq[uint64]())
		require.ErrorIs(t, err, ErrNoValues)
	})
}

func TestMaxOf_CursorError(t *testing.T) {
	for _, failAt := range []int{0, 1, 3} {
		seq := newSliceSeq[uint64](1, 2, 3, 4)
		seq.failAt = failAt

		_, err := MaxOf[uint64](seq)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoValues)
	}
}

func TestMaxOf_ConsumesWholeSequence(t *testing.T) {
	seq := newSliceSeq[uint64](5, 4, 3, 2, 1)
	got, err := MaxOf[uint64](seq)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got)
	require.Equal(t, 5, seq.pos)
}
