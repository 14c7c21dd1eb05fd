package bench

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasure_CallsExactlyIterations(t *testing.T) {
	calls := 0
	mean, err := Measure(func() (uint64, error) {
		calls++
		return uint64(calls), nil
	})
	require.NoError(t, err)
	require.Equal(t, Iterations, calls)
	require.GreaterOrEqual(t, mean, 0.0)
}

func TestMeasureN(t *testing.T) {
	calls := 0
	mean, err := MeasureN(func() (uint64, error) {
		calls++
		return 0, nil
	}, 17)
	require.NoError(t, err)
	require.Equal(t, 17, calls)
	require.GreaterOrEqual(t, mean, 0.0)
}

func TestMeasureN_StopsAtFirstError(t *testing.T) {
	failure := errors.New("boom")
	calls := 0
	_, err := MeasureN(func() (uint64, error) {
		calls++
		if calls == 3 {
			return 0, failure
		}
		return 1, nil
	}, 100)
	require.ErrorIs(t, err, failure)
	require.Equal(t, 3, calls)
	require.Contains(t, err.Error(), "iteration 2")
}

func TestMeasureN_InvalidIterations(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := MeasureN(func() (uint64, error) { return 0, nil }, n)
		require.ErrorIs(t, err, ErrInvalidIterations)
	}
}
