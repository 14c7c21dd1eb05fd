package extract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanMax(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want uint64
	}{
		{"digits of pi", `{"id":"x","values":[3,1,4,1,5,9,2,6]}`, 9},
		{"single", `{"values":[7]}`, 7},
		{"all zero", `{"values":[0,0]}`, 0},
		{"uint64 max", `{"values":[18446744073709551615,1]}`, math.MaxUint64},
		{"pretty printed", "{\n  \"id\": \"x\",\n  \"values\": [\n    4,\n    12\n  ]\n}", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanMax(tt.doc)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScanMax_EmptyValues(t *testing.T) {
	_, err := ScanMax(`{"id":"x","values":[]}`)
	require.ErrorIs(t, err, ErrNoValues)
}

func TestScanMax_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing values", `{"id":"x"}`},
		{"values not array", `{"values":"1,2"}`},
		{"string element", `{"values":[1,"2"]}`},
		{"negative element", `{"values":[1,-2]}`},
		{"float element", `{"values":[1.5]}`},
		{"overflow", `{"values":[18446744073709551616]}`},
		{"null element", `{"values":[null]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanMax(tt.doc)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}
