package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValues is returned when the values array is empty.
	ErrNoValues = errors.New("extract: no values in seq")
	// ErrMalformed wraps every parse, schema and type error.
	ErrMalformed = errors.New("extract: malformed document")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
