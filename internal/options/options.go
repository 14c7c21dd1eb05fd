// Package options implements the generic functional option pattern shared by
// the generator, extractor and sweep configurations.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option that always succeeds.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
