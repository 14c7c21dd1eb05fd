package extract

import (
	"cmp"
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

const (
	// IDField is the informational document id.
	IDField = "id"
	// ValuesField is the array the maximum is taken over.
	ValuesField = "values"
)

var streamAPI = jsoniter.Config{}.Froze()

// ElementReader decodes one array element at the iterator position.
// Decoding errors are reported through the iterator's Error field.
type ElementReader[T any] func(iter *jsoniter.Iterator) T

// iterSeq adapts a json-iterator array cursor to Seq.
type iterSeq[T any] struct {
	iter *jsoniter.Iterator
	read ElementReader[T]
}

func (s *iterSeq[T]) Next() (T, bool, error) {
	var zero T

	if !s.iter.ReadArray() {
		if s.iter.Error != nil {
			return zero, false, malformed("%s: %v", ValuesField, s.iter.Error)
		}

		return zero, false, nil
	}

	v := s.read(s.iter)
	if s.iter.Error != nil {
		return zero, false, malformed("%s: %v", ValuesField, s.iter.Error)
	}

	return v, true, nil
}

// StreamMax returns the largest uint64 in the values array of doc without
// materializing the array.
//
// Returns:
//   - uint64: The maximum element
//   - error: ErrNoValues for an empty array, ErrMalformed for anything else
func StreamMax(doc string) (uint64, error) {
	return StreamMaxOf[uint64](doc, (*jsoniter.Iterator).ReadUint64)
}

// StreamMaxOf is the generic form of StreamMax: read decodes each element and
// the fold runs over any ordered type.
//
// Example:
//
//	maxInt, err := extract.StreamMaxOf[int64](doc, (*jsoniter.Iterator).ReadInt64)
func StreamMaxOf[T cmp.Ordered](doc string, read ElementReader[T]) (T, error) {
	var (
		zero       T
		result     T
		seenID     bool
		seenValues bool
		fieldErr   error
	)

	iter := streamAPI.BorrowIterator([]byte(doc))
	defer streamAPI.ReturnIterator(iter)

	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
			return zero, malformed("%v", iter.Error)
		}

		return zero, malformed("expected object")
	}

	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case IDField:
			if seenID {
				fieldErr = malformed("duplicate field %q", IDField)
				return false
			}
			seenID = true
			if it.WhatIsNext() != jsoniter.StringValue {
				fieldErr = malformed("field %q: expected string", IDField)
				return false
			}
			_ = it.ReadString()
		case ValuesField:
			if seenValues {
				fieldErr = malformed("duplicate field %q", ValuesField)
				return false
			}
			seenValues = true
			if it.WhatIsNext() != jsoniter.ArrayValue {
				fieldErr = malformed("field %q: expected array", ValuesField)
				return false
			}
			result, fieldErr = MaxOf[T](&iterSeq[T]{iter: it, read: read})
			if fieldErr != nil {
				return false
			}
		default:
			it.Skip()
		}

		return it.Error == nil
	})

	if fieldErr != nil {
		return zero, fieldErr
	}
	if iter.Error != nil {
		return zero, malformed("%v", iter.Error)
	}
	if !seenID {
		return zero, malformed("missing field %q", IDField)
	}
	if !seenValues {
		return zero, malformed("missing field %q", ValuesField)
	}

	// only whitespace may follow the object
	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		return zero, malformed("trailing characters after document")
	}

	return result, nil
}
