package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"

	"github.com/arloliu/jsonmax/format"
)

// treeDecoder parses a complete document into a generic tree whose numbers
// are kept as literals.
type treeDecoder func(doc string) (any, error)

var (
	jsoniterTreeAPI = jsoniter.Config{UseNumber: true}.Froze()
	sonicTreeAPI    = sonic.Config{UseNumber: true}.Froze()
)

var treeDecoders = map[format.TreeParser]treeDecoder{
	format.ParserStd:      decodeStd,
	format.ParserJsoniter: decodeJsoniter,
	format.ParserGoccy:    decodeGoccy,
	format.ParserSonic:    decodeSonic,
}

func decodeStd(doc string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing characters after document")
	}

	return tree, nil
}

func decodeJsoniter(doc string) (any, error) {
	var tree any
	if err := jsoniterTreeAPI.UnmarshalFromString(doc, &tree); err != nil {
		return nil, err
	}

	return tree, nil
}

func decodeGoccy(doc string) (any, error) {
	dec := gojson.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing characters after document")
	}

	return tree, nil
}

func decodeSonic(doc string) (any, error) {
	var tree any
	if err := sonicTreeAPI.UnmarshalFromString(doc, &tree); err != nil {
		return nil, err
	}

	return tree, nil
}

// WholeMax parses doc completely with the standard library decoder and
// returns the largest element of its values array.
//
// The fold is seeded with zero, so an empty array returns 0 with a nil error.
func WholeMax(doc string) (uint64, error) {
	return wholeMax(doc, decodeStd)
}

func wholeMax(doc string, decode treeDecoder) (uint64, error) {
	tree, err := decode(doc)
	if err != nil {
		return 0, malformed("%v", err)
	}

	obj, ok := tree.(map[string]any)
	if !ok {
		return 0, malformed("expected object, got %T", tree)
	}

	raw, ok := obj[ValuesField]
	if !ok {
		return 0, malformed("missing field %q", ValuesField)
	}

	values, ok := raw.([]any)
	if !ok {
		return 0, malformed("field %q: expected array, got %T", ValuesField, raw)
	}

	var best uint64
	for i, v := range values {
		n, err := toUint64(v)
		if err != nil {
			return 0, malformed("%s[%d]: %v", ValuesField, i, err)
		}
		if n > best {
			best = n
		}
	}

	return best, nil
}

// toUint64 converts a decoded number literal. Backends differ in the concrete
// number type they produce, so anything printing as a literal is accepted.
func toUint64(v any) (uint64, error) {
	var literal string
	switch n := v.(type) {
	case json.Number:
		literal = n.String()
	case fmt.Stringer:
		literal = n.String()
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}

	return strconv.ParseUint(literal, 10, 64)
}
