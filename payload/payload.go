package payload

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/jsonmax/internal/hash"
	"github.com/arloliu/jsonmax/internal/options"
	"github.com/arloliu/jsonmax/internal/pool"
)

// DefaultID is the constant id field of every generated document.
const DefaultID = "demo-deserialize-max"

// ErrInvalidSize is returned when the requested document size is not positive.
var ErrInvalidSize = errors.New("payload: size must be positive")

const (
	docHeader = "{\n        \"id\": \"" + DefaultID + "\",\n        \"values\": [\n            "
	docFooter = "\n        ]\n    }"
	separator = ",\n"

	// maxUint64Digits is the decimal length of math.MaxUint64.
	maxUint64Digits = 20
)

// Document is a rendered benchmark payload.
type Document struct {
	// Text is the JSON document.
	Text string
	// Count is the number of elements in the values array.
	Count int
	// Fingerprint is the xxHash64 of Text.
	Fingerprint uint64
}

// Len returns the document size in bytes.
func (d *Document) Len() int {
	return len(d.Text)
}

type config struct {
	source rand.Source
}

// Option configures Generate.
type Option = options.Option[*config]

// WithSource sets the random source values are drawn from.
func WithSource(src rand.Source) Option {
	return options.New(func(c *config) error {
		if src == nil {
			return errors.New("payload: nil random source")
		}
		c.source = src

		return nil
	})
}

// globalSource forwards to the process-wide generator.
type globalSource struct{}

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// Generate renders a document for the requested size.
//
// The values array holds size-1 random uint64 numbers. The off-by-one is part
// of the benchmark's historical behavior and is kept so that reported sizes
// stay comparable with earlier runs.
//
// Parameters:
//   - size: Requested array length N (must be >= 1)
//   - opts: Optional configuration (see WithSource)
//
// Returns:
//   - *Document: The rendered document
//   - error: ErrInvalidSize for size < 1, or an option error
//
// Example:
//
//	doc, err := payload.Generate(1000)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.Count) // 999
func Generate(size int, opts ...Option) (*Document, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cfg := &config{source: globalSource{}}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	count := size - 1
	next := func(int) uint64 { return cfg.source.Uint64() }

	return render(count, next), nil
}

// FromValues renders a document holding exactly the given values.
func FromValues(values []uint64) *Document {
	return render(len(values), func(i int) uint64 { return values[i] })
}

func render(count int, value func(i int) uint64) *Document {
	bb := pool.GetRenderBuffer()
	defer pool.PutRenderBuffer(bb)

	bb.Grow(len(docHeader) + len(docFooter) + count*(maxUint64Digits+len(separator)))
	bb.WriteString(docHeader)
	for i := range count {
		if i > 0 {
			bb.WriteString(separator)
		}
		bb.WriteUint(value(i))
	}
	bb.WriteString(docFooter)

	text := bb.String()

	return &Document{
		Text:        text,
		Count:       count,
		Fingerprint: hash.Fingerprint(text),
	}
}
