package extract

import (
	"fmt"

	"github.com/arloliu/jsonmax/format"
	"github.com/arloliu/jsonmax/internal/options"
)

// Func extracts the maximum of the values array from doc.
type Func func(doc string) (uint64, error)

type config struct {
	parser format.TreeParser
}

// Option configures New.
type Option = options.Option[*config]

// WithTreeParser selects the tree backend used by format.StrategyWhole.
// Other strategies ignore it.
//
// Backends differ in how strictly they read number literals: ParserGoccy
// accepts a leading zero such as 01 and reads it as 1, where the other
// backends and StreamMax reject the document.
func WithTreeParser(p format.TreeParser) Option {
	return options.New(func(c *config) error {
		if _, ok := treeDecoders[p]; !ok {
			return fmt.Errorf("extract: unsupported tree parser: %s", p)
		}
		c.parser = p

		return nil
	})
}

// New returns the extractor implementing strategy s.
//
// Options are resolved once here so the returned Func carries no per-call
// configuration cost.
func New(s format.Strategy, opts ...Option) (Func, error) {
	cfg := &config{parser: format.ParserStd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch s {
	case format.StrategyStream:
		return StreamMax, nil
	case format.StrategyWhole:
		decode := treeDecoders[cfg.parser]
		return func(doc string) (uint64, error) {
			return wholeMax(doc, decode)
		}, nil
	case format.StrategyScan:
		return ScanMax, nil
	default:
		return nil, fmt.Errorf("extract: unsupported strategy: %s", s)
	}
}
