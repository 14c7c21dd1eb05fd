package bench

import (
	"errors"
	"fmt"

	"github.com/arloliu/jsonmax/extract"
	"github.com/arloliu/jsonmax/format"
	"github.com/arloliu/jsonmax/internal/options"
	"github.com/arloliu/jsonmax/payload"
)

// DefaultStrategies are the two columns the driver reports.
var DefaultStrategies = []format.Strategy{format.StrategyStream, format.StrategyWhole}

type runnerConfig struct {
	strategies []format.Strategy
	parser     format.TreeParser
	iterations int
}

// RunnerOption configures NewRunner.
type RunnerOption = options.Option[*runnerConfig]

// WithStrategies sets the measured strategies in column order.
func WithStrategies(strategies ...format.Strategy) RunnerOption {
	return options.New(func(c *runnerConfig) error {
		if len(strategies) == 0 {
			return errors.New("bench: at least one strategy is required")
		}
		c.strategies = append([]format.Strategy(nil), strategies...)

		return nil
	})
}

// WithTreeParser selects the tree backend of the whole-document strategy.
func WithTreeParser(p format.TreeParser) RunnerOption {
	return options.NoError(func(c *runnerConfig) {
		c.parser = p
	})
}

// WithIterations overrides the per-measurement call count (default Iterations).
func WithIterations(n int) RunnerOption {
	return options.New(func(c *runnerConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidIterations, n)
		}
		c.iterations = n

		return nil
	})
}

// Runner measures a fixed set of strategies against documents.
type Runner struct {
	strategies []format.Strategy
	extractors []extract.Func
	iterations int
}

// NewRunner resolves the configured strategies into extractors.
func NewRunner(opts ...RunnerOption) (*Runner, error) {
	cfg := &runnerConfig{
		strategies: DefaultStrategies,
		parser:     format.ParserStd,
		iterations: Iterations,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Runner{
		strategies: cfg.strategies,
		extractors: make([]extract.Func, len(cfg.strategies)),
		iterations: cfg.iterations,
	}
	for i, s := range cfg.strategies {
		fn, err := extract.New(s, extract.WithTreeParser(cfg.parser))
		if err != nil {
			return nil, err
		}
		r.extractors[i] = fn
	}

	return r, nil
}

// Strategies returns the measured strategies in column order.
func (r *Runner) Strategies() []format.Strategy {
	return append([]format.Strategy(nil), r.strategies...)
}

// Run measures every strategy against doc, labelled with the requested size.
// All strategies read the same document. The first failing strategy aborts
// the run.
func (r *Runner) Run(size int, doc *payload.Document) (*Report, error) {
	report := &Report{
		Size:    size,
		Results: make([]Result, 0, len(r.strategies)),
	}

	for i, s := range r.strategies {
		fn := r.extractors[i]
		mean, err := MeasureN(func() (uint64, error) { return fn(doc.Text) }, r.iterations)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		report.Results = append(report.Results, Result{Strategy: s, MeanNs: mean})
	}

	return report, nil
}

// RunSize generates a fresh document for size and measures it.
func (r *Runner) RunSize(size int, opts ...payload.Option) (*Report, *payload.Document, error) {
	doc, err := payload.Generate(size, opts...)
	if err != nil {
		return nil, nil, err
	}

	report, err := r.Run(size, doc)
	if err != nil {
		return nil, doc, err
	}

	return report, doc, nil
}
