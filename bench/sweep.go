package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/arloliu/jsonmax/format"
	"github.com/arloliu/jsonmax/payload"
	"github.com/arloliu/jsonmax/regression"
)

// DefaultSizes are the sizes of the historical comparison script.
var DefaultSizes = []int{10, 100, 1000, 5000}

const (
	DefaultRuns  = 10                     // DefaultRuns is the number of runs per size.
	DefaultPause = 500 * time.Millisecond // DefaultPause separates consecutive runs.
)

// SweepConfig describes a size sweep. The mapstructure tags let commands load
// it from flags, environment and config files.
type SweepConfig struct {
	// Sizes are the requested document sizes, each >= 1.
	Sizes []int `mapstructure:"sizes"`
	// Runs is the number of fresh documents measured per size.
	Runs int `mapstructure:"runs"`
	// Pause is the idle time between runs so the machine settles.
	Pause time.Duration `mapstructure:"pause"`
	// Iterations per measurement; 0 means Iterations.
	Iterations int `mapstructure:"iterations"`
	// Strategies are the measured columns; empty means DefaultStrategies.
	Strategies []format.Strategy `mapstructure:"-"`
	// Parser is the whole-document tree backend; 0 means format.ParserStd.
	Parser format.TreeParser `mapstructure:"-"`
	// Source seeds document generation; nil uses the process-wide source.
	Source rand.Source `mapstructure:"-"`
	// Logger receives progress at debug level; nil discards it.
	Logger *slog.Logger `mapstructure:"-"`
}

// DefaultSweepConfig returns the historical sweep: sizes 10..5000, ten runs,
// half a second apart.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Sizes: append([]int(nil), DefaultSizes...),
		Runs:  DefaultRuns,
		Pause: DefaultPause,
	}
}

// Validate checks the sweep parameters.
func (c *SweepConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench: sweep needs at least one size")
	}
	for _, size := range c.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: got %d", payload.ErrInvalidSize, size)
		}
	}
	if c.Runs < 1 {
		return fmt.Errorf("bench: runs must be positive, got %d", c.Runs)
	}
	if c.Pause < 0 {
		return fmt.Errorf("bench: pause must not be negative, got %s", c.Pause)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.Iterations)
	}

	return nil
}

// SweepResult is the outcome of a sweep.
type SweepResult struct {
	// Reports holds one averaged report per size, in sweep order.
	Reports []Report
	// Samples holds every individual run.
	Samples []Report
	// Documents holds the last document generated for each size.
	Documents map[int]*payload.Document
}

// Points returns every sampled (size, mean) pair of strategy s.
func (r *SweepResult) Points(s format.Strategy) []regression.Point {
	points := make([]regression.Point, 0, len(r.Samples))
	for i := range r.Samples {
		if mean, ok := r.Samples[i].Mean(s); ok {
			points = append(points, regression.Point{Size: float64(r.Samples[i].Size), Nanos: mean})
		}
	}

	return points
}

// Sweep measures every size Runs times with a fresh document each run and
// averages the per-run means. Runs are sequential and separated by Pause;
// cancelling ctx stops the sweep between runs.
func Sweep(ctx context.Context, cfg SweepConfig) (*SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runnerOpts := []RunnerOption{}
	if len(cfg.Strategies) > 0 {
		runnerOpts = append(runnerOpts, WithStrategies(cfg.Strategies...))
	}
	if cfg.Parser != 0 {
		runnerOpts = append(runnerOpts, WithTreeParser(cfg.Parser))
	}
	if cfg.Iterations > 0 {
		runnerOpts = append(runnerOpts, WithIterations(cfg.Iterations))
	}

	runner, err := NewRunner(runnerOpts...)
	if err != nil {
		return nil, err
	}

	var genOpts []payload.Option
	if cfg.Source != nil {
		genOpts = append(genOpts, payload.WithSource(cfg.Source))
	}

	result := &SweepResult{
		Reports:   make([]Report, 0, len(cfg.Sizes)),
		Samples:   make([]Report, 0, len(cfg.Sizes)*cfg.Runs),
		Documents: make(map[int]*payload.Document, len(cfg.Sizes)),
	}

	first := true
	for _, size := range cfg.Sizes {
		runs := make([]Report, 0, cfg.Runs)
		for run := range cfg.Runs {
			if !first {
				if err := pause(ctx, cfg.Pause); err != nil {
					return nil, err
				}
			}
			first = false

			report, doc, err := runner.RunSize(size, genOpts...)
			if err != nil {
				return nil, fmt.Errorf("size %d run %d: %w", size, run+1, err)
			}

			logger.Debug("sweep run finished",
				slog.Int("size", size),
				slog.Int("run", run+1),
				slog.Int("bytes", doc.Len()),
				slog.String("fingerprint", fmt.Sprintf("%016x", doc.Fingerprint)),
				slog.String("row", report.Row()))

			runs = append(runs, *report)
			result.Documents[size] = doc
		}

		avg, err := averageReports(runs)
		if err != nil {
			return nil, err
		}
		result.Reports = append(result.Reports, avg)
		result.Samples = append(result.Samples, runs...)
	}

	return result, nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
