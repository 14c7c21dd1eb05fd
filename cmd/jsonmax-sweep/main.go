// Command jsonmax-sweep runs the extraction benchmark over several document
// sizes, averages repeated runs, fits latency-versus-size models and
// optionally reports the payload footprint under each compression codec.
//
// Every flag can also be set through a JSONMAX_SWEEP_* environment variable
// (e.g. JSONMAX_SWEEP_RUNS=3) or a YAML file passed with --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/jsonmax/bench"
	"github.com/arloliu/jsonmax/format"
)

const envPrefix = "JSONMAX_SWEEP"

var exit = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("sweep failed", slog.Any("error", err))
		stop()
		exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

// runOptions holds the settings that are not part of bench.SweepConfig.
type runOptions struct {
	output    string
	footprint bool
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string

	defaults := bench.DefaultSweepConfig()

	cmd := &cobra.Command{
		Use:   "jsonmax-sweep",
		Short: "Sweep the JSON max extraction benchmark over several sizes",
		Long: `Measures the extraction strategies for every requested size, repeating each
size --runs times with a fresh document and pausing between runs. Prints the
averaged results as a table, the best latency model per strategy, and
optionally the payload footprint under each compression codec.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}

			cfg, opts, err := sweepConfig(v)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			cfg.Logger = logger

			return sweep(cmd.Context(), cfg, opts, stdout, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.IntSlice("sizes", defaults.Sizes, "document sizes to measure")
	flags.Int("runs", defaults.Runs, "fresh documents measured per size")
	flags.Duration("pause", defaults.Pause, "idle time between runs")
	flags.Int("iterations", bench.Iterations, "extractor calls per measurement")
	flags.StringSlice("strategies", []string{"Custom", "Whole"}, "strategies to measure (Custom, Whole, Scan)")
	flags.String("parser", format.ParserStd.String(), "tree backend of the Whole strategy (Std, Jsoniter, Goccy, Sonic)")
	flags.StringP("output", "o", "", "write the averaged results as CSV to this file")
	flags.Bool("footprint", false, "report the payload size under each compression codec")
	flags.BoolP("verbose", "v", false, "log every run")

	_ = v.BindPFlags(flags)

	return cmd
}

// loadConfig wires environment variables and the optional config file into v.
// Flags set on the command line keep precedence.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	return nil
}

func sweepConfig(v *viper.Viper) (bench.SweepConfig, runOptions, error) {
	var cfg bench.SweepConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, runOptions{}, fmt.Errorf("decode config: %w", err)
	}

	for _, name := range splitList(v.GetStringSlice("strategies")) {
		s, ok := format.ParseStrategy(name)
		if !ok {
			return cfg, runOptions{}, fmt.Errorf("unknown strategy %q", name)
		}
		cfg.Strategies = append(cfg.Strategies, s)
	}
	if len(cfg.Strategies) == 0 {
		return cfg, runOptions{}, errors.New("at least one strategy is required")
	}

	parser, ok := format.ParseTreeParser(v.GetString("parser"))
	if !ok {
		return cfg, runOptions{}, fmt.Errorf("unknown tree parser %q", v.GetString("parser"))
	}
	cfg.Parser = parser

	if err := cfg.Validate(); err != nil {
		return cfg, runOptions{}, err
	}

	opts := runOptions{
		output:    v.GetString("output"),
		footprint: v.GetBool("footprint"),
		verbose:   v.GetBool("verbose"),
	}

	return cfg, opts, nil
}

// splitList flattens comma-separated entries; list values coming from the
// environment arrive as a single string.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

func sweep(ctx context.Context, cfg bench.SweepConfig, opts runOptions, stdout io.Writer, logger *slog.Logger) error {
	logger.Info("sweep started",
		slog.Any("sizes", cfg.Sizes),
		slog.Int("runs", cfg.Runs),
		slog.Duration("pause", cfg.Pause),
		slog.String("parser", cfg.Parser.String()))

	result, err := bench.Sweep(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, bench.RenderTable(result.Reports))

	if opts.output != "" {
		if err := exportCSV(opts.output, result.Reports); err != nil {
			return err
		}
		logger.Info("results written", slog.String("file", opts.output))
	}

	printFits(stdout, result, cfg.Strategies, logger)

	if opts.footprint {
		if err := printFootprint(stdout, result, cfg.Sizes); err != nil {
			return err
		}
	}

	return nil
}

func exportCSV(path string, reports []bench.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := bench.WriteCSV(f, reports); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
