// Command jsonmax measures the streaming and whole-document max extractors
// against one generated document and prints the mean latencies to stderr:
//
//	$ jsonmax --json-size 1000
//	Size,Custom,Whole
//	1000,40213.5,98117.25
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/jsonmax/bench"
	"github.com/arloliu/jsonmax/payload"
)

var exit = os.Exit

func main() {
	logger := newLogger(os.Stderr)

	if err := run(os.Args[1:], os.Stderr); err != nil {
		logger.Error("benchmark failed", slog.Any("error", err))
		exit(1)
	}
}

// newLogger writes to stderr and stays quiet below warn, so a successful run
// prints nothing but the report.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func run(args []string, stderr io.Writer) error {
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "jsonmax --json-size N",
		Short: "Compare streaming and whole-document JSON max extraction",
		Long: `Generates a JSON document whose "values" array holds N-1 random uint64
numbers, measures the mean latency of the streaming ("Custom") and
whole-document ("Whole") extractors over 1000 calls each, and prints
"Size,Custom,Whole" followed by the measured row to stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 1 {
				return fmt.Errorf("--json-size: %w: got %d", payload.ErrInvalidSize, size)
			}

			return benchmark(size, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	cmd.Flags().IntVar(&size, "json-size", 0, "requested length of the values array (N-1 values are generated)")
	_ = cmd.MarkFlagRequired("json-size")

	return cmd
}

func benchmark(size int, w io.Writer) error {
	runner, err := bench.NewRunner()
	if err != nil {
		return err
	}

	report, _, err := runner.RunSize(size)
	if err != nil {
		return err
	}

	if _, err := report.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
