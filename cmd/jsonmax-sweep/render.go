package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/arloliu/jsonmax/bench"
	"github.com/arloliu/jsonmax/format"
	"github.com/arloliu/jsonmax/payload"
	"github.com/arloliu/jsonmax/regression"
)

var sectionStyle = lipgloss.NewStyle().Bold(true)

// printFits prints the best latency model of each strategy. Strategies with
// fewer than two distinct sizes cannot be fitted and are skipped.
func printFits(w io.Writer, result *bench.SweepResult, strategies []format.Strategy, logger *slog.Logger) {
	fmt.Fprintln(w, sectionStyle.Render("Latency models"))

	for _, s := range strategies {
		fit, err := regression.Analyze(result.Points(s))
		if err != nil {
			logger.Warn("latency fit skipped", slog.String("strategy", s.String()), slog.Any("error", err))
			continue
		}

		best := fit.BestFit
		fmt.Fprintf(w, "  %-8s %-10s %s (R²=%.4f, RMSE=%.1f ns)\n",
			s.String()+":", best.Type, best.Formula, best.RSquared, best.RMSE)
	}
	fmt.Fprintln(w)
}

// printFootprint prints the compressed size of the last document of every
// size under each codec.
func printFootprint(w io.Writer, result *bench.SweepResult, sizes []int) error {
	headers := []string{"Size", "Document"}
	for _, ct := range payloadTypes() {
		headers = append(headers, ct.String())
	}

	rows := make([][]string, 0, len(sizes))
	for _, size := range sizes {
		doc, ok := result.Documents[size]
		if !ok {
			continue
		}

		stats, err := payload.Footprint(doc, payloadTypes()...)
		if err != nil {
			return fmt.Errorf("footprint of size %d: %w", size, err)
		}

		row := []string{strconv.Itoa(size), humanize.IBytes(uint64(doc.Len()))}
		for _, s := range stats {
			row = append(row, fmt.Sprintf("%s (%.1f%%)", humanize.IBytes(uint64(s.CompressedSize)), s.SpaceSavings()))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, sectionStyle.Render("Payload footprint"))
	fmt.Fprintln(w, t.String())

	return nil
}

func payloadTypes() []format.CompressionType {
	return []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4}
}
