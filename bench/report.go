package bench

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/jsonmax/format"
)

// Result is the mean latency of one strategy.
type Result struct {
	Strategy format.Strategy
	MeanNs   float64
}

// Report holds the measured means of every strategy for one document size.
type Report struct {
	// Size is the requested document size.
	Size int
	// Results are ordered as the strategies were measured.
	Results []Result
}

// Mean returns the mean latency recorded for s.
func (r *Report) Mean(s format.Strategy) (float64, bool) {
	for _, res := range r.Results {
		if res.Strategy == s {
			return res.MeanNs, true
		}
	}

	return 0, false
}

// Strategies returns the measured strategies in column order.
func (r *Report) Strategies() []format.Strategy {
	out := make([]format.Strategy, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Strategy
	}

	return out
}

// Header returns the CSV header line, e.g. "Size,Custom,Whole".
func (r *Report) Header() string {
	var sb strings.Builder
	sb.WriteString("Size")
	for _, res := range r.Results {
		sb.WriteByte(',')
		sb.WriteString(res.Strategy.String())
	}

	return sb.String()
}

// Row returns the CSV data line, e.g. "1000,40213.5,98117.25".
func (r *Report) Row() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Size))
	for _, res := range r.Results {
		sb.WriteByte(',')
		sb.WriteString(FormatMean(res.MeanNs))
	}

	return sb.String()
}

// WriteTo writes the header and data lines to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Header()+"\n"+r.Row()+"\n")

	return int64(n), err
}

// FormatMean renders a mean in its shortest exact decimal form.
func FormatMean(ns float64) string {
	return strconv.FormatFloat(ns, 'f', -1, 64)
}

// WriteCSV writes one header followed by a row per report.
// Every report must carry the same strategy columns.
func WriteCSV(w io.Writer, reports []Report) error {
	if len(reports) == 0 {
		return errors.New("bench: no reports to write")
	}

	columns := reports[0].Strategies()
	if _, err := io.WriteString(w, reports[0].Header()+"\n"); err != nil {
		return err
	}

	for i := range reports {
		if !slices.Equal(reports[i].Strategies(), columns) {
			return fmt.Errorf("bench: report for size %d has mismatched columns", reports[i].Size)
		}
		if _, err := io.WriteString(w, reports[i].Row()+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// averageReports folds repeated reports for one size into a single report
// of mean latencies. All reports must share the same columns.
func averageReports(runs []Report) (Report, error) {
	if len(runs) == 0 {
		return Report{}, errors.New("bench: no runs to average")
	}

	avg := Report{
		Size:    runs[0].Size,
		Results: slices.Clone(runs[0].Results),
	}
	for i := range avg.Results {
		avg.Results[i].MeanNs = 0
	}

	for _, run := range runs {
		if run.Size != avg.Size || !slices.Equal(run.Strategies(), avg.Strategies()) {
			return Report{}, fmt.Errorf("bench: cannot average reports for size %d and %d", avg.Size, run.Size)
		}
		for i, res := range run.Results {
			avg.Results[i].MeanNs += res.MeanNs
		}
	}

	for i := range avg.Results {
		avg.Results[i].MeanNs /= float64(len(runs))
	}

	return avg, nil
}
