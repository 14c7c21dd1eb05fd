package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/jsonmax/internal/options"
)

var (
	// ErrInsufficientData is returned when fewer than two distinct sizes are given.
	ErrInsufficientData = errors.New("regression: at least two distinct sizes are required")
	// ErrInvalidPoint is returned for non-positive sizes or non-finite values.
	ErrInvalidPoint = errors.New("regression: invalid point")
)

// Analyze fits every configured model to points and ranks them by adjusted
// R², which charges each model for its parameter count. Ranking by raw R²
// would always favor the quadratic model over the linear one it contains.
// Ties keep the configured model order.
//
// Parameters:
//   - points: Measured (size, mean ns) samples; sizes may repeat
//   - opts: Optional configuration (see WithModels)
//
// Returns:
//   - *Result: Best-fit model and all candidates, best first
//   - error: ErrInsufficientData, ErrInvalidPoint or an option error
//
// Example:
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ns := result.BestFit.Estimator.Estimate(2500)
func Analyze(points []Point, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		if p.Size <= 0 || !isFinite(p.Size) || !isFinite(p.Nanos) {
			return nil, fmt.Errorf("%w: #%d size=%v ns=%v", ErrInvalidPoint, i, p.Size, p.Nanos)
		}
		x[i] = p.Size
		y[i] = p.Nanos
	}

	sizes := distinct(x)
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, len(sizes))
	}

	return performRegression(x, y, sizes, cfg.Models)
}

// AnalyzeEach runs Analyze on every series independently, e.g. one series per
// extraction strategy.
func AnalyzeEach(series [][]Point, opts ...AnalyzeOption) ([]*Result, error) {
	if len(series) == 0 {
		return nil, errors.New("regression: no series provided")
	}

	results := make([]*Result, len(series))
	for i, points := range series {
		result, err := Analyze(points, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze series %d: %w", i, err)
		}
		results[i] = result
	}

	return results, nil
}

func performRegression(x, y, sizes []float64, types []ModelType) (*Result, error) {
	models := make([]*Model, 0, len(types))
	for _, t := range types {
		var m *Model
		switch t {
		case ModelTypeLinear:
			m = fitLinear(x, y)
		case ModelTypeLogarithmic:
			m = fitLogarithmic(x, y)
		case ModelTypePower:
			// fitted in log space
			if slices.ContainsFunc(y, func(v float64) bool { return v <= 0 }) {
				continue
			}
			m = fitPower(x, y)
		case ModelTypeQuadratic:
			m = fitQuadratic(x, y, len(sizes))
		}
		if m != nil {
			models = append(models, m)
		}
	}

	if len(models) == 0 {
		return nil, errors.New("regression: no model could be fitted")
	}

	rankModels(models)

	return &Result{
		BestFit:   models[0],
		AllModels: models,
		Sizes:     sizes,
	}, nil
}

// rankModels sorts models by adjusted R², best first.
func rankModels(models []*Model) {
	slices.SortStableFunc(models, func(a, b *Model) int {
		if a.AdjustedRSquared > b.AdjustedRSquared {
			return -1
		}
		if a.AdjustedRSquared < b.AdjustedRSquared {
			return 1
		}

		return 0
	})
}

// leastSquares returns the intercept and slope of y = a + b*x.
// Callers guarantee at least two distinct x values.
func leastSquares(x, y []float64) (a, b float64) {
	n := float64(len(x))

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n
	b = (sumXY - n*meanX*meanY) / (sumX2 - n*meanX*meanX)
	a = meanY - b*meanX

	return a, b
}

// fitLinear fits ns = a + b * n.
func fitLinear(x, y []float64) *Model {
	a, b := leastSquares(x, y)
	est := NewLinearEstimator(a, b)

	return newModel(est, x, y, fmt.Sprintf("ns = %.2f + %.4f * n", a, b))
}

// fitLogarithmic fits ns = a + b * ln(n) by regressing y on ln(x).
func fitLogarithmic(x, y []float64) *Model {
	lx := make([]float64, len(x))
	for i := range x {
		lx[i] = math.Log(x[i])
	}

	a, b := leastSquares(lx, y)
	est := NewLogarithmicEstimator(a, b)

	return newModel(est, x, y, fmt.Sprintf("ns = %.2f + %.2f * ln(n)", a, b))
}

// fitPower fits ns = a * n^b by regressing ln(y) on ln(x).
// All latencies must be positive.
func fitPower(x, y []float64) *Model {
	lx := make([]float64, len(x))
	ly := make([]float64, len(y))
	for i := range x {
		lx[i] = math.Log(x[i])
		ly[i] = math.Log(y[i])
	}

	logA, b := leastSquares(lx, ly)
	a := math.Exp(logA)
	est := NewPowerEstimator(a, b)

	return newModel(est, x, y, fmt.Sprintf("ns = %.2f * n^%.3f", a, b))
}

// fitQuadratic fits ns = a + b*n + c*n² through the normal equations.
//
// Sizes are scaled into (0, 1] before solving to keep the system well
// conditioned. With fewer than three distinct sizes, or a singular system,
// the linear fit is used with c = 0.
func fitQuadratic(x, y []float64, distinctSizes int) *Model {
	if distinctSizes < 3 {
		return linearAsQuadratic(x, y)
	}

	scale := slices.Max(x)

	var s [5]float64 // Σt^k for k = 0..4
	var r [3]float64 // Σy·t^k for k = 0..2
	for i := range x {
		t := x[i] / scale
		tk := 1.0
		for k := range 5 {
			s[k] += tk
			if k < 3 {
				r[k] += y[i] * tk
			}
			tk *= t
		}
	}

	m := [3][3]float64{
		{s[0], s[1], s[2]},
		{s[1], s[2], s[3]},
		{s[2], s[3], s[4]},
	}
	coeffs, ok := solve3(m, r)
	if !ok {
		return linearAsQuadratic(x, y)
	}

	a := coeffs[0]
	b := coeffs[1] / scale
	c := coeffs[2] / (scale * scale)
	est := NewQuadraticEstimator(a, b, c)

	return newModel(est, x, y, fmt.Sprintf("ns = %.2f + %.4f*n + %.6f*n²", a, b, c))
}

func linearAsQuadratic(x, y []float64) *Model {
	a, b := leastSquares(x, y)
	est := NewQuadraticEstimator(a, b, 0)

	return newModel(est, x, y, fmt.Sprintf("ns = %.2f + %.4f*n", a, b))
}

// solve3 solves m·v = r with Cramer's rule.
func solve3(m [3][3]float64, r [3]float64) ([3]float64, bool) {
	det := det3(m)
	if math.Abs(det) < 1e-12 {
		return [3]float64{}, false
	}

	var out [3]float64
	for col := range 3 {
		mc := m
		for row := range 3 {
			mc[row][col] = r[row]
		}
		out[col] = det3(mc) / det
	}

	return out, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// newModel evaluates est on x and fills in the goodness-of-fit metrics.
func newModel(est Estimator, x, y []float64, formula string) *Model {
	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = est.Estimate(x[i])
	}

	coeffs := est.Coefficients()
	r2 := calculateRSquared(y, predicted)

	return &Model{
		Type:             est.Type(),
		Coefficients:     coeffs,
		RSquared:         r2,
		AdjustedRSquared: calculateAdjustedRSquared(r2, len(y), len(coeffs)-1),
		RMSE:             calculateRMSE(y, predicted),
		Formula:          formula,
		Estimator:        est,
	}
}

// calculateAdjustedRSquared returns 1 - (1-R²)(n-1)/(n-p-1) for n samples
// and p predictors. A model with no residual degrees of freedom gets -Inf.
func calculateAdjustedRSquared(r2 float64, n, p int) float64 {
	dof := n - p - 1
	if dof <= 0 {
		return math.Inf(-1)
	}

	return 1 - (1-r2)*float64(n-1)/float64(dof)
}

// calculateRSquared returns 1 - SS_res/SS_tot, or 0 when y is constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE returns √(Σ(observed - predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// distinct returns the sorted unique values of xs.
func distinct(xs []float64) []float64 {
	out := slices.Clone(xs)
	slices.Sort(out)

	return slices.Compact(out)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
