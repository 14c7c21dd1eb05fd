package regression

import (
	"errors"
	"math"
	"strings"
	"testing"
)

var sweepSizes = []float64{10, 20, 50, 100, 200, 500, 1000, 2000, 5000}

func pointsFrom(sizes []float64, f func(n float64) float64) []Point {
	points := make([]Point, len(sizes))
	for i, n := range sizes {
		points[i] = Point{Size: n, Nanos: f(n)}
	}

	return points
}

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// TestAnalyze_Linear tests that linear latency data is reproduced exactly.
func TestAnalyze_Linear(t *testing.T) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return 150 + 38*n })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.AllModels) != 4 {
		t.Fatalf("Expected 4 models, got %d", len(result.AllModels))
	}
	if result.BestFit != result.AllModels[0] {
		t.Error("BestFit should be the first model in AllModels")
	}
	if result.BestFit.RSquared < 0.999999 {
		t.Errorf("Expected near-perfect fit, got R²=%.8f (%s)", result.BestFit.RSquared, result.BestFit)
	}

	for _, m := range result.AllModels {
		if m.Type != ModelTypeLinear {
			continue
		}
		if !approxEqual(m.Coefficients[0], 150, 1e-6) || !approxEqual(m.Coefficients[1], 38, 1e-9) {
			t.Errorf("Unexpected linear coefficients: %v", m.Coefficients)
		}
	}

	if got := result.BestFit.Estimator.Estimate(3000); !approxEqual(got, 150+38*3000, 1e-6) {
		t.Errorf("Estimate(3000) = %f, want %f", got, 150.0+38*3000)
	}
}

// TestAnalyze_Power tests that power-law data selects the power model.
func TestAnalyze_Power(t *testing.T) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return 2 * math.Pow(n, 1.5) })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.BestFit.Type != ModelTypePower {
		t.Fatalf("Expected power best fit, got %s", result.BestFit)
	}

	coeffs := result.BestFit.Coefficients
	if !approxEqual(coeffs[0], 2, 1e-9) || !approxEqual(coeffs[1], 1.5, 1e-9) {
		t.Errorf("Unexpected power coefficients: %v", coeffs)
	}
}

// TestAnalyze_Logarithmic tests that logarithmic data selects the logarithmic model.
func TestAnalyze_Logarithmic(t *testing.T) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return 500 + 120*math.Log(n) })

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.BestFit.Type != ModelTypeLogarithmic {
		t.Fatalf("Expected logarithmic best fit, got %s", result.BestFit)
	}
	if result.BestFit.RMSE > 1e-6 {
		t.Errorf("Expected RMSE close to zero, got %g", result.BestFit.RMSE)
	}
}

// TestAnalyze_Quadratic tests the quadratic fit on curved data.
func TestAnalyze_Quadratic(t *testing.T) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return 1000 + 3*n + 0.01*n*n })

	result, err := Analyze(points, WithModels(ModelTypeQuadratic, ModelTypeLinear))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.AllModels) != 2 {
		t.Fatalf("Expected 2 models, got %d", len(result.AllModels))
	}
	if result.BestFit.Type != ModelTypeQuadratic {
		t.Fatalf("Expected quadratic best fit, got %s", result.BestFit)
	}

	coeffs := result.BestFit.Coefficients
	if !approxEqual(coeffs[0], 1000, 1e-6) || !approxEqual(coeffs[1], 3, 1e-6) || !approxEqual(coeffs[2], 0.01, 1e-6) {
		t.Errorf("Unexpected quadratic coefficients: %v", coeffs)
	}
}

// TestAnalyze_QuadraticFallback tests that two distinct sizes degrade to a linear fit.
func TestAnalyze_QuadraticFallback(t *testing.T) {
	points := []Point{{Size: 10, Nanos: 100}, {Size: 100, Nanos: 1000}}

	result, err := Analyze(points, WithModels(ModelTypeQuadratic))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	m := result.BestFit
	if m.Type != ModelTypeQuadratic {
		t.Fatalf("Expected quadratic model, got %s", m.Type)
	}
	if m.Coefficients[2] != 0 {
		t.Errorf("Expected c=0 for linear fallback, got %v", m.Coefficients)
	}
	if !strings.Contains(m.Formula, "ns = ") {
		t.Errorf("Unexpected formula: %s", m.Formula)
	}
}

// TestAnalyze_RepeatedSizes tests that repeated runs per size are accepted.
func TestAnalyze_RepeatedSizes(t *testing.T) {
	var points []Point
	for _, n := range []float64{10, 100, 1000} {
		points = append(points, Point{Size: n, Nanos: 10 * n}, Point{Size: n, Nanos: 10*n + 4})
	}

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.Sizes) != 3 {
		t.Fatalf("Expected 3 distinct sizes, got %v", result.Sizes)
	}
	if result.Sizes[0] != 10 || result.Sizes[2] != 1000 {
		t.Errorf("Sizes should be ascending, got %v", result.Sizes)
	}
}

// TestAnalyze_NonPositiveLatencySkipsPower tests that the log-space fit is skipped.
func TestAnalyze_NonPositiveLatencySkipsPower(t *testing.T) {
	points := []Point{{Size: 10, Nanos: 0}, {Size: 100, Nanos: 50}, {Size: 1000, Nanos: 500}}

	result, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	for _, m := range result.AllModels {
		if m.Type == ModelTypePower {
			t.Fatal("Power model should be skipped for non-positive latencies")
		}
	}
	if len(result.AllModels) != 3 {
		t.Errorf("Expected 3 models, got %d", len(result.AllModels))
	}
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   error
	}{
		{"empty", nil, ErrInsufficientData},
		{"single point", []Point{{Size: 10, Nanos: 1}}, ErrInsufficientData},
		{"single size", []Point{{Size: 10, Nanos: 1}, {Size: 10, Nanos: 2}}, ErrInsufficientData},
		{"zero size", []Point{{Size: 0, Nanos: 1}, {Size: 10, Nanos: 2}}, ErrInvalidPoint},
		{"negative size", []Point{{Size: -5, Nanos: 1}, {Size: 10, Nanos: 2}}, ErrInvalidPoint},
		{"NaN latency", []Point{{Size: 5, Nanos: math.NaN()}, {Size: 10, Nanos: 2}}, ErrInvalidPoint},
		{"Inf latency", []Point{{Size: 5, Nanos: math.Inf(1)}, {Size: 10, Nanos: 2}}, ErrInvalidPoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.points)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAnalyze_InvalidOptions(t *testing.T) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return n })

	if _, err := Analyze(points, WithModels()); err == nil {
		t.Error("Expected error for empty model list")
	}
	if _, err := Analyze(points, WithModels(ModelType(42))); err == nil {
		t.Error("Expected error for unknown model type")
	}
}

// TestAnalyzeEach tests per-series analysis.
func TestAnalyzeEach(t *testing.T) {
	series := [][]Point{
		pointsFrom(sweepSizes, func(n float64) float64 { return 100 + 20*n }),
		pointsFrom(sweepSizes, func(n float64) float64 { return 300 + 55*n }),
	}

	results, err := AnalyzeEach(series, WithModels(ModelTypeLinear))
	if err != nil {
		t.Fatalf("AnalyzeEach failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	slopes := []float64{20, 55}
	for i, r := range results {
		if !approxEqual(r.BestFit.Coefficients[1], slopes[i], 1e-9) {
			t.Errorf("Series %d: slope %f, want %f", i, r.BestFit.Coefficients[1], slopes[i])
		}
	}

	if _, err := AnalyzeEach(nil); err == nil {
		t.Error("Expected error for empty series")
	}
	if _, err := AnalyzeEach([][]Point{series[0], nil}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}

func TestResultString(t *testing.T) {
	empty := &Result{}
	if empty.String() != "Result{BestFit: nil}" {
		t.Errorf("Unexpected string for empty result: %s", empty.String())
	}

	result, err := Analyze(pointsFrom(sweepSizes, func(n float64) float64 { return 5 * n }))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	s := result.String()
	if !strings.Contains(s, "TotalModels: 4") || !strings.Contains(s, "Model{Type: ") {
		t.Errorf("Unexpected result string: %s", s)
	}
}

func TestStatisticalFunctions(t *testing.T) {
	observed := []float64{1, 2, 3, 4}

	if r2 := calculateRSquared(observed, observed); r2 != 1 {
		t.Errorf("R² of a perfect prediction = %f, want 1", r2)
	}
	if r2 := calculateRSquared([]float64{2, 2}, []float64{1, 3}); r2 != 0 {
		t.Errorf("R² of constant data = %f, want 0", r2)
	}
	if rmse := calculateRMSE(observed, []float64{2, 3, 4, 5}); rmse != 1 {
		t.Errorf("RMSE = %f, want 1", rmse)
	}
	if mean := calculateMean(observed); mean != 2.5 {
		t.Errorf("mean = %f, want 2.5", mean)
	}
	if calculateMean(nil) != 0 || calculateRMSE(nil, nil) != 0 || calculateRSquared(nil, nil) != 0 {
		t.Error("Statistics of empty input should be 0")
	}
}

func TestCalculateAdjustedRSquared(t *testing.T) {
	if got := calculateAdjustedRSquared(1, 9, 2); got != 1 {
		t.Errorf("Adjusted R² of a perfect fit = %f, want 1", got)
	}
	if got := calculateAdjustedRSquared(0.99, 9, 1); !approxEqual(got, 1-0.01*8.0/7.0, 1e-12) {
		t.Errorf("Adjusted R² = %f, want %f", got, 1-0.01*8.0/7.0)
	}
	if got := calculateAdjustedRSquared(1, 3, 2); !math.IsInf(got, -1) {
		t.Errorf("Saturated model should rank last, got %f", got)
	}
}

// TestRankModels_PenalizesExtraCoefficient tests that a slightly higher raw R²
// does not outrank a simpler model.
func TestRankModels_PenalizesExtraCoefficient(t *testing.T) {
	quadratic := &Model{Type: ModelTypeQuadratic, RSquared: 0.991, AdjustedRSquared: calculateAdjustedRSquared(0.991, 9, 2)}
	linear := &Model{Type: ModelTypeLinear, RSquared: 0.990, AdjustedRSquared: calculateAdjustedRSquared(0.990, 9, 1)}

	models := []*Model{quadratic, linear}
	rankModels(models)

	if models[0] != linear {
		t.Errorf("Expected linear first, got %s", models[0])
	}
}

// TestAnalyze_SaturatedQuadraticLoses tests that an exact quadratic through
// three sizes does not beat the linear fit.
func TestAnalyze_SaturatedQuadraticLoses(t *testing.T) {
	points := []Point{{Size: 10, Nanos: 100}, {Size: 100, Nanos: 1000}, {Size: 1000, Nanos: 10050}}

	result, err := Analyze(points, WithModels(ModelTypeQuadratic, ModelTypeLinear))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.BestFit.Type != ModelTypeLinear {
		t.Fatalf("Expected linear best fit, got %s", result.BestFit)
	}
	quadratic := result.AllModels[1]
	if quadratic.RSquared < result.BestFit.RSquared {
		t.Errorf("Quadratic raw R² %f should not be below linear %f", quadratic.RSquared, result.BestFit.RSquared)
	}
}

func TestSolve3(t *testing.T) {
	m := [3][3]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}
	r := [3]float64{8, -11, -3}

	v, ok := solve3(m, r)
	if !ok {
		t.Fatal("Expected a solution")
	}
	want := [3]float64{2, 3, -1}
	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-9 {
			t.Errorf("v[%d] = %f, want %f", i, v[i], want[i])
		}
	}

	if _, ok := solve3([3][3]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, r); ok {
		t.Error("Expected singular matrix to be rejected")
	}
}

func BenchmarkAnalyze(b *testing.B) {
	points := pointsFrom(sweepSizes, func(n float64) float64 { return 150 + 38*n })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Analyze(points); err != nil {
			b.Fatal(err)
		}
	}
}
