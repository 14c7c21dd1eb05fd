package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: ns = a + b * n
	ModelTypeLinear ModelType = iota
	// ModelTypeLogarithmic represents the logarithmic model: ns = a + b * ln(n)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: ns = a * n^b
	ModelTypePower
	// ModelTypeQuadratic represents the quadratic model: ns = a + b*n + c*n²
	ModelTypeQuadratic
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeQuadratic:   "quadratic",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
	"quadratic":   ModelTypeQuadratic,
}

// ModelTypeFromString returns the ModelType for a given name (case-insensitive).
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Estimator predicts the mean latency for a document size.
type Estimator interface {
	// Estimate returns the predicted latency in nanoseconds for size n.
	// Sizes <= 0 are outside every model's domain and yield +Inf.
	Estimate(n float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. Quadratic takes 3, the rest 2.
	SetCoefficients(coeffs []float64) error
}

// coeffEstimator holds the coefficients shared by every model and evaluates
// them through a model-specific formula.
type coeffEstimator struct {
	modelType ModelType
	coeffs    []float64
	eval      func(c []float64, n float64) float64
}

func (e *coeffEstimator) Estimate(n float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return e.eval(e.coeffs, n)
}

func (e *coeffEstimator) Type() ModelType {
	return e.modelType
}

func (e *coeffEstimator) Coefficients() []float64 {
	return slices.Clone(e.coeffs)
}

func (e *coeffEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != len(e.coeffs) {
		return fmt.Errorf("%s model expects exactly %d coefficients, got %d",
			e.modelType, len(e.coeffs), len(coeffs))
	}
	copy(e.coeffs, coeffs)

	return nil
}

// NewLinearEstimator creates an estimator for ns = a + b * n.
func NewLinearEstimator(a, b float64) Estimator {
	return &coeffEstimator{
		modelType: ModelTypeLinear,
		coeffs:    []float64{a, b},
		eval: func(c []float64, n float64) float64 {
			return c[0] + c[1]*n
		},
	}
}

// NewLogarithmicEstimator creates an estimator for ns = a + b * ln(n).
func NewLogarithmicEstimator(a, b float64) Estimator {
	return &coeffEstimator{
		modelType: ModelTypeLogarithmic,
		coeffs:    []float64{a, b},
		eval: func(c []float64, n float64) float64 {
			return c[0] + c[1]*math.Log(n)
		},
	}
}

// NewPowerEstimator creates an estimator for ns = a * n^b.
func NewPowerEstimator(a, b float64) Estimator {
	return &coeffEstimator{
		modelType: ModelTypePower,
		coeffs:    []float64{a, b},
		eval: func(c []float64, n float64) float64 {
			return c[0] * math.Pow(n, c[1])
		},
	}
}

// NewQuadraticEstimator creates an estimator for ns = a + b*n + c*n².
func NewQuadraticEstimator(a, b, c float64) Estimator {
	return &coeffEstimator{
		modelType: ModelTypeQuadratic,
		coeffs:    []float64{a, b, c},
		eval: func(c []float64, n float64) float64 {
			return c[0] + c[1]*n + c[2]*n*n
		},
	}
}

func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypeQuadratic:
		return NewQuadraticEstimator(0, 0, 0)
	default:
		return nil
	}
}

// NewEstimator creates an estimator by model name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive): "linear", "logarithmic",
//     "power" or "quadratic"
//   - coeffs: The model coefficients (3 for quadratic, 2 otherwise)
//
// Returns:
//   - Estimator: The created estimator
//   - error: Unknown name or wrong coefficient count
//
// Example:
//
//	est, err := regression.NewEstimator("linear", []float64{120, 38.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ns := est.Estimate(2500)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	estimator := newEmptyEstimator(modelType)
	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
