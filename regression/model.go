package regression

import "fmt"

// Point is one measured sample: the mean latency observed for a document size.
type Point struct {
	// Size is the requested document size (array length).
	Size float64
	// Nanos is the mean latency in nanoseconds.
	Nanos float64
}

// Model represents a fitted regression model with metadata and the concrete estimator.
//
// Fields:
//   - Type: The model type (linear, logarithmic, power, quadratic)
//   - Coefficients: The fitted parameters of the model
//   - RSquared: Coefficient of determination (higher is better)
//   - AdjustedRSquared: R² corrected for the number of coefficients; used for ranking
//   - RMSE: Root mean square error in nanoseconds (lower is better)
//   - Formula: Human-readable formula
//   - Estimator: Concrete implementation for making predictions
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// AdjustedRSquared is RSquared penalized by the predictor count.
	AdjustedRSquared float64
	// RMSE is the root mean square error in nanoseconds.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result represents the result of a regression analysis.
//
// Fields:
//   - BestFit: The model with the highest adjusted R²
//   - AllModels: All fitted models ranked by adjusted R² (best first)
//   - Sizes: The distinct document sizes the fit was based on, ascending
type Result struct {
	// BestFit is the best-fit model (highest adjusted R²).
	BestFit *Model
	// AllModels contains all candidate models ranked by adjusted R² (best first).
	AllModels []*Model
	// Sizes holds the distinct sizes present in the input.
	Sizes []float64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}
