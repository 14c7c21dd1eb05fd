package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/jsonmax/regression"
)

// ExampleAnalyze fits a sweep whose latency grows linearly with size.
func ExampleAnalyze() {
	points := []regression.Point{
		{Size: 10, Nanos: 500},
		{Size: 100, Nanos: 3200},
		{Size: 1000, Nanos: 30200},
		{Size: 5000, Nanos: 150200},
	}

	result, err := regression.Analyze(points, regression.WithModels(regression.ModelTypeLinear))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.BestFit.Formula)
	fmt.Printf("R²: %.4f\n", result.BestFit.RSquared)
	fmt.Printf("Estimated ns at 2500: %.0f\n", result.BestFit.Estimator.Estimate(2500))

	// Output:
	// ns = 200.00 + 30.0000 * n
	// R²: 1.0000
	// Estimated ns at 2500: 75200
}

// ExampleNewEstimator rebuilds an estimator from stored coefficients.
func ExampleNewEstimator() {
	est, err := regression.NewEstimator("power", []float64{2, 1.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %.0f\n", est.Type(), est.Estimate(100))

	// Output:
	// power: 2000
}
