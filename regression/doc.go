// Package regression fits latency-versus-size models to benchmark sweeps.
//
// A sweep measures the mean extraction latency (ns) of each strategy at a
// handful of document sizes. This package fits those points with several
// least-squares models, ranks them by adjusted R² and exposes an Estimator so the
// latency of an unmeasured size can be predicted.
//
// # Usage
//
//	points := []regression.Point{
//	    {Size: 10, Nanos: 850},
//	    {Size: 100, Nanos: 4200},
//	    {Size: 1000, Nanos: 39000},
//	    {Size: 5000, Nanos: 196000},
//	}
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.BestFit.Formula)
//	ns := result.BestFit.Estimator.Estimate(2500)
//
// # Model Types
//
//   - Linear: ns = a + b * n (expected for both extraction strategies)
//   - Logarithmic: ns = a + b * ln(n)
//   - Power: ns = a * n^b (b reveals the scaling exponent)
//   - Quadratic: ns = a + b*n + c*n²
//
// The best-fit model is the one with the highest adjusted R², so the
// quadratic model only wins when its extra coefficient pays for itself. Power
// is skipped when a latency is not positive because the fit runs in log space.
//
// # Methodology
//
//  1. Collect (size, mean ns) pairs, typically one per swept size and strategy
//  2. Fit each model type with ordinary least squares (transformed where needed)
//  3. Compute R² and RMSE in the original latency space
//  4. Rank the candidates by adjusted R², best first
package regression
