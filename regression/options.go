package regression

import (
	"fmt"

	"github.com/arloliu/jsonmax/internal/options"
)

// AnalyzeConfig holds the analysis parameters.
type AnalyzeConfig struct {
	// Models lists the candidate model types, in tie-break order.
	Models []ModelType
}

// defaultAnalyzeConfig returns the default config (all model types).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Models: []ModelType{
			ModelTypeLinear,
			ModelTypeLogarithmic,
			ModelTypePower,
			ModelTypeQuadratic,
		},
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithModels restricts the candidate models. At least one valid type is required.
func WithModels(types ...ModelType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if len(types) == 0 {
			return fmt.Errorf("regression: no model types given")
		}
		for _, t := range types {
			if _, ok := modelTypeNames[t]; !ok {
				return fmt.Errorf("regression: unknown model type: %d", int(t))
			}
		}
		cfg.Models = append([]ModelType(nil), types...)

		return nil
	})
}
