package finance

import (
	"math/rand"
	"sort"
)

// DefaultSimulations is the path count assumed when the caller omits one.
const DefaultSimulations = 1000

// MonteCarloResult summarizes the distribution of simulated ending values.
type MonteCarloResult struct {
	Mean         float64
	Median       float64
	Percentile10 float64
	Percentile90 float64
	Min          float64
	Max          float64
}

// MonteCarloSimulation runs independent investment paths. Each year draws a
// return uniformly distributed within expectedReturn ± volatility (both
// percentages). The random source is injected so callers and tests control
// determinism.
func MonteCarloSimulation(rng *rand.Rand, initialInvestment float64, years int, expectedReturn, volatility float64, simulations int) (MonteCarloResult, error) {
	if rng == nil {
		return MonteCarloResult{}, errValidation("Random source is required")
	}
	if initialInvestment <= 0 {
		return MonteCarloResult{}, errValidation("Initial investment must be positive")
	}
	if years <= 0 {
		return MonteCarloResult{}, errValidation("Years must be positive")
	}
	if volatility < 0 {
		return MonteCarloResult{}, errValidation("Volatility cannot be negative")
	}
	if simulations <= 0 {
		return MonteCarloResult{}, errValidation("Simulations must be positive")
	}

	results := make([]float64, simulations)
	total := 0.0
	for i := 0; i < simulations; i++ {
		value := initialInvestment
		for y := 0; y < years; y++ {
			annualReturn := expectedReturn/100 + volatility/100*(2*rng.Float64()-1)
			value *= 1 + annualReturn
		}
		results[i] = value
		total += value
	}

	sort.Float64s(results)

	return MonteCarloResult{
		Mean:         total / float64(simulations),
		Median:       results[simulations/2],
		Percentile10: results[int(float64(simulations)*0.1)],
		Percentile90: results[int(float64(simulations)*0.9)],
		Min:          results[0],
		Max:          results[simulations-1],
	}, nil
}
