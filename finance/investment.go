package finance

import "math"

// PortfolioReturn returns the investment-weighted average return across a
// portfolio. investments and returns are positional pairs.
func PortfolioReturn(investments, returns []float64) (float64, error) {
	if len(investments) == 0 {
		return 0, errValidation("Investments must be a non-empty list")
	}
	if len(investments) != len(returns) {
		return 0, errValidation("Investments and returns lists must have the same length")
	}

	total := 0.0
	for _, inv := range investments {
		total += inv
	}
	if total <= 0 {
		return 0, errValidation("Total investment must be positive")
	}

	weighted := 0.0
	for i, inv := range investments {
		weighted += inv * returns[i]
	}
	return weighted / total, nil
}

// PortfolioRisk estimates portfolio risk. Without a correlation matrix the
// assets are assumed perfectly correlated and the result is the weighted
// sum of returns; with one it is sqrt(sum_ij w_i w_j r_i r_j rho_ij).
func PortfolioRisk(returns, weights []float64, correlation [][]float64) (float64, error) {
	if len(returns) == 0 {
		return 0, errValidation("Returns must be a non-empty list")
	}
	if len(returns) != len(weights) {
		return 0, errValidation("Returns and weights lists must have the same length")
	}

	if correlation == nil {
		risk := 0.0
		for i, w := range weights {
			risk += w * returns[i]
		}
		return risk, nil
	}

	if len(correlation) != len(weights) {
		return 0, errValidation("Correlation matrix must be square with one row per asset")
	}
	variance := 0.0
	for i := range weights {
		if len(correlation[i]) != len(weights) {
			return 0, errValidation("Correlation matrix must be square with one row per asset")
		}
		for j := range weights {
			variance += weights[i] * weights[j] * returns[i] * returns[j] * correlation[i][j]
		}
	}
	return math.Sqrt(variance), nil
}

// TaxEquivalentYield converts a tax-free yield into the taxable yield that
// would net the same return. taxBracket is a percentage (24 for 24%).
func TaxEquivalentYield(taxFreeYield, taxBracket float64) (float64, error) {
	if taxBracket >= 100 {
		return 0, errValidation("Tax bracket must be below 100 percent")
	}
	return taxFreeYield / (1 - taxBracket/100), nil
}

// DollarCostAveragingResult compares lump-sum investing against monthly
// contributions over the same horizon.
type DollarCostAveragingResult struct {
	LumpSumResult     float64
	DCAResult         float64
	Difference        float64
	DifferencePercent float64
}

// DollarCostAveraging grows the equivalent lump sum at the compounded
// monthly rate and contrasts it with contributing monthlyInvestment for
// months periods. expectedReturn is an annual percentage.
func DollarCostAveraging(monthlyInvestment float64, months int, expectedReturn float64) (DollarCostAveragingResult, error) {
	if monthlyInvestment <= 0 {
		return DollarCostAveragingResult{}, errValidation("Monthly investment must be positive")
	}
	if months <= 0 {
		return DollarCostAveragingResult{}, errValidation("Months must be positive")
	}

	monthlyReturn := math.Pow(1+expectedReturn/100, 1.0/12) - 1

	lumpSum := monthlyInvestment * float64(months)
	lumpSumFinal := lumpSum * math.Pow(1+monthlyReturn, float64(months))

	dcaFinal := 0.0
	for i := 0; i < months; i++ {
		dcaFinal += monthlyInvestment * math.Pow(1+monthlyReturn, float64(months-i))
	}

	return DollarCostAveragingResult{
		LumpSumResult:     lumpSumFinal,
		DCAResult:         dcaFinal,
		Difference:        lumpSumFinal - dcaFinal,
		DifferencePercent: (lumpSumFinal - dcaFinal) / dcaFinal * 100,
	}, nil
}
