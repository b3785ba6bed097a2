package finance

import "math"

// TaxBracket is one progressive bracket: a percentage rate and the amount
// of income it covers. A nil Threshold marks the final bracket, which
// absorbs all remaining income.
type TaxBracket struct {
	Rate      float64
	Threshold *float64
}

// TaxResult reports progressive tax applied to an income.
type TaxResult struct {
	Income         float64
	TaxableIncome  float64
	TaxAmount      float64
	EffectiveRate  float64
	AfterTaxIncome float64
}

// TaxBracketOptimization applies brackets in order to max(0, income -
// deductions) and reports the tax, effective rate, and after-tax income.
func TaxBracketOptimization(income, deductions float64, brackets []TaxBracket) (TaxResult, error) {
	if len(brackets) == 0 {
		return TaxResult{}, errValidation("Brackets must be a non-empty list")
	}
	if deductions < 0 {
		return TaxResult{}, errValidation("Deductions cannot be negative")
	}

	taxableIncome := math.Max(0, income-deductions)

	tax := 0.0
	remaining := taxableIncome
	for _, bracket := range brackets {
		if remaining <= 0 {
			break
		}
		if bracket.Threshold == nil {
			tax += remaining * bracket.Rate / 100
			remaining = 0
		} else {
			inBracket := math.Min(remaining, *bracket.Threshold)
			tax += inBracket * bracket.Rate / 100
			remaining -= inBracket
		}
	}

	effectiveRate := 0.0
	if taxableIncome > 0 {
		effectiveRate = tax / taxableIncome * 100
	}

	return TaxResult{
		Income:         income,
		TaxableIncome:  taxableIncome,
		TaxAmount:      tax,
		EffectiveRate:  effectiveRate,
		AfterTaxIncome: income - tax,
	}, nil
}

// Portfolio describes a holding considered for gains harvesting.
type Portfolio struct {
	UnrealizedGains float64
	TotalValue      float64
	CostBasis       float64
}

// RecommendHarvest and RecommendHold are the two possible harvesting
// recommendations.
const (
	RecommendHarvest = "Harvest now"
	RecommendHold    = "Hold"
)

// HarvestingResult compares realizing capital gains now against holding.
type HarvestingResult struct {
	SellNowFutureValue      float64
	HoldFutureValueAfterTax float64
	Difference              float64
	Recommendation          string
}

// CapitalGainsHarvesting compares selling now (pay tax, reinvest, grow)
// with holding (grow, then pay tax on the realized gain at exit). Tax rates
// and expectedReturn are percentages.
func CapitalGainsHarvesting(portfolio Portfolio, taxRateNow, expectedTaxRateFuture, expectedReturn, yearsToHold float64) (HarvestingResult, error) {
	if portfolio.TotalValue <= 0 {
		return HarvestingResult{}, errValidation("Portfolio total value must be positive")
	}
	if yearsToHold < 0 {
		return HarvestingResult{}, errValidation("Years to hold cannot be negative")
	}

	growth := math.Pow(1+expectedReturn/100, yearsToHold)

	taxNow := portfolio.UnrealizedGains * taxRateNow / 100
	reinvested := portfolio.TotalValue - taxNow
	sellNowFuture := reinvested * growth

	holdFuture := portfolio.TotalValue * growth
	futureGains := holdFuture - portfolio.CostBasis
	futureTax := futureGains * expectedTaxRateFuture / 100
	holdFutureAfterTax := holdFuture - futureTax

	difference := sellNowFuture - holdFutureAfterTax

	recommendation := RecommendHold
	if difference > 0 {
		recommendation = RecommendHarvest
	}

	return HarvestingResult{
		SellNowFutureValue:      sellNowFuture,
		HoldFutureValueAfterTax: holdFutureAfterTax,
		Difference:              difference,
		Recommendation:          recommendation,
	}, nil
}
