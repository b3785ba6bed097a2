package finance

import "math"

// DefaultTerminalGrowthRate and DefaultTerminalYear are the perpetuity
// assumptions used when a DCF caller omits them.
const (
	DefaultTerminalGrowthRate = 0.02
	DefaultTerminalYear       = 5
)

// DCFValuation discounts each cash flow at (1+rate/100)^(i+1) and, when the
// forecast covers terminalYear periods, adds a perpetuity-growth terminal
// value discounted to present. discountRate is a percentage.
func DCFValuation(cashFlows []float64, discountRate, terminalGrowthRate float64, terminalYear int) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, errValidation("Cash flows must be a non-empty list")
	}
	if terminalYear <= 0 {
		return 0, errValidation("Terminal year must be positive")
	}

	npv := 0.0
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+discountRate/100, float64(i+1))
	}

	if len(cashFlows) >= terminalYear {
		if discountRate/100 <= terminalGrowthRate {
			return 0, errValidation("Discount rate must exceed terminal growth rate")
		}
		terminalValue := cashFlows[terminalYear-1] * (1 + terminalGrowthRate) / (discountRate/100 - terminalGrowthRate)
		npv += terminalValue / math.Pow(1+discountRate/100, float64(terminalYear))
	}

	return npv, nil
}

// ComparableValuation averages the positive valuations among revenue,
// earnings, and EBITDA multiples; 0 if none is positive. multiples keys are
// "revenue", "earnings", and "ebitda" (missing keys count as 0).
func ComparableValuation(revenue, earnings, ebitda float64, multiples map[string]float64) (float64, error) {
	if multiples == nil {
		return 0, errValidation("Multiples must be provided")
	}

	candidates := []float64{
		revenue * multiples["revenue"],
		earnings * multiples["earnings"],
		ebitda * multiples["ebitda"],
	}

	sum, count := 0.0, 0
	for _, v := range candidates {
		if v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// StartupValuationResult is a revenue-multiple startup valuation.
type StartupValuationResult struct {
	Valuation        float64
	MonthlyRevenue   float64
	AnnualRevenue    float64
	RunwayMonths     float64
	AdjustedMultiple float64
}

// StartupValuation annualizes monthly revenue, grows the industry multiple
// by the growth rate, and multiplies. Runway is burnRate/monthlyRevenue
// months (0 when there is no revenue). growthRate is a percentage.
func StartupValuation(monthlyRevenue, growthRate, burnRate, industryMultiple float64) (StartupValuationResult, error) {
	if monthlyRevenue < 0 {
		return StartupValuationResult{}, errValidation("Monthly revenue cannot be negative")
	}
	if burnRate < 0 {
		return StartupValuationResult{}, errValidation("Burn rate cannot be negative")
	}

	annualRevenue := monthlyRevenue * 12
	runway := 0.0
	if monthlyRevenue > 0 {
		runway = burnRate / monthlyRevenue
	}

	adjustedMultiple := industryMultiple * (1 + growthRate/100)

	return StartupValuationResult{
		Valuation:        annualRevenue * adjustedMultiple,
		MonthlyRevenue:   monthlyRevenue,
		AnnualRevenue:    annualRevenue,
		RunwayMonths:     runway,
		AdjustedMultiple: adjustedMultiple,
	}, nil
}
