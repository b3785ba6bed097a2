// Package finance implements the financial model library backing the
// calculator's function catalogue: loan amortization and comparison,
// portfolio analysis, retirement planning, business valuation, Monte Carlo
// simulation, and tax optimization.
//
// Every function is pure: explicit numeric parameters in, a scalar or a
// small result struct out. Domain violations are rejected with a
// *ValidationError before any computation happens.
package finance

import "math"

// DefaultCompoundsPerYear is the compounding frequency assumed when the
// caller omits it (monthly).
const DefaultCompoundsPerYear = 12

// maxAmortizationMonths caps the month-by-month amortization loop in
// ExtraPaymentImpact (100 years) so termination is guaranteed for any input.
const maxAmortizationMonths = 1200

// CompoundInterest returns the final amount after compounding interest.
// rate is an annual rate as a decimal (0.05 for 5%); time is in years.
func CompoundInterest(principal, rate, time, compoundsPerYear float64) (float64, error) {
	if principal < 0 {
		return 0, errValidation("Principal amount cannot be negative")
	}
	if rate < 0 {
		return 0, errValidation("Interest rate cannot be negative")
	}
	if time < 0 {
		return 0, errValidation("Time period cannot be negative")
	}
	if compoundsPerYear <= 0 {
		return 0, errValidation("Compounds per year must be positive")
	}

	return principal * math.Pow(1+rate/compoundsPerYear, compoundsPerYear*time), nil
}

// AmortizationPayment returns the level monthly payment for a loan.
// rate is an annual rate as a decimal (0.05 for 5%); years is the term.
func AmortizationPayment(principal, rate, years float64) (float64, error) {
	if principal <= 0 {
		return 0, errValidation("Principal amount must be positive")
	}
	if rate <= 0 {
		return 0, errValidation("Interest rate must be positive")
	}
	if years <= 0 {
		return 0, errValidation("Loan term must be positive")
	}

	r := rate / 12
	n := years * 12

	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1), nil
}

// LoanOption is one row of a LoanComparison result.
type LoanOption struct {
	MonthlyPayment float64
	TotalCost      float64
	TotalInterest  float64
}

// LoanComparison compares loan options sharing a principal. Rates are
// percentages (4.5 for 4.5%), terms are years, fees may be nil for all
// zeros. One option is returned per (rate, term, fee) triple, order
// preserved.
func LoanComparison(principal float64, rates, terms, fees []float64) ([]LoanOption, error) {
	if principal <= 0 {
		return nil, errValidation("Principal amount must be positive")
	}
	if len(rates) == 0 {
		return nil, errValidation("Rates must be a non-empty list")
	}
	if len(terms) == 0 {
		return nil, errValidation("Terms must be a non-empty list")
	}
	if len(rates) != len(terms) {
		return nil, errValidation("Rates and terms lists must have the same length")
	}
	if fees == nil {
		fees = make([]float64, len(rates))
	} else if len(fees) != len(rates) {
		return nil, errValidation("Fees list must have the same length as rates and terms")
	}

	for i, rate := range rates {
		if rate <= 0 {
			return nil, errValidation("Rate at index %d must be positive", i)
		}
	}
	for i, term := range terms {
		if term <= 0 {
			return nil, errValidation("Term at index %d must be positive", i)
		}
	}
	for i, fee := range fees {
		if fee < 0 {
			return nil, errValidation("Fee at index %d cannot be negative", i)
		}
	}

	options := make([]LoanOption, 0, len(rates))
	for i := range rates {
		payment, err := AmortizationPayment(principal, rates[i]/100, terms[i])
		if err != nil {
			return nil, errValidation("Error in loan option %d: %s", i, err.Error())
		}
		totalCost := payment*terms[i]*12 + fees[i]
		options = append(options, LoanOption{
			MonthlyPayment: payment,
			TotalCost:      totalCost,
			TotalInterest:  totalCost - principal,
		})
	}

	return options, nil
}

// ExtraPaymentResult reports the impact of extra loan payments.
type ExtraPaymentResult struct {
	OriginalTermMonths float64
	NewTermMonths      float64
	MonthsSaved        float64
	InterestSaved      float64
}

// ExtraPaymentImpact amortizes a loan month by month applying extra
// payments (the yearly extra lands on every 12th month) and reports the
// shortened term and interest saved. rate is a percentage (4.5 for 4.5%).
func ExtraPaymentImpact(principal, rate, years, extraMonthly, extraYearly float64) (ExtraPaymentResult, error) {
	basePayment, err := AmortizationPayment(principal, rate/100, years)
	if err != nil {
		return ExtraPaymentResult{}, err
	}
	if extraMonthly < 0 || extraYearly < 0 {
		return ExtraPaymentResult{}, errValidation("Extra payments cannot be negative")
	}

	monthlyRate := rate / 1200

	regularMonths := years * 12
	regularTotal := basePayment * regularMonths

	balance := principal
	months := 0.0
	totalPaid := 0.0

	for balance > 0 && months < maxAmortizationMonths {
		months++
		interest := balance * monthlyRate
		principalPart := basePayment - interest
		extra := extraMonthly
		if math.Mod(months, 12) == 0 {
			extra += extraYearly / 12
		}

		if principalPart+extra >= balance {
			totalPaid += balance + interest
			balance = 0
		} else {
			balance -= principalPart + extra
			totalPaid += basePayment + extra
		}
	}

	return ExtraPaymentResult{
		OriginalTermMonths: regularMonths,
		NewTermMonths:      months,
		MonthsSaved:        regularMonths - months,
		InterestSaved:      regularTotal - totalPaid,
	}, nil
}

// RecommendRefinance and RecommendKeep are the two possible refinance
// recommendations.
const (
	RecommendRefinance = "Refinance"
	RecommendKeep      = "Keep current loan"
)

// RefinanceResult reports whether refinancing a loan is beneficial.
type RefinanceResult struct {
	MonthlySavings      float64
	TotalCostDifference float64
	// BreakevenMonths is +Inf when there are no monthly savings.
	BreakevenMonths float64
	Recommendation  string
}

// RefinanceAnalysis compares the current payment stream against a
// refinanced one (closing costs rolled into the new balance). Rates are
// percentages.
func RefinanceAnalysis(currentBalance, currentRate, remainingYears, newRate, newTerm, closingCosts float64) (RefinanceResult, error) {
	if closingCosts < 0 {
		return RefinanceResult{}, errValidation("Closing costs cannot be negative")
	}

	currentPayment, err := AmortizationPayment(currentBalance, currentRate/100, remainingYears)
	if err != nil {
		return RefinanceResult{}, err
	}
	currentTotal := currentPayment * remainingYears * 12

	newPayment, err := AmortizationPayment(currentBalance+closingCosts, newRate/100, newTerm)
	if err != nil {
		return RefinanceResult{}, err
	}
	newTotal := newPayment * newTerm * 12

	monthlySavings := currentPayment - newPayment
	costDifference := newTotal - currentTotal

	breakeven := math.Inf(1)
	if monthlySavings > 0 {
		breakeven = closingCosts / monthlySavings
	}

	recommendation := RecommendKeep
	if costDifference < 0 {
		recommendation = RecommendRefinance
	}

	return RefinanceResult{
		MonthlySavings:      monthlySavings,
		TotalCostDifference: costDifference,
		BreakevenMonths:     breakeven,
		Recommendation:      recommendation,
	}, nil
}
