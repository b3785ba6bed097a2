package finance

import "math"

// fallbackWithdrawalRate is the 4% rule, used when the computed real
// return is too low (at or below 1%) to derive a sensible rate.
const fallbackWithdrawalRate = 0.04

// RetirementSavingsGoal returns the nest egg required at retirement:
// annual expenses inflated to the retirement year, divided by the real
// return as a safe withdrawal rate. inflationRate and expectedReturn are
// percentages.
func RetirementSavingsGoal(currentAge, retirementAge, annualExpenses, inflationRate, expectedReturn float64) (float64, error) {
	if retirementAge <= currentAge {
		return 0, errValidation("Retirement age must be greater than current age")
	}
	if annualExpenses <= 0 {
		return 0, errValidation("Annual expenses must be positive")
	}

	yearsToRetirement := retirementAge - currentAge
	futureExpenses := annualExpenses * math.Pow(1+inflationRate/100, yearsToRetirement)

	withdrawalRate := expectedReturn/100 - inflationRate/100
	if withdrawalRate <= 0.01 {
		withdrawalRate = fallbackWithdrawalRate
	}

	return futureExpenses / withdrawalRate, nil
}

// WithdrawalResult reports whether a retirement balance sustains a
// withdrawal plan.
type WithdrawalResult struct {
	Success            bool
	YearsSustained     int
	FundsRemaining     float64
	SafeWithdrawalRate float64
}

// WithdrawalAnalysis simulates year-by-year inflation-adjusted withdrawals
// followed by growth, stopping early if the balance is depleted.
// inflationRate and expectedReturn are percentages.
func WithdrawalAnalysis(initialBalance, annualWithdrawal, inflationRate, expectedReturn float64, years int) (WithdrawalResult, error) {
	if initialBalance <= 0 {
		return WithdrawalResult{}, errValidation("Initial balance must be positive")
	}
	if annualWithdrawal <= 0 {
		return WithdrawalResult{}, errValidation("Annual withdrawal must be positive")
	}
	if years <= 0 {
		return WithdrawalResult{}, errValidation("Years must be positive")
	}

	balance := initialBalance
	withdrawals := 0

	for year := 1; year <= years; year++ {
		adjusted := annualWithdrawal * math.Pow(1+inflationRate/100, float64(year-1))
		withdrawals++

		if balance < adjusted {
			balance = 0
			break
		}

		balance -= adjusted
		balance *= 1 + expectedReturn/100
	}

	success := balance > 0
	remaining := 0.0
	if success {
		remaining = balance
	}

	return WithdrawalResult{
		Success:            success,
		YearsSustained:     withdrawals,
		FundsRemaining:     remaining,
		SafeWithdrawalRate: annualWithdrawal / initialBalance * 100,
	}, nil
}
