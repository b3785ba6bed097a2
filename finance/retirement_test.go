package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetirementSavingsGoal(t *testing.T) {
	got, err := RetirementSavingsGoal(30, 65, 50000, 3, 7)
	require.NoError(t, err)
	assert.InDelta(t, 3517328.07, got, 0.01)
}

// A real return at or below 1% falls back to the 4% rule.
func TestRetirementSavingsGoal_FallbackRate(t *testing.T) {
	got, err := RetirementSavingsGoal(30, 40, 40000, 3, 3.5)
	require.NoError(t, err)

	futureExpenses := 40000 * pow(1.03, 10)
	assert.InDelta(t, futureExpenses/0.04, got, 0.01)
}

func TestRetirementSavingsGoal_Validation(t *testing.T) {
	var verr *ValidationError

	_, err := RetirementSavingsGoal(65, 65, 50000, 3, 7)
	require.ErrorAs(t, err, &verr)

	_, err = RetirementSavingsGoal(30, 65, 0, 3, 7)
	require.ErrorAs(t, err, &verr)
}

func TestWithdrawalAnalysis_Sustained(t *testing.T) {
	got, err := WithdrawalAnalysis(1000000, 40000, 3, 7, 30)
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, 30, got.YearsSustained)
	assert.InDelta(t, 2064312.99, got.FundsRemaining, 0.01)
	assert.InDelta(t, 4.0, got.SafeWithdrawalRate, 1e-9)
}

func TestWithdrawalAnalysis_Depleted(t *testing.T) {
	got, err := WithdrawalAnalysis(100000, 40000, 3, 5, 30)
	require.NoError(t, err)

	assert.False(t, got.Success)
	assert.Less(t, got.YearsSustained, 30)
	assert.Zero(t, got.FundsRemaining)
}

func TestWithdrawalAnalysis_Validation(t *testing.T) {
	var verr *ValidationError

	_, err := WithdrawalAnalysis(0, 40000, 3, 7, 30)
	require.ErrorAs(t, err, &verr)

	_, err = WithdrawalAnalysis(1000000, 40000, 3, 7, 0)
	require.ErrorAs(t, err, &verr)
}

func pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
