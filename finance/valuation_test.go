package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDCFValuation(t *testing.T) {
	cashFlows := []float64{100000, 120000, 150000, 180000, 220000}
	got, err := DCFValuation(cashFlows, 12, DefaultTerminalGrowthRate, DefaultTerminalYear)
	require.NoError(t, err)
	assert.InDelta(t, 1804249.04, got, 0.01)
}

// Shorter forecasts than the terminal year skip the terminal value.
func TestDCFValuation_NoTerminalValue(t *testing.T) {
	got, err := DCFValuation([]float64{100000, 120000}, 12, DefaultTerminalGrowthRate, DefaultTerminalYear)
	require.NoError(t, err)

	want := 100000/1.12 + 120000/(1.12*1.12)
	assert.InDelta(t, want, got, 0.01)
}

func TestDCFValuation_Validation(t *testing.T) {
	var verr *ValidationError

	_, err := DCFValuation(nil, 12, 0.02, 5)
	require.ErrorAs(t, err, &verr)

	// Terminal growth at or above the discount rate has no finite perpetuity.
	_, err = DCFValuation([]float64{1, 2, 3, 4, 5}, 1, 0.02, 5)
	require.ErrorAs(t, err, &verr)
}

func TestComparableValuation(t *testing.T) {
	multiples := map[string]float64{"revenue": 2, "earnings": 15, "ebitda": 10}
	got, err := ComparableValuation(1000000, 200000, 300000, multiples)
	require.NoError(t, err)
	assert.InDelta(t, 2666666.67, got, 0.01)
}

func TestComparableValuation_SkipsNonPositive(t *testing.T) {
	multiples := map[string]float64{"revenue": 2}
	got, err := ComparableValuation(1000000, -50000, 0, multiples)
	require.NoError(t, err)
	assert.InDelta(t, 2000000, got, 0.01)
}

func TestComparableValuation_AllNonPositive(t *testing.T) {
	got, err := ComparableValuation(0, 0, 0, map[string]float64{"revenue": 2})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestStartupValuation(t *testing.T) {
	got, err := StartupValuation(50000, 20, 80000, 5)
	require.NoError(t, err)

	assert.InDelta(t, 3600000, got.Valuation, 0.01)
	assert.InDelta(t, 600000, got.AnnualRevenue, 0.01)
	assert.InDelta(t, 1.6, got.RunwayMonths, 1e-9)
	assert.InDelta(t, 6.0, got.AdjustedMultiple, 1e-9)
}

func TestStartupValuation_ZeroRevenue(t *testing.T) {
	got, err := StartupValuation(0, 20, 80000, 5)
	require.NoError(t, err)
	assert.Zero(t, got.Valuation)
	assert.Zero(t, got.RunwayMonths)
}
