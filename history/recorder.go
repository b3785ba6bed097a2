package history

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VpkDevs/Tax-Filing-Tool/internal/logger"
)

// categoryMatchers is checked in priority order; the first category whose
// function names appear in the expression wins.
var categoryMatchers = []struct {
	category  Category
	functions []string
}{
	{CategoryLoan, []string{"compound_interest", "amortization", "loan_comparison", "extra_payment_impact", "refinance_analysis", "mortgage"}},
	{CategoryInvestment, []string{"portfolio_return", "portfolio_risk", "tax_equivalent_yield", "dollar_cost_averaging", "monte_carlo_simulation"}},
	{CategoryRetirement, []string{"retirement_savings_goal", "withdrawal_analysis"}},
	{CategoryBusiness, []string{"dcf_valuation", "comparable_valuation", "startup_valuation"}},
}

// Categorize classifies an expression by substring match against the known
// financial function names, Basic when none match.
func Categorize(expression string) Category {
	for _, matcher := range categoryMatchers {
		for _, fn := range matcher.functions {
			if strings.Contains(expression, fn) {
				return matcher.category
			}
		}
	}
	return CategoryBasic
}

// Recorder appends successful calculations to a Store. Persistence
// failures are logged and swallowed: the calculation already succeeded
// and its response must not depend on the history write.
type Recorder struct {
	store Store
}

// NewRecorder creates a Recorder over the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record classifies and appends a successful calculation.
func (r *Recorder) Record(ctx context.Context, expression, result string) {
	record := &Record{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		Category:   Categorize(expression),
		Timestamp:  time.Now().UTC(),
	}

	if err := r.store.Append(ctx, record); err != nil {
		logger.Error("failed to save calculation history", "expression", expression, "error", err)
		return
	}
	logger.Info("saved calculation to history", "expression", expression, "category", record.Category)
}
