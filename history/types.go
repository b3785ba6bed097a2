// Package history persists successful calculations and classifies them
// into coarse categories for retrieval filtering.
package history

import "time"

// Category buckets a calculation by the financial function family it used.
type Category string

const (
	CategoryBasic      Category = "Basic"
	CategoryLoan       Category = "Loan"
	CategoryInvestment Category = "Investment"
	CategoryRetirement Category = "Retirement"
	CategoryBusiness   Category = "Business"
)

// Record is one persisted calculation. Records are append-only: created on
// successful evaluation, never mutated, never deleted by this layer.
type Record struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Category   Category  `json:"category"`
	Timestamp  time.Time `json:"timestamp"`
}

// DefaultLimit caps history queries.
const DefaultLimit = 100
