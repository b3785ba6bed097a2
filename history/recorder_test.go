package history

import (
	"context"
	"errors"
	"testing"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		expression string
		want       Category
	}{
		{"1 + 1", CategoryBasic},
		{"sqrt(16)", CategoryBasic},
		{"amortization(100000, 0.045, 30)", CategoryLoan},
		{"mortgage(100000, 4.5, 30)", CategoryLoan},
		{"compound_interest(1000, 0.05, 10)", CategoryLoan},
		{"portfolio_return([0.6, 0.4], [8, 5])", CategoryInvestment},
		{"monte_carlo_simulation(1000, 10, 7, 15)", CategoryInvestment},
		{"retirement_savings_goal(50000, 30, 3, 7, 0.8)", CategoryRetirement},
		{"withdrawal_analysis(1000000, 40000, 5, 2, 30)", CategoryRetirement},
		{"dcf_valuation([100, 120], 12)", CategoryBusiness},
		{"startup_valuation(50000, 200000, 5, 20)", CategoryBusiness},
	}

	for _, tc := range cases {
		if got := Categorize(tc.expression); got != tc.want {
			t.Errorf("Categorize(%q) = %s, want %s", tc.expression, got, tc.want)
		}
	}
}

type stubStore struct {
	appended []*Record
	err      error
}

func (s *stubStore) Append(_ context.Context, record *Record) error {
	if s.err != nil {
		return s.err
	}
	s.appended = append(s.appended, record)
	return nil
}

func (s *stubStore) List(context.Context, Category, int) ([]*Record, error) {
	return s.appended, nil
}

func TestRecorder_Record(t *testing.T) {
	store := &stubStore{}
	recorder := NewRecorder(store)

	recorder.Record(context.Background(), "amortization(100000, 0.045, 30)", "506.69")

	if len(store.appended) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(store.appended))
	}
	record := store.appended[0]
	if record.ID == "" {
		t.Error("Expected a generated ID")
	}
	if record.Category != CategoryLoan {
		t.Errorf("Category = %s, want %s", record.Category, CategoryLoan)
	}
	if record.Result != "506.69" {
		t.Errorf("Result = %q", record.Result)
	}
	if record.Timestamp.IsZero() {
		t.Error("Expected a timestamp")
	}
}

// A failing store must not panic or propagate: persistence is best-effort.
func TestRecorder_SwallowsAppendFailure(t *testing.T) {
	recorder := NewRecorder(&stubStore{err: errors.New("connection refused")})

	recorder.Record(context.Background(), "1 + 1", "2")
}
