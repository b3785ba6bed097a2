package calc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCatalog_Elementary(t *testing.T) {
	cases := []struct {
		expression string
		want       float64
	}{
		{"abs(-5)", 5},
		{"sqrt(16)", 4},
		{"exp(0)", 1},
		{"log(e)", 1},
		{"log(8, 2)", 3},
		{"log10(1000)", 3},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"degrees(pi)", 180},
		{"radians(180)", math.Pi},
		{"factorial(5)", 120},
		{"round(2.567)", 3},
		{"round(2.567, 2)", 2.57},
		{"gcd(12, 18)", 6},
		{"lcm(4, 6)", 12},
		{"gamma(5)", 24},
	}

	for _, tc := range cases {
		got := evalNumber(t, tc.expression)
		if !almostEqual(got, tc.want) {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
	}
}

func TestCatalog_DomainErrors(t *testing.T) {
	for _, expression := range []string{
		"sqrt(-4)",
		"log(0)",
		"log(10, 1)",
		"asin(2)",
		"factorial(-1)",
	} {
		kind, _ := evalKind(t, expression)
		if kind != KindValidation {
			t.Errorf("Evaluate(%q): expected validation_error, got %s", expression, kind)
		}
	}
}

func TestCatalog_Statistics(t *testing.T) {
	cases := []struct {
		expression string
		want       float64
	}{
		{"mean([1, 2, 3, 4])", 2.5},
		{"median([1, 2, 3, 4, 5])", 3},
		{"median([1, 2, 3, 4])", 2.5},
		{"mode([1, 2, 2, 3])", 2},
		{"variance([2, 4, 4, 4, 5, 5, 7, 9])", 4.571428571428571},
		{"percentile([1, 2, 3, 4, 5], 50)", 3},
		{"correlation([1, 2, 3], [2, 4, 6])", 1},
	}

	for _, tc := range cases {
		got := evalNumber(t, tc.expression)
		if !almostEqual(got, tc.want) {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
	}

	if _, err := New().Evaluate("mean([])"); err == nil {
		t.Error("mean([]) should fail")
	}
}

func TestCatalog_NumberTheory(t *testing.T) {
	cases := []struct {
		expression string
		want       float64
	}{
		{"fibonacci(10)", 55},
		{"nextprime(10)", 11},
		{"prevprime(10)", 7},
		{"euler_phi(12)", 4},
		{"moebius(6)", 1},
		{"moebius(12)", 0},
		{"divisor_count(12)", 6},
	}

	for _, tc := range cases {
		got := evalNumber(t, tc.expression)
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
	}

	v, err := New().Evaluate("isprime(13)")
	if err != nil || v != true {
		t.Errorf("isprime(13) = %v, %v", v, err)
	}
	v, err = New().Evaluate("factors(12)")
	if err != nil {
		t.Fatalf("factors(12) failed: %v", err)
	}
	factors, ok := v.([]any)
	if !ok || len(factors) != 2 || factors[0] != 2.0 || factors[1] != 3.0 {
		t.Errorf("factors(12) = %v", v)
	}
}

func TestCatalog_Complex(t *testing.T) {
	v, err := New().Evaluate("complex(3, 4)")
	if err != nil {
		t.Fatalf("complex(3, 4) failed: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["real"] != 3.0 || m["imag"] != 4.0 {
		t.Errorf("complex(3, 4) = %v", v)
	}

	if got := evalNumber(t, "real(complex(3, 4))"); got != 3 {
		t.Errorf("real = %v", got)
	}
	if got := evalNumber(t, "imag(complex(3, 4))"); got != 4 {
		t.Errorf("imag = %v", got)
	}

	v, err = New().Evaluate("conjugate(complex(3, 4))")
	if err != nil {
		t.Fatalf("conjugate failed: %v", err)
	}
	m, ok = v.(map[string]any)
	if !ok || m["imag"] != -4.0 {
		t.Errorf("conjugate(complex(3, 4)) = %v", v)
	}
	// real-valued conjugate collapses to a scalar
	if got := evalNumber(t, "conjugate(complex(5, 0))"); got != 5 {
		t.Errorf("conjugate(complex(5, 0)) = %v", got)
	}
}

func TestCatalog_Conversions(t *testing.T) {
	if got := evalNumber(t, "c_to_f(100)"); got != 212 {
		t.Errorf("c_to_f(100) = %v", got)
	}
	if got := evalNumber(t, "f_to_c(32)"); got != 0 {
		t.Errorf("f_to_c(32) = %v", got)
	}
	if got := evalNumber(t, "rad_to_deg(pi)"); !almostEqual(got, 180) {
		t.Errorf("rad_to_deg(pi) = %v", got)
	}
}

func TestCatalog_BusinessFormulas(t *testing.T) {
	cases := []struct {
		expression string
		want       float64
	}{
		{"simple_interest(1000, 0.05, 2)", 1100},
		{"roi(1500, 1000)", 50},
		{"break_even(1000, 10, 5)", 200},
		{"markup(100, 25)", 125},
		{"margin(100, 75)", 25},
		{"discount(100, 20)", 80},
		{"sales_tax(100, 8.25)", 108.25},
		{"after_tax(100, 25)", 75},
		{"straight_line(10000, 1000, 9)", 1000},
		{"payback_period(1000, 250)", 4},
		{"elasticity(10, 5, 100, 200)", 1},
		{"rent_ratio(240000, 1000)", 20},
		{"cap_rate(12000, 200000)", 6},
		{"cost_plus(80, 25)", 100},
		{"exchange(100, 1.08)", 108},
		{"cross_rate(1.2, 0.8)", 1.5},
	}

	for _, tc := range cases {
		got := evalNumber(t, tc.expression)
		if !almostEqual(got, tc.want) {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
	}
}

func TestCatalog_NPVAndIRR(t *testing.T) {
	// NPV at 10% of [-1000, 500, 500, 500]
	got := evalNumber(t, "npv([-1000, 500, 500, 500], 0.1)")
	want := -1000.0 + 500/1.1 + 500/1.21 + 500/1.331
	if !almostEqual(got, want) {
		t.Errorf("npv = %v, want %v", got, want)
	}

	// IRR of [-1000, 600, 600] is about 13.07%
	irr := evalNumber(t, "irr([-1000, 600, 600])")
	if math.Abs(irr-0.1307) > 0.0005 {
		t.Errorf("irr = %v, want ~0.1307", irr)
	}

	if got := evalNumber(t, "payback([-1000, 400, 400, 400])"); got != 3 {
		t.Errorf("payback = %v, want 3", got)
	}
}

func TestCatalog_Mortgage(t *testing.T) {
	got := evalNumber(t, "mortgage(100000, 4.5, 30)")
	if math.Abs(got-506.69) > 0.01 {
		t.Errorf("mortgage = %v, want ~506.69", got)
	}
}

// A 100% tax bracket is rejected as a domain violation, not surfaced as a
// division failure.
func TestCatalog_TaxEquivalentYieldFullBracket(t *testing.T) {
	if got := evalNumber(t, "tax_equivalent_yield(3.5, 25)"); math.Abs(got-4.6666666667) > 1e-9 {
		t.Errorf("tax_equivalent_yield = %v", got)
	}

	kind, _ := evalKind(t, "tax_equivalent_yield(3.5, 100)")
	if kind != KindValidation {
		t.Errorf("Expected validation_error, got %s", kind)
	}
}

func TestCatalog_MonteCarloDeterministic(t *testing.T) {
	// zero volatility collapses the simulation to compound growth
	v, err := New().Evaluate("monte_carlo_simulation(1000, 10, 7, 0)")
	if err != nil {
		t.Fatalf("monte_carlo_simulation failed: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("monte_carlo_simulation returned %T", v)
	}
	want := 1000 * math.Pow(1.07, 10)
	mean, ok := m["mean"].(float64)
	if !ok || math.Abs(mean-want) > 1e-6 {
		t.Errorf("mean = %v, want %v", m["mean"], want)
	}
	if m["min"] != m["max"] {
		t.Errorf("zero volatility should give min == max, got %v and %v", m["min"], m["max"])
	}
}

func TestCatalog_RefinanceInfiniteBreakeven(t *testing.T) {
	// refinancing to a higher rate never breaks even
	v, err := New().Evaluate("refinance_analysis(200000, 4, 5, 30, 25, 3000)")
	if err != nil {
		t.Fatalf("refinance_analysis failed: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("refinance_analysis returned %T", v)
	}
	breakeven, ok := m["breakeven_months"].(float64)
	if !ok || !math.IsInf(breakeven, 1) {
		t.Errorf("breakeven_months = %v, want +Inf", m["breakeven_months"])
	}
}
