package calc

import (
	"errors"
	"math"
	"testing"
)

func evalNumber(t *testing.T, expression string) float64 {
	t.Helper()

	v, err := New().Evaluate(expression)
	if err != nil {
		t.Fatalf("Evaluate(%q) failed: %v", expression, err)
	}
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("Evaluate(%q) returned %T, expected float64", expression, v)
	}
	return f
}

func evalKind(t *testing.T, expression string) (Kind, string) {
	t.Helper()

	_, err := New().Evaluate(expression)
	if err == nil {
		t.Fatalf("Evaluate(%q) succeeded, expected an error", expression)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Evaluate(%q) returned %T, expected *Error", expression, err)
	}
	return cerr.Kind, cerr.Message
}

func TestEvaluate_Precedence(t *testing.T) {
	cases := []struct {
		expression string
		want       float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"2 ** 3", 8},
		{"2 ^ 3", 8},
		{"2 ** 3 ** 2", 512}, // right-associative
		{"-2 ** 2", -4},      // unary binds looser than power
		{"7 // 2", 3},
		{"7 % 3", 1},
		{"-7 // 2", -4},
		// remainder carries the divisor's sign, matching floor division
		{"-7 % 3", 2},
		{"7 % -3", -2},
		{"-7 % -3", -1},
		{"-6 % 3", 0},
	}

	for _, tc := range cases {
		if got := evalNumber(t, tc.expression); got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expression, got, tc.want)
		}
	}
}

func TestEvaluate_Literals(t *testing.T) {
	ev := New()

	v, err := ev.Evaluate("True")
	if err != nil || v != true {
		t.Errorf("Evaluate(True) = %v, %v", v, err)
	}
	v, err = ev.Evaluate("None")
	if err != nil || v != nil {
		t.Errorf("Evaluate(None) = %v, %v", v, err)
	}
	v, err = ev.Evaluate("[1, 2, 3]")
	if err != nil {
		t.Fatalf("Evaluate([1, 2, 3]) failed: %v", err)
	}
	if list, ok := v.([]any); !ok || len(list) != 3 || list[2] != 3.0 {
		t.Errorf("Evaluate([1, 2, 3]) = %v", v)
	}
	v, err = ev.Evaluate("{'a': 1}")
	if err != nil {
		t.Fatalf("Evaluate({'a': 1}) failed: %v", err)
	}
	if m, ok := v.(map[string]any); !ok || m["a"] != 1.0 {
		t.Errorf("Evaluate({'a': 1}) = %v", v)
	}
}

func TestEvaluate_Constants(t *testing.T) {
	if got := evalNumber(t, "pi"); got != math.Pi {
		t.Errorf("pi = %v", got)
	}
	if got := evalNumber(t, "2 * e"); math.Abs(got-2*math.E) > 1e-12 {
		t.Errorf("2 * e = %v", got)
	}
}

func TestEvaluate_EmptyExpression(t *testing.T) {
	kind, msg := evalKind(t, "   ")
	if kind != KindValidation {
		t.Errorf("Expected validation_error, got %s", kind)
	}
	if msg != "Expression is required" {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestEvaluate_Denylist(t *testing.T) {
	for _, expression := range []string{
		"__import__('os')",
		"eval('1+1')",
		"open('/etc/passwd')",
		"exec('x')",
		"compile('x')",
	} {
		kind, msg := evalKind(t, expression)
		if kind != KindValidation {
			t.Errorf("Evaluate(%q): expected validation_error, got %s", expression, kind)
		}
		if msg != "Expression contains unsafe operations" {
			t.Errorf("Evaluate(%q): unexpected message %q", expression, msg)
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	for _, expression := range []string{"1 / 0", "1 // 0", "1 % 0"} {
		kind, msg := evalKind(t, expression)
		if kind != KindMath {
			t.Errorf("Evaluate(%q): expected math_error, got %s", expression, kind)
		}
		if msg != "Division by zero" {
			t.Errorf("Evaluate(%q): unexpected message %q", expression, msg)
		}
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	kind, msg := evalKind(t, "10 ** 400")
	if kind != KindMath {
		t.Errorf("Expected math_error, got %s", kind)
	}
	if msg != "Numeric overflow - result too large" {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestEvaluate_DomainError(t *testing.T) {
	kind, _ := evalKind(t, "sqrt(-1)")
	if kind != KindValidation {
		t.Errorf("Expected validation_error, got %s", kind)
	}
}

func TestEvaluate_UnknownName(t *testing.T) {
	kind, _ := evalKind(t, "nope(1)")
	if kind != KindGeneral {
		t.Errorf("Expected general_error, got %s", kind)
	}
}

func TestEvaluate_WrongArity(t *testing.T) {
	kind, msg := evalKind(t, "sqrt(4, 9)")
	if kind != KindGeneral {
		t.Errorf("Expected general_error, got %s", kind)
	}
	if msg != "sqrt() takes 1 arguments but 2 were given" {
		t.Errorf("Unexpected message: %q", msg)
	}
}

func TestEvaluate_SyntaxError(t *testing.T) {
	for _, expression := range []string{"2 +", "(1", "[1, 2", "1 2", "{1: 2}"} {
		kind, _ := evalKind(t, expression)
		if kind != KindGeneral && kind != KindValidation {
			t.Errorf("Evaluate(%q): expected an error kind, got %s", expression, kind)
		}
	}
}

func TestEvaluate_FinanceValidationMapsToValidationError(t *testing.T) {
	kind, _ := evalKind(t, "amortization(-100, 0.05, 30)")
	if kind != KindValidation {
		t.Errorf("Expected validation_error, got %s", kind)
	}
}

func TestIsMemoryOp(t *testing.T) {
	for _, op := range []string{"MC", "MR", "M+", "M-", " MR "} {
		if !IsMemoryOp(op) {
			t.Errorf("IsMemoryOp(%q) = false", op)
		}
	}
	for _, expression := range []string{"1 + 1", "M*", "mr", ""} {
		if IsMemoryOp(expression) {
			t.Errorf("IsMemoryOp(%q) = true", expression)
		}
	}
}

func TestApplyMemoryOp(t *testing.T) {
	result, cell := ApplyMemoryOp("MC", 42.7)
	if result != "0" || cell != 0 {
		t.Errorf("MC = %q, %v", result, cell)
	}

	for _, op := range []string{"MR", "M+", "M-"} {
		result, cell := ApplyMemoryOp(op, 42.7)
		if result != "42" {
			t.Errorf("%s result = %q, want \"42\"", op, result)
		}
		if cell != 42.7 {
			t.Errorf("%s cell = %v, want 42.7", op, cell)
		}
	}
}
