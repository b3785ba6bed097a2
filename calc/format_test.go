package calc

import (
	"math"
	"testing"
)

func TestFormatValue_Numbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{14.0, "14"},
		{-3, "-3"},
		{0, "0"},
		{1e15, "1000000000000000"},
		{3.3333333333, "3.33"},
		{1051.155, "1051.16"}, // rounds half up
		{2.675, "2.68"},
		{-2.675, "-2.68"},
		{0.1, "0.1"},
		{1.999, "2"},
	}

	for _, tc := range cases {
		got := FormatValue(tc.in)
		if got != tc.want {
			t.Errorf("FormatValue(%v) = %v, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatValue_Booleans(t *testing.T) {
	if got := FormatValue(true); got != "true" {
		t.Errorf("FormatValue(true) = %v", got)
	}
	if got := FormatValue(false); got != "false" {
		t.Errorf("FormatValue(false) = %v", got)
	}
}

func TestFormatValue_Infinity(t *testing.T) {
	if got := FormatValue(math.Inf(1)); got != "Infinity" {
		t.Errorf("FormatValue(+Inf) = %v", got)
	}
	if got := FormatValue(math.Inf(-1)); got != "-Infinity" {
		t.Errorf("FormatValue(-Inf) = %v", got)
	}
}

func TestFormatValue_Structured(t *testing.T) {
	in := map[string]any{
		"monthly_payment": 506.685,
		"months":          360.0,
		"success":         true,
		"payments":        []any{100.0, 200.555},
	}

	out, ok := FormatValue(in).(map[string]any)
	if !ok {
		t.Fatalf("FormatValue returned %T", FormatValue(in))
	}
	if out["monthly_payment"] != "506.69" {
		t.Errorf("monthly_payment = %v", out["monthly_payment"])
	}
	if out["months"] != "360" {
		t.Errorf("months = %v", out["months"])
	}
	if out["success"] != "true" {
		t.Errorf("success = %v", out["success"])
	}
	payments, ok := out["payments"].([]any)
	if !ok || payments[1] != "200.56" {
		t.Errorf("payments = %v", out["payments"])
	}
}

func TestFormatHistory(t *testing.T) {
	if got := FormatHistory("42"); got != "42" {
		t.Errorf("FormatHistory scalar = %q", got)
	}

	got := FormatHistory(map[string]any{"a": "1"})
	if got != `{"a":"1"}` {
		t.Errorf("FormatHistory structured = %q", got)
	}

	got = FormatHistory([]any{"1", "2"})
	if got != `["1","2"]` {
		t.Errorf("FormatHistory list = %q", got)
	}
}
