package calc

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatValue canonicalizes an evaluation result for the API: numeric
// leaves collapse to integer strings when mathematically integral and
// round half-up to two decimals otherwise; booleans render as their truth
// word; lists and mappings are formatted recursively.
func FormatValue(v any) any {
	switch v := v.(type) {
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = FormatValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = FormatValue(e)
		}
		return out
	}
	return v
}

// FormatHistory renders a formatted result as the single string persisted
// in the history log: scalars as-is, structured results as compact JSON.
func FormatHistory(formatted any) string {
	if s, ok := formatted.(string); ok {
		return s
	}
	encoded, err := json.Marshal(formatted)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func formatNumber(f float64) string {
	// Infinities survive only inside structured results (e.g. a refinance
	// breakeven with no savings); scalar infinities error out earlier.
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return decimal.NewFromFloat(f).Round(2).String()
}
