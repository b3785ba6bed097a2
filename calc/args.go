package calc

import "math"

// Argument coercion for catalogue functions. Type mismatches are general
// errors: the expression was well-formed but called a function with the
// wrong shape of value.

func toNumber(name string, i int, v any) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, errGeneral("%s() argument %d must be a number", name, i+1)
	}
	return f, nil
}

func toNumberArgs(name string, args []any) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := toNumber(name, i, a)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func toInt(name string, i int, v any) (int, error) {
	f, err := toNumber(name, i, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errGeneral("%s() argument %d must be an integer", name, i+1)
	}
	return int(f), nil
}

func toNumbers(name string, i int, v any) ([]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errGeneral("%s() argument %d must be a list of numbers", name, i+1)
	}
	out := make([]float64, len(list))
	for j, e := range list {
		f, ok := e.(float64)
		if !ok {
			return nil, errGeneral("%s() argument %d must be a list of numbers", name, i+1)
		}
		out[j] = f
	}
	return out, nil
}

func toMatrix(name string, i int, v any) ([][]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errGeneral("%s() argument %d must be a list of number lists", name, i+1)
	}
	out := make([][]float64, len(list))
	for j, row := range list {
		nums, err := toNumbers(name, i, row)
		if err != nil {
			return nil, errGeneral("%s() argument %d must be a list of number lists", name, i+1)
		}
		out[j] = nums
	}
	return out, nil
}

// toNumberMap coerces a dict argument with numeric values.
func toNumberMap(name string, i int, v any) (map[string]float64, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errGeneral("%s() argument %d must be a dict", name, i+1)
	}
	out := make(map[string]float64, len(m))
	for k, e := range m {
		f, ok := e.(float64)
		if !ok {
			return nil, errGeneral("%s() argument %d must be a dict of numbers", name, i+1)
		}
		out[k] = f
	}
	return out, nil
}

func wholeNumber(name string, x float64) (int64, error) {
	if x != math.Trunc(x) {
		return 0, errValidation("%s requires an integer", name)
	}
	return int64(x), nil
}

func twoInts(name string, a, b float64) (int64, int64, error) {
	ia, err := wholeNumber(name, a)
	if err != nil {
		return 0, 0, err
	}
	ib, err := wholeNumber(name, b)
	if err != nil {
		return 0, 0, err
	}
	return ia, ib, nil
}

// complexParts accepts either a {"real","imag"} mapping or a plain number.
func complexParts(name string, v any) (float64, float64, error) {
	switch v := v.(type) {
	case float64:
		return v, 0, nil
	case map[string]any:
		re, rok := v["real"].(float64)
		im, iok := v["imag"].(float64)
		if !rok || !iok {
			return 0, 0, errGeneral("%s() argument must be a complex value", name)
		}
		return re, im, nil
	}
	return 0, 0, errGeneral("%s() argument must be a complex value", name)
}
