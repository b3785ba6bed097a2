package calc

import (
	"math"
)

// entry is one catalogue binding: either a constant or a function with
// fixed arity bounds. The catalogue is built once at init and never
// mutates.
type entry struct {
	constant *float64
	min, max int
	fn       func(ev *Evaluator, args []any) (any, error)
}

// catalog is the full set of names an expression may reference. Lookups
// are case-sensitive exact matches.
var catalog = buildCatalog()

func constant(v float64) entry {
	return entry{constant: &v}
}

func fixed(arity int, f func(ev *Evaluator, args []any) (any, error)) entry {
	return entry{min: arity, max: arity, fn: f}
}

func ranged(min, max int, f func(ev *Evaluator, args []any) (any, error)) entry {
	return entry{min: min, max: max, fn: f}
}

// num1/num2/num3/num4 wrap plain numeric functions of fixed arity.
func num1(name string, f func(x float64) (float64, error)) entry {
	return fixed(1, func(_ *Evaluator, args []any) (any, error) {
		x, err := toNumber(name, 0, args[0])
		if err != nil {
			return nil, err
		}
		return f(x)
	})
}

func num2(name string, f func(a, b float64) (float64, error)) entry {
	return fixed(2, func(_ *Evaluator, args []any) (any, error) {
		a, err := toNumber(name, 0, args[0])
		if err != nil {
			return nil, err
		}
		b, err := toNumber(name, 1, args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b)
	})
}

func num3(name string, f func(a, b, c float64) (float64, error)) entry {
	return fixed(3, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs(name, args)
		if err != nil {
			return nil, err
		}
		return f(v[0], v[1], v[2])
	})
}

func num4(name string, f func(a, b, c, d float64) (float64, error)) entry {
	return fixed(4, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs(name, args)
		if err != nil {
			return nil, err
		}
		return f(v[0], v[1], v[2], v[3])
	})
}

// numList wraps functions over a single numeric list argument.
func numList(name string, f func(data []float64) (float64, error)) entry {
	return fixed(1, func(_ *Evaluator, args []any) (any, error) {
		data, err := toNumbers(name, 0, args[0])
		if err != nil {
			return nil, err
		}
		return f(data)
	})
}

// domain1 wraps a stdlib math function with an input-domain predicate;
// violations surface as validation errors the way the elementary-math
// catalogue requires.
func domain1(name string, ok func(x float64) bool, f func(x float64) float64) entry {
	return num1(name, func(x float64) (float64, error) {
		if !ok(x) {
			return 0, errValidation("math domain error")
		}
		return f(x), nil
	})
}

func pure1(name string, f func(x float64) float64) entry {
	return num1(name, func(x float64) (float64, error) {
		return f(x), nil
	})
}

func safeDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivisionByZero()
	}
	return a / b, nil
}

func buildCatalog() map[string]entry {
	c := map[string]entry{}

	addElementary(c)
	addStatistics(c)
	addNumberTheory(c)
	addComplex(c)
	addConversions(c)
	addBusinessFormulas(c)
	addFinanceLibrary(c)

	return c
}

func addElementary(c map[string]entry) {
	c["abs"] = pure1("abs", math.Abs)
	c["sin"] = pure1("sin", math.Sin)
	c["cos"] = pure1("cos", math.Cos)
	c["tan"] = pure1("tan", math.Tan)
	c["asin"] = domain1("asin", func(x float64) bool { return x >= -1 && x <= 1 }, math.Asin)
	c["acos"] = domain1("acos", func(x float64) bool { return x >= -1 && x <= 1 }, math.Acos)
	c["atan"] = pure1("atan", math.Atan)
	c["sinh"] = pure1("sinh", math.Sinh)
	c["cosh"] = pure1("cosh", math.Cosh)
	c["tanh"] = pure1("tanh", math.Tanh)
	c["exp"] = pure1("exp", math.Exp)
	c["log10"] = domain1("log10", func(x float64) bool { return x > 0 }, math.Log10)
	c["sqrt"] = domain1("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt)
	c["degrees"] = pure1("degrees", func(x float64) float64 { return x * 180 / math.Pi })
	c["radians"] = pure1("radians", func(x float64) float64 { return x * math.Pi / 180 })
	c["gamma"] = pure1("gamma", math.Gamma)
	c["erf"] = pure1("erf", math.Erf)
	c["bessel"] = pure1("bessel", math.J0)
	c["factorial"] = num1("factorial", factorial)

	// log(x) is the natural log; log(x, base) changes base.
	c["log"] = ranged(1, 2, func(_ *Evaluator, args []any) (any, error) {
		x, err := toNumber("log", 0, args[0])
		if err != nil {
			return nil, err
		}
		if x <= 0 {
			return nil, errValidation("math domain error")
		}
		if len(args) == 1 {
			return math.Log(x), nil
		}
		base, err := toNumber("log", 1, args[1])
		if err != nil {
			return nil, err
		}
		if base <= 0 || base == 1 {
			return nil, errValidation("math domain error")
		}
		return math.Log(x) / math.Log(base), nil
	})

	// round(x) or round(x, ndigits)
	c["round"] = ranged(1, 2, func(_ *Evaluator, args []any) (any, error) {
		x, err := toNumber("round", 0, args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return math.Round(x), nil
		}
		digits, err := toInt("round", 1, args[1])
		if err != nil {
			return nil, err
		}
		shift := math.Pow(10, float64(digits))
		return math.Round(x*shift) / shift, nil
	})

	c["gcd"] = num2("gcd", func(a, b float64) (float64, error) {
		ia, ib, err := twoInts("gcd", a, b)
		if err != nil {
			return 0, err
		}
		return float64(gcdInt(ia, ib)), nil
	})
	c["lcm"] = num2("lcm", func(a, b float64) (float64, error) {
		ia, ib, err := twoInts("lcm", a, b)
		if err != nil {
			return 0, err
		}
		if ia == 0 || ib == 0 {
			return 0, nil
		}
		g := gcdInt(ia, ib)
		return math.Abs(float64(ia / g * ib)), nil
	})

	c["pi"] = constant(math.Pi)
	c["e"] = constant(math.E)
	c["golden_ratio"] = constant((1 + math.Sqrt(5)) / 2)
	c["euler_mascheroni"] = constant(0.5772156649015329)
}

func addStatistics(c map[string]entry) {
	c["mean"] = numList("mean", statMean)
	c["median"] = numList("median", statMedian)
	c["mode"] = numList("mode", statMode)
	c["stdev"] = numList("stdev", statStdev)
	c["variance"] = numList("variance", statVariance)
	c["skew"] = numList("skew", statSkew)
	c["kurtosis"] = numList("kurtosis", statKurtosis)

	c["percentile"] = fixed(2, func(_ *Evaluator, args []any) (any, error) {
		data, err := toNumbers("percentile", 0, args[0])
		if err != nil {
			return nil, err
		}
		q, err := toNumber("percentile", 1, args[1])
		if err != nil {
			return nil, err
		}
		return statPercentile(data, q)
	})

	c["zscore"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		data, err := toNumbers("zscore", 0, args[0])
		if err != nil {
			return nil, err
		}
		scores, err := statZScores(data)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(scores))
		for i, s := range scores {
			out[i] = s
		}
		return out, nil
	})

	c["correlation"] = fixed(2, func(_ *Evaluator, args []any) (any, error) {
		xs, err := toNumbers("correlation", 0, args[0])
		if err != nil {
			return nil, err
		}
		ys, err := toNumbers("correlation", 1, args[1])
		if err != nil {
			return nil, err
		}
		return statCorrelation(xs, ys)
	})
}

func addNumberTheory(c map[string]entry) {
	c["fibonacci"] = num1("fibonacci", func(x float64) (float64, error) {
		n, err := wholeNumber("fibonacci", x)
		if err != nil {
			return 0, err
		}
		return fibonacci(int(n))
	})
	c["isprime"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		x, err := toNumber("isprime", 0, args[0])
		if err != nil {
			return nil, err
		}
		n, err := wholeNumber("isprime", x)
		if err != nil {
			return nil, err
		}
		return isPrime(n), nil
	})
	c["nextprime"] = num1("nextprime", func(x float64) (float64, error) {
		n, err := wholeNumber("nextprime", x)
		if err != nil {
			return 0, err
		}
		return float64(nextPrime(n)), nil
	})
	c["prevprime"] = num1("prevprime", func(x float64) (float64, error) {
		n, err := wholeNumber("prevprime", x)
		if err != nil {
			return 0, err
		}
		p, err := prevPrime(n)
		if err != nil {
			return 0, err
		}
		return float64(p), nil
	})
	c["factors"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		x, err := toNumber("factors", 0, args[0])
		if err != nil {
			return nil, err
		}
		n, err := wholeNumber("factors", x)
		if err != nil {
			return nil, err
		}
		factors, err := primeFactors(n)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(factors))
		for i, f := range factors {
			out[i] = f
		}
		return out, nil
	})
	c["euler_phi"] = num1("euler_phi", func(x float64) (float64, error) {
		n, err := wholeNumber("euler_phi", x)
		if err != nil {
			return 0, err
		}
		phi, err := eulerPhi(n)
		return float64(phi), err
	})
	c["moebius"] = num1("moebius", func(x float64) (float64, error) {
		n, err := wholeNumber("moebius", x)
		if err != nil {
			return 0, err
		}
		mu, err := moebius(n)
		return float64(mu), err
	})
	c["divisor_count"] = num1("divisor_count", func(x float64) (float64, error) {
		n, err := wholeNumber("divisor_count", x)
		if err != nil {
			return 0, err
		}
		count, err := divisorCount(n)
		return float64(count), err
	})
}

func addComplex(c map[string]entry) {
	// Complex values are {"real": x, "imag": y} mappings so results stay
	// JSON-representable.
	c["complex"] = num2asAny("complex", func(re, im float64) (any, error) {
		return map[string]any{"real": re, "imag": im}, nil
	})
	c["real"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		re, _, err := complexParts("real", args[0])
		if err != nil {
			return nil, err
		}
		return re, nil
	})
	c["imag"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		_, im, err := complexParts("imag", args[0])
		if err != nil {
			return nil, err
		}
		return im, nil
	})
	c["conjugate"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		re, im, err := complexParts("conjugate", args[0])
		if err != nil {
			return nil, err
		}
		if im == 0 {
			return re, nil
		}
		return map[string]any{"real": re, "imag": -im}, nil
	})
}

func addConversions(c map[string]entry) {
	c["c_to_f"] = pure1("c_to_f", func(c float64) float64 { return c*9/5 + 32 })
	c["f_to_c"] = pure1("f_to_c", func(f float64) float64 { return (f - 32) * 5 / 9 })
	c["rad_to_deg"] = pure1("rad_to_deg", func(x float64) float64 { return x * 180 / math.Pi })
	c["deg_to_rad"] = pure1("deg_to_rad", func(x float64) float64 { return x * math.Pi / 180 })
}

func num2asAny(name string, f func(a, b float64) (any, error)) entry {
	return fixed(2, func(_ *Evaluator, args []any) (any, error) {
		a, err := toNumber(name, 0, args[0])
		if err != nil {
			return nil, err
		}
		b, err := toNumber(name, 1, args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b)
	})
}
