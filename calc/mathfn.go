package calc

import (
	"math"
	"sort"
)

// Descriptive statistics and number-theory routines backing catalogue
// entries. All operate on float64 slices/values and report domain
// violations through the error taxonomy.

func statMean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errValidation("mean requires at least one data point")
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

func statMedian(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errValidation("median requires at least one data point")
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// statMode returns the most common value; on a tie the value seen first
// wins.
func statMode(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errValidation("mode requires at least one data point")
	}
	counts := make(map[float64]int, len(data))
	best, bestCount := data[0], 0
	for _, v := range data {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, nil
}

// statVariance is the sample variance (n-1 denominator).
func statVariance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, errValidation("variance requires at least two data points")
	}
	mean, _ := statMean(data)
	sum := 0.0
	for _, v := range data {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(data)-1), nil
}

func statStdev(data []float64) (float64, error) {
	v, err := statVariance(data)
	if err != nil {
		return 0, errValidation("stdev requires at least two data points")
	}
	return math.Sqrt(v), nil
}

// statPercentile uses linear interpolation between closest ranks.
func statPercentile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return 0, errValidation("percentile requires at least one data point")
	}
	if q < 0 || q > 100 {
		return 0, errValidation("percentile must be between 0 and 100")
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	idx := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// population moments for skew/kurtosis/zscore
func populationMoments(data []float64) (mean, m2 float64) {
	mean, _ = statMean(data)
	for _, v := range data {
		d := v - mean
		m2 += d * d
	}
	m2 /= float64(len(data))
	return mean, m2
}

func statSkew(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, errValidation("skew requires at least two data points")
	}
	mean, m2 := populationMoments(data)
	if m2 == 0 {
		return 0, nil
	}
	m3 := 0.0
	for _, v := range data {
		d := v - mean
		m3 += d * d * d
	}
	m3 /= float64(len(data))
	return m3 / math.Pow(m2, 1.5), nil
}

// statKurtosis is the excess kurtosis (normal distribution scores 0).
func statKurtosis(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, errValidation("kurtosis requires at least two data points")
	}
	mean, m2 := populationMoments(data)
	if m2 == 0 {
		return 0, nil
	}
	m4 := 0.0
	for _, v := range data {
		d := v - mean
		m4 += d * d * d * d
	}
	m4 /= float64(len(data))
	return m4/(m2*m2) - 3, nil
}

func statZScores(data []float64) ([]float64, error) {
	if len(data) < 2 {
		return nil, errValidation("zscore requires at least two data points")
	}
	mean, m2 := populationMoments(data)
	std := math.Sqrt(m2)
	if std == 0 {
		return nil, errValidation("zscore requires non-constant data")
	}
	scores := make([]float64, len(data))
	for i, v := range data {
		scores[i] = (v - mean) / std
	}
	return scores, nil
}

// statCorrelation is the Pearson correlation coefficient.
func statCorrelation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, errValidation("correlation requires lists of equal length")
	}
	if len(xs) < 2 {
		return 0, errValidation("correlation requires at least two data points")
	}
	mx, _ := statMean(xs)
	my, _ := statMean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, errValidation("correlation requires non-constant data")
	}
	return sxy / math.Sqrt(sxx*syy), nil
}

func factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, errValidation("factorial requires a non-negative integer")
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 0) {
			return 0, errOverflow()
		}
	}
	return result, nil
}

func gcdInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func fibonacci(n int) (float64, error) {
	if n < 0 {
		return 0, errValidation("fibonacci requires a non-negative integer")
	}
	a, b := 0.0, 1.0
	for i := 0; i < n; i++ {
		a, b = b, a+b
		if math.IsInf(b, 0) {
			return 0, errOverflow()
		}
	}
	return a, nil
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func nextPrime(n int64) int64 {
	for p := n + 1; ; p++ {
		if isPrime(p) {
			return p
		}
	}
}

func prevPrime(n int64) (int64, error) {
	if n <= 2 {
		return 0, errValidation("no prime smaller than %d", n)
	}
	for p := n - 1; p >= 2; p-- {
		if isPrime(p) {
			return p, nil
		}
	}
	return 0, errValidation("no prime smaller than %d", n)
}

// primeFactors returns the distinct prime factors in ascending order.
func primeFactors(n int64) ([]float64, error) {
	if n < 2 {
		return nil, errValidation("factors requires an integer greater than 1")
	}
	var factors []float64
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, float64(p))
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		factors = append(factors, float64(n))
	}
	return factors, nil
}

// eulerPhi counts integers in [1, n] coprime to n.
func eulerPhi(n int64) (int64, error) {
	if n < 1 {
		return 0, errValidation("euler_phi requires a positive integer")
	}
	result := n
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			for n%p == 0 {
				n /= p
			}
			result -= result / p
		}
	}
	if n > 1 {
		result -= result / n
	}
	return result, nil
}

// moebius is the Möbius function: 0 for squareful n, otherwise (-1)^k for
// n with k distinct prime factors.
func moebius(n int64) (int64, error) {
	if n < 1 {
		return 0, errValidation("moebius requires a positive integer")
	}
	result := int64(1)
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			n /= p
			if n%p == 0 {
				return 0, nil
			}
			result = -result
		}
	}
	if n > 1 {
		result = -result
	}
	return result, nil
}

func divisorCount(n int64) (int64, error) {
	if n < 1 {
		return 0, errValidation("divisor_count requires a positive integer")
	}
	count := int64(0)
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			count += 2
			if d*d == n {
				count--
			}
		}
	}
	return count, nil
}

// irr finds the internal rate of return by bisection over the NPV sign
// change. Cash flows must contain at least one sign change for a root to
// exist.
func irr(cashFlows []float64) (float64, error) {
	if len(cashFlows) < 2 {
		return 0, errValidation("irr requires at least two cash flows")
	}
	npvAt := func(rate float64) float64 {
		npv := 0.0
		for i, cf := range cashFlows {
			npv += cf / math.Pow(1+rate, float64(i))
		}
		return npv
	}

	lo, hi := -0.999, 10.0
	flo, fhi := npvAt(lo), npvAt(hi)
	if flo*fhi > 0 {
		return 0, errValidation("irr could not be computed for the given cash flows")
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid := npvAt(mid)
		if math.Abs(fmid) < 1e-9 {
			return mid, nil
		}
		if flo*fmid < 0 {
			hi, fhi = mid, fmid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2, nil
}

// paybackIndex returns the first period whose cumulative cash flow is
// non-negative.
func paybackIndex(cashFlows []float64) (int, error) {
	cumulative := 0.0
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= 0 {
			return i, nil
		}
	}
	return 0, errValidation("cash flows never reach breakeven")
}
