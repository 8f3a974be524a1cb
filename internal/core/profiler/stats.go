package profiler

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// missingTokens are cell values treated as missing regardless of column type.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

func isMissing(cell string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(cell))]
}

func parseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// dateFormats are the accepted temporal layouts, tried in order.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
}

func parseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd returns the sample standard deviation (n-1 divisor). A single
// observation has no spread, so it reports 0.
func sampleStd(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var ss float64
	for _, v := range values {
		d := v - avg
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// percentile computes the p-th percentile (0-100) of sorted values using
// linear interpolation between closest ranks: rank = p/100 * (n-1).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Returns false when fewer than two observations or either side has
// zero variance, where the coefficient is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, false
	}
	mx, my := mean(xs), mean(ys)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}
	return sxy / math.Sqrt(sxx*syy), true
}

func summarizeNumeric(column string, cells []string) NumericSummary {
	ns := NumericSummary{Column: column}

	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if v, ok := parseNumber(cell); ok {
			values = append(values, v)
		} else {
			ns.Missing++
		}
	}
	ns.Count = len(values)
	if ns.Count == 0 {
		return ns
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	ns.Valid = true
	ns.Mean = mean(values)
	for _, v := range values {
		ns.Sum += v
	}
	ns.Std = sampleStd(values, ns.Mean)
	ns.Min = sorted[0]
	ns.Max = sorted[len(sorted)-1]
	ns.Median = percentile(sorted, 50)
	ns.P25 = percentile(sorted, 25)
	ns.P75 = percentile(sorted, 75)
	ns.P90 = percentile(sorted, 90)
	ns.P95 = percentile(sorted, 95)
	ns.P99 = percentile(sorted, 99)
	return ns
}

// FormatValue renders a figure for KPI cards and reports: thousands
// separators, two decimals only when the rounded value is not integral.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}

	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
