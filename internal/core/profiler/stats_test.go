package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{"  3.5 ", 3.5, true},
		{"1,234.50", 1234.5, true},
		{"-42", -42, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, "parseNumber(%q)", tc.in)
		if ok {
			assert.Equal(t, tc.want, got, "parseNumber(%q)", tc.in)
		}
	}
}

func TestIsMissing(t *testing.T) {
	for _, cell := range []string{"", "  ", "na", "N/A", "NaN", "NULL", " none "} {
		assert.True(t, isMissing(cell), "expected %q to be missing", cell)
	}
	for _, cell := range []string{"0", "false", "-", "nil "} {
		assert.False(t, isMissing(cell), "expected %q to be present", cell)
	}
}

func TestParseDate(t *testing.T) {
	for _, cell := range []string{"2024-01-15", "2024-01-15 10:30:00", "15/01/2024", "2024-01-15T10:30:00Z"} {
		_, ok := parseDate(cell)
		assert.True(t, ok, "expected %q to parse as a date", cell)
	}
	for _, cell := range []string{"", "2024", "yesterday", "13.37"} {
		_, ok := parseDate(cell)
		assert.False(t, ok, "expected %q to be rejected", cell)
	}
}

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	assert.Equal(t, 25.0, percentile(sorted, 50))
	assert.Equal(t, 17.5, percentile(sorted, 25))
	assert.InDelta(t, 37.0, percentile(sorted, 90), 1e-9)
	assert.Equal(t, 10.0, percentile(sorted, 0))
	assert.Equal(t, 40.0, percentile(sorted, 100))

	assert.Equal(t, 7.0, percentile([]float64{7}, 95))
	assert.Equal(t, 0.0, percentile(nil, 50))
}

func TestSampleStd(t *testing.T) {
	values := []float64{10, 20, 30}
	assert.InDelta(t, 10.0, sampleStd(values, mean(values)), 1e-9)

	assert.Equal(t, 0.0, sampleStd([]float64{5}, 5))
	assert.Equal(t, 0.0, sampleStd(nil, 0))
}

func TestPearson(t *testing.T) {
	r, ok := pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)

	r, ok = pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)

	_, ok = pearson([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.False(t, ok, "zero variance must be undefined, not zero")

	_, ok = pearson([]float64{1}, []float64{2})
	assert.False(t, ok)
}

func TestSummarizeNumeric(t *testing.T) {
	ns := summarizeNumeric("amount", []string{"10", "20", "30", "na", "oops"})

	assert.True(t, ns.Valid)
	assert.Equal(t, 3, ns.Count)
	assert.Equal(t, 2, ns.Missing)
	assert.Equal(t, 60.0, ns.Sum)
	assert.Equal(t, 20.0, ns.Mean)
	assert.Equal(t, 20.0, ns.Median)
	assert.Equal(t, 10.0, ns.Min)
	assert.Equal(t, 30.0, ns.Max)
	assert.InDelta(t, 10.0, ns.Std, 1e-9)
}

func TestSummarizeNumericAllMissing(t *testing.T) {
	ns := summarizeNumeric("amount", []string{"na", "", "null"})

	assert.False(t, ns.Valid)
	assert.Equal(t, 0, ns.Count)
	assert.Equal(t, 3, ns.Missing)
	assert.Equal(t, 0.0, ns.Mean)
	assert.Equal(t, 0.0, ns.Std)
}

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{
		0:           "0",
		1000:        "1,000",
		12.5:        "12.50",
		1.999:       "2",
		1234567.891: "1,234,567.89",
		-1234:       "-1,234",
		999:         "999",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatValue(in), "FormatValue(%v)", in)
	}
}
