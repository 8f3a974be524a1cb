package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMissingValuesReportsWorstColumn(t *testing.T) {
	s := &Summary{
		RowCount:      10,
		MissingCounts: map[string]int{"a": 3, "b": 5, "c": 0},
	}

	desc, ok := checkMissingValues(s)
	require.True(t, ok)
	assert.Contains(t, desc, `"b"`)
	assert.Contains(t, desc, "50.0%")
}

func TestCheckMissingValuesBelowThreshold(t *testing.T) {
	s := &Summary{
		RowCount:      10,
		MissingCounts: map[string]int{"a": 2},
	}
	_, ok := checkMissingValues(s)
	assert.False(t, ok, "20%% is the threshold, not inclusive")
}

func TestCheckSkew(t *testing.T) {
	s := &Summary{
		PrimaryNumericColumn: "amount",
		NumericSummaries: []NumericSummary{
			{Column: "amount", Valid: true, Mean: 50, Median: 10},
		},
	}
	desc, ok := checkSkew(s)
	require.True(t, ok)
	assert.Contains(t, desc, "amount")

	s.NumericSummaries[0].Mean = 19
	_, ok = checkSkew(s)
	assert.False(t, ok)
}

func TestCheckSpread(t *testing.T) {
	s := &Summary{
		PrimaryNumericColumn: "amount",
		NumericSummaries: []NumericSummary{
			{Column: "amount", Valid: true, Mean: 10, Std: 25},
		},
	}
	_, ok := checkSpread(s)
	assert.True(t, ok)

	s.NumericSummaries[0].Std = 5
	_, ok = checkSpread(s)
	assert.False(t, ok)
}

func TestCheckDominantCategory(t *testing.T) {
	s := &Summary{
		RowCount: 10,
		CategoricalBreakdowns: []CategoricalBreakdown{
			{Column: "city", Values: []CategoryCount{{Value: "Pune", Count: 7}}},
		},
	}
	desc, ok := checkDominantCategory(s)
	require.True(t, ok)
	assert.Contains(t, desc, "Pune")
	assert.Contains(t, desc, "70.0%")

	s.CategoricalBreakdowns[0].Values[0].Count = 6
	_, ok = checkDominantCategory(s)
	assert.False(t, ok, "60%% share is not above the threshold")
}

func TestCheckStrongCorrelation(t *testing.T) {
	s := &Summary{
		Correlations: []Correlation{
			{ColumnA: "fee", ColumnB: "amount", R: -0.92},
			{ColumnA: "age", ColumnB: "amount", R: 0.3},
		},
	}
	desc, ok := checkStrongCorrelation(s)
	require.True(t, ok)
	assert.Contains(t, desc, "fee")
	assert.Contains(t, desc, "-0.92")
}

func TestEvaluateRulesQuietOnCleanSummary(t *testing.T) {
	s := &Summary{
		RowCount:             100,
		MissingCounts:        map[string]int{"amount": 0},
		PrimaryNumericColumn: "amount",
		NumericSummaries: []NumericSummary{
			{Column: "amount", Valid: true, Mean: 50, Median: 48, Std: 12, Min: 1, Max: 99},
		},
	}
	assert.Empty(t, evaluateRules(s))
}

func TestEvaluateRulesOrderIsDefinitionOrder(t *testing.T) {
	s := &Summary{
		RowCount:             10,
		MissingCounts:        map[string]int{"notes": 9},
		PrimaryNumericColumn: "amount",
		NumericSummaries: []NumericSummary{
			{Column: "amount", Valid: true, Mean: 7, Median: 7, Min: 7, Max: 7},
		},
	}

	anomalies := evaluateRules(s)
	require.Len(t, anomalies, 2)
	assert.Equal(t, "High missing values", anomalies[0].Title)
	assert.Equal(t, "Constant column", anomalies[1].Title)
	assert.Equal(t, "warning", anomalies[0].Severity)
}
