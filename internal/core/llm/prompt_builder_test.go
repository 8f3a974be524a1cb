package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

func sampleSummary() *profiler.Summary {
	return &profiler.Summary{
		RowCount:             3,
		ColumnCount:          3,
		NumericColumns:       []string{"amount"},
		CategoricalColumns:   []string{"category"},
		TemporalColumns:      []string{"date"},
		MissingCounts:        map[string]int{"amount": 0, "category": 1, "date": 0},
		PrimaryNumericColumn: "amount",
		NumericSummaries: []profiler.NumericSummary{
			{Column: "amount", Valid: true, Count: 3, Mean: 20, Median: 20, Min: 10, Max: 30, Std: 10, P25: 15, P75: 25},
		},
		CategoricalBreakdowns: []profiler.CategoricalBreakdown{
			{Column: "category", Values: []profiler.CategoryCount{{Value: "A", Count: 2}, {Value: "B", Count: 1}}},
		},
		TimeSeries: []profiler.TimePoint{
			{Period: "2024-01", Value: 30},
			{Period: "2024-02", Value: 30},
		},
		Correlations: []profiler.Correlation{{ColumnA: "amount", ColumnB: "fee", R: 0.91}},
		Anomalies:    []profiler.Anomaly{{Title: "Strong correlation", Description: "amount and fee move together", Severity: "info"}},
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt("sales.csv", sampleSummary())

	assert.Contains(t, prompt, "DATASET: sales.csv")
	assert.Contains(t, prompt, "Shape: 3 rows × 3 columns")
	assert.Contains(t, prompt, "Primary numeric column: amount")
	assert.Contains(t, prompt, "mean=20.00")
	assert.Contains(t, prompt, "A: 2")
	assert.Contains(t, prompt, "2024-01: 30.00")
	assert.Contains(t, prompt, "r=0.910")
	assert.Contains(t, prompt, "[info] Strong correlation")
	assert.Contains(t, prompt, "RESPONSE FORMAT:")
	assert.Contains(t, prompt, "MISSING VALUES:")
	assert.Contains(t, prompt, "category: 1")
	assert.NotContains(t, prompt, "[profile truncated")
}

func TestBuildSystemPromptInvalidNumericColumn(t *testing.T) {
	s := sampleSummary()
	s.NumericSummaries = append(s.NumericSummaries, profiler.NumericSummary{Column: "ghost", Missing: 3})

	prompt := BuildSystemPrompt("sales.csv", s)
	assert.Contains(t, prompt, "ghost: no parseable values (nulls=3)")
}

func TestBuildSystemPromptTruncatesWideProfiles(t *testing.T) {
	s := sampleSummary()
	for i := 0; i < 2000; i++ {
		s.CategoricalBreakdowns = append(s.CategoricalBreakdowns, profiler.CategoricalBreakdown{
			Column: fmt.Sprintf("very_long_categorical_column_name_%04d", i),
			Values: []profiler.CategoryCount{{Value: strings.Repeat("x", 40), Count: i}},
		})
	}

	prompt := BuildSystemPrompt("wide.csv", s)
	require.Contains(t, prompt, "[profile truncated")
	assert.Less(t, len(prompt), MaxProfileChars+1000, "profile body must be hard-capped")
}
