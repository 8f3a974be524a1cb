package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightx-ai/insightx-be/internal/core/dataset"
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

func fraudDataset(t *testing.T) (*dataset.Dataset, *profiler.Summary) {
	t.Helper()
	ds := dataset.FromRecords(
		[]string{"date", "amount", "city", "is_fraud"},
		[][]string{
			{"2024-01-05", "100", "Pune", "0"},
			{"2024-01-15", "250", "Delhi", "1"},
			{"2024-02-01", "50", "Pune", "0"},
			{"2024-02-11", "400", "Delhi", "0"},
			{"2024-03-03", "75", "Pune", "1"},
		},
	)
	s, err := profiler.Profile(ds, profiler.Options{})
	require.NoError(t, err)
	return ds, s
}

func TestDynamicStatsGroupByMentionedColumn(t *testing.T) {
	ds, s := fraudDataset(t)

	out := DynamicStats(ds, s, "compare spend by city")
	assert.Contains(t, out, `Value counts "city"`)
	assert.Contains(t, out, "Pune: 3")
	assert.Contains(t, out, "GroupBy city×amount")
}

func TestDynamicStatsTrend(t *testing.T) {
	ds, s := fraudDataset(t)

	out := DynamicStats(ds, s, "what is the monthly trend?")
	assert.Contains(t, out, `Per-period "amount"`)
	assert.Contains(t, out, "2024-01: 350.00")
}

func TestDynamicStatsRiskColumn(t *testing.T) {
	ds, s := fraudDataset(t)

	out := DynamicStats(ds, s, "how much fraud is there?")
	assert.Contains(t, out, `"is_fraud" counts`)
	assert.Contains(t, out, `Mean "is_fraud" by "city"`)
}

func TestDynamicStatsTopBottom(t *testing.T) {
	ds, s := fraudDataset(t)

	out := DynamicStats(ds, s, "show the top transactions")
	assert.Contains(t, out, `Top 5 "amount"`)
	assert.Contains(t, out, "400")

	out = DynamicStats(ds, s, "show the lowest transactions")
	assert.Contains(t, out, `Bottom 5 "amount"`)
	assert.Contains(t, out, "50")
}

func TestDynamicStatsNoMatch(t *testing.T) {
	ds, s := fraudDataset(t)
	assert.Empty(t, DynamicStats(ds, s, "tell me a joke"))
	assert.Empty(t, DynamicStats(nil, nil, "anything"))
}
