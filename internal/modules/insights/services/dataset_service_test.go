package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightx-ai/insightx-be/internal/core/profiler"
)

const sampleCSV = "date,amount,category\n" +
	"2024-01-10,10,A\n" +
	"2024-01-20,20,B\n" +
	"2024-02-05,30,A\n"

func TestDatasetServiceLoad(t *testing.T) {
	svc := NewDatasetService(profiler.Options{}, nil)
	require.Nil(t, svc.Current())

	snap, err := svc.Load("transactions.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "transactions.csv", snap.Filename)
	assert.Equal(t, 3, snap.Summary.RowCount)
	assert.Equal(t, "amount", snap.Summary.PrimaryNumericColumn)
	assert.Contains(t, snap.SystemPrompt, "DATASET: transactions.csv")
	assert.False(t, snap.LoadedAt.IsZero())
	assert.Same(t, snap, svc.Current())
}

func TestDatasetServiceRejectedUploadKeepsPreviousSnapshot(t *testing.T) {
	svc := NewDatasetService(profiler.Options{}, nil)

	first, err := svc.Load("good.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_, err = svc.Load("empty.csv", strings.NewReader("a,b\n"))
	require.ErrorIs(t, err, profiler.ErrEmptyDataset)
	assert.Same(t, first, svc.Current(), "a rejected upload must not disturb the active snapshot")

	_, err = svc.Load("notes.txt", strings.NewReader("hello"))
	require.Error(t, err)
	assert.Same(t, first, svc.Current())
}

func TestDatasetServiceReplacesSnapshotWholesale(t *testing.T) {
	svc := NewDatasetService(profiler.Options{}, nil)

	_, err := svc.Load("first.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	second, err := svc.Load("second.csv", strings.NewReader("value\n1\n2\n"))
	require.NoError(t, err)

	current := svc.Current()
	assert.Same(t, second, current)
	assert.Equal(t, "second.csv", current.Filename)
	assert.Equal(t, 2, current.Summary.RowCount)
}
