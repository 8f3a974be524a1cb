package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("name,amount\nalice,10\nbob,20\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "amount"}, ds.Columns)
	assert.Equal(t, 2, ds.RowCount())

	amounts, err := ds.Column("amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20"}, amounts)
}

func TestReadCSVStripsBOM(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("\ufeffname,amount\nalice,10\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "amount"}, ds.Columns)
	assert.Equal(t, 0, ds.ColumnIndex("name"))
}

func TestReadCSVRaggedRows(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n4,5,6,7\n"))
	require.NoError(t, err)

	require.Equal(t, 2, ds.RowCount())
	assert.Equal(t, []string{"1", "2", ""}, ds.Rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, ds.Rows[1])
}

func TestReadCSVLatin1Fallback(t *testing.T) {
	raw := append([]byte("name\ncaf"), 0xE9, '\n')
	ds, err := ReadCSV(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Equal(t, 1, ds.RowCount())
	assert.Equal(t, "café", ds.Rows[0][0])
}

func TestReadCSVEmpty(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
	assert.Equal(t, 0, ds.ColumnCount())
}

func TestReadFileRejectsUnknownExtension(t *testing.T) {
	_, err := ReadFile("report.txt", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadFileDispatchesByExtension(t *testing.T) {
	ds, err := ReadFile("Upper.CSV", strings.NewReader("a\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ds.Columns)
}

func TestColumnNotFound(t *testing.T) {
	ds := FromRecords([]string{"a"}, [][]string{{"1"}})
	_, err := ds.Column("missing")
	assert.Error(t, err)
	assert.Equal(t, -1, ds.ColumnIndex("missing"))
}
