package dataset

import (
	"fmt"
)

// Dataset is the in-memory tabular structure produced from an uploaded file.
// Cells are kept as raw strings; typing is the profiler's job. The empty
// string marks a missing value.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// FromRecords builds a Dataset from a header row and data rows. Ragged rows
// are padded or truncated to the header width so downstream code can index
// columns safely.
func FromRecords(headers []string, rows [][]string) *Dataset {
	ds := &Dataset{Columns: headers}
	width := len(headers)
	for _, row := range rows {
		ds.Rows = append(ds.Rows, normalizeRow(row, width))
	}
	return ds
}

func normalizeRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// ColumnIndex returns the index of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of the named column in row order.
func (d *Dataset) Column(name string) ([]string, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, nil
}
