package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ReadCSV parses CSV bytes into a Dataset. The first record is the header.
// Decoding is attempted as UTF-8 first, then Latin-1, then Windows-1252,
// matching what spreadsheet exports actually show up with in practice.
func ReadCSV(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if !utf8.Valid(raw) {
		for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
			decoded, decErr := cm.NewDecoder().Bytes(raw)
			if decErr == nil {
				raw = decoded
				break
			}
		}
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1 // tolerate ragged rows, normalized below
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return &Dataset{}, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	return FromRecords(headers, records[1:]), nil
}

// ReadXLSX parses the first sheet of an Excel workbook into a Dataset.
func ReadXLSX(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Dataset{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Dataset{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return FromRecords(headers, rows[1:]), nil
}

// ReadFile dispatches on the file extension. Only .csv and .xlsx are
// supported; anything else is rejected so the caller can 400 the upload.
func ReadFile(filename string, r io.Reader) (*Dataset, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return ReadCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (use .csv or .xlsx)", filename)
	}
}
