package export

import (
	"io"
	"time"
)

// Format represents the export file format.
type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
	FormatCSV   Format = "csv"
)

// Exporter is the interface for all report formats.
type Exporter interface {
	Export(report *Report, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Section is one titled table of a profile report.
type Section struct {
	Title   string
	Note    string
	Headers []string
	Rows    [][]string
}

// Report is the exportable rendering of a dataset profile. Every cell is
// pre-formatted text taken from the profile summary; exporters only lay
// the tables out.
type Report struct {
	Title     string
	Filename  string
	CreatedAt time.Time
	Sections  []Section
}
