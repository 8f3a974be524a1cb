package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter renders a profile report as flat CSV: section title rows
// followed by the section's header and data rows.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (c *CSVExporter) GetContentType() string {
	return "text/csv"
}

func (c *CSVExporter) GetFileExtension() string {
	return ".csv"
}

// Export writes the report as CSV.
func (c *CSVExporter) Export(report *Report, writer io.Writer) error {
	w := csv.NewWriter(writer)

	w.Write([]string{report.Title, report.Filename, report.CreatedAt.Format("2006-01-02 15:04:05 MST")})
	w.Write(nil)

	for _, section := range report.Sections {
		w.Write([]string{"# " + section.Title})
		w.Write(section.Headers)
		for _, row := range section.Rows {
			w.Write(row)
		}
		w.Write(nil)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
