package export

import (
	"bytes"
	"fmt"
)

// Service provides high-level profile report export.
type Service struct {
	exporters map[Format]Exporter
}

// NewService creates a new export service with all formats registered.
func NewService() *Service {
	return &Service{
		exporters: map[Format]Exporter{
			FormatExcel: NewExcelExporter(),
			FormatPDF:   NewPDFExporter(),
			FormatCSV:   NewCSVExporter(),
		},
	}
}

// Export renders the report in the requested format and returns the bytes,
// content type and file extension.
func (s *Service) Export(report *Report, format Format) ([]byte, string, string, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(report, &buf); err != nil {
		return nil, "", "", fmt.Errorf("export failed: %w", err)
	}
	return buf.Bytes(), exporter.GetContentType(), exporter.GetFileExtension(), nil
}
