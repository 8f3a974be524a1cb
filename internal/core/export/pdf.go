package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a profile report as a portrait A4 PDF using gofpdf.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// Export writes the report as a sequence of section tables.
func (p *PDFExporter) Export(report *Report, writer io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - %s", report.Title, report.Filename))
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, "Generated: "+report.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	for _, section := range report.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, section.Title)
		pdf.Ln(8)
		if section.Note != "" {
			pdf.SetFont("Arial", "I", 8)
			pdf.MultiCell(0, 4, section.Note, "", "", false)
			pdf.Ln(1)
		}

		colWidth := usableWidth / float64(len(section.Headers))

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for _, header := range section.Headers {
			pdf.CellFormat(colWidth, 6, header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for i, row := range section.Rows {
			fill := i%2 == 1
			pdf.SetFillColor(242, 242, 242)
			for col := 0; col < len(section.Headers); col++ {
				value := ""
				if col < len(row) {
					value = row[col]
				}
				pdf.CellFormat(colWidth, 6, truncateCell(value, 60), "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// truncateCell keeps table cells on one line; core fonts are cp1252, so the
// cut is done on runes to avoid splitting a multi-byte sequence.
func truncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
