package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter renders a profile report as an Excel workbook using
// excelize: one sheet, sections stacked with a blank row between them.
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{sheetName: "Profile"}
}

func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

// Export writes the report to an xlsx workbook.
func (e *ExcelExporter) Export(report *Report, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", e.sheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	row := 1
	setCell := func(col int, r int, value string, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		f.SetCellValue(e.sheetName, cell, value)
		if style != 0 {
			f.SetCellStyle(e.sheetName, cell, cell, style)
		}
	}

	setCell(1, row, fmt.Sprintf("%s — %s", report.Title, report.Filename), titleStyle)
	row++
	setCell(1, row, "Generated: "+report.CreatedAt.Format("2006-01-02 15:04:05 MST"), 0)
	row += 2

	for _, section := range report.Sections {
		setCell(1, row, section.Title, titleStyle)
		row++
		if section.Note != "" {
			setCell(1, row, section.Note, 0)
			row++
		}
		for col, header := range section.Headers {
			setCell(col+1, row, header, headerStyle)
		}
		row++
		for _, dataRow := range section.Rows {
			for col, value := range dataRow {
				setCell(col+1, row, value, 0)
			}
			row++
		}
		row++ // blank row between sections
	}

	f.SetColWidth(e.sheetName, "A", "C", 28)

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
