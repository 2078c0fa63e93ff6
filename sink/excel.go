package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mzerrouki/campusnews/record"
)

const sheetName = "Activities"

// Column widths chosen for readable title/description cells.
var columnWidths = map[string]float64{
	"A": 60,  // Title
	"B": 18,  // Date
	"C": 100, // Description
	"D": 60,  // Link
}

// ExcelSink writes records to a formatted Excel workbook: styled header
// row, adjusted column widths, and wrapped data cells. The workbook is
// written to disk on Close.
type ExcelSink struct {
	file *excelize.File
	path string
	rows int
}

// NewExcelSink creates a workbook with a single Activities sheet and a
// header row.
func NewExcelSink(path string) (*ExcelSink, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	s := &ExcelSink{file: f, path: path}
	if err := s.setRow(1, Header); err != nil {
		return nil, err
	}
	return s, nil
}

// Write appends one record row. An absent date becomes an empty cell.
func (s *ExcelSink) Write(rec record.Record) error {
	return s.WriteRow([]string{rec.Title, rec.DateString(), rec.Description, rec.Link})
}

// WriteRow appends a raw row of cell values. Exported for the CSV
// converter, which replays already-serialized rows.
func (s *ExcelSink) WriteRow(values []string) error {
	s.rows++
	return s.setRow(s.rows+1, values)
}

func (s *ExcelSink) setRow(row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to locate cell: %w", err)
		}
		if err := s.file.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("failed to set cell value: %w", err)
		}
	}
	return nil
}

// Close applies formatting and saves the workbook.
func (s *ExcelSink) Close() error {
	if err := s.applyFormatting(); err != nil {
		return err
	}
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return s.file.Close()
}

// applyFormatting styles the header row, sets column widths, and enables
// text wrapping on data cells.
func (s *ExcelSink) applyFormatting() error {
	headerStyle, err := s.file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := s.file.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for col, width := range columnWidths {
		if err := s.file.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := s.file.SetRowHeight(sheetName, 1, 25); err != nil {
		return fmt.Errorf("failed to set header row height: %w", err)
	}

	if s.rows == 0 {
		return nil
	}

	dataStyle, err := s.file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(len(Header), s.rows+1)
	if err != nil {
		return fmt.Errorf("failed to locate cell: %w", err)
	}
	if err := s.file.SetCellStyle(sheetName, "A2", lastCell, dataStyle); err != nil {
		return fmt.Errorf("failed to style data cells: %w", err)
	}
	for row := 2; row <= s.rows+1; row++ {
		if err := s.file.SetRowHeight(sheetName, row, 60); err != nil {
			return fmt.Errorf("failed to set row height: %w", err)
		}
	}

	return nil
}
