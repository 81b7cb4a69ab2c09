package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/roster/internal/people"
)

// Spreadsheet renders the records as a single-sheet xlsx workbook: one
// header row, one row per record in insertion order. Returns nil when
// there are no records.
func (e Exporter) Spreadsheet(records []people.Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headers)
	for _, r := range records {
		rows = append(rows, []string{
			r.FirstName,
			r.LastName,
			strconv.Itoa(r.Age),
			r.JobTitle,
			r.City,
			r.State,
		})
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			// Keep ages numeric in the sheet, everything else as text.
			if rowIdx > 0 && colIdx == 2 {
				age, _ := strconv.Atoi(val)
				if err := f.SetCellValue(sheet, cell, age); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
				continue
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := e.autosizeColumns(f, sheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// autosizeColumns widens each column to its longest cell plus padding,
// capped at MaxColumnWidth. Cosmetic only.
func (e Exporter) autosizeColumns(f *excelize.File, sheet string, rows [][]string) error {
	for colIdx := range headers {
		maxLen := 0
		for _, row := range rows {
			if colIdx < len(row) && len(row[colIdx]) > maxLen {
				maxLen = len(row[colIdx])
			}
		}
		width := float64(maxLen + 2)
		if width > e.MaxColumnWidth {
			width = e.MaxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set width %s: %w", col, err)
		}
	}
	return nil
}
