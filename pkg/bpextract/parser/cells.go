// Package parser turns EUCAST breakpoint worksheets into breakpoint records.
package parser

import (
	"math"
	"strconv"

	"github.com/bacteria-search/bpextract/pkg/bpextract/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows returns the cell texts of a sheet, one slice per row, 0-based.
// Raw cell values are used so number formats do not leak into breakpoints;
// numeric text is rewritten in plain decimal form, since Excel stores small
// doubles in exponent form (8.0000000000000002E-3).
// Rows may be ragged; empty leading rows are kept so indexes match the sheet.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for i, v := range row {
			row[i] = canonicalNumber(v)
		}
	}
	return rows, nil
}

// canonicalNumber formats v as a plain decimal when it parses as a finite
// float, and returns it unchanged otherwise.
func canonicalNumber(v string) string {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return v
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ParseSheet reads sheetName from f and parses it.
func ParseSheet(f *excelize.File, sheetName, organismGroup string, params SheetParams) ([]models.BreakpointRecord, error) {
	rows, err := ReadRows(f, sheetName)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows, organismGroup, params)
}

// dataWidth returns the number of columns spanned by non-empty cells,
// counted from column A.
func dataWidth(rows [][]string) int {
	maxCol := -1
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx > maxCol; colIdx-- {
			if row[colIdx] != "" {
				maxCol = colIdx
				break
			}
		}
	}
	return maxCol + 1
}
