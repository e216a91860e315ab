// Package parser decodes DLS worksheets into measurement tables.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/xuri/excelize/v2"
)

var nan = math.NaN()

// ExtractTable reads a sheet into a Table. The first headerRows rows form the
// stacked column header; the remaining rows are kept as raw cell text.
func ExtractTable(f *excelize.File, sheetName string, headerRows int) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return BuildTable(sheetName, rows, headerRows), nil
}

// BuildTable splits raw rows into header columns and data rows.
// Only the first models.HeaderRows header rows are kept in each column label.
func BuildTable(sheetName string, rows [][]string, headerRows int) *models.Table {
	if headerRows < 0 {
		headerRows = 0
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]models.Column, width)
	for colIdx := range columns {
		columns[colIdx].Index = colIdx
		for rowIdx := 0; rowIdx < headerRows && rowIdx < len(rows) && rowIdx < models.HeaderRows; rowIdx++ {
			if colIdx < len(rows[rowIdx]) {
				columns[colIdx].Header[rowIdx] = strings.TrimSpace(rows[rowIdx][colIdx])
			}
		}
	}

	var data [][]string
	if len(rows) > headerRows {
		data = rows[headerRows:]
	}

	return &models.Table{
		Name:    sheetName,
		Columns: columns,
		Rows:    data,
	}
}

// ParseFloat parses a cell as float64. Blank and non-numeric cells yield NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nan
	}
	// Comma-grouped text such as "1,000" is ambiguous with a decimal comma and
	// stays missing.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nan
	}
	return f
}
