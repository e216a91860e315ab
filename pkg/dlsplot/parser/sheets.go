package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// FindSheet returns the sheet whose trimmed name equals name, ignoring case.
func FindSheet(sheets []string, name string) (string, bool) {
	for _, s := range sheets {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return s, true
		}
	}
	return "", false
}

// ColumnRef returns a reference such as "Intensity!B" for a zero-based
// column index.
func ColumnRef(sheetName string, col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return sheetName
	}
	return sheetName + "!" + name
}
