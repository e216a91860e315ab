package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/xuri/excelize/v2"
)

// AllSheets keys a layout override that applies to every sheet.
const AllSheets = ""

// blockNames maps a defined name (case-insensitive) to the channel it marks.
var blockNames = map[string]models.Channel{
	"backscatter":  models.ChannelBack,
	"back_scatter": models.ChannelBack,
	"back":         models.ChannelBack,
	"madls":        models.ChannelMADLS,
}

// ExtractBlockNames reads defined names that mark channel blocks.
// Returns a map of sheet name to layout overrides; a reference without a sheet
// is stored under AllSheets.
func ExtractBlockNames(f *excelize.File) (map[string]models.Layout, error) {
	result := make(map[string]models.Layout)

	for _, dn := range f.GetDefinedName() {
		ch, ok := blockNames[strings.ToLower(dn.Name)]
		if !ok {
			continue
		}

		sheetName, block, err := parseBlockReference(dn.RefersTo)
		if err != nil {
			return nil, fmt.Errorf("defined name %q: %w", dn.Name, err)
		}
		if sheetName == AllSheets && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		block.Channel = ch

		if result[sheetName] == nil {
			result[sheetName] = make(models.Layout)
		}
		result[sheetName][ch] = block
	}

	return result, nil
}

// parseBlockReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10, SheetName!$A:$D or $A:$D
func parseBlockReference(ref string) (string, models.Block, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	var sheetName string
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return "", models.Block{}, err
	}
	return sheetName, models.Block{First: area.first, Last: area.last}, nil
}

// columnArea is a zero-based inclusive column span.
type columnArea struct {
	first int
	last  int
}

// parseRangeToArea parses a range string like $A$1:$D$10 or $H:$M.
// Row numbers are ignored; only the column span is kept.
func parseRangeToArea(rangeStr string) (columnArea, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return columnArea{}, fmt.Errorf("invalid column range %q", rangeStr)
	}

	startCol, err := columnNumber(parts[0])
	if err != nil {
		return columnArea{}, err
	}
	endCol, err := columnNumber(parts[1])
	if err != nil {
		return columnArea{}, err
	}
	if endCol < startCol {
		return columnArea{}, fmt.Errorf("invalid column range %q: end before start", rangeStr)
	}

	return columnArea{first: startCol - 1, last: endCol - 1}, nil
}

// columnNumber returns the 1-based column number of "H" or "H12".
func columnNumber(cell string) (int, error) {
	letters := strings.TrimRightFunc(strings.TrimSpace(cell), unicode.IsDigit)
	return excelize.ColumnNameToNumber(letters)
}

// ColumnRange parses an Excel column range such as "A:F" or "$H$1:$M$40" into
// zero-based inclusive indices.
func ColumnRange(ref string) (first, last int, err error) {
	area, err := parseRangeToArea(ref)
	if err != nil {
		return 0, 0, err
	}
	return area.first, area.last, nil
}
