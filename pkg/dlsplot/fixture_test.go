package dlsplot

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetFixture describes one condition worksheet.
type sheetFixture struct {
	name   string
	header []string // one label per column, repeated on all three header rows
	rows   [][]any
}

// writeWorkbook saves the fixtures as an xlsx file under t.TempDir.
func writeWorkbook(t *testing.T, sheets ...sheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				t.Fatalf("SetSheetName: %v", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}

		header := make([]any, len(s.header))
		for j, h := range s.header {
			header[j] = h
		}
		for r := 1; r <= 3; r++ {
			if err := f.SetSheetRow(s.name, fmt.Sprintf("A%d", r), &header); err != nil {
				t.Fatalf("SetSheetRow header: %v", err)
			}
		}
		for r, row := range s.rows {
			if len(row) == 0 {
				continue
			}
			if err := f.SetSheetRow(s.name, fmt.Sprintf("A%d", r+4), &row); err != nil {
				t.Fatalf("SetSheetRow data: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "dls.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

// stockA is the back scatter scenario: 10 rows, row 5 blank.
func stockA() sheetFixture {
	rows := make([][]any, 10)
	intensities := []float64{0, 1.5, 4.2, 9.8, 0, 12.4, 7.1, 3.3, 0.9, 0}
	for i := range rows {
		if i == 4 {
			continue
		}
		size := float64(10 * (i + 1))
		rows[i] = []any{size, intensities[i], intensities[i] / 2, intensities[i] / 4}
	}
	return sheetFixture{
		name:   "StockA",
		header: []string{"Size", "Intensity", "Number", "Volume"},
		rows:   rows,
	}
}

// weightingValue is the cell value written for a condition in a weighting
// sheet fixture.
func weightingValue(sheet, cond, row int, back bool) float64 {
	v := float64((row + 1) * (cond + 1) * (sheet + 1))
	if back {
		v += 0.5
	}
	return v
}

// writeWeightingWorkbook saves one sheet per weighting name, each with a
// MADLS block at A and a back scatter block at J. Every block is a
// "Diameter (nm)" column followed by one column per condition; four data rows.
func writeWeightingWorkbook(t *testing.T, sheets []string, madls, back []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for s, name := range sheets {
		if s == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}

		for _, block := range []struct {
			start      string
			col        int
			conditions []string
			back       bool
		}{
			{"A", 1, madls, false},
			{"J", 10, back, true},
		} {
			header := []any{"Diameter (nm)"}
			for _, c := range block.conditions {
				header = append(header, c)
			}
			if err := f.SetSheetRow(name, block.start+"1", &header); err != nil {
				t.Fatalf("SetSheetRow header: %v", err)
			}
			for r := 0; r < 4; r++ {
				row := []any{float64(10 * (r + 1))}
				for c := range block.conditions {
					row = append(row, weightingValue(s, c, r, block.back))
				}
				cell, err := excelize.CoordinatesToCellName(block.col, r+2)
				if err != nil {
					t.Fatalf("CoordinatesToCellName: %v", err)
				}
				if err := f.SetSheetRow(name, cell, &row); err != nil {
					t.Fatalf("SetSheetRow data: %v", err)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), "weightings.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}
