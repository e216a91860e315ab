package parser

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"Size", "Intensity"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"d.nm", "Percent"})
	f.SetSheetRow(sheetName, "A3", &[]interface{}{"Mean", "Mean"})
	f.SetSheetRow(sheetName, "A4", &[]interface{}{1.5, 0})
	f.SetSheetRow(sheetName, "A5", &[]interface{}{2.25, 3.5})
	f.SetCellValue(sheetName, "A6", 3)

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := ExtractTable(f2, sheetName, 3)
	if err != nil {
		t.Fatalf("ExtractTable failed: %v", err)
	}

	if len(table.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(table.Columns))
	}
	if got := table.Columns[0].Joined(); got != "size d.nm mean" {
		t.Errorf("Expected joined header 'size d.nm mean', got %q", got)
	}
	if got := table.Columns[1].Label(); got != "Intensity Percent Mean" {
		t.Errorf("Expected label 'Intensity Percent Mean', got %q", got)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 data rows, got %d", len(table.Rows))
	}
	if ParseFloat(table.Cell(1, 0)) != 2.25 {
		t.Errorf("Expected 2.25, got %q", table.Cell(1, 0))
	}
	if table.Cell(2, 1) != "" {
		t.Errorf("Expected blank short-row cell, got %q", table.Cell(2, 1))
	}

	os.Remove(tmpFile)
}

func TestBuildTableShortHeader(t *testing.T) {
	table := BuildTable("S", [][]string{{"Size"}, {"", "Volume"}}, 3)
	if len(table.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(table.Columns))
	}
	if table.Columns[1].Header != [3]string{"", "Volume", ""} {
		t.Errorf("Unexpected header %v", table.Columns[1].Header)
	}
	if len(table.Rows) != 0 {
		t.Errorf("Expected no data rows, got %d", len(table.Rows))
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		nan      bool
	}{
		{"123", 123, false},
		{"123.45", 123.45, false},
		{"-1e3", -1000, false},
		{" 7 ", 7, false},
		{"0,5", 0, true},
		{"1,000", 0, true},
		{"12,345", 0, true},
		{"", 0, true},
		{"n/a", 0, true},
		{"NaN", 0, true},
	}

	for _, tt := range tests {
		result := ParseFloat(tt.input)
		if tt.nan {
			if !math.IsNaN(result) {
				t.Errorf("ParseFloat(%q) = %v, expected NaN", tt.input, result)
			}
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseFloat(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
