package parser

import "testing"

func TestFindSheet(t *testing.T) {
	sheets := []string{"Summary", " intensity ", "Number"}

	tests := []struct {
		name     string
		expected string
		found    bool
	}{
		{"Intensity", " intensity ", true},
		{"number", "Number", true},
		{"Volume", "", false},
	}

	for _, tt := range tests {
		got, ok := FindSheet(sheets, tt.name)
		if ok != tt.found || got != tt.expected {
			t.Errorf("FindSheet(%q) = %q, %v; expected %q, %v", tt.name, got, ok, tt.expected, tt.found)
		}
	}
}

func TestColumnRef(t *testing.T) {
	if got := ColumnRef("Intensity", 9); got != "Intensity!J" {
		t.Errorf("Expected Intensity!J, got %q", got)
	}
}
