package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// HeaderRows is the number of stacked header rows in a measurement table.
const HeaderRows = 3

// Column is one table column with its stacked header cells.
type Column struct {
	// Index is the zero-based column index within the sheet.
	Index int `json:"index"`
	// Header holds the header cells from top to bottom.
	Header [HeaderRows]string `json:"header"`
	// Source names the originating column, e.g. "Intensity!B", when the
	// table was regrouped from other sheets. Empty otherwise.
	Source string `json:"source,omitempty"`
}

// Joined returns the header cells joined by a single space, folded with
// FoldHeader.
func (c Column) Joined() string {
	return FoldHeader(c.Label())
}

// FoldHeader lowercases s after NFKC normalization, so full-width and
// compatibility characters compare equal to their ASCII forms.
func FoldHeader(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// Label returns the header cells joined by a single space.
func (c Column) Label() string {
	return strings.Join(c.Header[:], " ")
}

// Table is one worksheet decoded into a header and raw data rows.
type Table struct {
	// Name is the sheet name.
	Name string
	// Columns lists every column in sheet order.
	Columns []Column
	// Rows holds raw cell text; row 0 is the first row below the header.
	Rows [][]string
}

// Cell returns the raw text at row, col or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Slice returns the columns whose index lies inside the block.
func (t *Table) Slice(b Block) []Column {
	var out []Column
	for _, c := range t.Columns {
		if b.Contains(c.Index) {
			out = append(out, c)
		}
	}
	return out
}
