package models

// Sheet represents one condition: its measurement table, the column block
// assigned to each channel and the columns resolved inside each block.
type Sheet struct {
	// Table is the decoded measurement table.
	Table *Table `json:"-"`
	// Blocks maps channel to the column range it occupies.
	Blocks map[Channel]Block `json:"blocks"`
	// Columns maps channel to the columns resolved within its block.
	Columns map[Channel]ColumnMap `json:"columns"`
}
