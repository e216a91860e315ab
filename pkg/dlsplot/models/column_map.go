package models

const (
	// SizeKeyword identifies the diameter column of a block.
	SizeKeyword = "size"
	// DiameterKeyword identifies the diameter column of a weighting sheet.
	DiameterKeyword = "diameter"
)

// ColumnMap records the columns resolved inside one channel block.
type ColumnMap struct {
	// Size is the diameter column; valid only when HasSize is true.
	Size    Column `json:"size"`
	HasSize bool   `json:"has_size"`
	// Sizes holds a diameter column per weighting when each weighting comes
	// from its own worksheet. It takes precedence over Size.
	Sizes map[Weighting]Column `json:"sizes,omitempty"`
	// Distributions maps weighting to its resolved column.
	Distributions map[Weighting]Column `json:"distributions,omitempty"`
	// Missing lists keywords that matched no column.
	Missing []string `json:"missing,omitempty"`
}

// Distribution returns the column for a weighting.
func (m ColumnMap) Distribution(w Weighting) (Column, bool) {
	c, ok := m.Distributions[w]
	return c, ok
}

// SizeFor returns the diameter column paired with a weighting.
func (m ColumnMap) SizeFor(w Weighting) (Column, bool) {
	if c, ok := m.Sizes[w]; ok {
		return c, true
	}
	return m.Size, m.HasSize
}
