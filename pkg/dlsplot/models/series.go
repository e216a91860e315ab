package models

// Series is one cleaned and normalized distribution curve.
type Series struct {
	Condition string    `json:"condition"`
	Channel   Channel   `json:"channel"`
	Weighting Weighting `json:"weighting"`
	// X holds diameters in nanometers.
	X []float64 `json:"x"`
	// Raw holds the distribution values as read from the sheet.
	Raw []float64 `json:"raw"`
	// Normalized holds the values after normalization.
	Normalized []float64 `json:"normalized"`
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }
