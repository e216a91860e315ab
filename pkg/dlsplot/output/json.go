package output

import (
	"encoding/json"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// Artifact describes one written file.
type Artifact struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Bytes int64  `json:"bytes"`
}

// SeriesSummary describes one rendered series without its points.
type SeriesSummary struct {
	Condition string           `json:"condition"`
	Channel   models.Channel   `json:"channel"`
	Weighting models.Weighting `json:"weighting"`
	Points    int              `json:"points"`
	XMin      float64          `json:"x_min"`
	XMax      float64          `json:"x_max"`
}

// Summary is the machine-readable result of a render.
type Summary struct {
	BookName  string          `json:"book_name"`
	Mode      string          `json:"mode"`
	Series    []SeriesSummary `json:"series"`
	Warnings  []string        `json:"warnings,omitempty"`
	Artifacts []Artifact      `json:"artifacts,omitempty"`
}

// Summarize builds a SeriesSummary for s.
func Summarize(s models.Series) SeriesSummary {
	sum := SeriesSummary{
		Condition: s.Condition,
		Channel:   s.Channel,
		Weighting: s.Weighting,
		Points:    s.Len(),
	}
	if s.Len() > 0 {
		sum.XMin, sum.XMax = s.X[0], s.X[0]
		for _, x := range s.X[1:] {
			sum.XMin = min(sum.XMin, x)
			sum.XMax = max(sum.XMax, x)
		}
	}
	return sum
}

// ToJSON serializes a summary.
func ToJSON(s *Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
