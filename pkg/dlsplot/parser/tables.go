package parser

import (
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// BlockDetectionParams holds parameters for block detection.
type BlockDetectionParams struct {
	// MinWidth is the smallest column run accepted as a block.
	MinWidth int
	// Order assigns runs to channels from left to right. Nil means
	// models.Channels.
	Order []models.Channel
}

// DefaultBlockParams returns default block detection parameters.
func DefaultBlockParams() BlockDetectionParams {
	return BlockDetectionParams{
		MinWidth: 2,
		Order:    models.Channels,
	}
}

// DetectBlocks splits the header into column runs separated by columns whose
// header cells are all blank. Runs are assigned to channels in params.Order.
// Runs narrower than MinWidth are ignored.
func DetectBlocks(t *models.Table, params BlockDetectionParams) models.Layout {
	order := params.Order
	if len(order) == 0 {
		order = models.Channels
	}

	layout := make(models.Layout)
	next := 0
	for _, run := range headerRuns(t.Columns) {
		if next >= len(order) {
			break
		}
		b := models.Block{Channel: order[next], First: run[0], Last: run[1]}
		if b.Width() < params.MinWidth {
			continue
		}
		layout[b.Channel] = b
		next++
	}
	return layout
}

// headerRuns returns [first, last] pairs of consecutive non-blank header columns.
func headerRuns(columns []models.Column) [][2]int {
	var runs [][2]int
	start := -1
	for i, c := range columns {
		if IsBlankHeader(c) {
			if start >= 0 {
				runs = append(runs, [2]int{start, columns[i-1].Index})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = c.Index
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, columns[len(columns)-1].Index})
	}
	return runs
}

// IsBlankHeader reports whether every header cell of c is empty.
func IsBlankHeader(c models.Column) bool {
	for _, h := range c.Header {
		if h != "" {
			return false
		}
	}
	return true
}
