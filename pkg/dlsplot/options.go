// Package dlsplot loads DLS workbooks and renders size-distribution series.
package dlsplot

import (
	"log/slog"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// Options configures workbook loading.
type Options struct {
	// Orientation selects how the workbook arranges its measurements.
	// Empty means models.OrientationConditionSheets.
	Orientation models.Orientation
	// HeaderRows is the number of stacked header rows. Zero means the
	// orientation's default.
	HeaderRows int
	// Layout assigns column blocks to channels. Channels it omits use the
	// orientation's default layout.
	Layout models.Layout
	// AutoDetect splits the header at blank spacer columns instead of using Layout.
	// Channels the detection cannot place fall back to Layout.
	AutoDetect bool
	// IgnoreDefinedNames disables block overrides from workbook defined names.
	IgnoreDefinedNames bool
	// Logger receives per-sheet warnings. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Orientation: models.OrientationConditionSheets,
	}
}

func (o Options) orientation() models.Orientation {
	if o.Orientation == "" {
		return models.OrientationConditionSheets
	}
	return o.Orientation
}

func (o Options) headerRows() int {
	if o.HeaderRows <= 0 {
		return o.orientation().HeaderRows()
	}
	return o.HeaderRows
}

func (o Options) layout() models.Layout {
	layout := o.orientation().DefaultLayout()
	for ch, b := range o.Layout {
		layout[ch] = b
	}
	return layout
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
