package config

import "github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			Orientation: string(models.OrientationConditionSheets),
		},
		Render: Render{
			Mode:       "peak-region",
			Channels:   []string{"back", "madls"},
			Weightings: []string{"intensity", "number", "volume"},
			WidthIn:    8,
			HeightIn:   5,
			Back:       Axis{XMin: 0, XMax: 1000},
			MADLS:      Axis{XMin: 0, XMax: 1000},
		},
		Output: Output{
			Dir:  "dls-out",
			Zip:  true,
			Grid: true,
		},
		Logging: Logging{
			Format: "auto",
			Level:  "info",
		},
	}
}
