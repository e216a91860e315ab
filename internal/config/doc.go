// Package config loads, normalizes, and validates dlsplot configuration data.
//
// It supplies defaults for the workbook layout, render selection, chart
// windows and output locations, reads TOML files, and expands user paths
// (including tilde shortcuts). CLI flags are applied on top of the loaded
// Config by the command layer.
package config
