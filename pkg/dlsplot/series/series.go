// Package series extracts diameter/distribution pairs from a measurement
// table and normalizes them for plotting.
package series

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/parser"
)

var (
	// ErrEmptySeries indicates no finite (x, y) pair survived masking.
	ErrEmptySeries = errors.New("series is empty after masking")
	// ErrNoPeak indicates peak-region mode found no positive value.
	ErrNoPeak = errors.New("no positive peak region")
	// ErrUnknownMode indicates an unsupported normalization mode.
	ErrUnknownMode = errors.New("unknown normalization mode")
)

// Mode selects how distribution values are normalized.
type Mode string

const (
	// ModeMax divides by the global maximum.
	ModeMax Mode = "max"
	// ModePeakRegion keeps the longest run of positive values and divides by
	// its maximum.
	ModePeakRegion Mode = "peak-region"
	// ModeRaw leaves values unchanged.
	ModeRaw Mode = "raw"
)

// ParseMode parses a mode name. "none" is accepted as ModeRaw.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMax, ModePeakRegion, ModeRaw:
		return m, nil
	case "none", "":
		return ModeRaw, nil
	case "peak", "peak_region":
		return ModePeakRegion, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Extract reads the size and distribution columns as float64 and drops every
// row where either value is not finite. Relative row order is kept.
func Extract(t *models.Table, size, dist models.Column) (x, y []float64) {
	for row := range t.Rows {
		xv := parser.ParseFloat(t.Cell(row, size.Index))
		yv := parser.ParseFloat(t.Cell(row, dist.Index))
		if !finite(xv) || !finite(yv) {
			continue
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y
}

// Mask drops every position where x or y is not finite.
// x and y must have equal length.
func Mask(x, y []float64) (mx, my []float64) {
	n := min(len(x), len(y))
	mx = make([]float64, 0, n)
	my = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if finite(x[i]) && finite(y[i]) {
			mx = append(mx, x[i])
			my = append(my, y[i])
		}
	}
	return mx, my
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
