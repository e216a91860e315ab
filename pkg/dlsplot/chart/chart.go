// Package chart renders overlaid size-distribution curves with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default chart dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

var (
	// ErrInvalidRange indicates an unusable axis range.
	ErrInvalidRange = errors.New("invalid axis range")
	// ErrEmptyGrid indicates a grid without panels.
	ErrEmptyGrid = errors.New("grid has no panels")
)

// Range is an x-axis window in nanometers.
type Range struct {
	Min float64 `json:"x_min"`
	Max float64 `json:"x_max"`
}

// Validate checks that the bounds are finite and ordered.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %g must be below max %g", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r Range) String() string {
	return strconv.FormatFloat(r.Min, 'g', -1, 64) + ":" + strconv.FormatFloat(r.Max, 'g', -1, 64)
}

// ParseRange parses "min:max".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q (want min:max)", ErrInvalidRange, s)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	r := Range{Min: minV, Max: maxV}
	return r, r.Validate()
}

// Line is one labelled curve.
type Line struct {
	Label string
	X     []float64
	Y     []float64
}

// Spec describes one overlay chart.
type Spec struct {
	Title  string
	XLabel string
	YLabel string
	Range  Range
	// LogX draws the diameter axis on a log scale; Range.Min must be positive.
	LogX  bool
	Lines []Line
}

// Overlay builds a plot with every line in spec drawn over a shared x range.
func Overlay(spec Spec) (*plot.Plot, error) {
	if err := spec.Range.Validate(); err != nil {
		return nil, err
	}
	if spec.LogX && spec.Range.Min <= 0 {
		return nil, fmt.Errorf("%w: log axis needs a positive minimum", ErrInvalidRange)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, l := range spec.Lines {
		if len(l.X) != len(l.Y) {
			return nil, fmt.Errorf("line %q: %d x values, %d y values", l.Label, len(l.X), len(l.Y))
		}
		if len(l.X) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(l.X))
		for j := range pts {
			pts[j].X = l.X[j]
			pts[j].Y = l.Y[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.Label, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(l.Label, line)
		drawn++
	}

	if drawn == 0 {
		p.Y.Min, p.Y.Max = 0, 1
	}

	// Add widens the axes to the data, so the window is applied last.
	p.X.Min, p.X.Max = spec.Range.Min, spec.Range.Max
	if spec.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	return p, nil
}

// WriteSVG renders p as SVG.
func WriteSVG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
