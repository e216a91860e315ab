package chart

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// WriteGrid renders specs as a row-major grid of aligned charts on a single
// SVG canvas. Short rows are padded with empty panels.
func WriteGrid(w io.Writer, specs [][]Spec, width, height vg.Length) error {
	rows := len(specs)
	cols := 0
	for _, row := range specs {
		cols = max(cols, len(row))
	}
	if rows == 0 || cols == 0 {
		return ErrEmptyGrid
	}

	plots := make([][]*plot.Plot, rows)
	for j, row := range specs {
		plots[j] = make([]*plot.Plot, cols)
		for i := 0; i < cols; i++ {
			if i >= len(row) {
				plots[j][i] = plot.New()
				continue
			}
			p, err := Overlay(row[i])
			if err != nil {
				return err
			}
			plots[j][i] = p
		}
	}

	img := vgsvg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	_, err := img.WriteTo(w)
	return err
}
