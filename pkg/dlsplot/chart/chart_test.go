package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSpec() Spec {
	return Spec{
		Title:  "StockA - Back Scatter",
		XLabel: "Diameter (nm)",
		YLabel: "Intensity (normalized)",
		Range:  Range{Min: 0, Max: 1000},
		Lines: []Line{
			{Label: "StockA", X: []float64{10, 100, 2000}, Y: []float64{0.2, 1, 0.1}},
			{Label: "StockB", X: []float64{20, 200}, Y: []float64{1, 0.5}},
		},
	}
}

func TestOverlayAppliesRangeAfterData(t *testing.T) {
	p, err := Overlay(sampleSpec())
	require.NoError(t, err)
	require.Equal(t, 0.0, p.X.Min)
	require.Equal(t, 1000.0, p.X.Max)
	require.Equal(t, "StockA - Back Scatter", p.Title.Text)
}

func TestOverlaySkipsEmptyLines(t *testing.T) {
	spec := Spec{Range: Range{Min: 1, Max: 10}, Lines: []Line{{Label: "empty"}}}
	p, err := Overlay(spec)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Y.Min)
	require.Equal(t, 1.0, p.Y.Max)
}

func TestOverlayRejectsMismatchedLine(t *testing.T) {
	spec := Spec{Range: Range{Min: 0, Max: 10}, Lines: []Line{{X: []float64{1, 2}, Y: []float64{1}}}}
	_, err := Overlay(spec)
	require.Error(t, err)
}

func TestOverlayRejectsLogAxisFromZero(t *testing.T) {
	spec := sampleSpec()
	spec.LogX = true
	_, err := Overlay(spec)
	require.ErrorIs(t, err, ErrInvalidRange)

	spec.Range.Min = 1
	_, err = Overlay(spec)
	require.NoError(t, err)
}

func TestWriteSVG(t *testing.T) {
	p, err := Overlay(sampleSpec())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, p, DefaultWidth, DefaultHeight))
	require.True(t, strings.Contains(buf.String(), "<svg"), "expected svg document")
}

func TestWriteGrid(t *testing.T) {
	specs := [][]Spec{
		{sampleSpec(), sampleSpec(), sampleSpec()},
		{sampleSpec()},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(&buf, specs, 15*DefaultWidth/8, DefaultHeight*8/5))
	require.Contains(t, buf.String(), "<svg")
}

func TestWriteGridEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, WriteGrid(&buf, nil, DefaultWidth, DefaultHeight), ErrEmptyGrid)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("0:1000")
	require.NoError(t, err)
	require.Equal(t, Range{Min: 0, Max: 1000}, r)
	require.Equal(t, "0:1000", r.String())

	r, err = ParseRange(" 0.5 : 2e3 ")
	require.NoError(t, err)
	require.Equal(t, Range{Min: 0.5, Max: 2000}, r)

	for _, in := range []string{"1000", "a:b", "5:5", "10:1", "0:Inf"} {
		_, err := ParseRange(in)
		require.ErrorIs(t, err, ErrInvalidRange, in)
	}
}

func TestRangeValidate(t *testing.T) {
	require.NoError(t, Range{Min: -1, Max: 1}.Validate())
	require.Error(t, Range{Min: math.NaN(), Max: 1}.Validate())
}
