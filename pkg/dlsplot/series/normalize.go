package series

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Result holds a masked series and its normalized values.
// X, Raw and Normalized always have equal length.
type Result struct {
	X          []float64
	Raw        []float64
	Normalized []float64
}

// Normalize masks non-finite pairs and applies mode.
func Normalize(x, y []float64, mode Mode) (Result, error) {
	x, y = Mask(x, y)
	if len(x) == 0 {
		return Result{}, ErrEmptySeries
	}

	switch mode {
	case ModeRaw:
		return Result{X: x, Raw: y, Normalized: clone(y)}, nil
	case ModeMax:
		return Result{X: x, Raw: y, Normalized: NormalizeMax(y)}, nil
	case ModePeakRegion:
		start, end, ok := PeakRegion(y)
		if !ok {
			return Result{}, ErrNoPeak
		}
		rx := x[start : end+1]
		ry := y[start : end+1]
		return Result{X: rx, Raw: ry, Normalized: NormalizeMax(ry)}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// NormalizeMax returns y divided by its maximum. When the maximum is not
// positive the values are returned unchanged. The input is not modified.
func NormalizeMax(y []float64) []float64 {
	out := clone(y)
	if len(out) == 0 {
		return out
	}
	// Divide so the maximum is exactly 1.
	if m := floats.Max(out); m > 0 {
		for i := range out {
			out[i] /= m
		}
	}
	return out
}

// PeakRegion finds the longest run of positive values in y.
//
// Positive positions are grouped by index: a new run starts wherever the gap
// to the previous positive index exceeds 1. The first run of greatest length
// wins. The returned span [start, end] is inclusive. ok is false when no
// value is positive.
func PeakRegion(y []float64) (start, end int, ok bool) {
	runStart, prev := -1, -1
	bestLen := 0

	flush := func() {
		if runStart < 0 {
			return
		}
		if n := prev - runStart + 1; n > bestLen {
			bestLen = n
			start, end = runStart, prev
		}
	}

	for i, v := range y {
		if !(v > 0) {
			continue
		}
		if runStart >= 0 && i-prev > 1 {
			flush()
			runStart = -1
		}
		if runStart < 0 {
			runStart = i
		}
		prev = i
	}
	flush()

	return start, end, bestLen > 0
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
