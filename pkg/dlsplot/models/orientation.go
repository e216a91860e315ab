package models

import (
	"fmt"
	"strings"
)

// Orientation describes how a workbook arranges its measurements.
type Orientation string

const (
	// OrientationConditionSheets holds one worksheet per condition, each with
	// a back scatter block and a MADLS block of size and weighting columns.
	OrientationConditionSheets Orientation = "condition-sheets"
	// OrientationWeightingSheets holds one worksheet per weighting
	// ("Intensity", "Number", "Volume"). Each channel block is a diameter
	// column followed by one column per condition.
	OrientationWeightingSheets Orientation = "weighting-sheets"
)

// ParseOrientation parses an orientation name. Empty means condition sheets.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(OrientationConditionSheets), "conditions":
		return OrientationConditionSheets, nil
	case string(OrientationWeightingSheets), "weightings":
		return OrientationWeightingSheets, nil
	default:
		return "", fmt.Errorf("unknown orientation %q (must be condition-sheets or weighting-sheets)", s)
	}
}

// DefaultLayout returns the block layout of a standard export in this
// orientation. Weighting sheets put MADLS in A:G and back scatter in J:P.
func (o Orientation) DefaultLayout() Layout {
	if o == OrientationWeightingSheets {
		return Layout{
			ChannelMADLS: {Channel: ChannelMADLS, First: 0, Last: 6},
			ChannelBack:  {Channel: ChannelBack, First: 9, Last: 15},
		}
	}
	return DefaultLayout()
}

// HeaderRows returns the header depth of a standard export.
func (o Orientation) HeaderRows() int {
	if o == OrientationWeightingSheets {
		return 1
	}
	return HeaderRows
}

// Channels returns the channels in the order their blocks appear from left
// to right.
func (o Orientation) Channels() []Channel {
	if o == OrientationWeightingSheets {
		return []Channel{ChannelMADLS, ChannelBack}
	}
	return Channels
}
