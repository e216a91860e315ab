package models

import (
	"fmt"
	"strings"
)

// Channel identifies a detector channel.
type Channel string

const (
	// ChannelBack is the back scatter detector.
	ChannelBack Channel = "back"
	// ChannelMADLS is the multi-angle detector.
	ChannelMADLS Channel = "madls"
)

// Channels lists every channel in display order.
var Channels = []Channel{ChannelBack, ChannelMADLS}

// DisplayName returns the human-readable channel name.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelBack:
		return "Back Scatter"
	case ChannelMADLS:
		return "MADLS"
	default:
		return string(c)
	}
}

// ParseChannel accepts "back", "back scatter", "backscatter" and "madls".
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "back", "back scatter", "backscatter", "back_scatter":
		return ChannelBack, nil
	case "madls":
		return ChannelMADLS, nil
	default:
		return "", fmt.Errorf("unknown channel %q (must be back or madls)", s)
	}
}

// Weighting identifies a distribution transform.
type Weighting string

const (
	WeightingIntensity Weighting = "intensity"
	WeightingNumber    Weighting = "number"
	WeightingVolume    Weighting = "volume"
)

// Weightings lists every weighting in display order.
var Weightings = []Weighting{WeightingIntensity, WeightingNumber, WeightingVolume}

// Keyword returns the header keyword that identifies the weighting column.
func (w Weighting) Keyword() string {
	return string(w)
}

// ParseWeighting parses a weighting name case-insensitively.
func ParseWeighting(s string) (Weighting, error) {
	switch w := Weighting(strings.ToLower(strings.TrimSpace(s))); w {
	case WeightingIntensity, WeightingNumber, WeightingVolume:
		return w, nil
	default:
		return "", fmt.Errorf("unknown weighting %q (must be intensity, number, or volume)", s)
	}
}
