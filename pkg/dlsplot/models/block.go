package models

import "fmt"

// Block is a contiguous column range assigned to one detector channel.
type Block struct {
	// Channel is the detector channel owning the block.
	Channel Channel `json:"channel"`
	// First is the first column (zero-based, inclusive).
	First int `json:"first"`
	// Last is the last column (zero-based, inclusive).
	Last int `json:"last"`
}

// Contains reports whether the zero-based column index lies in the block.
func (b Block) Contains(col int) bool {
	return col >= b.First && col <= b.Last
}

// Width returns the number of columns in the block.
func (b Block) Width() int {
	if b.Last < b.First {
		return 0
	}
	return b.Last - b.First + 1
}

func (b Block) String() string {
	return fmt.Sprintf("%s[%d:%d]", b.Channel, b.First, b.Last)
}

// Layout assigns a block to each channel.
type Layout map[Channel]Block

// DefaultLayout returns the standard export layout: back scatter in the first
// six columns, one spacer column, then MADLS in the next six.
func DefaultLayout() Layout {
	return Layout{
		ChannelBack:  {Channel: ChannelBack, First: 0, Last: 5},
		ChannelMADLS: {Channel: ChannelMADLS, First: 7, Last: 12},
	}
}

// Clone returns a copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for ch, b := range l {
		out[ch] = b
	}
	return out
}
