package dlsplot

import (
	"slices"
	"strings"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// Session carries interaction state between renders: the last selected
// conditions and per-channel chart titles. Titles reset whenever the
// selection changes.
type Session struct {
	selection []string
	titles    map[models.Channel]string
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{titles: make(map[models.Channel]string)}
}

// Select records the conditions about to be rendered. It reports whether the
// selection differs from the previous one, in which case custom titles are
// cleared.
func (s *Session) Select(conditions []string) bool {
	if slices.Equal(s.selection, conditions) {
		return false
	}
	s.selection = slices.Clone(conditions)
	clear(s.titles)
	return true
}

// Selection returns the current selection.
func (s *Session) Selection() []string {
	return slices.Clone(s.selection)
}

// SetTitle sets a custom chart title for a channel. An empty title restores
// the default.
func (s *Session) SetTitle(ch models.Channel, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		delete(s.titles, ch)
		return
	}
	s.titles[ch] = title
}

// Title returns the chart title for a channel: the custom title when set,
// otherwise "<condition> - <channel>" for a single condition and the channel
// name for several.
func (s *Session) Title(ch models.Channel) string {
	if t, ok := s.titles[ch]; ok {
		return t
	}
	if len(s.selection) == 1 {
		return s.selection[0] + " - " + ch.DisplayName()
	}
	return ch.DisplayName()
}
