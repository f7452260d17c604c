package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row: context on the left, shortcuts on the right.
type StatusBar struct {
	styles    Styles
	left      string
	shortcuts []Shortcut
	width     int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(styles Styles) StatusBar {
	return StatusBar{styles: styles}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetContent replaces the left text and the shortcut list.
func (s *StatusBar) SetContent(left string, shortcuts []Shortcut) {
	s.left = left
	s.shortcuts = shortcuts
}

// View renders the status bar.
func (s StatusBar) View() string {
	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, s.styles.StatusBarKey.Render(sc.Key)+": "+sc.Action)
	}
	right := strings.Join(parts, " · ")

	available := s.width - 2 // StatusBar padding
	leftWidth := ansi.StringWidth(s.left)
	rightWidth := ansi.StringWidth(right)

	// Drop shortcuts before the context text when space runs out.
	if leftWidth+1+rightWidth > available {
		right = ansi.Truncate(right, max(0, available-leftWidth-1), "…")
		rightWidth = ansi.StringWidth(right)
	}
	gap := available - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := s.left + strings.Repeat(" ", gap) + right
	return s.styles.StatusBar.Width(s.width).Render(content)
}
