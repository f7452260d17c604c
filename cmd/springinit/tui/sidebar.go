package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// allCategoriesLabel is the sidebar row for "no category restriction".
const allCategoriesLabel = "All"

// SidebarEntry holds display data for one category in the sidebar.
type SidebarEntry struct {
	Name     string
	Selected int // selected dependencies in this category
	Matches  int // dependencies passing the text filter
}

// Sidebar renders the category list next to the picker. It follows the
// picker's category restriction; it does not take focus.
type Sidebar struct {
	styles  Styles
	entries []SidebarEntry // entries[0] is always "All"
	active  int
	height  int
}

// NewSidebar creates a sidebar with an "All" row followed by categories.
func NewSidebar(styles Styles, categories []string) Sidebar {
	entries := make([]SidebarEntry, 0, len(categories)+1)
	entries = append(entries, SidebarEntry{Name: allCategoriesLabel})
	for _, c := range categories {
		entries = append(entries, SidebarEntry{Name: c})
	}
	return Sidebar{styles: styles, entries: entries}
}

// SetHeight sets the available height for rendering.
func (s *Sidebar) SetHeight(h int) {
	s.height = h
}

// SetActive highlights the named category; "" highlights All.
func (s *Sidebar) SetActive(category string) {
	if category == "" {
		s.active = 0
		return
	}
	for i, e := range s.entries {
		if i > 0 && e.Name == category {
			s.active = i
			return
		}
	}
}

// ActiveCategory returns the highlighted category, or "" for All.
func (s Sidebar) ActiveCategory() string {
	if s.active <= 0 || s.active >= len(s.entries) {
		return ""
	}
	return s.entries[s.active].Name
}

// UpdateCounts sets the counts for a category; the All row is recomputed.
func (s *Sidebar) UpdateCounts(category string, selected, matches int) {
	for i := 1; i < len(s.entries); i++ {
		if s.entries[i].Name == category {
			s.entries[i].Selected = selected
			s.entries[i].Matches = matches
			break
		}
	}
	s.entries[0].Selected, s.entries[0].Matches = 0, 0
	for _, e := range s.entries[1:] {
		s.entries[0].Selected += e.Selected
		s.entries[0].Matches += e.Matches
	}
}

// View renders the sidebar as a vertical list with right-aligned counts.
// Rows beyond the height are scrolled so the active row stays visible.
func (s Sidebar) View() string {
	textWidth := SidebarWidth - 1 // minus PaddingLeft(1)

	start := 0
	if s.height > 0 && s.active >= s.height {
		start = s.active - s.height + 1
	}

	lines := make([]string, 0, s.height)
	for i := start; i < len(s.entries); i++ {
		if s.height > 0 && len(lines) >= s.height {
			break
		}
		e := s.entries[i]
		count := fmt.Sprintf("%d", e.Matches)
		if e.Selected > 0 {
			count = fmt.Sprintf("%d/%d", e.Selected, e.Matches)
		}
		name := ansi.Truncate(e.Name, max(1, textWidth-len(count)-1), "…")
		gap := textWidth - ansi.StringWidth(name) - len(count)
		if gap < 1 {
			gap = 1
		}
		label := name + strings.Repeat(" ", gap) + count

		switch {
		case i == s.active:
			lines = append(lines, s.styles.ActiveSidebar.Width(SidebarWidth).Render(label))
		case e.Matches == 0:
			lines = append(lines, s.styles.EmptySidebar.Width(SidebarWidth).Render(label))
		default:
			lines = append(lines, s.styles.InactiveSidebar.Width(SidebarWidth).Render(label))
		}
	}

	for len(lines) < s.height {
		lines = append(lines, "")
	}

	return s.styles.SidebarContainer.
		Height(s.height).
		Render(strings.Join(lines, "\n"))
}
