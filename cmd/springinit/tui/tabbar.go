package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TabBar renders one tab per open file along the top of the explorer.
type TabBar struct {
	styles Styles
	tabs   []string // display names, parallel to the viewer's files
	active int
	width  int
}

// NewTabBar creates a tab bar for the given file names. Tabs show the base
// name only.
func NewTabBar(styles Styles, names []string) TabBar {
	tabs := make([]string, len(names))
	for i, n := range names {
		tabs[i] = filepath.Base(n)
	}
	return TabBar{styles: styles, tabs: tabs}
}

// SetWidth sets the available width for rendering.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// SetActive marks tab i as active.
func (t *TabBar) SetActive(i int) {
	if i >= 0 && i < len(t.tabs) {
		t.active = i
	}
}

// ActiveTab returns the active tab's label.
func (t TabBar) ActiveTab() string {
	if t.active >= 0 && t.active < len(t.tabs) {
		return t.tabs[t.active]
	}
	return ""
}

// visibleFrom returns the first tab index to draw so the active tab fits in
// the available width.
func (t TabBar) visibleFrom(parts []string) int {
	available := t.width - 2 // TabBar padding
	if available <= 0 {
		return 0
	}
	start := 0
	for start < t.active {
		w := ansi.StringWidth(strings.Join(parts[start:t.active+1], " "))
		if w <= available {
			break
		}
		start++
	}
	return start
}

// View renders the tab bar as a single line.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return t.styles.TabBar.Width(t.width).Render(t.styles.Description.Render("(no files)"))
	}
	parts := make([]string, len(t.tabs))
	for i, name := range t.tabs {
		if i == t.active {
			parts[i] = t.styles.ActiveTab.Render(name)
		} else {
			parts[i] = t.styles.InactiveTab.Render(name)
		}
	}

	start := t.visibleFrom(parts)
	row := strings.Join(parts[start:], " ")
	if start > 0 {
		row = t.styles.ScrollHint.Render("‹ ") + row
	}
	if t.width > 2 {
		row = ansi.Truncate(row, t.width-2, "›")
	}
	return t.styles.TabBar.Width(t.width).Render(row)
}
