package picker

import (
	"strings"

	"github.com/ruminaider/springinit/internal/catalog"
)

// Selection is the caller-owned set of selected dependency ids.
type Selection interface {
	Toggle(id string)
	IsSelected(id string) bool
}

// Entry is one row of the flattened list: a category header or a dependency.
type Entry struct {
	Category   string
	Dependency catalog.Dependency // zero for headers
	IsHeader   bool
	Recent     bool // part of the most recent selection; display only
}

// List flattens a categorized catalog into a navigable sequence of headers
// and leaves. The cursor only ever rests on a leaf.
type List struct {
	categories []catalog.Category
	selection  Selection
	recent     map[string]bool

	query       string
	categoryIdx int // -1 = all categories

	entries []Entry
	cursor  int
}

// New builds an unfiltered list. recent is the most recent selection from
// the preference store, read once here; it may be nil.
func New(categories []catalog.Category, selection Selection, recent []string) *List {
	l := &List{
		categories:  categories,
		selection:   selection,
		recent:      make(map[string]bool, len(recent)),
		categoryIdx: -1,
	}
	for _, id := range recent {
		l.recent[id] = true
	}
	l.rebuild()
	return l
}

// SetFilter replaces the text filter and moves the cursor to the first leaf.
func (l *List) SetFilter(query string) {
	l.query = strings.ToLower(strings.TrimSpace(query))
	l.rebuild()
}

// Query returns the normalized text filter.
func (l *List) Query() string { return l.query }

// CycleCategory steps the category restriction: all, then each category in
// catalog order, then back to all.
func (l *List) CycleCategory() {
	if len(l.categories) == 0 {
		return
	}
	l.categoryIdx++
	if l.categoryIdx >= len(l.categories) {
		l.categoryIdx = -1
	}
	l.rebuild()
}

// ClearCategory removes the category restriction.
func (l *List) ClearCategory() {
	if l.categoryIdx == -1 {
		return
	}
	l.categoryIdx = -1
	l.rebuild()
}

// HasCategoryFilter reports whether a single category is active.
func (l *List) HasCategoryFilter() bool { return l.categoryIdx >= 0 }

// ActiveCategory returns the restricting category name, or "" for all.
func (l *List) ActiveCategory() string {
	if l.categoryIdx < 0 {
		return ""
	}
	return l.categories[l.categoryIdx].Name
}

// Categories returns the full catalog the list was built from.
func (l *List) Categories() []catalog.Category { return l.categories }

// MatchCount returns how many dependencies of the named category pass the
// text filter, ignoring the category restriction.
func (l *List) MatchCount(category string) int {
	for _, c := range l.categories {
		if c.Name != category {
			continue
		}
		n := 0
		for _, d := range c.Values {
			if l.matches(d) {
				n++
			}
		}
		return n
	}
	return 0
}

// Entries returns the flattened sequence. Callers must not modify it.
func (l *List) Entries() []Entry { return l.entries }

// Len returns the number of flattened entries.
func (l *List) Len() int { return len(l.entries) }

// Cursor returns the cursor index into Entries.
func (l *List) Cursor() int { return l.cursor }

// Current returns the entry under the cursor.
func (l *List) Current() (Entry, bool) {
	if l.cursor < 0 || l.cursor >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[l.cursor], true
}

// AtTop reports whether no leaf exists above the cursor.
func (l *List) AtTop() bool {
	return l.nextLeaf(l.cursor, -1) < 0
}

// MoveUp moves the cursor to the previous leaf; no-op at the first leaf.
func (l *List) MoveUp() {
	if next := l.nextLeaf(l.cursor, -1); next >= 0 {
		l.cursor = next
	}
}

// MoveDown moves the cursor to the next leaf; no-op at the last leaf.
func (l *List) MoveDown() {
	if next := l.nextLeaf(l.cursor, +1); next >= 0 {
		l.cursor = next
	}
}

// Toggle flips the selection of the dependency under the cursor.
func (l *List) Toggle() {
	e, ok := l.Current()
	if !ok || e.IsHeader || l.selection == nil {
		return
	}
	l.selection.Toggle(e.Dependency.ID)
}

// IsSelected reports whether id is in the caller's selection.
func (l *List) IsSelected(id string) bool {
	return l.selection != nil && l.selection.IsSelected(id)
}

// IsRecent reports whether id was part of the most recent selection.
func (l *List) IsRecent(id string) bool { return l.recent[id] }

// Window returns the half-open range [start, end) of entries to draw in a
// viewport of height rows. The cursor stays inside the window with up to
// height/2 rows of lookback; near the tail the window is filled backwards.
func (l *List) Window(height int) (start, end int) {
	return window(len(l.entries), l.cursor, height)
}

func window(n, cursor, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start = cursor - height/2
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > n {
		end = n
		start = end - height
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// nextLeaf returns the index of the nearest leaf strictly after (dir > 0) or
// before (dir < 0) from, or -1 when there is none.
func (l *List) nextLeaf(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(l.entries); i += dir {
		if !l.entries[i].IsHeader {
			return i
		}
	}
	return -1
}

func (l *List) rebuild() {
	l.entries = nil
	showRecent := l.query == ""
	for i, c := range l.categories {
		if l.categoryIdx >= 0 && i != l.categoryIdx {
			continue
		}
		headerAdded := false
		for _, d := range c.Values {
			if !l.matches(d) {
				continue
			}
			if !headerAdded {
				l.entries = append(l.entries, Entry{Category: c.Name, IsHeader: true})
				headerAdded = true
			}
			l.entries = append(l.entries, Entry{
				Category:   c.Name,
				Dependency: d,
				Recent:     showRecent && l.recent[d.ID],
			})
		}
	}

	l.cursor = 0
	if len(l.entries) > 0 && l.entries[0].IsHeader {
		if first := l.nextLeaf(0, +1); first >= 0 {
			l.cursor = first
		}
	}
}

func (l *List) matches(d catalog.Dependency) bool {
	if l.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), l.query) ||
		strings.Contains(strings.ToLower(d.Description), l.query) ||
		strings.Contains(strings.ToLower(d.ID), l.query)
}
