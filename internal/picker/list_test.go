package picker

import (
	"strings"
	"testing"

	"github.com/ruminaider/springinit/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// set is a minimal Selection for tests.
type set map[string]bool

func (s set) Toggle(id string) {
	if s[id] {
		delete(s, id)
		return
	}
	s[id] = true
}

func (s set) IsSelected(id string) bool { return s[id] }

func webDataCatalog() []catalog.Category {
	return []catalog.Category{
		{Name: "Web", Values: []catalog.Dependency{
			{ID: "web", Name: "Web", Description: "Spring Web"},
		}},
		{Name: "Data", Values: []catalog.Dependency{
			{ID: "jpa", Name: "JPA", Description: "Spring Data JPA"},
		}},
	}
}

func bigCatalog() []catalog.Category {
	return []catalog.Category{
		{Name: "Developer Tools", Values: []catalog.Dependency{
			{ID: "devtools", Name: "Spring Boot DevTools", Description: "Fast application restarts"},
			{ID: "lombok", Name: "Lombok", Description: "Annotation library"},
		}},
		{Name: "Web", Values: []catalog.Dependency{
			{ID: "web", Name: "Spring Web", Description: "Build web, including RESTful, applications"},
			{ID: "webflux", Name: "Spring Reactive Web"},
			{ID: "graphql", Name: "Spring for GraphQL"},
		}},
		{Name: "SQL", Values: []catalog.Dependency{
			{ID: "data-jpa", Name: "Spring Data JPA", Description: "Persist data in SQL stores"},
			{ID: "postgresql", Name: "PostgreSQL Driver"},
		}},
		{Name: "Empty", Values: nil},
	}
}

func assertCursorOnLeaf(t *testing.T, l *List) {
	t.Helper()
	if l.Len() == 0 {
		assert.Equal(t, 0, l.Cursor())
		return
	}
	e, ok := l.Current()
	require.True(t, ok)
	assert.False(t, e.IsHeader, "cursor rests on header at %d", l.Cursor())
}

func TestNew_FlattensCatalog(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)

	// 3 non-empty categories -> 3 headers + 7 leaves; the empty category has no header.
	require.Equal(t, 10, l.Len())
	assert.True(t, l.Entries()[0].IsHeader)
	assert.Equal(t, "Developer Tools", l.Entries()[0].Category)
	assert.Equal(t, "devtools", l.Entries()[1].Dependency.ID)
	for _, e := range l.Entries() {
		assert.NotEqual(t, "Empty", e.Category)
	}
	assert.Equal(t, 1, l.Cursor())
}

func TestSetFilter_Scenario(t *testing.T) {
	l := New(webDataCatalog(), set{}, nil)
	l.SetFilter("data")

	require.Equal(t, 2, l.Len())
	assert.Equal(t, Entry{Category: "Data", IsHeader: true}, l.Entries()[0])
	assert.Equal(t, "jpa", l.Entries()[1].Dependency.ID)
	assert.Equal(t, 1, l.Cursor())

	e, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "jpa", e.Dependency.ID)
}

func TestSetFilter_NormalizesQuery(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	l.SetFilter("  POSTGRES ")
	assert.Equal(t, "postgres", l.Query())
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "postgresql", l.Entries()[1].Dependency.ID)
}

func TestSetFilter_MatchesNameDescriptionOrID(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)

	l.SetFilter("restful") // description only
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "web", l.Entries()[1].Dependency.ID)

	l.SetFilter("data-jpa") // id only
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "data-jpa", l.Entries()[1].Dependency.ID)

	l.SetFilter("lombok") // name
	require.Equal(t, 2, l.Len())
}

func TestSetFilter_Invariants(t *testing.T) {
	queries := []string{"", "spring", "web", "data", "s", "driver", "zzz", "e", "  JPA "}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			l := New(bigCatalog(), set{}, nil)
			l.SetFilter(q)
			norm := strings.ToLower(strings.TrimSpace(q))

			entries := l.Entries()
			for i, e := range entries {
				if e.IsHeader {
					// Every header is immediately followed by a leaf of its category.
					require.Less(t, i+1, len(entries), "trailing header")
					assert.False(t, entries[i+1].IsHeader)
					assert.Equal(t, e.Category, entries[i+1].Category)
					continue
				}
				d := e.Dependency
				hit := strings.Contains(strings.ToLower(d.Name), norm) ||
					strings.Contains(strings.ToLower(d.Description), norm) ||
					strings.Contains(strings.ToLower(d.ID), norm)
				assert.True(t, hit, "%s does not match %q", d.ID, q)
			}

			// No category with matches is missing a header.
			headers := map[string]bool{}
			for _, e := range entries {
				if e.IsHeader {
					headers[e.Category] = true
				}
			}
			for _, c := range bigCatalog() {
				assert.Equal(t, l.MatchCount(c.Name) > 0, headers[c.Name], c.Name)
			}
			assertCursorOnLeaf(t, l)
		})
	}
}

func TestSetFilter_NoMatches(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	l.SetFilter("zzz")
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cursor())

	l.MoveDown()
	l.MoveUp()
	assert.Equal(t, 0, l.Cursor())

	sel := set{}
	l2 := New(bigCatalog(), sel, nil)
	l2.SetFilter("zzz")
	l2.Toggle()
	assert.Empty(t, sel)
}

func TestEmptyCatalog(t *testing.T) {
	sel := set{}
	l := New(nil, sel, nil)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cursor())
	l.MoveDown()
	l.MoveUp()
	l.Toggle()
	l.CycleCategory()
	assert.Equal(t, 0, l.Cursor())
	assert.Empty(t, sel)
	assert.True(t, l.AtTop())
	_, ok := l.Current()
	assert.False(t, ok)
}

func TestNavigation_SkipsHeadersAndClamps(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	// [0 H devtools-cat] [1 devtools] [2 lombok] [3 H web] [4 web] [5 webflux] [6 graphql] [7 H sql] [8 data-jpa] [9 postgresql]
	assert.Equal(t, 1, l.Cursor())
	assert.True(t, l.AtTop())

	l.MoveUp()
	assert.Equal(t, 1, l.Cursor(), "moving up from the first leaf is a no-op")

	l.MoveDown()
	assert.Equal(t, 2, l.Cursor())
	l.MoveDown()
	assert.Equal(t, 4, l.Cursor(), "header at 3 skipped")
	assert.False(t, l.AtTop())

	for i := 0; i < 20; i++ {
		l.MoveDown()
		assertCursorOnLeaf(t, l)
	}
	assert.Equal(t, 9, l.Cursor())

	l.MoveUp()
	l.MoveUp()
	assert.Equal(t, 6, l.Cursor(), "header at 7 skipped")

	for i := 0; i < 20; i++ {
		l.MoveUp()
		assertCursorOnLeaf(t, l)
	}
	assert.Equal(t, 1, l.Cursor())
}

func TestNavigation_SingleLeaf(t *testing.T) {
	l := New([]catalog.Category{{Name: "Only", Values: []catalog.Dependency{{ID: "x", Name: "X"}}}}, set{}, nil)
	require.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.Cursor())
	l.MoveDown()
	assert.Equal(t, 1, l.Cursor())
	l.MoveUp()
	assert.Equal(t, 1, l.Cursor())
}

func TestToggle(t *testing.T) {
	sel := set{}
	l := New(webDataCatalog(), sel, nil)

	l.Toggle()
	assert.True(t, sel["web"])
	assert.True(t, l.IsSelected("web"))

	l.Toggle()
	assert.False(t, sel["web"], "toggling twice restores membership")

	l.Toggle()
	l.Toggle()
	l.Toggle()
	assert.True(t, sel["web"], "toggling three times equals toggling once")

	l.MoveDown()
	l.Toggle()
	assert.True(t, sel["jpa"])
}

func TestToggle_NilSelection(t *testing.T) {
	l := New(webDataCatalog(), nil, nil)
	l.Toggle()
	assert.False(t, l.IsSelected("web"))
}

func TestCycleCategory(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	assert.False(t, l.HasCategoryFilter())
	assert.Equal(t, "", l.ActiveCategory())

	l.CycleCategory()
	assert.True(t, l.HasCategoryFilter())
	assert.Equal(t, "Developer Tools", l.ActiveCategory())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Cursor())

	l.CycleCategory()
	assert.Equal(t, "Web", l.ActiveCategory())
	assert.Equal(t, 4, l.Len())

	l.CycleCategory()
	l.CycleCategory()
	assert.Equal(t, "Empty", l.ActiveCategory())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cursor())

	l.CycleCategory()
	assert.False(t, l.HasCategoryFilter())
	assert.Equal(t, 10, l.Len())
}

func TestCycleCategory_IntersectsWithFilter(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	l.SetFilter("spring")
	l.CycleCategory() // Developer Tools
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "devtools", l.Entries()[1].Dependency.ID)

	l.CycleCategory() // Web: all three names contain "spring"
	assert.Equal(t, 4, l.Len())

	l.SetFilter("graphql")
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "graphql", l.Entries()[1].Dependency.ID)

	l.ClearCategory()
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.MatchCount("Web"))
	assert.Zero(t, l.MatchCount("SQL"))
	assert.Zero(t, l.MatchCount("Nope"))
}

func TestRecent_AnnotatesWithoutReordering(t *testing.T) {
	plain := New(bigCatalog(), set{}, nil)
	l := New(bigCatalog(), set{}, []string{"postgresql", "lombok"})

	require.Equal(t, plain.Len(), l.Len())
	for i := range l.Entries() {
		assert.Equal(t, plain.Entries()[i].Dependency.ID, l.Entries()[i].Dependency.ID)
	}
	assert.True(t, l.Entries()[2].Recent)  // lombok
	assert.True(t, l.Entries()[9].Recent)  // postgresql
	assert.False(t, l.Entries()[1].Recent) // devtools
	assert.True(t, l.IsRecent("lombok"))
	assert.False(t, l.IsRecent("web"))
}

func TestRecent_SuppressedWhileFiltering(t *testing.T) {
	l := New(bigCatalog(), set{}, []string{"postgresql"})
	l.SetFilter("postgres")
	require.Equal(t, 2, l.Len())
	assert.False(t, l.Entries()[1].Recent)

	l.SetFilter("")
	assert.True(t, l.Entries()[9].Recent)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name              string
		n, cursor, height int
		start, end        int
	}{
		{"empty", 0, 0, 20, 0, 0},
		{"zero height", 5, 2, 0, 0, 0},
		{"fits", 5, 3, 20, 0, 5},
		{"top", 50, 1, 20, 0, 20},
		{"middle", 50, 25, 20, 15, 35},
		{"tail fills backwards", 50, 48, 20, 30, 50},
		{"last", 50, 49, 20, 30, 50},
		{"height one", 50, 7, 1, 7, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.n, tt.cursor, tt.height)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			if tt.n > 0 && tt.height > 0 {
				assert.GreaterOrEqual(t, tt.cursor, start)
				assert.Less(t, tt.cursor, end)
			}
		})
	}
}

func TestListWindow_FollowsCursor(t *testing.T) {
	l := New(bigCatalog(), set{}, nil)
	for i := 0; i < 10; i++ {
		start, end := l.Window(3)
		assert.GreaterOrEqual(t, l.Cursor(), start)
		assert.Less(t, l.Cursor(), end)
		assert.LessOrEqual(t, end-start, 3)
		l.MoveDown()
	}
}
