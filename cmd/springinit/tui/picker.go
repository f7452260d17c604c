package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/springinit/internal/picker"
)

// Selection is the project-owned dependency selection the picker edits.
type Selection interface {
	picker.Selection
	SelectedCount() int
	ClearDependencies()
}

// PickerModel is the dependency picker screen: search bar, category sidebar,
// the flattened dependency list and a status bar.
type PickerModel struct {
	list      *picker.List
	selection Selection
	styles    Styles
	title     string

	search textinput.Model
	focus  FocusZone

	sidebar   Sidebar
	statusBar StatusBar

	overlay    Overlay
	overlayCtx overlayContext

	width, height int
	ready         bool

	// Committed is set when the user asks to generate with the current
	// selection; Quit is set when the user leaves without committing.
	Committed bool
	Quit      bool
}

// NewPickerModel wires a picker list to the screen. The list must be built
// over sel.
func NewPickerModel(list *picker.List, sel Selection, styles Styles, title string) PickerModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter dependencies"
	ti.CharLimit = 64
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Theme.Primary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.Theme.Text)

	names := make([]string, 0, len(list.Categories()))
	for _, c := range list.Categories() {
		names = append(names, c.Name)
	}

	m := PickerModel{
		list:      list,
		selection: sel,
		styles:    styles,
		title:     title,
		search:    ti,
		sidebar:   NewSidebar(styles, names),
		statusBar: NewStatusBar(styles),
	}
	m.syncSidebar()
	m.syncStatusBar()
	return m
}

// List exposes the underlying picker list.
func (m PickerModel) List() *picker.List { return m.list }

// Focus returns the focused zone.
func (m PickerModel) Focus() FocusZone { return m.focus }

// OverlayActive reports whether a modal is open.
func (m PickerModel) OverlayActive() bool { return m.overlay.Active() }

// Init satisfies tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil
	}

	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == FocusSearch {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.Quit = true
		return m, tea.Quit
	}
	if m.focus == FocusSearch {
		return m.updateSearch(key)
	}

	switch key.String() {
	case "q":
		m.Quit = true
		return m, tea.Quit
	case "up", "k":
		m.list.MoveUp()
	case "down", "j":
		m.list.MoveDown()
	case " ", "enter":
		m.list.Toggle()
	case "/":
		m.focus = FocusSearch
		cmd := m.search.Focus()
		m.syncStatusBar()
		return m, cmd
	case "esc":
		if m.list.Query() != "" {
			m.search.SetValue("")
			m.list.SetFilter("")
		} else {
			m.list.ClearCategory()
		}
	case "c":
		m.list.CycleCategory()
	case "x":
		if m.selection.SelectedCount() > 0 {
			m.overlay = NewConfirmOverlay(m.styles, "Clear selection",
				fmt.Sprintf("Deselect all %d dependencies?", m.selection.SelectedCount()))
			m.overlayCtx = overlayClearConfirm
		}
		return m, nil
	case "g":
		m.Committed = true
		return m, tea.Quit
	case "?":
		m.overlay = NewHelpOverlay(m.styles, "Dependency picker", pickerShortcuts)
		m.overlayCtx = overlayHelp
		return m, nil
	}
	m.syncSidebar()
	m.syncStatusBar()
	return m, nil
}

// updateSearch handles keys while the search input has focus. Navigation
// keys still move the list so results can be browsed while typing.
func (m PickerModel) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.focus = FocusList
		m.search.Blur()
		m.search.SetValue("")
		m.list.SetFilter("")
	case "enter":
		m.focus = FocusList
		m.search.Blur()
	case "up":
		m.list.MoveUp()
	case "down":
		m.list.MoveDown()
	default:
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(key)
		if m.search.Value() != before {
			m.list.SetFilter(m.search.Value())
		}
		m.syncSidebar()
		m.syncStatusBar()
		return m, cmd
	}
	m.syncSidebar()
	m.syncStatusBar()
	return m, nil
}

func (m PickerModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// Handle the close directly instead of round-tripping the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg, ok := cmd().(OverlayCloseMsg); ok {
			return m.handleOverlayClose(closeMsg), nil
		}
	}
	return m, cmd
}

func (m PickerModel) handleOverlayClose(msg OverlayCloseMsg) PickerModel {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone
	if ctx == overlayClearConfirm && msg.Confirmed {
		m.selection.ClearDependencies()
		m.syncSidebar()
		m.syncStatusBar()
	}
	return m
}

// --- Layout ---

// chromeHeight is the number of rows outside the list: title, search box
// (three rows with border) and status bar.
const chromeHeight = 5

func (m *PickerModel) distributeSize() {
	m.statusBar.SetWidth(m.width)
	m.sidebar.SetHeight(m.bodyHeight())
	m.search.Width = max(10, m.width-SidebarWidth-10)
}

func (m PickerModel) bodyHeight() int {
	return max(1, m.height-chromeHeight)
}

func (m PickerModel) contentWidth() int {
	return max(10, m.width-SidebarWidth-1)
}

func (m *PickerModel) syncSidebar() {
	m.sidebar.SetActive(m.list.ActiveCategory())
	for _, c := range m.list.Categories() {
		selected := 0
		for _, d := range c.Values {
			if m.selection.IsSelected(d.ID) {
				selected++
			}
		}
		m.sidebar.UpdateCounts(c.Name, selected, m.list.MatchCount(c.Name))
	}
}

func (m *PickerModel) syncStatusBar() {
	left := fmt.Sprintf("%d selected", m.selection.SelectedCount())
	if c := m.list.ActiveCategory(); c != "" {
		left += " · " + c
	}
	if q := m.list.Query(); q != "" {
		left += fmt.Sprintf(" · %q", q)
	}
	shortcuts := []Shortcut{
		{"space", "toggle"},
		{"/", "search"},
		{"c", "category"},
		{"g", "generate"},
		{"?", "help"},
	}
	if m.focus == FocusSearch {
		shortcuts = []Shortcut{{"enter", "done"}, {"esc", "clear"}, {"↑↓", "move"}}
	}
	m.statusBar.SetContent(left, shortcuts)
}

// --- View ---

// View satisfies tea.Model.
func (m PickerModel) View() string {
	if m.Committed || m.Quit {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	title := m.styles.Title.Render(m.title)
	searchBox := m.styles.SearchBox.Width(m.width - 2).Render(m.search.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), m.listView(m.bodyHeight(), m.contentWidth()))
	view := title + "\n" + searchBox + "\n" + body + "\n" + m.statusBar.View()

	if m.overlay.Active() {
		return Composite(view, m.overlay.View(), m.width, m.height)
	}
	return view
}

// listView renders the flattened list windowed around the cursor, with
// scroll markers taking a row each when there is more above or below.
func (m PickerModel) listView(height, width int) string {
	if m.list.Len() == 0 {
		msg := "(no dependencies)"
		if m.list.Query() != "" {
			msg = fmt.Sprintf("(no dependencies match %q)", m.list.Query())
		}
		return m.styles.ContentPane.Height(height).Render(m.styles.Description.Render(msg))
	}

	rows := height
	if m.list.Len() > height {
		rows = max(1, height-2)
	}
	start, end := m.list.Window(rows)
	textWidth := max(1, width-2) // ContentPane padding

	var b strings.Builder
	if start > 0 {
		b.WriteString(m.styles.ScrollHint.Render("  ↑ more") + "\n")
	}
	entries := m.list.Entries()
	for i := start; i < end; i++ {
		b.WriteString(m.renderEntry(entries[i], i == m.list.Cursor(), textWidth))
		b.WriteString("\n")
	}
	if end < m.list.Len() {
		b.WriteString(m.styles.ScrollHint.Render("  ↓ more") + "\n")
	}

	return m.styles.ContentPane.Height(height).Render(strings.TrimRight(b.String(), "\n"))
}

func (m PickerModel) renderEntry(e picker.Entry, atCursor bool, width int) string {
	if e.IsHeader {
		return m.styles.Header.Render(fmt.Sprintf("── %s ──", e.Category))
	}

	cursor := "  "
	if atCursor {
		cursor = m.styles.CursorRow.Render("> ")
	}
	checkbox := m.styles.Unselected.Render("[ ]")
	if m.list.IsSelected(e.Dependency.ID) {
		checkbox = m.styles.Selected.Render("[x]")
	}
	name := e.Dependency.Name
	if atCursor {
		name = m.styles.CursorRow.Render(name)
	}
	line := cursor + checkbox + " " + name
	if e.Recent {
		line += "  " + m.styles.RecentTag.Render("recent")
	}
	if d := e.Dependency.Description; d != "" {
		line += "  " + m.styles.Description.Render(d)
	}
	return ansi.Truncate(line, width, "…")
}
