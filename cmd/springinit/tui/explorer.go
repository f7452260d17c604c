package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/springinit/internal/explorer"
)

// gaugeWidth is the width of the scroll gauge in the footer.
const gaugeWidth = 20

// ExplorerModel is the file explorer screen: file tabs, highlighted content
// with line numbers, a scroll footer and a status bar.
type ExplorerModel struct {
	viewer *explorer.Viewer
	styles Styles
	title  string

	tabBar    TabBar
	statusBar StatusBar
	gauge     progress.Model
	overlay   Overlay

	width, height int
	ready         bool

	// Closed is set when the user leaves the explorer.
	Closed bool
}

// NewExplorerModel wires a viewer to the screen.
func NewExplorerModel(v *explorer.Viewer, styles Styles, title string) ExplorerModel {
	names := make([]string, 0, v.FileCount())
	for _, f := range v.Files() {
		names = append(names, f.Name)
	}

	gauge := progress.New(
		progress.WithSolidFill(string(styles.Theme.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(gaugeWidth),
	)
	gauge.EmptyColor = string(styles.Theme.Surface)

	m := ExplorerModel{
		viewer:    v,
		styles:    styles,
		title:     title,
		tabBar:    NewTabBar(styles, names),
		statusBar: NewStatusBar(styles),
		gauge:     gauge,
	}
	m.syncStatusBar()
	return m
}

// Viewer exposes the underlying viewer.
func (m ExplorerModel) Viewer() *explorer.Viewer { return m.viewer }

// Init satisfies tea.Model.
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.tabBar.SetWidth(m.width)
		m.statusBar.SetWidth(m.width)
		return m, nil
	}

	if m.overlay.Active() {
		var cmd tea.Cmd
		m.overlay, cmd = m.overlay.Update(msg)
		if !m.overlay.Active() {
			return m, nil
		}
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.Closed = true
		return m, tea.Quit
	case "left", "h":
		m.viewer.PreviousFile()
	case "right", "l", "tab":
		m.viewer.NextFile()
	case "up", "k":
		m.viewer.ScrollUp()
	case "down", "j":
		m.viewer.ScrollDown()
	case "pgup", "b":
		m.viewer.PageUp()
	case "pgdown", "f", " ":
		m.viewer.PageDown()
	case "home", "g":
		m.viewer.ScrollToTop()
	case "end", "G":
		m.viewer.ScrollToBottom()
	case "?":
		m.overlay = NewHelpOverlay(m.styles, "File explorer", explorerShortcuts)
		return m, nil
	}
	m.tabBar.SetActive(m.viewer.FileIndex())
	m.syncStatusBar()
	return m, nil
}

func (m *ExplorerModel) syncStatusBar() {
	left := m.title
	if name := m.viewer.FileName(); name != "" {
		left = fmt.Sprintf("%s · %s (%d/%d)", m.title, name, m.viewer.FileIndex()+1, m.viewer.FileCount())
	}
	m.statusBar.SetContent(left, []Shortcut{
		{"←→", "file"},
		{"↑↓", "scroll"},
		{"?", "help"},
		{"q", "close"},
	})
}

// contentHeight is the number of file lines that fit between the tab bar
// and the footer.
func (m ExplorerModel) contentHeight() int {
	return max(1, m.height-3) // tab bar, footer, status bar
}

// View satisfies tea.Model.
func (m ExplorerModel) View() string {
	if m.Closed {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	height := m.contentHeight()
	view := m.tabBar.View() + "\n" + m.contentView(height) + "\n" + m.footerView(height) + "\n" + m.statusBar.View()

	if m.overlay.Active() {
		return Composite(view, m.overlay.View(), m.width, m.height)
	}
	return view
}

func (m ExplorerModel) contentView(height int) string {
	lines := make([]string, 0, height)
	if m.viewer.LineCount() == 0 {
		lines = append(lines, m.styles.Description.Render("  (empty file)"))
	}
	for i, spans := range m.viewer.Highlight(height) {
		var b strings.Builder
		b.WriteString(m.styles.LineNumber.Render(fmt.Sprintf("%4d ", m.viewer.Offset()+i+1)))
		for _, s := range spans {
			b.WriteString(m.styles.Span(s.Role).Render(s.Text))
		}
		lines = append(lines, ansi.Truncate(b.String(), m.width, "…"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m ExplorerModel) footerView(height int) string {
	start, end, total := m.viewer.ScrollInfo(height)
	percent := m.viewer.ScrollPercent(height)
	info := fmt.Sprintf("Lines %d-%d of %d", start, end, total)
	return m.styles.Footer.Render(info) + "  " +
		m.gauge.ViewAs(float64(percent)/100) + " " +
		m.styles.Footer.Render(fmt.Sprintf("%3d%%", percent))
}
