package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/springinit/internal/explorer"
)

// SidebarWidth is the fixed width of the category sidebar.
const SidebarWidth = 28

// Styles holds every lipgloss style a screen renders with, derived from one
// Theme.
type Styles struct {
	Theme Theme

	// Picker content.
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	CursorRow   lipgloss.Style
	Description lipgloss.Style
	RecentTag   lipgloss.Style
	ScrollHint  lipgloss.Style
	ContentPane lipgloss.Style
	SearchBox   lipgloss.Style

	// Tab bar.
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabBar      lipgloss.Style

	// Sidebar.
	ActiveSidebar    lipgloss.Style
	InactiveSidebar  lipgloss.Style
	EmptySidebar     lipgloss.Style
	SidebarContainer lipgloss.Style

	// Status bar.
	StatusBar    lipgloss.Style
	StatusBarKey lipgloss.Style

	// Overlays.
	Overlay               lipgloss.Style
	OverlayTitle          lipgloss.Style
	OverlayKey            lipgloss.Style
	OverlayButtonActive   lipgloss.Style
	OverlayButtonInactive lipgloss.Style

	// Explorer.
	LineNumber lipgloss.Style
	Footer     lipgloss.Style
	Comment    lipgloss.Style
	Keyword    lipgloss.Style
	Attribute  lipgloss.Style
	String     lipgloss.Style
	PlainText  lipgloss.Style
}

// NewStyles derives the style set for t.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Title:       lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(t.PrimaryDim),
		Header:      lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(t.Success),
		Unselected:  lipgloss.NewStyle().Foreground(t.Text),
		CursorRow:   lipgloss.NewStyle().Foreground(t.PrimaryBright).Bold(true),
		Description: lipgloss.NewStyle().Foreground(t.TextDim),
		RecentTag:   lipgloss.NewStyle().Foreground(t.Accent).Italic(true),
		ScrollHint:  lipgloss.NewStyle().Foreground(t.TextDim),
		ContentPane: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Primary).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Background(t.Surface).
			Padding(0, 1),

		ActiveSidebar: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Surface).
			Bold(true).
			PaddingLeft(1),
		InactiveSidebar: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingLeft(1),
		EmptySidebar: lipgloss.NewStyle().
			Foreground(t.TextDim).
			PaddingLeft(1),
		SidebarContainer: lipgloss.NewStyle().
			Width(SidebarWidth).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.PrimaryDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Padding(0, 1),
		StatusBarKey: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Surface).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Foreground(t.Text).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		OverlayKey: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		OverlayButtonActive: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Primary).
			Padding(0, 2),
		OverlayButtonInactive: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 2),

		LineNumber: lipgloss.NewStyle().Foreground(t.TextDim),
		Footer:     lipgloss.NewStyle().Foreground(t.TextDim),
		Comment:    lipgloss.NewStyle().Foreground(t.Comment).Italic(true),
		Keyword:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Attribute:  lipgloss.NewStyle().Foreground(t.Secondary),
		String:     lipgloss.NewStyle().Foreground(t.Accent),
		PlainText:  lipgloss.NewStyle().Foreground(t.Text),
	}
}

// Span returns the style for a highlighted span role.
func (s Styles) Span(role explorer.Role) lipgloss.Style {
	switch role {
	case explorer.RoleComment:
		return s.Comment
	case explorer.RoleKeyword:
		return s.Keyword
	case explorer.RoleAttribute:
		return s.Attribute
	case explorer.RoleString:
		return s.String
	}
	return s.PlainText
}
