package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm OverlayType = iota // Cancel/OK confirmation
	OverlayHelp                       // key binding reference, any close key dismisses
)

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	styles      Styles
	overlayType OverlayType
	title       string
	message     string
	shortcuts   []Shortcut
	cursor      int // Confirm: 0=Cancel, 1=OK
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
// Cancel is focused so an accidental enter keeps the current state.
func NewConfirmOverlay(styles Styles, title, message string) Overlay {
	return Overlay{
		styles:      styles,
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      0,
		active:      true,
	}
}

// NewHelpOverlay creates a key binding reference.
func NewHelpOverlay(styles Styles, title string, shortcuts []Shortcut) Overlay {
	return Overlay{
		styles:      styles,
		overlayType: OverlayHelp,
		title:       title,
		shortcuts:   shortcuts,
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Type returns the overlay kind.
func (o Overlay) Type() OverlayType {
	return o.overlayType
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch o.overlayType {
	case OverlayConfirm:
		switch key.String() {
		case "esc", "n":
			return o.close(false)
		case "y":
			return o.close(true)
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor
		case "enter":
			return o.close(o.cursor == 1)
		}
	case OverlayHelp:
		switch key.String() {
		case "esc", "q", "?", "enter":
			return o.close(false)
		}
	}
	return o, nil
}

func (o Overlay) close(confirmed bool) (Overlay, tea.Cmd) {
	o.active = false
	return o, func() tea.Msg {
		return OverlayCloseMsg{Confirmed: confirmed}
	}
}

// View renders the overlay box. Compositing over a background is done by
// Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(o.styles.OverlayTitle.Render(o.title))
	b.WriteString("\n\n")

	switch o.overlayType {
	case OverlayConfirm:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons("Cancel", "OK"))
	case OverlayHelp:
		keyWidth := 0
		for _, sc := range o.shortcuts {
			keyWidth = max(keyWidth, ansi.StringWidth(sc.Key))
		}
		for i, sc := range o.shortcuts {
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(sc.Key))
			b.WriteString(o.styles.OverlayKey.Render(sc.Key) + pad + "  " + sc.Action)
			if i < len(o.shortcuts)-1 {
				b.WriteString("\n")
			}
		}
	}

	return o.styles.Overlay.Render(b.String())
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	if o.cursor == 0 {
		return o.styles.OverlayButtonActive.Render(cancel) + "  " + o.styles.OverlayButtonInactive.Render(ok)
	}
	return o.styles.OverlayButtonInactive.Render(cancel) + "  " + o.styles.OverlayButtonActive.Render(ok)
}

// Composite places the overlay box centered on top of the background.
// Background cells covered by the box are replaced; the rest is kept,
// including its styling.
func Composite(background, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	startRow := max(0, (totalHeight-len(overlayLines))/2)
	startCol := max(0, (totalWidth-overlayWidth)/2)

	for i, line := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		bgWidth := ansi.StringWidth(bg)

		left := ansi.Truncate(bg, startCol, "")
		if w := ansi.StringWidth(left); w < startCol {
			left += strings.Repeat(" ", startCol-w)
		}
		right := ""
		if end := startCol + ansi.StringWidth(line); end < bgWidth {
			right = ansi.TruncateLeft(bg, end, "")
		}
		bgLines[row] = left + line + right
	}

	if totalHeight > 0 && len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}
