package tui

// FocusZone identifies which part of the picker has keyboard focus.
type FocusZone int

const (
	FocusList   FocusZone = iota
	FocusSearch           // search input captures typing
)

// overlayContext records what an open overlay was opened for.
type overlayContext int

const (
	overlayNone overlayContext = iota
	overlayHelp
	overlayClearConfirm
)

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Confirmed bool // true = OK, false = Cancel/Esc
}

// Shortcut is a key and the action it triggers, for status bars and help.
type Shortcut struct {
	Key    string
	Action string
}

var pickerShortcuts = []Shortcut{
	{"↑/k ↓/j", "move"},
	{"space/enter", "toggle"},
	{"/", "search"},
	{"esc", "clear search"},
	{"c", "cycle category"},
	{"x", "clear selection"},
	{"g", "generate"},
	{"?", "help"},
	{"q", "quit"},
}

var explorerShortcuts = []Shortcut{
	{"←/h →/l", "previous/next file"},
	{"↑/k ↓/j", "scroll"},
	{"pgup pgdown", "page"},
	{"home end", "top/bottom"},
	{"?", "help"},
	{"q/esc", "close"},
}
