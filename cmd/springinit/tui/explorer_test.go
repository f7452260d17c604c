package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ruminaider/springinit/internal/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestExplorer(t *testing.T, height int) ExplorerModel {
	t.Helper()
	var content strings.Builder
	for i := 1; i <= 50; i++ {
		fmt.Fprintf(&content, "line %d\n", i)
	}
	v := explorer.New([]explorer.File{
		{Name: "build.gradle", Content: content.String()},
		{Name: "src/main/resources/application.properties", Content: "server.port=8080\n"},
		{Name: "empty.txt", Content: ""},
	})
	m := NewExplorerModel(v, NewStyles(ThemeByName("dracula")), "demo")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: height})
	return updated.(ExplorerModel)
}

func sendExplorer(m ExplorerModel, msgs ...tea.Msg) (ExplorerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(ExplorerModel)
	}
	return m, cmd
}

func TestExplorerModel_InitialView(t *testing.T) {
	m := newTestExplorer(t, 23) // 20 content rows
	view := m.View()

	assert.Contains(t, view, "build.gradle")
	assert.Contains(t, view, "application.properties")
	assert.Contains(t, view, "   1 line 1")
	assert.Contains(t, view, "  20 line 20")
	assert.NotContains(t, view, "line 21")
	assert.Contains(t, view, "Lines 1-20 of 50")
	assert.Contains(t, view, "  0%")
	assert.Contains(t, view, "demo · build.gradle (1/3)")
}

func TestExplorerModel_Scrolling(t *testing.T) {
	m := newTestExplorer(t, 23)

	m, _ = sendExplorer(m, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Viewer().Offset())
	m, _ = sendExplorer(m, runes("k"))
	assert.Equal(t, 1, m.Viewer().Offset())

	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 21, m.Viewer().Offset())
	assert.Contains(t, m.View(), "Lines 22-41 of 50")
	assert.Contains(t, m.View(), " 70%")

	for i := 0; i < 4; i++ {
		m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, 49, m.Viewer().Offset())
	assert.Contains(t, m.View(), "Lines 50-50 of 50")
	assert.Contains(t, m.View(), "100%")

	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 29, m.Viewer().Offset())
	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Zero(t, m.Viewer().Offset())
	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 49, m.Viewer().Offset())
}

func TestExplorerModel_FileNavigation(t *testing.T) {
	m := newTestExplorer(t, 23)
	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyPgDown})

	m, _ = sendExplorer(m, runes("l"))
	assert.Equal(t, 1, m.Viewer().FileIndex())
	assert.Zero(t, m.Viewer().Offset())
	assert.Equal(t, "application.properties", m.tabBar.ActiveTab())
	assert.Contains(t, m.View(), "server.port=8080")
	assert.Contains(t, m.View(), "Lines 1-1 of 1")
	assert.Contains(t, m.View(), "100%")

	m, _ = sendExplorer(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "(empty file)")
	assert.Contains(t, m.View(), "Lines 0-0 of 0")

	m, _ = sendExplorer(m, runes("l"))
	assert.Equal(t, 2, m.Viewer().FileIndex(), "clamped at the last file")

	m, _ = sendExplorer(m, runes("h"), runes("h"), tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Viewer().FileIndex())
	assert.Equal(t, "build.gradle", m.tabBar.ActiveTab())
}

func TestExplorerModel_HelpOverlay(t *testing.T) {
	m := newTestExplorer(t, 30)
	m, _ = sendExplorer(m, runes("?"))
	require.True(t, m.overlay.Active())
	assert.Contains(t, m.View(), "previous/next file")

	m, _ = sendExplorer(m, runes("j"))
	assert.Zero(t, m.Viewer().Offset(), "overlay captures keys")

	m, cmd := sendExplorer(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlay.Active())
	assert.False(t, m.Closed, "esc closes the overlay, not the explorer")
	assert.Nil(t, cmd)
}

func TestExplorerModel_Close(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestExplorer(t, 30)
		m, cmd := sendExplorer(m, k)
		assert.True(t, m.Closed, k.String())
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.Empty(t, m.View())
	}
}

func TestExplorerModel_NoFiles(t *testing.T) {
	m := NewExplorerModel(explorer.New(nil), NewStyles(ThemeByName("")), "empty")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = updated.(ExplorerModel)
	m, _ = sendExplorer(m, runes("l"), runes("j"))
	assert.Contains(t, m.View(), "(no files)")
}
