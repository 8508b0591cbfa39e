package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

func TestTipsModelBrowse(t *testing.T) {
	m := NewTipsModel(core.DefaultConfig())
	first := m.Selected().Title

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(TipsModel)
	if m.cursor != len(m.tips)-1 {
		t.Errorf("cursor = %d, want wrap to the last tip", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(TipsModel)
	if m.Selected().Title != first {
		t.Errorf("Selected() = %q, want %q", m.Selected().Title, first)
	}
	if !strings.Contains(m.View(), "Tip 1 of 11") {
		t.Error("view should show the tip position")
	}
}

func TestSessionTipsScreen(t *testing.T) {
	m := NewSessionModel(nil, config.DefaultCleanupConfig(), core.DefaultConfig(), "tester", nil)
	for range 3 {
		m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenTips {
		t.Fatalf("screen = %d, want tips", m.screen)
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("Esc on the tips screen should return to the menu")
	}
}
