package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, config.DefaultCleanupConfig(), core.DefaultConfig(), "tester", nil)

	// Menu -> quiz -> menu
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenQuiz {
		t.Fatalf("screen = %d, want quiz", m.screen)
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu after leaving the quiz", m.screen)
	}

	// Menu -> game -> menu
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	game := m.game.game
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatalf("screen = %d, want menu after leaving the game", m.screen)
	}
	if !game.State().Finished() {
		t.Error("leaving the game should stop its round")
	}

	// Tab opens scores; Esc comes back without ending the session
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatal("Esc on the scoreboard should return to the menu")
	}

	m, _ = sendSession(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q on the menu should end the session")
	}
}
