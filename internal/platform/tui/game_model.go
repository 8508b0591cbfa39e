package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/games/cleanup"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

// GameModel is the Bubble Tea model for the clean-up game. Key presses
// are collected into an input frame and applied on the next tick, so the
// simulation only ever sees one command at a time.
type GameModel struct {
	game       *cleanup.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  cleanup.GameState
	keyMapper  *KeyMapper
	exitOnBack bool // Standalone play: back quits the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the finished round has been recorded
	lastRunID  string
	tickLoop   uint64
}

// NewGameModel creates a game model. A nil store disables score keeping.
func NewGameModel(game *cleanup.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		tickLoop:   newTickLoop(),
	}
}

// Init starts the first round and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)
	return tickCmd(m.tickLoop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		// Leaving mid-round abandons it without a record
		m.game.Stop()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The round keeps running;
// only the layout follows the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	m.gameState = m.game.Step(m.inputFrame)

	switch {
	case m.gameState.Finished() && !m.scoreSaved:
		m.recordScore()
		m.scoreSaved = true
	case !m.gameState.Finished():
		// A restart begins a new round to record
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickLoop, m.config.TickRate)
}

// recordScore stores the finished round. Storage is best-effort.
func (m *GameModel) recordScore() {
	if m.store == nil {
		return
	}
	st := m.gameState
	runID, err := m.store.SaveGameScore(storage.GameScore{
		Score:     st.Score,
		Outcome:   string(st.Outcome),
		Pollution: st.PollutionLevel,
		Cleared:   st.ItemsCleared,
	})
	if err == nil {
		m.lastRunID = runID
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ecoclean", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed round state.
func (m GameModel) State() cleanup.GameState {
	return m.gameState
}

// LastRunID returns the run id of the most recently recorded round.
func (m GameModel) LastRunID() string {
	return m.lastRunID
}

// Run plays the clean-up game in its own Bubble Tea program and returns
// the last state observed by the frame loop. A round abandoned mid-game
// is reported as still running.
func Run(game *cleanup.Game, store *storage.Store, cfg core.RuntimeConfig) (cleanup.GameState, error) {
	model := NewGameModel(game, store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	// Whatever stopped the program, no countdown outlives it
	game.Stop()
	if err != nil {
		return game.State(), err
	}
	if m, ok := finalModel.(GameModel); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
