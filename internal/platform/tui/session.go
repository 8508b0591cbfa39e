package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/games/cleanup"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenQuiz
	screenGame
	screenScores
	screenTips
)

// SessionModel manages the full session flow: menu -> quiz, game,
// scores or tips -> menu. It is the top-level model of SSH sessions.
type SessionModel struct {
	store      *storage.Store
	gameConfig config.CleanupConfig
	config     core.RuntimeConfig
	username   string
	sessionID  string
	logger     *log.Logger

	screen   sessionScreen
	menu     MenuModel
	quiz     QuizModel
	game     *GameModel
	scores   ScoreboardModel
	tips     TipsModel
	quitting bool
}

// NewSessionModel creates a new session model. A nil logger discards output.
func NewSessionModel(store *storage.Store, gameCfg config.CleanupConfig, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		store:      store,
		gameConfig: gameCfg,
		config:     cfg,
		username:   username,
		sessionID:  uuid.NewString(),
		logger:     logger,
		menu:       NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenGame:
		if m.game != nil {
			return m.updateGame(msg)
		}
	case screenScores:
		return m.updateScores(msg)
	case screenTips:
		return m.updateTips(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu asks to quit its own program on select; the session keeps running
	switch selected.Choice {
	case ChoiceQuiz:
		m.quiz = NewQuizModel(m.store, m.config)
		m.screen = screenQuiz
		return m, m.quiz.Init()

	case ChoiceGame:
		game, err := cleanup.New(m.gameConfig)
		if err != nil {
			m.logger.Error("cannot create game", "session", m.sessionID, "error", err)
			return m.toMenu()
		}
		m.config.Seed = time.Now().UnixNano()
		gameModel := NewGameModel(game, m.store, m.config)
		m.game = &gameModel
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceTips:
		m.tips = NewTipsModel(m.config)
		m.tips.embedded = true
		m.screen = screenTips
		return m, m.tips.Init()
	}

	return m.toMenu()
}

// updateQuiz handles updates when the questionnaire is shown.
func (m SessionModel) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasFinished := m.quiz.Finished()

	newModel, cmd := m.quiz.Update(msg)
	if quizModel, ok := newModel.(QuizModel); ok {
		m.quiz = quizModel
	}

	if !wasFinished && m.quiz.Finished() {
		r := m.quiz.Report()
		m.logger.Info("quiz completed",
			"session", m.sessionID,
			"user", m.username,
			"grade", r.Grade,
			"co2_kg", r.CO2AnnualKg,
		)
	}

	if m.quiz.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.quiz.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevRun := m.game.LastRunID()

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if run := m.game.LastRunID(); run != "" && run != prevRun {
		st := m.game.State()
		m.logger.Info("round recorded",
			"session", m.sessionID,
			"user", m.username,
			"run", run,
			"score", st.Score,
			"outcome", st.Outcome,
		)
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// updateTips handles updates when the tips browser is shown.
func (m SessionModel) updateTips(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.tips.Update(msg)
	if tm, ok := newModel.(TipsModel); ok {
		m.tips = tm
	}

	if m.tips.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.tips.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu returns to a fresh menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenQuiz:
		return m.quiz.View()
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenScores:
		return m.scores.View()
	case screenTips:
		return m.tips.View()
	}
	return m.menu.View()
}

// RunSession runs the full menu-driven session in one local program.
func RunSession(store *storage.Store, gameCfg config.CleanupConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(store, gameCfg, cfg, "local", logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
