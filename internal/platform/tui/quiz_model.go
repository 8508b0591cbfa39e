package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

const progressMaxWidth = 50

// QuizKeyMap defines the key bindings for the questionnaire.
type QuizKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Pick   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Retake key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k QuizKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Prev, k.Next, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k QuizKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose, k.Pick},
		{k.Prev, k.Next, k.Back, k.Quit},
	}
}

// resultsKeys is the reduced key map shown on the results screen.
type resultsKeys struct{ QuizKeyMap }

// ShortHelp returns key bindings for the results screen.
func (k resultsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Retake, k.Back, k.Quit}
}

// FullHelp returns key bindings for the results screen.
func (k resultsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultQuizKeyMap returns default key bindings.
func DefaultQuizKeyMap() QuizKeyMap {
	return QuizKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next option"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "answer"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "answer directly"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous question"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next question"),
		),
		Retake: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retake"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// QuizModel is the Bubble Tea model for the questionnaire and its results.
type QuizModel struct {
	questions []quiz.Question
	current   int // Index into questions
	cursor    int // Highlighted option
	answers   quiz.AnswerSet

	finished bool
	result   quiz.Result
	report   scoring.PollutionReport
	runID    string
	saveErr  error

	store      *storage.Store
	progress   progress.Model
	help       help.Model
	keys       QuizKeyMap
	width      int
	height     int
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewQuizModel creates a questionnaire. A nil store disables saving results.
func NewQuizModel(store *storage.Store, cfg core.RuntimeConfig) QuizModel {
	p := progress.New(progress.WithDefaultGradient())
	p.Width = min(progressMaxWidth, max(10, cfg.ScreenW-10))

	h := help.New()
	h.ShowAll = false

	return QuizModel{
		questions: quiz.Questions(),
		answers:   quiz.NewAnswerSet(),
		store:     store,
		progress:  p,
		help:      h,
		keys:      DefaultQuizKeyMap(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init initializes the quiz model.
func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the quiz.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Back) {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.finished {
			return m.updateResults(msg)
		}
		return m.updateQuestion(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(progressMaxWidth, max(10, msg.Width-10))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m QuizModel) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.questions[m.current]

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Choose):
		m.choose(q.Options[m.cursor].Value)

	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(q.Options) {
			m.cursor = idx
			m.choose(q.Options[idx].Value)
		}

	case key.Matches(msg, m.keys.Prev):
		if m.current > 0 {
			m.goTo(m.current - 1)
		}

	case key.Matches(msg, m.keys.Next):
		// Skipping ahead is only allowed over answered questions
		if _, ok := m.answers.Get(q.ID); ok && m.current < len(m.questions)-1 {
			m.goTo(m.current + 1)
		}
	}

	return m, nil
}

func (m QuizModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Retake) {
		m.reset()
	}
	return m, nil
}

// choose records an answer for the current question and moves on.
func (m *QuizModel) choose(value int) {
	q := m.questions[m.current]
	if err := m.answers.Set(q.ID, value); err != nil {
		// The catalog only offers valid values
		return
	}

	if m.answers.Complete() {
		m.finish()
		return
	}
	m.goTo(m.nextUnanswered())
}

// nextUnanswered finds the first unanswered question after the current
// one, wrapping to the start.
func (m *QuizModel) nextUnanswered() int {
	n := len(m.questions)
	for i := 1; i <= n; i++ {
		idx := (m.current + i) % n
		if _, ok := m.answers.Get(m.questions[idx].ID); !ok {
			return idx
		}
	}
	return m.current
}

// goTo shows a question, highlighting its recorded answer if any.
func (m *QuizModel) goTo(idx int) {
	m.current = idx
	m.cursor = 0
	q := m.questions[idx]
	if v, ok := m.answers.Get(q.ID); ok {
		for i, opt := range q.Options {
			if opt.Value == v {
				m.cursor = i
			}
		}
	}
}

// finish scores the completed questionnaire and stores the result.
func (m *QuizModel) finish() {
	m.finished = true
	m.result = quiz.NewResult(m.answers)
	m.report = scoring.ComputeReport(m.result.Answers, m.result.TotalQuestions)

	if m.store != nil {
		m.runID, m.saveErr = m.store.SaveQuizResult(m.result, m.report)
	}
}

func (m *QuizModel) reset() {
	m.answers = quiz.NewAnswerSet()
	m.current = 0
	m.cursor = 0
	m.finished = false
	m.result = quiz.Result{}
	m.report = scoring.PollutionReport{}
	m.runID = ""
	m.saveErr = nil
}

var (
	quizTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	quizPromptStyle   = lipgloss.NewStyle().Bold(true)
	quizSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	quizHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current question or the results card.
func (m QuizModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.finished {
		return m.viewResults()
	}
	return m.viewQuestion()
}

func (m QuizModel) viewQuestion() string {
	var b strings.Builder
	q := m.questions[m.current]

	b.WriteString("\n")
	b.WriteString(centerText(quizTitleStyle.Render("DIGITAL POLLUTION QUIZ"), m.width))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Question %d of %d   Running level: %s",
		m.current+1, len(m.questions), levelStyle(m.answers.RunningLevel()).Render(string(m.answers.RunningLevel())))
	b.WriteString("  " + status + "\n")
	b.WriteString("  " + m.progress.ViewAs(m.answers.Progress()/100) + "\n\n")

	b.WriteString("  " + quizPromptStyle.Render(q.Prompt) + "\n\n")

	chosen, answered := m.answers.Get(q.ID)
	for i, opt := range q.Options {
		mark := "( )"
		if answered && opt.Value == chosen {
			mark = "(*)"
		}
		line := fmt.Sprintf(" %d %s %s ", i+1, mark, opt.Text)
		if i == m.cursor {
			line = quizSelectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(quizHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m QuizModel) viewResults() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(quizTitleStyle.Render("YOUR DIGITAL FOOTPRINT"), m.width))
	b.WriteString("\n\n")
	b.WriteString(RenderReport(m.report, m.width))
	b.WriteString("\n")

	if m.saveErr != nil {
		b.WriteString(reportMutedStyle.Render("Result not saved: "+m.saveErr.Error()) + "\n")
	}
	b.WriteString(quizHelpStyle.Render(m.help.View(resultsKeys{m.keys})))
	return b.String()
}

// Finished reports whether every question has been answered.
func (m QuizModel) Finished() bool {
	return m.finished
}

// Result returns the hand-off record of a finished quiz.
func (m QuizModel) Result() (quiz.Result, bool) {
	return m.result, m.finished
}

// Report returns the report of a finished quiz.
func (m QuizModel) Report() scoring.PollutionReport {
	return m.report
}

// IsQuitting returns true if user requested to quit entirely.
func (m QuizModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m QuizModel) BackToMenu() bool {
	return m.backToMenu
}

// RunQuiz runs the questionnaire in its own Bubble Tea program.
// The result is returned only if the quiz was completed.
func RunQuiz(store *storage.Store, cfg core.RuntimeConfig) (*quiz.Result, error) {
	model := NewQuizModel(store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(QuizModel)
	if !ok {
		return nil, nil
	}
	if res, done := m.Result(); done {
		return &res, nil
	}
	return nil, nil
}
