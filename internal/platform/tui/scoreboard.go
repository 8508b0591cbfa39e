package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecoclean/internal/storage"
)

// scoreboardLimit caps the records loaded per page.
const scoreboardLimit = 100

// scorePage is one tab of the scoreboard.
type scorePage int

const (
	pageRounds scorePage = iota
	pageQuiz
	pageCount
)

func (p scorePage) title() string {
	if p == pageQuiz {
		return "Quiz history"
	}
	return "Clean-up rounds"
}

func (p scorePage) columns() []table.Column {
	if p == pageQuiz {
		return []table.Column{
			{Title: "When", Width: 14},
			{Title: "Grade", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "CO2/yr", Width: 9},
			{Title: "Answered", Width: 9},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Pollution", Width: 10},
		{Title: "Cleared", Width: 8},
		{Title: "When", Width: 14},
	}
}

func (p scorePage) emptyText() string {
	if p == pageQuiz {
		return "No quiz results yet.\nTake the quiz to see your footprint."
	}
	return "No rounds recorded yet.\nFinish a clean-up round to get on the board."
}

// scoreboardKeys implements help.KeyMap for the scoreboard.
type scoreboardKeys struct {
	Scroll key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Switch, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "scroll")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"), key.WithHelp("tab", "switch page")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardTabStyle    = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	boardActiveStyle = boardTabStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardEmptyStyle  = boardNoteStyle.Italic(true).Padding(1, 3)
)

// ScoreboardModel shows recorded clean-up rounds and quiz results.
type ScoreboardModel struct {
	store  *storage.Store
	page   scorePage
	rows   []table.Row
	stats  string
	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	embedded  bool // Hosted by a session: back hands control to the host
	goingBack bool
	quitting  bool
}

// NewScoreboardModel creates a scoreboard showing the clean-up page.
// A nil store shows empty pages.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.showPage(pageRounds)
	return m
}

// showPage switches to page p and reloads its records.
func (m *ScoreboardModel) showPage(p scorePage) {
	m.page = p
	m.rows, m.stats = nil, ""
	if m.store != nil {
		if p == pageQuiz {
			m.loadQuiz()
		} else {
			m.loadRounds()
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) rebuildTable() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.Bold(false).
		Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))

	m.table = table.New(
		table.WithColumns(m.page.columns()),
		table.WithRows(m.rows),
		table.WithHeight(max(3, m.height-11)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

func (m *ScoreboardModel) loadRounds() {
	scores, err := m.store.TopScores(scoreboardLimit)
	if err != nil {
		m.stats = "Could not load scores: " + err.Error()
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			s.Outcome,
			fmt.Sprintf("%d%%", s.Pollution),
			fmt.Sprint(s.Cleared),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}

	if st, err := m.store.Stats(); err == nil && st.Rounds > 0 {
		m.stats = fmt.Sprintf("%d rounds, %d won, best %d, average %.1f",
			st.Rounds, st.Wins, st.HighScore, st.AvgScore)
	}
}

func (m *ScoreboardModel) loadQuiz() {
	records, err := m.store.RecentQuizResults(scoreboardLimit)
	if err != nil {
		m.stats = "Could not load quiz results: " + err.Error()
		return
	}
	for _, r := range records {
		m.rows = append(m.rows, table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			string(r.Grade),
			fmt.Sprintf("%.0f%%", r.Percentage),
			fmt.Sprintf("%d kg", r.CO2AnnualKg),
			fmt.Sprintf("%d/%d", r.Result.Answers.AnsweredCount(), r.Result.TotalQuestions),
		})
	}
	if len(records) > 0 {
		m.stats = fmt.Sprintf("Latest grade %s", records[0].Grade)
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			m.showPage((m.page + 1) % pageCount)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, 0, pageCount)
	for p := range pageCount {
		style := boardTabStyle
		if p == m.page {
			style = boardActiveStyle
		}
		tabs = append(tabs, style.Render(p.title()))
	}

	body := m.table.View()
	if len(m.rows) == 0 {
		body = boardEmptyStyle.Render(m.page.emptyText())
	}

	parts := []string{
		"",
		centerText(boardTitleStyle.Render("SCORES"), m.width),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardFrameStyle.Render(body),
	}
	if m.stats != "" {
		parts = append(parts, boardNoteStyle.Render(m.stats))
	}
	if m.store != nil && m.store.InMemory() {
		parts = append(parts, boardNoteStyle.Render("Scores are kept for this session only"))
	}
	parts = append(parts, boardNoteStyle.Render(m.help.View(m.keys)))

	return strings.Join(parts, "\n")
}

// IsGoingBack reports whether the player left the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports
// whether the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
