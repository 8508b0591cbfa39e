package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

type tipsKeys struct {
	Browse key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k tipsKeys) ShortHelp() []key.Binding { return []key.Binding{k.Browse, k.Back, k.Quit} }

func (k tipsKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

const tipsListWidth = 28

var tipsCardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).Padding(1, 2)

// TipsModel lets the player browse general tips for reducing digital
// pollution.
type TipsModel struct {
	tips   []scoring.AdviceItem
	cursor int
	keys   tipsKeys
	help   help.Model
	width  int

	embedded  bool // Hosted by a session: back hands control to the host
	goingBack bool
	quitting  bool
}

// NewTipsModel creates the tips browser.
func NewTipsModel(cfg core.RuntimeConfig) TipsModel {
	return TipsModel{
		tips: scoring.Tips(),
		keys: tipsKeys{
			Browse: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "browse")),
			Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:  help.New(),
		width: cfg.ScreenW,
	}
}

// Init implements tea.Model.
func (m TipsModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m TipsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case msg.String() == "up" || msg.String() == "k":
			m.cursor = (m.cursor - 1 + len(m.tips)) % len(m.tips)
		case msg.String() == "down" || msg.String() == "j":
			m.cursor = (m.cursor + 1) % len(m.tips)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// Selected returns the highlighted tip.
func (m TipsModel) Selected() scoring.AdviceItem {
	return m.tips[m.cursor]
}

// View implements tea.Model.
func (m TipsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var list strings.Builder
	for i, t := range m.tips {
		line := "  " + t.Title
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + t.Title)
		}
		list.WriteString(line + "\n")
	}

	cardWidth := max(30, min(reportMaxWidth, m.width-tipsListWidth-6))
	tip := m.Selected()
	card := tipsCardStyle.Width(cardWidth).Render(
		adviceHeading(tip) + "\n\n" + lipgloss.NewStyle().Width(cardWidth-6).Render(tip.Text))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(tipsListWidth).Render(list.String()), card)

	return strings.Join([]string{
		"",
		centerText(menuTitleStyle.Render("TIPS FOR A LIGHTER FOOTPRINT"), m.width),
		centerText(menuHintStyle.Render(fmt.Sprintf("Tip %d of %d", m.cursor+1, len(m.tips))), m.width),
		"",
		body,
		"",
		menuHintStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// IsGoingBack reports whether the player left the tips screen.
func (m TipsModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the player asked to quit.
func (m TipsModel) IsQuitting() bool { return m.quitting }
