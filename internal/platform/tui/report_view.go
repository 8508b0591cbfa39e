package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

const reportMaxWidth = 72

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	reportMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	reportCardStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 2)
)

// gradeColors follows the traffic-light scheme of the results screen.
var gradeColors = map[scoring.Grade]lipgloss.Color{
	scoring.GradeA: lipgloss.Color("10"),
	scoring.GradeB: lipgloss.Color("11"),
	scoring.GradeC: lipgloss.Color("9"),
}

// adviceColors maps advice color tags to terminal colors.
var adviceColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"blue":   lipgloss.Color("12"),
	"purple": lipgloss.Color("13"),
	"green":  lipgloss.Color("10"),
	"gray":   lipgloss.Color("245"),
	"yellow": lipgloss.Color("11"),
	"indigo": lipgloss.Color("63"),
	"cyan":   lipgloss.Color("14"),
}

// adviceIcons maps advice icon names to terminal-safe glyphs.
var adviceIcons = map[string]string{
	"envelope": "@",
	"video":    ">",
	"cloud":    "~",
	"folder":   "#",
	"trash":    "x",
	"leaf":     "*",
	"fan":      "%",
	"images":   "&",
	"bot":      "?",
	"phone":    "[]",
	"recycle":  "+",
	"tv":       "=",
}

// levelStyle colors a running or final pollution level.
func levelStyle(l quiz.Level) lipgloss.Style {
	switch l {
	case quiz.LevelLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case quiz.LevelMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
}

// RenderReport draws the results card for a pollution report.
func RenderReport(r scoring.PollutionReport, width int) string {
	cardWidth := min(reportMaxWidth, max(40, width-4))
	inner := cardWidth - 6

	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(gradeColors[r.Grade]).
		Padding(0, 1).
		Render(string(r.Grade))

	var b strings.Builder
	b.WriteString(badge + "  " + reportTitleStyle.Render(r.Title) + "\n")
	b.WriteString(reportMutedStyle.Render(r.Description) + "\n\n")

	b.WriteString(fmt.Sprintf("Pollution score: %s (%s)\n",
		levelStyle(r.Level).Render(fmt.Sprintf("%.0f%%", r.Percentage)), r.Level))
	b.WriteString(fmt.Sprintf("Estimated CO2:   %d kg per year\n", r.CO2AnnualKg))
	b.WriteString(fmt.Sprintf("Same as driving: %d km\n", r.DrivingKmPerYear))
	b.WriteString(fmt.Sprintf("Water used:      %d liters\n\n", r.WaterLitersPerYear))

	b.WriteString(reportTitleStyle.Render("Personalized advice") + "\n")
	for _, a := range r.Advice {
		head := adviceHeading(a)
		text := lipgloss.NewStyle().Width(inner).PaddingLeft(2).Render(a.Text)
		b.WriteString("\n" + head + "\n" + text + "\n")
	}

	return reportCardStyle.Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// adviceHeading renders the icon and title of an advice item or tip.
func adviceHeading(a scoring.AdviceItem) string {
	icon := adviceIcons[a.Icon]
	if icon == "" {
		icon = "-"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(adviceColors[a.ColorTag]).
		Render(fmt.Sprintf("%s %s", icon, a.Title))
}
