package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ecoclean/internal/core"
)

// palette holds the ANSI color for each core.Color. An empty entry keeps
// the terminal's default foreground.
var palette = [...]lipgloss.Color{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorGray:         "245",
}

// cellStyle returns the style for a cell color. Unknown colors render
// with the default foreground.
func cellStyle(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Valid() && palette[c] != "" {
		style = style.Foreground(palette[c])
	}
	return style
}

// RenderScreen turns a screen buffer into a styled string, one line per row.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row, emitting a single escape sequence per run of
// same-colored cells.
func renderRow(s *core.Screen, y int) string {
	var (
		out  strings.Builder
		run  []rune
		last core.Color
	)
	flush := func() {
		if len(run) > 0 {
			out.WriteString(cellStyle(last).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != last {
			flush()
			last = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return out.String()
}

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
