package cleanup

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ecoclean/internal/core"
)

const meterWidth = 20

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	st := g.sim.State()
	g.renderHUD(dst, st)

	field := g.fieldRect()
	dst.DrawBoxColor(field, core.ColorGray)
	g.renderItems(dst)

	if st.Finished() {
		g.renderGameOver(dst, field, st)
	}

	g.renderFooter(dst, st)
}

func (g *Game) renderHUD(dst *core.Screen, st GameState) {
	total := len(g.sim.Catalog())
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d   Time: %ds   Cleared: %d/%d",
		st.Score, st.TimeLeftSeconds, st.ItemsCleared, total))

	filled := st.PollutionLevel * meterWidth / 100
	meter := strings.Repeat("#", filled) + strings.Repeat("-", meterWidth-filled)
	dst.DrawText(1, 1, "Pollution ")
	dst.DrawTextColor(11, 1, fmt.Sprintf("[%s] %d%%", meter, st.PollutionLevel), pollutionColor(st.PollutionLevel, g.cfg.Round.WinBelow, g.cfg.Round.LoseAbove))
}

func (g *Game) renderItems(dst *core.Screen) {
	for _, it := range g.sim.Items() {
		if !it.Visible {
			continue
		}
		c := it.Archetype.Color()
		marker := " "
		if it.ID == g.selected {
			marker = ">"
			c = core.ColorWhite
		}
		dst.DrawTextColor(it.Pos.X, it.Pos.Y, marker, core.ColorBrightYellow)
		dst.DrawTextColor(it.Pos.X+1, it.Pos.Y, it.Archetype.Label(), c)
	}
}

func (g *Game) renderGameOver(dst *core.Screen, field core.Rect, st GameState) {
	c := field.Center()
	if st.Outcome == OutcomeWin {
		dst.DrawTextCenteredColor(c.Y-1, "PLANET SAVED - YOU WIN", core.ColorBrightGreen)
	} else {
		dst.DrawTextCenteredColor(c.Y-1, "TOO MUCH POLLUTION - YOU LOSE", core.ColorBrightRed)
	}
	dst.DrawTextCentered(c.Y, fmt.Sprintf("Final score: %d", st.Score))
}

func (g *Game) renderFooter(dst *core.Screen, st GameState) {
	y := dst.Height() - footerHeight

	x := 1
	for i, b := range Bins {
		label := fmt.Sprintf("%d:%s", i+1, strings.ToUpper(string(b)))
		dst.DrawTextColor(x, y, label, b.Color())
		x += len(label) + 3
	}

	if g.feedback != "" {
		dst.DrawTextColor(1, y+1, g.feedback, g.feedbackColor)
	}

	controls := "Arrows: select  1/2/3: drop  Q: quit"
	if st.Finished() {
		controls = "R: play again  Esc: menu  Q: quit"
	}
	dst.DrawTextColor(1, y+2, controls, core.ColorGray)
}

func pollutionColor(level, winBelow, loseAbove int) core.Color {
	switch {
	case level < winBelow:
		return core.ColorGreen
	case level > loseAbove:
		return core.ColorRed
	default:
		return core.ColorYellow
	}
}
