package cleanup

import (
	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

// Screen layout.
const (
	hudHeight    = 2 // Score line + pollution meter
	footerHeight = 3 // Bins, feedback, controls
	minScreenW   = 44
	minScreenH   = 14
)

// feedbackSeconds is how long the last classification stays on screen.
const feedbackSeconds = 1

// Game adapts a Simulation to the platform frame loop. Key presses become
// classify commands and the frame count drives the countdown clock.
type Game struct {
	cfg   config.CleanupConfig
	sim   *Simulation
	clock *FrameClock

	frame    uint64
	tickRate int
	selected int // Item id, 0 when nothing is selected

	screenW  int
	screenH  int
	tooSmall bool

	feedback       string
	feedbackColor  core.Color
	feedbackFrames int
}

// New creates a game from a validated configuration.
func New(cfg config.CleanupConfig) (*Game, error) {
	clock := NewFrameClock(0)
	sim, err := NewSimulation(cfg, clock, 0)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:   cfg,
		sim:   sim,
		clock: clock,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cleanup"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Server Clean-up"
}

// Simulation exposes the underlying state machine.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Reset sizes the field for the screen and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.frame = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.clearFeedback()

	g.clock.SetRate(g.tickRate)
	g.sim.Reseed(cfg.Seed)
	g.sim.SetField(g.fieldRect().Inset(1))
	g.sim.Start()
	g.selectFirst()
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) GameState {
	g.frame++

	if in.Has(core.ActionRestart) && g.sim.State().Finished() {
		g.clearFeedback()
		g.sim.Start()
		g.selectFirst()
		return g.sim.State()
	}

	if g.feedbackFrames > 0 {
		g.feedbackFrames--
		if g.feedbackFrames == 0 {
			g.feedback = ""
		}
	}

	if g.sim.State().Phase == PhaseRunning && !g.tooSmall {
		g.processInput(in)
	}

	// The countdown holds while the player cannot act
	if !g.tooSmall && g.clock.Advance() {
		g.sim.Tick()
	}

	return g.sim.State()
}

// Resize adapts the layout to a new screen size without restarting the
// round. Items that fall outside the new field are moved back into it;
// the rest keep their positions.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.sim.SetField(g.fieldRect().Inset(1))
	if !g.tooSmall {
		g.sim.Relayout()
	}
}

// State returns the current round state.
func (g *Game) State() GameState {
	return g.sim.State()
}

// Stop ends the current round, e.g. when the player leaves mid-game.
func (g *Game) Stop() {
	g.sim.Stop()
}

// Selected returns the id of the selected item, or 0.
func (g *Game) Selected() int {
	return g.selected
}

func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft) || in.Has(core.ActionUp):
		g.selectStep(-1)
	case in.Has(core.ActionRight) || in.Has(core.ActionDown):
		g.selectStep(1)
	}

	for _, a := range []core.Action{core.ActionBinDelete, core.ActionBinArchive, core.ActionBinRecycle} {
		if !in.Has(a) {
			continue
		}
		bin, _ := BinForAction(a)
		g.classifySelected(bin)
		break
	}
}

func (g *Game) classifySelected(bin Bin) {
	if g.selected == 0 {
		return
	}
	res := g.sim.Classify(g.selected, bin)
	if !res.Accepted {
		return
	}

	if res.Correct {
		g.setFeedback("Correct bin!", core.ColorBrightGreen)
	} else {
		g.setFeedback("Wrong bin, pollution rises", core.ColorBrightRed)
	}
	g.selectStep(1)
}

// selectFirst selects the first visible item.
func (g *Game) selectFirst() {
	g.selected = 0
	g.selectStep(1)
}

// selectStep moves the selection dir positions through the visible items,
// wrapping around. With nothing visible the selection is cleared.
func (g *Game) selectStep(dir int) {
	items := g.sim.Items()
	visible := make([]int, 0, len(items))
	cur := -1
	for _, it := range items {
		if !it.Visible {
			continue
		}
		if it.ID == g.selected {
			cur = len(visible)
		}
		visible = append(visible, it.ID)
	}

	if len(visible) == 0 {
		g.selected = 0
		return
	}

	next := 0
	switch {
	case cur >= 0:
		next = (cur + dir + len(visible)) % len(visible)
	case dir < 0:
		next = len(visible) - 1
	}
	// A classified selection falls through to the next item in id order
	if cur < 0 && dir > 0 {
		for i, id := range visible {
			if id > g.selected {
				next = i
				break
			}
		}
	}
	g.selected = visible[next]
}

func (g *Game) setFeedback(msg string, c core.Color) {
	g.feedback = msg
	g.feedbackColor = c
	g.feedbackFrames = g.tickRate * feedbackSeconds
}

func (g *Game) clearFeedback() {
	g.feedback = ""
	g.feedbackFrames = 0
}

// fieldRect is the boxed play area between the HUD and the footer.
func (g *Game) fieldRect() core.Rect {
	return core.NewRect(0, hudHeight, max(0, g.screenW), max(0, g.screenH-hudHeight-footerHeight))
}
