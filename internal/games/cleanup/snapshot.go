package cleanup

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame     uint64
	Phase     Phase
	Outcome   Outcome
	Score     int
	Pollution int
	TimeLeft  int
	Cleared   int
	Visible   int
	Selected  int
	ClockOn   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.sim.State()
	return Snapshot{
		Frame:     g.frame,
		Phase:     st.Phase,
		Outcome:   st.Outcome,
		Score:     st.Score,
		Pollution: st.PollutionLevel,
		TimeLeft:  st.TimeLeftSeconds,
		Cleared:   st.ItemsCleared,
		Visible:   g.sim.VisibleCount(),
		Selected:  g.selected,
		ClockOn:   g.clock.Armed(),
	}
}
