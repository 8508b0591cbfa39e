package cleanup

import (
	"testing"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

func newTestSim(t *testing.T, cfg config.CleanupConfig) (*Simulation, *FrameClock) {
	t.Helper()
	clock := NewFrameClock(60)
	sim, err := NewSimulation(cfg, clock, 42)
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	return sim, clock
}

// itemFor returns the first visible item of the given archetype.
func itemFor(t *testing.T, sim *Simulation, a Archetype) Item {
	t.Helper()
	for _, it := range sim.Items() {
		if it.Archetype == a && it.Visible {
			return it
		}
	}
	t.Fatalf("no visible %s item", a)
	return Item{}
}

// wrongBin returns a bin other than the item's correct one.
func wrongBin(it Item) Bin {
	for _, b := range Bins {
		if b != it.Bin {
			return b
		}
	}
	return ""
}

// wideCatalog spawns enough items that a few drops never end the round.
func wideCatalog() []config.CatalogEntry {
	var entries []config.CatalogEntry
	for range 3 {
		entries = append(entries, config.DefaultCleanupConfig().Catalog...)
	}
	return entries
}

func TestNewSimulationIsIdle(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())

	st := sim.State()
	if st.Phase != PhaseIdle || st.Outcome != OutcomeNone {
		t.Errorf("new simulation state = %+v, want idle/none", st)
	}
	if len(sim.Items()) != 0 {
		t.Errorf("new simulation has %d items, want 0", len(sim.Items()))
	}
	if clock.Armed() {
		t.Error("clock should not be armed before Start")
	}
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultCleanupConfig()
	cfg.Catalog = []config.CatalogEntry{
		{Archetype: "email", Bin: "delete"},
		{Archetype: "file", Bin: "archive"},
	}
	if _, err := NewSimulation(cfg, nil, 1); err == nil {
		t.Error("NewSimulation() should reject a catalog with no recycle entry")
	}

	cfg = config.DefaultCleanupConfig()
	cfg.Round.DurationSeconds = 0
	if _, err := NewSimulation(cfg, nil, 1); err == nil {
		t.Error("NewSimulation() should reject a zero duration")
	}
}

func TestStart(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	st := sim.State()
	want := GameState{
		Score:           0,
		PollutionLevel:  50,
		ItemsCleared:    0,
		Phase:           PhaseRunning,
		TimeLeftSeconds: 60,
		Outcome:         OutcomeNone,
	}
	if st != want {
		t.Errorf("State() after Start = %+v, want %+v", st, want)
	}
	if sim.VisibleCount() != len(DefaultCatalog()) {
		t.Errorf("VisibleCount() = %d, want %d", sim.VisibleCount(), len(DefaultCatalog()))
	}
	if !clock.Armed() {
		t.Error("Start should arm the clock")
	}

	seen := make(map[int]bool)
	for _, it := range sim.Items() {
		if seen[it.ID] {
			t.Errorf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestClassifyCorrect(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	it := itemFor(t, sim, ArchetypeEmail)
	res := sim.Classify(it.ID, it.Bin)

	if !res.Accepted || !res.Correct {
		t.Fatalf("Classify() = %+v, want accepted and correct", res)
	}
	st := sim.State()
	if st.Score != 10 || st.PollutionLevel != 45 || st.ItemsCleared != 1 {
		t.Errorf("state after correct drop = %+v", st)
	}
	if got, _ := sim.Item(it.ID); got.Visible {
		t.Error("classified item should no longer be visible")
	}
}

func TestClassifyWrong(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	it := itemFor(t, sim, ArchetypeVideo)
	res := sim.Classify(it.ID, wrongBin(it))

	if !res.Accepted || res.Correct {
		t.Fatalf("Classify() = %+v, want accepted and incorrect", res)
	}
	st := sim.State()
	if st.Score != -5 || st.PollutionLevel != 58 || st.ItemsCleared != 1 {
		t.Errorf("state after wrong drop = %+v", st)
	}
}

func TestClassifyClampsPollution(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		correct bool
		want    int
	}{
		{"floor", 2, true, 0},
		{"ceiling", 97, false, 100},
		{"at floor", 0, true, 0},
		{"at ceiling", 100, false, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultCleanupConfig()
			cfg.Round.StartPollution = tc.start
			cfg.Catalog = wideCatalog()
			sim, _ := newTestSim(t, cfg)
			sim.Start()

			it := itemFor(t, sim, ArchetypeFile)
			bin := it.Bin
			if !tc.correct {
				bin = wrongBin(it)
			}
			sim.Classify(it.ID, bin)

			if got := sim.State().PollutionLevel; got != tc.want {
				t.Errorf("PollutionLevel = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestClassifyLastItemFinishes(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()
	sim.Tick()

	for _, it := range sim.Items() {
		sim.Classify(it.ID, it.Bin)
	}

	st := sim.State()
	if st.Phase != PhaseFinished {
		t.Fatalf("Phase = %s, want finished after clearing every item", st.Phase)
	}
	if st.TimeLeftSeconds != 59 {
		t.Errorf("TimeLeftSeconds = %d, want 59 (completion is not a timeout)", st.TimeLeftSeconds)
	}
	// 50 - 4*5 = 30 sits in the middle band, which counts as a win
	if st.PollutionLevel != 30 || st.Outcome != OutcomeWin {
		t.Errorf("final state = %+v, want pollution 30 and a win", st)
	}
	if st.Score != 40 || st.ItemsCleared != 4 {
		t.Errorf("Score/ItemsCleared = %d/%d, want 40/4", st.Score, st.ItemsCleared)
	}
	if clock.Armed() {
		t.Error("finishing should disarm the clock")
	}
}

func TestAllWrongLoses(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	for _, it := range sim.Items() {
		sim.Classify(it.ID, wrongBin(it))
	}

	st := sim.State()
	// 50 + 4*8 = 82
	if st.Phase != PhaseFinished || st.PollutionLevel != 82 || st.Outcome != OutcomeLose {
		t.Errorf("final state = %+v, want finished at 82 with a loss", st)
	}
	if st.Score != -20 {
		t.Errorf("Score = %d, want -20", st.Score)
	}
}

func TestClassifyNoOps(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())

	// Idle
	if res := sim.Classify(1, BinDelete); res.Accepted {
		t.Error("Classify while idle should not be accepted")
	}

	sim.Start()
	it := itemFor(t, sim, ArchetypeEmail)
	before := sim.State()

	if res := sim.Classify(9999, BinDelete); res.Accepted {
		t.Error("Classify of unknown id should not be accepted")
	}
	if res := sim.Classify(it.ID, Bin("shred")); res.Accepted {
		t.Error("Classify into unknown bin should not be accepted")
	}
	if sim.State() != before {
		t.Errorf("rejected commands mutated state: %+v -> %+v", before, sim.State())
	}

	sim.Classify(it.ID, it.Bin)
	after := sim.State()
	if res := sim.Classify(it.ID, it.Bin); res.Accepted {
		t.Error("Classify of an already classified item should not be accepted")
	}
	if sim.State() != after {
		t.Error("replayed classify mutated state")
	}
}

func TestClassifyAfterFinishIsNoOp(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()
	remaining := itemFor(t, sim, ArchetypeAI)
	sim.Stop()

	before := sim.State()
	if res := sim.Classify(remaining.ID, remaining.Bin); res.Accepted {
		t.Error("Classify after finish should not be accepted")
	}
	if sim.State() != before {
		t.Errorf("Classify after finish mutated state: %+v -> %+v", before, sim.State())
	}
	if got, _ := sim.Item(remaining.ID); !got.Visible {
		t.Error("Classify after finish should not hide the item")
	}
}

func TestTickTimeout(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	for i := 0; i < 59; i++ {
		sim.Tick()
	}
	if st := sim.State(); st.Phase != PhaseRunning || st.TimeLeftSeconds != 1 {
		t.Fatalf("after 59 ticks state = %+v, want running with 1s left", st)
	}

	sim.Tick()
	st := sim.State()
	if st.Phase != PhaseFinished || st.TimeLeftSeconds != 0 {
		t.Fatalf("after 60 ticks state = %+v, want finished with 0s left", st)
	}
	if st.PollutionLevel != 50 || st.Outcome != OutcomeWin {
		t.Errorf("timeout at untouched pollution = %+v, want 50 and a win", st)
	}
	if clock.Armed() {
		t.Error("timeout should disarm the clock")
	}

	// Further ticks are ignored
	sim.Tick()
	if sim.State() != st {
		t.Error("Tick after finish mutated state")
	}
}

func TestTickIgnoredWhenIdle(t *testing.T) {
	sim, _ := newTestSim(t, config.DefaultCleanupConfig())
	before := sim.State()
	sim.Tick()
	if sim.State() != before {
		t.Error("Tick while idle mutated state")
	}
}

func TestStop(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())

	sim.Stop()
	if sim.State().Phase != PhaseIdle {
		t.Error("Stop while idle should leave the simulation idle")
	}

	sim.Start()
	sim.Stop()
	st := sim.State()
	if st.Phase != PhaseFinished || st.Outcome != OutcomeWin {
		t.Errorf("Stop while running = %+v, want finished with outcome", st)
	}
	if clock.Armed() {
		t.Error("Stop should disarm the clock")
	}

	sim.Stop()
	if sim.State() != st {
		t.Error("Stop should be idempotent once finished")
	}
}

func TestRestart(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()
	first := sim.Items()

	it := itemFor(t, sim, ArchetypeEmail)
	sim.Classify(it.ID, wrongBin(it))
	sim.Tick()
	sim.Stop()

	sim.Start()
	st := sim.State()
	if st.Phase != PhaseRunning || st.Score != 0 || st.PollutionLevel != 50 ||
		st.TimeLeftSeconds != 60 || st.ItemsCleared != 0 || st.Outcome != OutcomeNone {
		t.Errorf("State() after restart = %+v, want a fresh round", st)
	}
	if sim.VisibleCount() != len(first) {
		t.Errorf("VisibleCount() after restart = %d, want %d", sim.VisibleCount(), len(first))
	}

	// Ids from the previous round never resolve in the new one
	for _, old := range first {
		if _, ok := sim.Item(old.ID); ok {
			t.Errorf("item id %d from the previous round is still present", old.ID)
		}
	}
	if clock.Arms() != 2 || !clock.Armed() {
		t.Errorf("clock arms = %d armed = %v, want 2 and armed", clock.Arms(), clock.Armed())
	}
}

func TestStartWhileRunningDropsPartialSecond(t *testing.T) {
	sim, clock := newTestSim(t, config.DefaultCleanupConfig())
	sim.Start()

	// 59 frames of the first second elapse
	for i := 0; i < 59; i++ {
		if clock.Advance() {
			t.Fatal("clock ticked early")
		}
	}

	sim.Start()
	if clock.Advance() {
		t.Error("restart should not inherit the old round's partial second")
	}
	if sim.State().TimeLeftSeconds != 60 {
		t.Errorf("TimeLeftSeconds = %d, want 60", sim.State().TimeLeftSeconds)
	}
}

func TestOutcomeFor(t *testing.T) {
	round := config.DefaultCleanupConfig().Round
	tests := []struct {
		pollution int
		want      Outcome
	}{
		{0, OutcomeWin},
		{29, OutcomeWin},
		{30, OutcomeWin},
		{50, OutcomeWin},
		{70, OutcomeWin},
		{71, OutcomeLose},
		{100, OutcomeLose},
	}

	for _, tc := range tests {
		if got := OutcomeFor(tc.pollution, round); got != tc.want {
			t.Errorf("OutcomeFor(%d) = %s, want %s", tc.pollution, got, tc.want)
		}
	}
}

func TestItemsPlacedInsideField(t *testing.T) {
	cfg := config.DefaultCleanupConfig()
	cfg.Catalog = wideCatalog()
	sim, _ := newTestSim(t, cfg)
	field := core.NewRect(3, 4, 40, 8)
	sim.SetField(field)
	sim.Start()

	for _, it := range sim.Items() {
		if !field.Contains(it.Pos.X, it.Pos.Y) || it.Pos.X+itemWidth > field.Right() {
			t.Errorf("item %d at %+v is outside field %+v", it.ID, it.Pos, field)
		}
	}
}

func TestPlacementDeterministic(t *testing.T) {
	a, _ := newTestSim(t, config.DefaultCleanupConfig())
	b, _ := newTestSim(t, config.DefaultCleanupConfig())
	a.Start()
	b.Start()

	ia, ib := a.Items(), b.Items()
	for i := range ia {
		if ia[i].Pos != ib[i].Pos {
			t.Errorf("item %d placed at %+v and %+v with the same seed", i, ia[i].Pos, ib[i].Pos)
		}
	}
}
