// Package cleanup implements the Server Clean-up mini-game: digital waste
// floats over the play field and the player drops each item into the
// delete, archive or recycle bin before the countdown runs out.
//
// Simulation is the authoritative state machine. It is not safe for
// concurrent use; the platform feeds it one command at a time.
package cleanup

import (
	"math/rand"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

// Phase is the lifecycle stage of a round.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

// Outcome is the verdict of a finished round.
type Outcome string

const (
	OutcomeNone Outcome = "none"
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// itemWidth is the hitbox used when spreading items over the field.
const itemWidth = 9

// placementAttempts bounds the search for a non-overlapping position.
const placementAttempts = 20

// Item is one piece of digital waste. Once classified it is no longer
// visible and stays inert for the rest of the round.
type Item struct {
	ID        int
	Archetype Archetype
	Bin       Bin
	Pos       core.Point
	Visible   bool
}

// GameState is a read-only snapshot of a round.
type GameState struct {
	Score           int
	PollutionLevel  int
	ItemsCleared    int
	Phase           Phase
	TimeLeftSeconds int
	Outcome         Outcome
}

// Finished reports whether the round has ended.
func (s GameState) Finished() bool {
	return s.Phase == PhaseFinished
}

// ClassifyResult reports what a classify command did.
type ClassifyResult struct {
	Accepted bool
	Correct  bool
}

// Simulation owns the state of one game session.
type Simulation struct {
	round   config.CleanupRound
	scoring config.CleanupScoring
	catalog Catalog
	clock   Clock
	rng     *rand.Rand
	field   core.Rect

	items  []Item
	nextID int
	state  GameState
}

// NewSimulation creates an idle simulation. It fails if the configuration
// or its catalog is invalid.
func NewSimulation(cfg config.CleanupConfig, clock Clock, seed int64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := CatalogFromConfig(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewFrameClock(0)
	}

	return &Simulation{
		round:   cfg.Round,
		scoring: cfg.Scoring,
		catalog: catalog,
		clock:   clock,
		rng:     rand.New(rand.NewSource(seed)),
		field:   core.NewRect(0, 0, 60, 12),
		nextID:  1,
		state: GameState{
			Phase:   PhaseIdle,
			Outcome: OutcomeNone,
		},
	}, nil
}

// SetField sets the area items are spawned in. Items already on the
// field stay put until Relayout or the next Start.
func (s *Simulation) SetField(r core.Rect) {
	s.field = r
}

// Relayout moves visible items that no longer fit the field back inside
// it. Ids, score, pollution and time left are untouched.
func (s *Simulation) Relayout() {
	if s.state.Phase != PhaseRunning {
		return
	}

	var kept []Item
	var stray []int
	for i, it := range s.items {
		switch {
		case !it.Visible:
		case s.fits(it.Pos):
			kept = append(kept, it)
		default:
			stray = append(stray, i)
		}
	}
	for _, i := range stray {
		s.items[i].Pos = s.placeItem(kept)
		kept = append(kept, s.items[i])
	}
}

// Reseed replaces the placement RNG.
func (s *Simulation) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Catalog returns the catalog the simulation spawns from.
func (s *Simulation) Catalog() Catalog {
	out := make(Catalog, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// State returns a snapshot of the current state.
func (s *Simulation) State() GameState {
	return s.state
}

// Items returns a copy of every item in the round, including classified ones.
func (s *Simulation) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks up an item by id.
func (s *Simulation) Item(id int) (Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return Item{}, false
}

// VisibleCount returns the number of items still waiting to be classified.
func (s *Simulation) VisibleCount() int {
	n := 0
	for _, it := range s.items {
		if it.Visible {
			n++
		}
	}
	return n
}

// Start begins a new round from idle or finished, or restarts a running
// one. All prior state is discarded and the clock is re-armed.
func (s *Simulation) Start() {
	s.clock.Disarm()

	s.items = s.spawnItems()
	s.state = GameState{
		Score:           0,
		PollutionLevel:  s.round.StartPollution,
		ItemsCleared:    0,
		Phase:           PhaseRunning,
		TimeLeftSeconds: s.round.DurationSeconds,
		Outcome:         OutcomeNone,
	}

	s.clock.Arm()
}

// Classify drops an item into a bin. Commands outside a running round,
// for unknown or already classified items, or for unknown bins are
// ignored and reported as not accepted.
func (s *Simulation) Classify(itemID int, bin Bin) ClassifyResult {
	if s.state.Phase != PhaseRunning || !bin.Valid() {
		return ClassifyResult{}
	}
	i := s.indexOf(itemID)
	if i < 0 || !s.items[i].Visible {
		return ClassifyResult{}
	}

	correct := s.items[i].Bin == bin
	if correct {
		s.state.Score += s.scoring.CorrectPoints
		s.state.PollutionLevel -= s.scoring.CorrectPollution
	} else {
		s.state.Score -= s.scoring.WrongPenalty
		s.state.PollutionLevel += s.scoring.WrongPollution
	}
	s.state.PollutionLevel = core.Clamp(s.state.PollutionLevel, 0, 100)
	s.state.ItemsCleared++
	s.items[i].Visible = false

	if s.VisibleCount() == 0 {
		s.finish()
	}

	return ClassifyResult{Accepted: true, Correct: correct}
}

// Tick counts down one second. Reaching zero ends the round.
func (s *Simulation) Tick() {
	if s.state.Phase != PhaseRunning {
		return
	}
	s.state.TimeLeftSeconds--
	if s.state.TimeLeftSeconds <= 0 {
		s.state.TimeLeftSeconds = 0
		s.finish()
	}
}

// Stop ends a running round immediately. It does nothing in other phases.
func (s *Simulation) Stop() {
	if s.state.Phase == PhaseRunning {
		s.finish()
	}
}

// OutcomeFor returns the verdict for a final pollution level.
// The band between the two thresholds counts as a win.
func OutcomeFor(pollution int, round config.CleanupRound) Outcome {
	switch {
	case pollution < round.WinBelow:
		return OutcomeWin
	case pollution > round.LoseAbove:
		return OutcomeLose
	default:
		return OutcomeWin
	}
}

func (s *Simulation) finish() {
	s.state.Phase = PhaseFinished
	s.state.Outcome = OutcomeFor(s.state.PollutionLevel, s.round)
	s.clock.Disarm()
}

func (s *Simulation) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// spawnItems creates one item per catalog entry at a random position.
// Overlap is avoided when the field has room; otherwise it is tolerated.
func (s *Simulation) spawnItems() []Item {
	items := make([]Item, 0, len(s.catalog))
	for _, e := range s.catalog {
		items = append(items, Item{
			ID:        s.nextID,
			Archetype: e.Archetype,
			Bin:       e.Bin,
			Pos:       s.placeItem(items),
			Visible:   true,
		})
		s.nextID++
	}
	return items
}

func (s *Simulation) placeItem(placed []Item) core.Point {
	maxX := max(1, s.field.W-itemWidth+1)
	maxY := max(1, s.field.H)

	var p core.Point
	for range placementAttempts {
		p = core.Point{
			X: s.field.X + s.rng.Intn(maxX),
			Y: s.field.Y + s.rng.Intn(maxY),
		}
		if !overlaps(p, placed) {
			return p
		}
	}
	return p
}

// fits reports whether an item at p lies wholly inside the field.
func (s *Simulation) fits(p core.Point) bool {
	return s.field.Contains(p.X, p.Y) && s.field.Contains(p.X+itemWidth-1, p.Y)
}

func overlaps(p core.Point, placed []Item) bool {
	box := core.NewRect(p.X, p.Y, itemWidth, 1)
	for _, it := range placed {
		if box.Intersects(core.NewRect(it.Pos.X, it.Pos.Y, itemWidth, 1)) {
			return true
		}
	}
	return false
}
