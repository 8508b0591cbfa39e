package quiz

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownQuestion is returned when an answer targets an id outside the catalog.
	ErrUnknownQuestion = errors.New("quiz: unknown question")

	// ErrInvalidValue is returned when an answer value is not 0, 1 or 2.
	ErrInvalidValue = errors.New("quiz: invalid answer value")
)

// Level is the qualitative pollution bucket.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// AnswerSet maps question id to the chosen option value.
// A missing key means the question is unanswered.
type AnswerSet map[int]int

// NewAnswerSet creates an empty answer set.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Set records (or replaces) the answer for a question.
func (a AnswerSet) Set(questionID, value int) error {
	if _, ok := Lookup(questionID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if !ValidValue(value) {
		return fmt.Errorf("%w: %d for question %d", ErrInvalidValue, value, questionID)
	}
	a[questionID] = value
	return nil
}

// Get returns the recorded value for a question.
func (a AnswerSet) Get(questionID int) (int, bool) {
	v, ok := a[questionID]
	return v, ok
}

// Validate checks every recorded answer against the catalog.
func (a AnswerSet) Validate() error {
	for _, id := range a.IDs() {
		if _, ok := Lookup(id); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
		}
		if v := a[id]; !ValidValue(v) {
			return fmt.Errorf("%w: %d for question %d", ErrInvalidValue, v, id)
		}
	}
	return nil
}

// IDs returns the answered question ids in ascending order.
func (a AnswerSet) IDs() []int {
	ids := make([]int, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// TotalScore sums all recorded values.
func (a AnswerSet) TotalScore() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// AnsweredCount returns the number of answered questions.
func (a AnswerSet) AnsweredCount() int {
	return len(a)
}

// Progress returns the percentage of the catalog answered so far.
func (a AnswerSet) Progress() float64 {
	return float64(a.AnsweredCount()) / float64(Count()) * 100
}

// Complete reports whether every catalog question has an answer.
func (a AnswerSet) Complete() bool {
	for _, q := range catalog {
		if _, ok := a[q.ID]; !ok {
			return false
		}
	}
	return true
}

// RunningLevel estimates the pollution bucket from the answers given so far,
// using the average value of answered questions. It is shown while the quiz
// is in progress; the final verdict comes from the scoring report.
func (a AnswerSet) RunningLevel() Level {
	n := a.AnsweredCount()
	if n == 0 {
		return LevelLow
	}

	avg := float64(a.TotalScore()) / float64(n)
	switch {
	case avg < 0.7:
		return LevelLow
	case avg < 1.3:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
