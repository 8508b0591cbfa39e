package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Result is the flat record handed from the quiz screen to the results
// screen. It is produced and consumed by the same release, so it carries
// no schema version.
type Result struct {
	TotalScore     int       `json:"totalScore"`
	TotalQuestions int       `json:"totalQuestions"`
	Answers        AnswerSet `json:"answers"`
}

// NewResult snapshots an answer set against the current catalog.
func NewResult(answers AnswerSet) Result {
	return Result{
		TotalScore:     answers.TotalScore(),
		TotalQuestions: Count(),
		Answers:        answers.Clone(),
	}
}

// Marshal encodes the result as JSON.
func (r Result) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// ParseResult decodes and validates a result record. It must cover the
// current catalog, so the report stays within its bounds.
// The total score is recomputed from the answers and must match.
func ParseResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("quiz: cannot decode result: %w", err)
	}
	if r.TotalQuestions != Count() {
		return Result{}, fmt.Errorf("quiz: result has %d questions, catalog has %d", r.TotalQuestions, Count())
	}
	if r.Answers == nil {
		r.Answers = NewAnswerSet()
	}
	if err := r.Answers.Validate(); err != nil {
		return Result{}, err
	}
	if got := r.Answers.TotalScore(); got != r.TotalScore {
		return Result{}, fmt.Errorf("quiz: result total score %d does not match answers (%d)", r.TotalScore, got)
	}
	return r, nil
}

// ParseAnswer parses a "id=value" pair as used on the command line.
func ParseAnswer(s string) (id, value int, err error) {
	rawID, rawValue, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("quiz: expected id=value, got %q", s)
	}
	id, err = strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return 0, 0, fmt.Errorf("quiz: bad question id in %q: %w", s, err)
	}
	value, err = strconv.Atoi(strings.TrimSpace(rawValue))
	if err != nil {
		return 0, 0, fmt.Errorf("quiz: bad value in %q: %w", s, err)
	}
	return id, value, nil
}
