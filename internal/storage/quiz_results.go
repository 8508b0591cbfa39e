package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

// QuizRecord is a stored questionnaire result with its headline figures.
type QuizRecord struct {
	ID          int64
	RunID       string
	Grade       scoring.Grade
	Percentage  float64
	CO2AnnualKg int
	Result      quiz.Result
	CreatedAt   time.Time
}

// SaveQuizResult stores a result hand-off record together with the report
// computed from it. Returns the generated run id.
func (s *Store) SaveQuizResult(res quiz.Result, report scoring.PollutionReport) (string, error) {
	data, err := res.Marshal()
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode quiz result: %w", err)
	}

	runID := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO quiz_results (run_id, grade, percentage, co2_kg, result_json)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, string(report.Grade), report.Percentage, report.CO2AnnualKg, string(data),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save quiz result: %w", err)
	}

	return runID, nil
}

// RecentQuizResults returns the latest quiz results, newest first.
func (s *Store) RecentQuizResults(limit int) ([]QuizRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, grade, percentage, co2_kg, result_json, created_at
		 FROM quiz_results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query quiz results: %w", err)
	}
	defer rows.Close()

	var records []QuizRecord
	for rows.Next() {
		var r QuizRecord
		var grade, raw string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &grade, &r.Percentage, &r.CO2AnnualKg, &raw, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Grade = scoring.Grade(grade)
		r.CreatedAt = parseTime(createdAt)
		if r.Result, err = quiz.ParseResult([]byte(raw)); err != nil {
			return nil, fmt.Errorf("storage: quiz result %s: %w", r.RunID, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
