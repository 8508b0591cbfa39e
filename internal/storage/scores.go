package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameScore is one finished clean-up round.
type GameScore struct {
	ID        int64
	RunID     string
	Score     int
	Outcome   string
	Pollution int
	Cleared   int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics over all recorded rounds.
type GameStats struct {
	Rounds     int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// SaveGameScore records a finished round. A missing run id is generated.
// Returns the run id of the stored record.
func (s *Store) SaveGameScore(g GameScore) (string, error) {
	if g.RunID == "" {
		g.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO game_scores (run_id, score, outcome, pollution, cleared)
		 VALUES (?, ?, ?, ?, ?)`,
		g.RunID, g.Score, g.Outcome, g.Pollution, g.Cleared,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game score: %w", err)
	}

	return g.RunID, nil
}

// TopScores retrieves the best N rounds, ordered by score descending.
func (s *Store) TopScores(limit int) ([]GameScore, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, score, outcome, pollution, cleared, created_at
		 FROM game_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []GameScore
	for rows.Next() {
		var e GameScore
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Score, &e.Outcome, &e.Pollution, &e.Cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM game_scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates every recorded round.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM game_scores`,
	).Scan(&stats.Rounds, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearScores deletes every recorded round.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM game_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
