// Package config provides YAML-based game configuration loading and
// difficulty presets for ecoclean.
package config

import "fmt"

// CleanupConfig contains all configuration for the Server Clean-up game.
type CleanupConfig struct {
	Round   CleanupRound   `yaml:"round"`
	Scoring CleanupScoring `yaml:"scoring"`
	Catalog []CatalogEntry `yaml:"catalog"`
}

// CleanupRound defines the timing and verdict parameters of one round.
type CleanupRound struct {
	DurationSeconds int `yaml:"duration_seconds"`
	StartPollution  int `yaml:"start_pollution"`
	WinBelow        int `yaml:"win_below"`  // Pollution strictly below this wins
	LoseAbove       int `yaml:"lose_above"` // Pollution strictly above this loses
}

// CleanupScoring defines how a classification moves score and pollution.
type CleanupScoring struct {
	CorrectPoints    int `yaml:"correct_points"`
	WrongPenalty     int `yaml:"wrong_penalty"`
	CorrectPollution int `yaml:"correct_pollution"` // Pollution removed by a correct drop
	WrongPollution   int `yaml:"wrong_pollution"`   // Pollution added by a wrong drop
}

// CatalogEntry maps an item archetype to the bin it belongs in.
// Names are validated by the game package.
type CatalogEntry struct {
	Archetype string `yaml:"archetype"`
	Bin       string `yaml:"bin"`
}

// Validate checks numeric ranges. The catalog is validated by the game.
func (c CleanupConfig) Validate() error {
	r := c.Round
	if r.DurationSeconds < 1 {
		return fmt.Errorf("config: round.duration_seconds must be >= 1, got %d", r.DurationSeconds)
	}
	if r.StartPollution < 0 || r.StartPollution > 100 {
		return fmt.Errorf("config: round.start_pollution must be in [0, 100], got %d", r.StartPollution)
	}
	if r.WinBelow > r.LoseAbove {
		return fmt.Errorf("config: round.win_below (%d) must not exceed round.lose_above (%d)", r.WinBelow, r.LoseAbove)
	}
	s := c.Scoring
	if s.CorrectPoints < 0 || s.WrongPenalty < 0 || s.CorrectPollution < 0 || s.WrongPollution < 0 {
		return fmt.Errorf("config: scoring values must be non-negative")
	}
	if len(c.Catalog) == 0 {
		return fmt.Errorf("config: catalog is empty")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
