package config

import (
	_ "embed"
)

//go:embed defaults/cleanup.yaml
var defaultCleanupYAML []byte

// DefaultCleanupConfig returns the default Server Clean-up configuration.
func DefaultCleanupConfig() CleanupConfig {
	return CleanupConfig{
		Round: CleanupRound{
			DurationSeconds: 60,
			StartPollution:  50,
			WinBelow:        30,
			LoseAbove:       70,
		},
		Scoring: CleanupScoring{
			CorrectPoints:    10,
			WrongPenalty:     5,
			CorrectPollution: 5,
			WrongPollution:   8,
		},
		Catalog: []CatalogEntry{
			{Archetype: "email", Bin: "delete"},
			{Archetype: "video", Bin: "archive"},
			{Archetype: "ai", Bin: "delete"},
			{Archetype: "file", Bin: "recycle"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "cleanup":
		return defaultCleanupYAML
	default:
		return nil
	}
}
