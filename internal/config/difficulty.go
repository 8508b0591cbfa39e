package config

// durationForPreset returns the round length for a preset, relative to the
// configured base duration.
func durationForPreset(base int, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return base + base/2
	case DifficultyHard:
		return max(1, base*3/4)
	default:
		return base
	}
}

// ApplyCleanupPreset modifies the config based on a difficulty preset.
// Hard rounds are shorter and punish wrong drops harder; easy rounds are longer.
func ApplyCleanupPreset(cfg *CleanupConfig, preset DifficultyPreset) {
	cfg.Round.DurationSeconds = durationForPreset(cfg.Round.DurationSeconds, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.WrongPollution = max(1, cfg.Scoring.WrongPollution-2)
	case DifficultyHard:
		cfg.Scoring.WrongPollution += 2
	}
}
