package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database. Failure is not fatal: the caller
// carries on without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadGameConfig loads the clean-up config and applies a difficulty preset.
func loadGameConfig(path, difficulty string) (config.CleanupConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.CleanupConfig{}, err
	}

	cfg, err := config.LoadCleanup(path)
	if err != nil {
		return config.CleanupConfig{}, fmt.Errorf("loading game config: %w", err)
	}
	config.ApplyCleanupPreset(&cfg, preset)
	return cfg, nil
}
