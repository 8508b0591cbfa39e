package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start ecoclean with a menu",
	Long: `Start ecoclean in interactive menu mode.

Pick the quiz, the clean-up game or the scoreboard. Leaving any screen
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Examples:
  ecoclean menu
  ecoclean menu --fps 30
  ecoclean menu --difficulty easy --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, gameCfg, runtimeConfig(), logger)
}
