package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/games/cleanup"
	"github.com/vovakirdan/ecoclean/internal/platform/tui"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagPrintConfig bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Server Clean-up",
	Long: `Sort the digital waste on a cluttered server before time runs out.
Each correct drop lowers pollution; each wrong one raises it.

Controls:
  Left/Right/Tab  - Select an item
  1               - Drop in the DELETE bin
  2               - Drop in the ARCHIVE bin
  3               - Drop in the RECYCLE bin
  R               - Play again (after the round)
  Esc             - Leave
  Q/Ctrl+C        - Quit
  Ctrl+S          - Save a screenshot

Difficulty options:
  easy   - Longer round, wrong drops pollute less
  normal - Configured values
  hard   - Shorter round, wrong drops pollute more

Examples:
  ecoclean play
  ecoclean play --difficulty hard
  ecoclean play --config ./my-cleanup.yaml --seed 42
  ecoclean play --print-config > ~/.ecoclean/configs/cleanup.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagPrintConfig, "print-config", false, "Print the default game config YAML and exit")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagPrintConfig {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("cleanup"))
		return err
	}

	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	game, err := cleanup.New(gameCfg)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	st, err := tui.Run(game, store, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if st.Finished() {
		fmt.Printf("Final score %d, pollution %d%%, %s\n", st.Score, st.PollutionLevel, st.Outcome)
	}
	return nil
}
