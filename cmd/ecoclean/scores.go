package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/platform/tui"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

var (
	flagScoresTUI   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show clean-up scores and quiz history",
	Long: `Display the top 10 clean-up rounds and the latest quiz results.

Without --db the database is in memory and starts empty, so this is
mostly useful with a results file.

Examples:
  ecoclean scores --db ./results.db
  ecoclean scores --db ./results.db --tui
  ecoclean scores --db ./results.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded clean-up round")
	scoresCmd.MarkFlagsMutuallyExclusive("tui", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Clean-up scores cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(10)
	if err != nil {
		return err
	}

	fmt.Println("Server Clean-up - High Scores")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Result", "Pollution", "Date")
		fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "------", "---------", "----")
		for i, s := range scores {
			fmt.Printf("  %-4d  %-6d  %-6s  %-9s  %s\n",
				i+1, s.Score, s.Outcome, fmt.Sprintf("%d%%", s.Pollution), s.CreatedAt.Format("2006-01-02 15:04"))
		}
		if stats, err := store.Stats(); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Rounds: %d  Won: %d  Last played: %s\n",
				stats.HighScore, stats.Rounds, stats.Wins, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	records, err := store.RecentQuizResults(10)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Quiz History")
	fmt.Println()
	if len(records) == 0 {
		fmt.Println("No quiz results yet. Run 'ecoclean quiz' to take it.")
		return nil
	}
	fmt.Printf("  %-16s  %-5s  %-6s  %s\n", "Date", "Grade", "Score", "CO2/yr")
	fmt.Printf("  %-16s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------")
	for _, r := range records {
		fmt.Printf("  %-16s  %-5s  %-6s  %d kg\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Grade, fmt.Sprintf("%.0f%%", r.Percentage), r.CO2AnnualKg)
	}
	return nil
}
