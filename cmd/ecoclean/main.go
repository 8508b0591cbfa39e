// ecoclean estimates your digital pollution with a short quiz and lets you
// clean up a cluttered server in a timed sorting game, in the terminal.
//
// Usage:
//
//	ecoclean questions       - List the quiz questions
//	ecoclean quiz            - Take the quiz interactively
//	ecoclean report          - Score answers given on the command line or in a file
//	ecoclean play            - Play the Server Clean-up game
//	ecoclean menu            - Start the menu to pick quiz, game or scores
//	ecoclean scores          - Show clean-up high scores and quiz history
//	ecoclean tips            - List everyday tips for a lighter footprint
//	ecoclean serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible item placement
//	--db <path>     - Keep results in a database file (default: in memory)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "ecoclean",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecoclean",
	Short: "ecoclean - measure and shrink your digital pollution",
	Long: `ecoclean estimates the pollution caused by your digital habits and
teaches better ones with a timed clean-up game.

Available commands:
  questions - Show the quiz questions and answer values
  quiz      - Take the 12-question quiz
  report    - Score a set of answers without the interactive quiz
  play      - Play Server Clean-up directly
  menu      - Interactive menu
  scores    - View clean-up scores and quiz history
  tips      - Everyday tips for a lighter footprint
  serve     - Start SSH server for remote play

Results are kept in memory for the current session unless --db is given.

Examples:
  ecoclean quiz
  ecoclean report --answer 1=2 --answer 2=0
  ecoclean play --difficulty hard
  ecoclean menu --db ~/.ecoclean/results.db
  ecoclean serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (empty = in memory)")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(serveCmd)
}
