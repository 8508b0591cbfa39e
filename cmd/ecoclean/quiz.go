package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/platform/tui"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

var flagQuizOut string

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the digital pollution quiz",
	Long: `Answer 12 questions about your digital habits and get a pollution
grade, a yearly CO2 estimate and personalized advice.

Controls:
  Up/Down     - Highlight an option
  Enter/1-3   - Answer
  Left/Right  - Previous/next question
  R           - Retake (on the results screen)
  Esc         - Leave
  Q/Ctrl+C    - Quit

Examples:
  ecoclean quiz
  ecoclean quiz --out result.json
  ecoclean report --file result.json`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().StringVar(&flagQuizOut, "out", "", "Write the completed result record to this JSON file")
}

func runQuiz(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	res, err := tui.RunQuiz(store, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running quiz: %w", err)
	}
	if res == nil {
		fmt.Println("Quiz not completed.")
		return nil
	}

	report := scoring.ComputeReport(res.Answers, res.TotalQuestions)
	fmt.Printf("Grade %s: %s (%.0f%%, ~%d kg CO2 per year)\n",
		report.Grade, report.Title, report.Percentage, report.CO2AnnualKg)

	if flagQuizOut != "" {
		data, err := res.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagQuizOut, data, 0o600); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		fmt.Printf("Result written to %s\n", flagQuizOut)
	}
	return nil
}
