package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions",
	Long: `Shows every quiz question with its options and answer values.
The values are what 'ecoclean report --answer id=value' expects.`,
	Args: cobra.NoArgs,
	Run:  runQuestions,
}

func runQuestions(_ *cobra.Command, _ []string) {
	for _, q := range quiz.Questions() {
		fmt.Printf("%2d. %s\n", q.ID, q.Prompt)
		for _, opt := range q.Options {
			fmt.Printf("      %d = %s\n", opt.Value, opt.Text)
		}
		fmt.Println()
	}

	fmt.Println("Run 'ecoclean quiz' to answer interactively.")
}
