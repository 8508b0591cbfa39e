package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ecoclean/internal/platform/tui"
	"github.com/vovakirdan/ecoclean/internal/quiz"
	"github.com/vovakirdan/ecoclean/internal/scoring"
)

var (
	flagAnswers    []string
	flagResultFile string
	flagReportJSON bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score answers without the interactive quiz",
	Long: `Computes the pollution report for a set of answers.

Answers come either from repeated --answer id=value flags or from a result
record written by 'ecoclean quiz --out' (use --file - for stdin).
Unanswered questions count as zero; the percentage is always relative to
the full questionnaire.

Examples:
  ecoclean report --answer 1=2 --answer 2=1 --answer 9=2
  ecoclean report --file result.json --json
  cat result.json | ecoclean report --file -`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringArrayVar(&flagAnswers, "answer", nil, "Answer as id=value (repeatable)")
	reportCmd.Flags().StringVar(&flagResultFile, "file", "", "Result JSON file, or - for stdin")
	reportCmd.Flags().BoolVar(&flagReportJSON, "json", false, "Print the report as JSON")
	reportCmd.MarkFlagsMutuallyExclusive("answer", "file")
}

func runReport(cmd *cobra.Command, _ []string) error {
	res, err := readAnswers(cmd.InOrStdin())
	if err != nil {
		return err
	}

	report := scoring.ComputeReport(res.Answers, res.TotalQuestions)

	out := cmd.OutOrStdout()
	if flagReportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	fmt.Fprintln(out, tui.RenderReport(report, width))
	return nil
}

// readAnswers builds a result record from the command line flags.
func readAnswers(stdin io.Reader) (quiz.Result, error) {
	if flagResultFile != "" {
		var data []byte
		var err error
		if flagResultFile == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(flagResultFile)
		}
		if err != nil {
			return quiz.Result{}, fmt.Errorf("reading result: %w", err)
		}
		return quiz.ParseResult(data)
	}

	answers := quiz.NewAnswerSet()
	for _, raw := range flagAnswers {
		id, value, err := quiz.ParseAnswer(raw)
		if err != nil {
			return quiz.Result{}, err
		}
		if err := answers.Set(id, value); err != nil {
			return quiz.Result{}, fmt.Errorf("answer %q: %w", raw, err)
		}
	}
	if answers.AnsweredCount() < quiz.Count() {
		logger.Warn("incomplete answers, missing questions count as zero",
			"answered", answers.AnsweredCount(), "total", quiz.Count())
	}
	return quiz.NewResult(answers), nil
}
