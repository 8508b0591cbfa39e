package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecoclean/internal/scoring"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show everyday tips for reducing digital pollution",
	Long: `Lists general habits that shrink your digital footprint, whatever
your quiz answers. Personalized advice comes with 'ecoclean quiz'.`,
	Args: cobra.NoArgs,
	Run:  runTips,
}

func runTips(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for i, t := range scoring.Tips() {
		fmt.Fprintf(out, "%2d. %s\n    %s\n\n", i+1, t.Title, t.Text)
	}
}
