package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jenneetee/recanon"
	"github.com/jenneetee/recanon/engine"
	"github.com/jenneetee/recanon/formatter"
)

var matchCmd = &cobra.Command{
	Use:   "match [pattern] [subject]",
	Short: "Canonicalize a pattern and match it against subject text",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("error: Please provide a pattern and a subject string")
			os.Exit(1)
		}
		pattern, subject := args[0], args[1]

		canonical, err := recanon.Canonicalize(pattern)
		if err != nil {
			logger.Error("Failed to canonicalize pattern",
				zap.String("pattern", pattern), zap.Error(err))
			os.Exit(1)
		}

		res, err := engine.Match(canonical, subject)
		if err != nil {
			logger.Error("Host engine rejected canonical pattern",
				zap.String("canonical", canonical), zap.Error(err))
			os.Exit(1)
		}

		fmt.Println(formatter.MatchReport(res))
		if res == nil {
			os.Exit(1)
		}
	},
}
