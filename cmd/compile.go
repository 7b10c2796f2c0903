package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jenneetee/recanon"
)

var compileJSON bool

var compileCmd = &cobra.Command{
	Use:   "compile [pattern]",
	Short: "Rewrite a pattern into its canonical, fully parenthesized form",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one pattern")
			os.Exit(1)
		}
		pattern := args[0]

		canonical, err := recanon.Canonicalize(pattern)
		if err != nil {
			logger.Error("Failed to canonicalize pattern",
				zap.String("pattern", pattern), zap.Error(err))
			os.Exit(1)
		}

		if compileJSON || config.Output.JSON {
			out, err := json.Marshal(map[string]string{
				"pattern":   pattern,
				"canonical": canonical,
			})
			if err != nil {
				logger.Error("Failed to marshal output", zap.Error(err))
				os.Exit(1)
			}
			fmt.Println(string(out))
			return
		}
		fmt.Println(canonical)
	},
}

func init() {
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "Output in JSON format")
}
