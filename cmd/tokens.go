package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jenneetee/recanon"
	"github.com/jenneetee/recanon/formatter"
	"github.com/jenneetee/recanon/syntax"
)

var showTree bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [pattern]",
	Short: "Dump the token stream of a pattern",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one pattern")
			os.Exit(1)
		}
		pattern := args[0]

		tokens, err := recanon.Tokenize(pattern)
		if err != nil {
			logger.Error("Failed to tokenize pattern",
				zap.String("pattern", pattern), zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.TokenTable(tokens))

		if showTree {
			node, err := syntax.NewParser(tokens).Parse()
			if err != nil {
				logger.Error("Failed to parse pattern",
					zap.String("pattern", pattern), zap.Error(err))
				os.Exit(1)
			}
			fmt.Print(formatter.Tree(node))
		}
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&showTree, "tree", false, "Also print the syntax tree")
}
