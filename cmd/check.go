package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jenneetee/recanon"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Canonicalize every pattern in a file, one per line",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide a file with one pattern per line")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		failures, err := checkPatternFile(ctx, args[0])
		if err != nil {
			logger.Error("Failed to check pattern file",
				zap.String("path", args[0]), zap.Error(err))
			os.Exit(1)
		}

		for _, failure := range failures {
			fmt.Println(failure)
		}
		if len(failures) > 0 {
			fmt.Printf("%d invalid pattern(s)\n", len(failures))
			os.Exit(1)
		}
	},
}

// checkPatternFile canonicalizes each non-blank, non-comment line of the file
// at path and returns one message per invalid pattern.
func checkPatternFile(ctx context.Context, path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var failures []string
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_ = bar.Add(1)

		pattern := strings.TrimSpace(line)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if _, err := recanon.Canonicalize(pattern); err != nil {
			failures = append(failures, fmt.Sprintf("%s:%d: %v", path, i+1, err))
		}
	}
	fmt.Println()
	return failures, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
