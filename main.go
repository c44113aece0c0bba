package main

import (
	"fmt"
	"os"

	"github.com/reynard-tools/tesla-scan/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tesla-scan",
		Short: "TESLA autonomy scoring for codebases",
		Long: `tesla-scan detects architecture patterns in a codebase, scores them into
TESLA points across four categories and classifies the result into one of
four autonomy levels, with strengths, weaknesses and recommendations.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewScanCmd(),
		cmd.NewBreakdownCmd(),
		cmd.NewHistoryCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tesla-scan version %s\n", version)
		},
	}
}
