package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/reynard-tools/tesla-scan/pkg/formatter"
	"github.com/reynard-tools/tesla-scan/pkg/scanner"
	"github.com/spf13/cobra"
)

var (
	breakdownRoot         string
	breakdownSource       string
	breakdownConfigFile   string
	breakdownOutputFormat string
	breakdownMapperURL    string
	breakdownMapperToken  string
)

func NewBreakdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown [flags]",
		Short: "Show per-category TESLA point sub-scores",
		Long: `Scan a codebase and show how the TESLA point total splits across the
Foundation, Intelligence, Automation and Advanced categories.

Examples:
  # Breakdown for the current directory
  tesla-scan breakdown

  # Machine-readable breakdown for another repository
  tesla-scan breakdown --root ../backend -o json`,
		Args: cobra.NoArgs,
		RunE: runBreakdown,
	}

	cmd.Flags().StringVar(&breakdownRoot, "root", ".", "Repository root to scan")
	cmd.Flags().StringVar(&breakdownSource, "source", "fs", "Pattern source (fs, mapper, none)")
	cmd.Flags().StringVar(&breakdownConfigFile, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&breakdownOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&breakdownMapperURL, "mapper-url", "", "Architecture-mapping service URL")
	cmd.Flags().StringVar(&breakdownMapperToken, "mapper-token", "", "Architecture-mapping service token")

	return cmd
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(breakdownRoot)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	opts, err := buildScannerOptions(breakdownConfigFile, false)
	if err != nil {
		return err
	}

	source, err := buildSource(breakdownSource, root, breakdownMapperURL, breakdownMapperToken)
	if err != nil {
		return err
	}

	sc := scanner.NewWithSource(opts, source, nil)

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Scanning codebase..."
	s.Start()

	_, err = sc.Scan(cmd.Context())
	s.Stop()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return formatter.DisplayBreakdown(sc.PointBreakdown(), breakdownOutputFormat)
}
