package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/reynard-tools/tesla-scan/pkg/formatter"
	"github.com/reynard-tools/tesla-scan/pkg/history"
	"github.com/spf13/cobra"
)

var (
	historyDataDir      string
	historyLimit        int
	historyOutputFormat string
	historyKeep         int
)

func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and inspect saved scans",
		Long: `Browse scans persisted with 'tesla-scan scan --save'.

Examples:
  # List the most recent scans
  tesla-scan history

  # Re-display a saved report
  tesla-scan history show 3 -o yaml

  # Keep only the last 10 scans
  tesla-scan history prune --keep 10`,
		Args: cobra.NoArgs,
		RunE: runHistoryList,
	}

	cmd.PersistentFlags().StringVar(&historyDataDir, "data-dir", history.DefaultDir(), "Directory for the history database")
	cmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scans to list")

	show := &cobra.Command{
		Use:   "show ID",
		Short: "Display a saved scan report",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}
	show.Flags().StringVarP(&historyOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete old scans",
		Args:  cobra.NoArgs,
		RunE:  runHistoryPrune,
	}
	prune.Flags().IntVar(&historyKeep, "keep", 20, "Number of recent scans to keep")

	cmd.AddCommand(show, prune)
	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyDataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No saved scans. Run 'tesla-scan scan --save' first.")
		return nil
	}

	white := color.New(color.FgWhite, color.Bold)
	white.Printf("%-5s %-20s %-30s %-7s %-20s %s\n", "ID", "DATE", "ROOT", "POINTS", "LEVEL", "PATTERNS")
	for _, e := range entries {
		fmt.Printf("%-5d %-20s %-30s %-7d %-20s %d\n",
			e.ID, e.CreatedAt, truncate(e.Root, 30), e.Points, e.LevelName, e.PatternCount)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scan id %q", args[0])
	}

	store, err := history.Open(historyDataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, analysis, err := store.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("Scan #%d of %s (%s, source: %s)\n", entry.ID, entry.Root, entry.CreatedAt, entry.Source)
	return formatter.DisplayAnalysis(analysis, historyOutputFormat)
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyDataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Prune(historyKeep)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Removed %d scans, kept the %d most recent", removed, historyKeep))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
