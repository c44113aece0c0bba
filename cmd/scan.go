package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/reynard-tools/tesla-scan/pkg/codebase"
	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/extractor"
	"github.com/reynard-tools/tesla-scan/pkg/formatter"
	"github.com/reynard-tools/tesla-scan/pkg/history"
	"github.com/reynard-tools/tesla-scan/pkg/mapper"
	"github.com/reynard-tools/tesla-scan/pkg/scanner"
	"github.com/reynard-tools/tesla-scan/pkg/watch"
	"github.com/spf13/cobra"
)

var (
	scanRoot         string
	scanSource       string
	scanConfigFile   string
	scanOutputFormat string
	scanVerbose      bool
	scanSave         bool
	scanExport       string
	scanWatch        bool
	scanDataDir      string
	scanMapperURL    string
	scanMapperToken  string
)

func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [flags]",
		Short: "Scan a codebase and classify its TESLA autonomy level",
		Long: `Scan a codebase for architecture patterns, score them into TESLA points
and classify the result into one of four autonomy levels.

Examples:
  # Scan the current directory
  tesla-scan scan

  # Scan another repository and keep the result in history
  tesla-scan scan --root ../backend --save

  # Use the remote architecture-mapping service as the pattern source
  tesla-scan scan --source mapper --mapper-url https://mapper.internal

  # Rescan automatically whenever files change
  tesla-scan scan --watch

  # Machine-readable output, exported to a file
  tesla-scan scan -o json --export report.json`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	cmd.Flags().StringVar(&scanRoot, "root", ".", "Repository root to scan")
	cmd.Flags().StringVar(&scanSource, "source", "fs", "Pattern source (fs, mapper, none)")
	cmd.Flags().StringVar(&scanConfigFile, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&scanOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Show stage-by-stage progress instead of a spinner")
	cmd.Flags().BoolVar(&scanSave, "save", false, "Persist the result in scan history")
	cmd.Flags().StringVar(&scanExport, "export", "", "Write the report to a file (.json or .yaml)")
	cmd.Flags().BoolVar(&scanWatch, "watch", false, "Rescan whenever files under the root change")
	cmd.Flags().StringVar(&scanDataDir, "data-dir", history.DefaultDir(), "Directory for the history database")
	cmd.Flags().StringVar(&scanMapperURL, "mapper-url", "", "Architecture-mapping service URL (or "+mapper.EnvMapperURL+")")
	cmd.Flags().StringVar(&scanMapperToken, "mapper-token", "", "Architecture-mapping service token (or "+mapper.EnvMapperToken+")")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(scanRoot)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	opts, err := buildScannerOptions(scanConfigFile, scanVerbose)
	if err != nil {
		return err
	}

	source, err := buildSource(scanSource, root, scanMapperURL, scanMapperToken)
	if err != nil {
		return err
	}

	sc := scanner.NewWithSource(opts, source, formatter.NewConsoleReporter())

	printScanHeader(root, source)

	if err := scanOnce(cmd.Context(), sc, root, source); err != nil {
		return err
	}

	if !scanWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(root, func() {
		if err := scanOnce(ctx, sc, root, source); err != nil {
			printError(fmt.Sprintf("rescan failed: %v", err))
		}
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	printSuccess("Watching for changes (Ctrl-C to stop)")
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// scanOnce runs a single scan and handles display, history and export.
func scanOnce(ctx context.Context, sc *scanner.Scanner, root string, source extractor.Source) error {
	var s *spinner.Spinner
	if !scanVerbose {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Scanning codebase..."
		s.Start()
	}

	analysis, err := sc.Scan(ctx)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if !scanVerbose {
		printSuccess(fmt.Sprintf("Scan complete: %s (%d points)", analysis.LevelName, analysis.PointsAchieved))
	}

	if err := formatter.DisplayAnalysis(analysis, scanOutputFormat); err != nil {
		return err
	}

	if scanSave {
		store, err := history.Open(scanDataDir)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Save(root, source.Name(), analysis)
		if err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Saved as scan #%d", id))
	}

	if scanExport != "" {
		if err := formatter.WriteReport(analysis, scanExport); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Report written to %s", scanExport))
	}

	return nil
}

// buildScannerOptions merges an optional YAML config file into the scanner
// options. CLI behavior flags are applied by the caller.
func buildScannerOptions(configFile string, verbose bool) (scanner.Options, error) {
	opts := scanner.Options{Logging: verbose}
	if configFile == "" {
		return opts, nil
	}

	f, err := config.LoadFile(configFile)
	if err != nil {
		return opts, err
	}
	opts.Extraction = f.Extraction
	opts.Points = f.Points
	opts.Autonomy = f.Autonomy
	return opts, nil
}

func buildSource(kind, root, mapperURL, mapperToken string) (extractor.Source, error) {
	switch kind {
	case "fs":
		return codebase.NewSource(root), nil
	case "mapper":
		return mapper.FromEnv(mapperURL, mapperToken)
	case "none":
		return extractor.NopSource{}, nil
	default:
		return nil, fmt.Errorf("unknown pattern source: %s (supported: fs, mapper, none)", kind)
	}
}

func printScanHeader(root string, source extractor.Source) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("⚡ TESLA Architecture Scanner")
	fmt.Printf("📁 Root: %s\n", root)
	fmt.Printf("🔎 Source: %s\n", source.Name())
	if scanWatch {
		fmt.Println("👀 Mode: watch")
	}
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
