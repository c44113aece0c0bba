package formatter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/reynard-tools/tesla-scan/pkg/model"
	"gopkg.in/yaml.v3"
)

// DisplayAnalysis formats and displays a scan analysis.
func DisplayAnalysis(analysis *model.Analysis, format string) error {
	switch format {
	case "json":
		return displayJSON(analysis)
	case "yaml":
		return displayYAML(analysis)
	case "human":
		fallthrough
	default:
		displayHuman(analysis)
	}
	return nil
}

// DisplayBreakdown formats and displays a per-category point breakdown.
func DisplayBreakdown(b model.Breakdown, format string) error {
	switch format {
	case "json":
		return displayJSON(b)
	case "yaml":
		return displayYAML(b)
	default:
		displayBreakdownHuman(b)
	}
	return nil
}

// WriteReport writes the analysis to a file, choosing the encoding from the
// extension: .json for JSON, anything else for YAML.
func WriteReport(analysis *model.Analysis, path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(analysis, "", "  ")
	} else {
		data, err = yaml.Marshal(analysis)
	}
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func displayJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(analysis *model.Analysis) {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()

	levelColor := getLevelColor(analysis.CurrentLevel)
	levelColor.Printf("%s  AUTONOMY LEVEL: %s (%d/4)\n\n", getLevelIcon(analysis.CurrentLevel), strings.ToUpper(analysis.LevelName), analysis.CurrentLevel)

	white.Println("⚡ TESLA POINTS:")
	fmt.Printf("   %d / %d (%.1f%%)\n\n", analysis.PointsAchieved, analysis.MaxPoints, analysis.AutonomyPercentage)

	if len(analysis.Patterns) > 0 {
		white.Printf("🧩 PATTERNS DETECTED: %d\n", len(analysis.Patterns))
		for _, p := range analysis.Patterns {
			fmt.Printf("   • %s [%s/%s] confidence %.2f\n", p.Name, p.Type, p.Category, p.Metadata.Confidence)
		}
		fmt.Println()
	}

	if len(analysis.Strengths) > 0 {
		green.Println("💪 STRENGTHS:")
		for _, s := range analysis.Strengths {
			fmt.Printf("   • %s\n", s)
		}
		fmt.Println()
	}

	if len(analysis.Weaknesses) > 0 {
		yellow.Println("⚠️  WEAKNESSES:")
		for _, w := range analysis.Weaknesses {
			fmt.Printf("   • %s\n", w)
		}
		fmt.Println()
	}

	if len(analysis.Recommendations) > 0 {
		cyan.Println("💡 RECOMMENDATIONS:")
		for i, r := range analysis.Recommendations {
			fmt.Printf("   %d. %s\n", i+1, r)
		}
		fmt.Println()
	}

	if len(analysis.NextLevelRequirements) > 0 {
		white.Println("🎯 NEXT LEVEL:")
		for _, req := range analysis.NextLevelRequirements {
			fmt.Printf("   • %s\n", req)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayBreakdownHuman(b model.Breakdown) {
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	white.Println("⚡ TESLA POINT BREAKDOWN:")
	fmt.Printf("   Foundation:   %5d\n", b.Foundation)
	fmt.Printf("   Intelligence: %5d\n", b.Intelligence)
	fmt.Printf("   Automation:   %5d\n", b.Automation)
	fmt.Printf("   Advanced:     %5d\n", b.Advanced)
	fmt.Println(strings.Repeat("   ─────────────────", 1))
	fmt.Printf("   Total:        %5d / %d\n", b.Total, model.MaxPoints)
}

func getLevelColor(level int) *color.Color {
	switch level {
	case 4:
		return color.New(color.FgMagenta, color.Bold)
	case 3:
		return color.New(color.FgGreen, color.Bold)
	case 2:
		return color.New(color.FgCyan, color.Bold)
	case 1:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func getLevelIcon(level int) string {
	switch level {
	case 4:
		return "🔮"
	case 3:
		return "🤖"
	case 2:
		return "⚙️"
	case 1:
		return "🔧"
	default:
		return "⚪"
	}
}
