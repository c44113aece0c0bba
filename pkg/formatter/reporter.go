package formatter

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleReporter prints scan progress to stdout. It satisfies the
// scanner.Reporter interface.
type ConsoleReporter struct{}

// NewConsoleReporter creates a reporter writing colored output to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

func (r *ConsoleReporter) Header(msg string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Printf("⚡ %s\n", msg)
	fmt.Println()
}

func (r *ConsoleReporter) Section(msg string) {
	white := color.New(color.FgWhite, color.Bold)
	white.Printf("▸ %s\n", msg)
}

func (r *ConsoleReporter) Info(msg string) {
	fmt.Printf("  %s\n", msg)
}

func (r *ConsoleReporter) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func (r *ConsoleReporter) Error(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}
