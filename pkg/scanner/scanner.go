// Package scanner coordinates the TESLA pipeline: pattern extraction, point
// calculation and autonomy analysis, in that order.
package scanner

import (
	"context"
	"fmt"
	"sync"

	"github.com/reynard-tools/tesla-scan/pkg/autonomy"
	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/extractor"
	"github.com/reynard-tools/tesla-scan/pkg/model"
	"github.com/reynard-tools/tesla-scan/pkg/scoring"
)

// Reporter receives plain-string progress output during a scan.
type Reporter interface {
	Header(msg string)
	Section(msg string)
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// nopReporter discards all progress output.
type nopReporter struct{}

func (nopReporter) Header(string)  {}
func (nopReporter) Section(string) {}
func (nopReporter) Info(string)    {}
func (nopReporter) Success(string) {}
func (nopReporter) Error(string)   {}

// Options configures a new Scanner. Each stage section is a partial override
// merged onto that stage's defaults.
type Options struct {
	Extraction config.ExtractionOverrides
	Points     config.PointsOverrides
	Autonomy   config.AutonomyOverrides
	Logging    bool
}

// Overrides is a partial configuration update for a running Scanner.
type Overrides struct {
	Extraction config.ExtractionOverrides
	Points     config.PointsOverrides
	Autonomy   config.AutonomyOverrides
}

// Config is the scanner's merged configuration state.
type Config struct {
	Extraction config.Extraction
	Points     config.Points
	Autonomy   config.Autonomy
	Logging    bool
}

// ComponentConfigs exposes the merged per-stage configurations.
type ComponentConfigs struct {
	Extraction config.Extraction `json:"extraction" yaml:"extraction"`
	Points     config.Points     `json:"points" yaml:"points"`
	Autonomy   config.Autonomy   `json:"autonomy" yaml:"autonomy"`
}

// Scanner owns the three pipeline stages and runs them in sequence.
type Scanner struct {
	extractor  *extractor.Extractor
	calculator *scoring.Calculator
	analyzer   *autonomy.Analyzer
	reporter   Reporter
	logging    bool

	mu           sync.Mutex
	lastPatterns []model.Pattern
	scanned      bool
}

// New creates a scanner with no pattern source; extraction yields an empty
// list until a real source is wired in via NewWithSource.
func New(opts Options) *Scanner {
	return NewWithSource(opts, nil, nil)
}

// NewWithSource creates a scanner reading patterns from the given source and
// reporting progress through the given reporter. A nil source falls back to
// the no-op source; a nil reporter, or Logging=false, silences progress.
func NewWithSource(opts Options, source extractor.Source, reporter Reporter) *Scanner {
	if reporter == nil || !opts.Logging {
		reporter = nopReporter{}
	}
	return &Scanner{
		extractor:  extractor.New(config.DefaultExtraction().Apply(opts.Extraction), source),
		calculator: scoring.New(config.DefaultPoints().Apply(opts.Points)),
		analyzer:   autonomy.New(config.DefaultAutonomy().Apply(opts.Autonomy)),
		reporter:   reporter,
		logging:    opts.Logging,
	}
}

// Scan runs extraction, scoring and autonomy analysis in order and returns
// the combined analysis. A failing stage aborts the scan; the error is
// reported and returned as-is, with no retry and no partial result.
func (s *Scanner) Scan(ctx context.Context) (*model.Analysis, error) {
	s.reporter.Header("TESLA Architecture Scan")

	s.reporter.Section("Extracting architecture patterns")
	patterns, err := s.extractor.Extract(ctx)
	if err != nil {
		s.reporter.Error(fmt.Sprintf("pattern extraction failed: %v", err))
		return nil, err
	}
	s.reporter.Info(fmt.Sprintf("Detected %d patterns (source: %s)", len(patterns), s.extractor.Source().Name()))

	s.reporter.Section("Calculating TESLA points")
	points := s.calculator.CalculatePoints(patterns)
	s.reporter.Info(fmt.Sprintf("TESLA points: %d / %d", points, model.MaxPoints))

	s.reporter.Section("Analyzing autonomy level")
	analysis := s.analyzer.Analyze(patterns, points)
	s.reporter.Success(fmt.Sprintf("Classification: %s (level %d)", analysis.LevelName, analysis.CurrentLevel))

	s.mu.Lock()
	s.lastPatterns = patterns
	s.scanned = true
	s.mu.Unlock()

	return analysis, nil
}

// PointBreakdown returns the per-category breakdown for the most recent
// scan's patterns. Before any scan has run it returns all zeros.
func (s *Scanner) PointBreakdown() model.Breakdown {
	s.mu.Lock()
	patterns, scanned := s.lastPatterns, s.scanned
	s.mu.Unlock()

	if !scanned {
		return model.Breakdown{}
	}
	return s.calculator.Breakdown(patterns)
}

// UpdateConfig merges the partial overrides into each stage.
func (s *Scanner) UpdateConfig(o Overrides) {
	s.extractor.UpdateConfig(o.Extraction)
	s.calculator.UpdateConfig(o.Points)
	s.analyzer.UpdateConfig(o.Autonomy)
}

// Config returns the scanner's merged configuration state.
func (s *Scanner) Config() Config {
	return Config{
		Extraction: s.extractor.Config(),
		Points:     s.calculator.Config(),
		Autonomy:   s.analyzer.Config(),
		Logging:    s.logging,
	}
}

// ComponentConfigs returns the merged per-stage configurations.
func (s *Scanner) ComponentConfigs() ComponentConfigs {
	return ComponentConfigs{
		Extraction: s.extractor.Config(),
		Points:     s.calculator.Config(),
		Autonomy:   s.analyzer.Config(),
	}
}
