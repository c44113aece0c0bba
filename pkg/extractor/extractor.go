// Package extractor produces the pattern list the scoring stages consume.
//
// Pattern discovery itself lives behind the Source interface; the extractor
// normalizes and filters whatever the source returns. The default source is
// a no-op: the external architecture-mapping integration supplies patterns
// when one is configured.
package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/model"
)

// Source supplies raw patterns for a scan.
type Source interface {
	// Name identifies the source in pattern metadata and progress output.
	Name() string
	// Fetch returns the raw pattern list. Implementations may perform I/O.
	Fetch(ctx context.Context) ([]model.Pattern, error)
}

// NopSource is the default pattern source. It performs no discovery and
// always returns an empty list.
type NopSource struct{}

func (NopSource) Name() string { return "none" }

func (NopSource) Fetch(ctx context.Context) ([]model.Pattern, error) {
	return nil, nil
}

// Extractor normalizes and filters patterns from a Source.
type Extractor struct {
	cfg    config.Extraction
	source Source
}

// New creates an extractor reading from the given source. A nil source
// falls back to NopSource.
func New(cfg config.Extraction, source Source) *Extractor {
	if source == nil {
		source = NopSource{}
	}
	return &Extractor{cfg: cfg, source: source}
}

// Config returns the current extraction configuration.
func (e *Extractor) Config() config.Extraction { return e.cfg }

// UpdateConfig merges the overrides into the extractor's configuration.
func (e *Extractor) UpdateConfig(o config.ExtractionOverrides) {
	e.cfg = e.cfg.Apply(o)
}

// Source returns the extractor's pattern source.
func (e *Extractor) Source() Source { return e.source }

// Extract fetches patterns from the source, derives the TESLA level for each
// and applies the configured type, confidence and count filters.
func (e *Extractor) Extract(ctx context.Context) ([]model.Pattern, error) {
	raw, err := e.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("pattern source %s: %w", e.source.Name(), err)
	}

	patterns := make([]model.Pattern, 0, len(raw))
	for _, p := range raw {
		p.Metadata.TeslaLevel = DeriveLevel(p)
		if !e.cfg.Includes(p.Type) {
			continue
		}
		if p.Metadata.Confidence < e.cfg.MinConfidence {
			continue
		}
		patterns = append(patterns, p)
		if e.cfg.MaxPatterns > 0 && len(patterns) >= e.cfg.MaxPatterns {
			break
		}
	}
	return patterns, nil
}

// DeriveLevel computes a pattern's TESLA level from its category and name.
// The rules are checked in priority order; the first match wins.
func DeriveLevel(p model.Pattern) int {
	text := strings.ToLower(p.Category + " " + p.Name)
	switch {
	case strings.Contains(text, "autonomous") || strings.Contains(text, "predict"):
		return 4
	case strings.Contains(text, "ai"):
		return 3
	case strings.Contains(text, "automat"):
		return 2
	default:
		return 1
	}
}
