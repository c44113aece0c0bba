// Package scoring turns a pattern list into a TESLA point total.
//
// Scoring is a pure function of the pattern list and the calculator's
// configuration: four independent category scores, each the sum of fixed
// keyword checks, with only the grand total clamped to the global maximum.
package scoring

import (
	"strings"

	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/model"
)

// Calculator computes TESLA points for a pattern list.
type Calculator struct {
	cfg config.Points
}

// New creates a calculator with the given configuration.
func New(cfg config.Points) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the current scoring configuration.
func (c *Calculator) Config() config.Points { return c.cfg }

// UpdateConfig merges the overrides into the calculator's configuration.
func (c *Calculator) UpdateConfig(o config.PointsOverrides) {
	c.cfg = c.cfg.Apply(o)
}

// CalculatePoints returns the total TESLA points for the pattern list,
// clamped to model.MaxPoints. It is total over any input, including empty.
func (c *Calculator) CalculatePoints(patterns []model.Pattern) int {
	return c.Breakdown(patterns).Total
}

// Breakdown returns the per-category sub-scores and the clamped total.
// Enable flags zero a category; multipliers scale each category sum before
// the total clamp. Categories themselves are never clamped.
func (c *Calculator) Breakdown(patterns []model.Pattern) model.Breakdown {
	b := model.Breakdown{}
	if c.cfg.EnableFoundation {
		b.Foundation = scale(FoundationPoints(patterns), c.cfg.FoundationMultiplier)
	}
	if c.cfg.EnableIntelligence {
		b.Intelligence = scale(IntelligencePoints(patterns), c.cfg.IntelligenceMultiplier)
	}
	if c.cfg.EnableAutomation {
		b.Automation = scale(AutomationPoints(patterns), c.cfg.AutomationMultiplier)
	}
	if c.cfg.EnableAdvanced {
		b.Advanced = scale(AdvancedPoints(patterns), c.cfg.AdvancedMultiplier)
	}

	total := b.Foundation + b.Intelligence + b.Automation + b.Advanced
	if total > model.MaxPoints {
		total = model.MaxPoints
	}
	b.Total = total
	return b
}

// FoundationPoints scores the tooling and project hygiene checks.
func FoundationPoints(patterns []model.Pattern) int {
	return sumChecks(patterns, foundationChecks)
}

// IntelligencePoints scores the analysis and AI capability checks.
func IntelligencePoints(patterns []model.Pattern) int {
	return sumChecks(patterns, intelligenceChecks)
}

// AutomationPoints scores the build, deploy and workflow checks.
func AutomationPoints(patterns []model.Pattern) int {
	return sumChecks(patterns, automationChecks)
}

// AdvancedPoints scores the predictive and self-managing capability checks.
func AdvancedPoints(patterns []model.Pattern) int {
	return sumChecks(patterns, advancedChecks)
}

func sumChecks(patterns []model.Pattern, checks []check) int {
	points := 0
	for _, ck := range checks {
		if anyMatch(patterns, ck) {
			points += ck.Points
		}
	}
	return points
}

func anyMatch(patterns []model.Pattern, ck check) bool {
	for _, p := range patterns {
		if p.Category == ck.Category {
			return true
		}
		if ck.Keyword != "" && strings.Contains(strings.ToLower(p.Name), ck.Keyword) {
			return true
		}
	}
	return false
}

func scale(points int, multiplier float64) int {
	if multiplier == 1.0 {
		return points
	}
	return int(float64(points) * multiplier)
}
