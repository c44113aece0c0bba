// Package autonomy classifies a TESLA point total into an autonomy level and
// derives the narrative sections of the analysis report.
package autonomy

import (
	"strings"
	"time"

	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/model"
)

// Analyzer builds the final analysis record from patterns and points.
type Analyzer struct {
	cfg config.Autonomy
}

// New creates an analyzer with the given configuration.
func New(cfg config.Autonomy) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Config returns the current analysis configuration.
func (a *Analyzer) Config() config.Autonomy { return a.cfg }

// UpdateConfig merges the overrides into the analyzer's configuration.
func (a *Analyzer) UpdateConfig(o config.AutonomyOverrides) {
	a.cfg = a.cfg.Apply(o)
}

// DetermineLevel returns the highest autonomy level whose threshold does not
// exceed the given points. Thresholds are inclusive lower bounds.
func (a *Analyzer) DetermineLevel(points int) int {
	thresholds := defaultThresholds
	if len(a.cfg.Thresholds) == len(defaultThresholds) {
		thresholds = a.cfg.Thresholds
	}

	level := BasicAutomation
	for i, min := range thresholds {
		if points >= min {
			level = i + 1
		}
	}
	return level
}

// Analyze builds the analysis record for the given patterns and achieved
// points. It is a pure function of its inputs and the analyzer's config and
// always succeeds.
func (a *Analyzer) Analyze(patterns []model.Pattern, points int) *model.Analysis {
	level := a.DetermineLevel(points)

	analysis := &model.Analysis{
		CurrentLevel:       level,
		LevelName:          LevelName(level),
		PointsAchieved:     points,
		MaxPoints:          model.MaxPoints,
		AutonomyPercentage: float64(points) / float64(model.MaxPoints) * 100,
		Patterns:           patterns,
		Timestamp:          time.Now(),
	}

	if a.cfg.IncludeStrengths {
		analysis.Strengths = identifyStrengths(patterns)
	}
	if a.cfg.IncludeWeaknesses {
		analysis.Weaknesses = identifyWeaknesses(patterns)
	}
	if a.cfg.IncludeRecommendations {
		analysis.Recommendations = buildRecommendations(patterns, level)
	}
	if a.cfg.IncludeNextLevel {
		analysis.NextLevelRequirements = append([]string(nil), nextLevelRequirements[level]...)
	}

	return analysis
}

// LevelName returns the display name for a level, or "Unknown" outside 1-4.
func LevelName(level int) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "Unknown"
}

// LevelDescription returns the fixed description for a level 1-4 and a
// fallback string for any other input.
func LevelDescription(level int) string {
	if desc, ok := levelDescriptions[level]; ok {
		return desc
	}
	return "Unknown autonomy level"
}

func identifyStrengths(patterns []model.Pattern) []string {
	var strengths []string
	for _, ck := range strengthChecks {
		if anyCategoryContains(patterns, ck.Keyword) {
			strengths = append(strengths, ck.Strength)
		}
	}
	return strengths
}

func identifyWeaknesses(patterns []model.Pattern) []string {
	var weaknesses []string
	for _, ck := range capabilityChecks {
		if !hasCapability(patterns, ck.Keyword) {
			weaknesses = append(weaknesses, ck.Weakness)
		}
	}
	return weaknesses
}

func buildRecommendations(patterns []model.Pattern, level int) []string {
	var recs []string
	for tier, lines := range recommendationTiers {
		if level >= tier+1 {
			recs = append(recs, lines...)
		}
	}
	for _, ck := range capabilityChecks {
		if !hasCapability(patterns, ck.Keyword) {
			recs = append(recs, ck.Recommendation)
		}
	}
	return recs
}

func anyCategoryContains(patterns []model.Pattern, keyword string) bool {
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Category), keyword) {
			return true
		}
	}
	return false
}

// hasCapability reports whether any pattern's category or name mentions the
// capability keyword.
func hasCapability(patterns []model.Pattern, keyword string) bool {
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Category), keyword) ||
			strings.Contains(strings.ToLower(p.Name), keyword) {
			return true
		}
	}
	return false
}
