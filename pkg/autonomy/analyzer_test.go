package autonomy

import (
	"testing"

	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pat(category, name string) model.Pattern {
	return model.Pattern{Category: category, Name: name}
}

func TestDetermineLevelThresholdBoundaries(t *testing.T) {
	a := New(config.DefaultAutonomy())

	tests := []struct {
		points int
		level  int
	}{
		{0, BasicAutomation},
		{1999, BasicAutomation},
		{2000, SmartAutomation},
		{3999, SmartAutomation},
		{4000, FullAutonomy},
		{6999, FullAutonomy},
		{7000, PredictiveAutonomy},
		{model.MaxPoints, PredictiveAutonomy},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.level, a.DetermineLevel(tt.points), "points=%d", tt.points)
	}
}

func TestDetermineLevelMonotonic(t *testing.T) {
	a := New(config.DefaultAutonomy())

	prev := 0
	for points := 0; points <= model.MaxPoints; points += 50 {
		level := a.DetermineLevel(points)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestDetermineLevelCustomThresholds(t *testing.T) {
	a := New(config.DefaultAutonomy().Apply(config.AutonomyOverrides{
		Thresholds: []int{0, 100, 200, 300},
	}))

	assert.Equal(t, BasicAutomation, a.DetermineLevel(99))
	assert.Equal(t, PredictiveAutonomy, a.DetermineLevel(300))
}

func TestLevelDescriptionLookup(t *testing.T) {
	for level := 1; level <= 4; level++ {
		assert.NotEqual(t, "Unknown autonomy level", LevelDescription(level))
	}
	assert.Equal(t, "Unknown autonomy level", LevelDescription(0))
	assert.Equal(t, "Unknown autonomy level", LevelDescription(5))
	assert.Equal(t, "Unknown autonomy level", LevelDescription(-1))
}

func TestAnalyzeBasicScenario(t *testing.T) {
	a := New(config.DefaultAutonomy())
	patterns := []model.Pattern{
		pat("monorepo", "Monorepo Workspace"),
		pat("testing", "Test Suites"),
		pat("ai", "AI Assistants"),
	}

	analysis := a.Analyze(patterns, 1100)
	require.NotNil(t, analysis)

	assert.Equal(t, BasicAutomation, analysis.CurrentLevel)
	assert.Equal(t, "Basic Automation", analysis.LevelName)
	assert.Equal(t, 1100, analysis.PointsAchieved)
	assert.Equal(t, model.MaxPoints, analysis.MaxPoints)
	assert.InDelta(t, 11.0, analysis.AutonomyPercentage, 0.001)

	// One strength per matched category keyword.
	assert.Len(t, analysis.Strengths, 3)
	assert.Contains(t, analysis.Strengths, "Strong monorepo foundation with unified tooling")
	assert.Contains(t, analysis.Strengths, "Comprehensive testing culture across packages")
	assert.Contains(t, analysis.Strengths, "AI integration woven into the architecture")

	// All five capabilities are absent.
	assert.Len(t, analysis.Weaknesses, 5)
	assert.Contains(t, analysis.Weaknesses, "Limited autonomous decision-making capabilities")

	// Tier-1 recommendations plus one per missing capability.
	assert.Len(t, analysis.Recommendations, 7)

	require.NotEmpty(t, analysis.NextLevelRequirements)
	assert.Contains(t, analysis.NextLevelRequirements[0], "Smart Automation")
}

func TestAnalyzeWeaknessesSuppressedByPresentCapabilities(t *testing.T) {
	a := New(config.DefaultAutonomy())
	patterns := []model.Pattern{
		pat("autonomous-decision", ""),
		pat("predictive-analytics", ""),
		pat("self-healing", ""),
		pat("adaptive-learning", ""),
		pat("monitoring", ""),
	}

	analysis := a.Analyze(patterns, 2000)
	assert.Empty(t, analysis.Weaknesses)
}

func TestAnalyzeRecommendationTiersUnlockWithLevel(t *testing.T) {
	a := New(config.DefaultAutonomy())

	// No missing-capability recommendations: all capabilities present.
	patterns := []model.Pattern{
		pat("autonomous-decision", ""),
		pat("predictive-analytics", ""),
		pat("self-healing", ""),
		pat("adaptive-learning", ""),
		pat("monitoring", ""),
	}

	level1 := a.Analyze(patterns, 0)
	level2 := a.Analyze(patterns, 2000)
	level3 := a.Analyze(patterns, 4000)

	assert.Len(t, level1.Recommendations, 2)
	assert.Len(t, level2.Recommendations, 4)
	assert.Len(t, level3.Recommendations, 6)
}

func TestAnalyzeTerminalLevelRequirements(t *testing.T) {
	a := New(config.DefaultAutonomy())

	analysis := a.Analyze(nil, 9000)
	assert.Equal(t, PredictiveAutonomy, analysis.CurrentLevel)
	require.Len(t, analysis.NextLevelRequirements, 1)
	assert.Contains(t, analysis.NextLevelRequirements[0], "Maximum autonomy achieved")
}

func TestAnalyzeSectionToggles(t *testing.T) {
	off := false
	a := New(config.DefaultAutonomy().Apply(config.AutonomyOverrides{
		IncludeStrengths:       &off,
		IncludeWeaknesses:      &off,
		IncludeRecommendations: &off,
		IncludeNextLevel:       &off,
	}))

	analysis := a.Analyze([]model.Pattern{pat("monorepo", "")}, 300)
	assert.Empty(t, analysis.Strengths)
	assert.Empty(t, analysis.Weaknesses)
	assert.Empty(t, analysis.Recommendations)
	assert.Empty(t, analysis.NextLevelRequirements)
	assert.Equal(t, 300, analysis.PointsAchieved)
}
