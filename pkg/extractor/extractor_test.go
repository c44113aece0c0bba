package extractor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reynard-tools/tesla-scan/pkg/config"
	"github.com/reynard-tools/tesla-scan/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	patterns []model.Pattern
	err      error
}

func (stubSource) Name() string { return "stub" }

func (s stubSource) Fetch(ctx context.Context) ([]model.Pattern, error) {
	return s.patterns, s.err
}

func TestDefaultSourceYieldsNoPatterns(t *testing.T) {
	e := New(config.DefaultExtraction(), nil)

	patterns, err := e.Extract(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestSourceErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	e := New(config.DefaultExtraction(), stubSource{err: boom})

	_, err := e.Extract(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stub")
}

func TestDeriveLevelPriorityOrder(t *testing.T) {
	tests := []struct {
		category string
		name     string
		level    int
	}{
		{"autonomous-decision", "", 4},
		{"predictive-analytics", "", 4},
		{"", "Predictor Service", 4},
		{"ai", "", 3},
		{"", "AI Pipeline", 3},
		{"test-automation", "", 2},
		{"", "Automated Builds", 2},
		{"monorepo", "", 1},
		{"", "", 1},
		// Higher-priority rules win even when lower ones also match.
		{"autonomous-ai-automation", "", 4},
	}
	for _, tt := range tests {
		p := model.Pattern{Category: tt.category, Name: tt.name}
		assert.Equalf(t, tt.level, DeriveLevel(p), "category=%q name=%q", tt.category, tt.name)
	}
}

func TestExtractSetsDerivedLevel(t *testing.T) {
	src := stubSource{patterns: []model.Pattern{
		{Type: model.TypeArchitectural, Category: "ai", Metadata: model.PatternMetadata{Confidence: 0.9}},
	}}
	e := New(config.DefaultExtraction(), src)

	patterns, err := e.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, 3, patterns[0].Metadata.TeslaLevel)
}

func TestExtractFiltersByConfidence(t *testing.T) {
	src := stubSource{patterns: []model.Pattern{
		{Type: model.TypeStructural, Category: "monorepo", Metadata: model.PatternMetadata{Confidence: 0.4}},
		{Type: model.TypeBehavioral, Category: "testing", Metadata: model.PatternMetadata{Confidence: 0.5}},
	}}
	e := New(config.DefaultExtraction(), src)

	patterns, err := e.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "testing", patterns[0].Category)
}

func TestExtractFiltersByType(t *testing.T) {
	off := false
	cfg := config.DefaultExtraction().Apply(config.ExtractionOverrides{
		IncludeBehavioral: &off,
	})
	src := stubSource{patterns: []model.Pattern{
		{Type: model.TypeBehavioral, Category: "testing", Metadata: model.PatternMetadata{Confidence: 0.9}},
		{Type: model.TypeStructural, Category: "monorepo", Metadata: model.PatternMetadata{Confidence: 0.9}},
	}}
	e := New(cfg, src)

	patterns, err := e.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.TypeStructural, patterns[0].Type)
}

func TestExtractTruncatesToMaxPatterns(t *testing.T) {
	var raw []model.Pattern
	for i := 0; i < 10; i++ {
		raw = append(raw, model.Pattern{
			ID:       fmt.Sprintf("p%d", i),
			Type:     model.TypeStructural,
			Category: "monorepo",
			Metadata: model.PatternMetadata{Confidence: 0.9},
		})
	}
	three := 3
	cfg := config.DefaultExtraction().Apply(config.ExtractionOverrides{MaxPatterns: &three})
	e := New(cfg, stubSource{patterns: raw})

	patterns, err := e.Extract(context.Background())
	require.NoError(t, err)
	assert.Len(t, patterns, 3)
	assert.Equal(t, "p0", patterns[0].ID)
}

func TestUpdateConfigMergesOverrides(t *testing.T) {
	e := New(config.DefaultExtraction(), nil)
	conf := 0.8
	e.UpdateConfig(config.ExtractionOverrides{MinConfidence: &conf})

	assert.Equal(t, 0.8, e.Config().MinConfidence)
	assert.Equal(t, 100, e.Config().MaxPatterns)
}
