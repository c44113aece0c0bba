// Package config holds the per-stage configuration of the TESLA pipeline.
//
// Every stage owns a plain value config. Callers override defaults through
// pointer-field override structs: a nil field keeps the current value, a
// non-nil field replaces it. Apply always returns a new value and never
// mutates the receiver.
package config

import "github.com/reynard-tools/tesla-scan/pkg/model"

// Extraction configures the pattern extraction stage.
type Extraction struct {
	IncludeStructural    bool    `json:"include_structural" yaml:"include_structural"`
	IncludeBehavioral    bool    `json:"include_behavioral" yaml:"include_behavioral"`
	IncludeCreational    bool    `json:"include_creational" yaml:"include_creational"`
	IncludeArchitectural bool    `json:"include_architectural" yaml:"include_architectural"`
	IncludeAutonomous    bool    `json:"include_autonomous" yaml:"include_autonomous"`
	MinConfidence        float64 `json:"min_confidence" yaml:"min_confidence"`
	MaxPatterns          int     `json:"max_patterns" yaml:"max_patterns"`
}

// ExtractionOverrides is a partial Extraction; nil fields keep the base value.
type ExtractionOverrides struct {
	IncludeStructural    *bool    `json:"include_structural,omitempty" yaml:"include_structural,omitempty"`
	IncludeBehavioral    *bool    `json:"include_behavioral,omitempty" yaml:"include_behavioral,omitempty"`
	IncludeCreational    *bool    `json:"include_creational,omitempty" yaml:"include_creational,omitempty"`
	IncludeArchitectural *bool    `json:"include_architectural,omitempty" yaml:"include_architectural,omitempty"`
	IncludeAutonomous    *bool    `json:"include_autonomous,omitempty" yaml:"include_autonomous,omitempty"`
	MinConfidence        *float64 `json:"min_confidence,omitempty" yaml:"min_confidence,omitempty"`
	MaxPatterns          *int     `json:"max_patterns,omitempty" yaml:"max_patterns,omitempty"`
}

// DefaultExtraction includes every pattern type, requires confidence >= 0.5
// and caps a scan at 100 patterns.
func DefaultExtraction() Extraction {
	return Extraction{
		IncludeStructural:    true,
		IncludeBehavioral:    true,
		IncludeCreational:    true,
		IncludeArchitectural: true,
		IncludeAutonomous:    true,
		MinConfidence:        0.5,
		MaxPatterns:          100,
	}
}

// Includes reports whether patterns of the given type pass the type filter.
func (c Extraction) Includes(t model.PatternType) bool {
	switch t {
	case model.TypeStructural:
		return c.IncludeStructural
	case model.TypeBehavioral:
		return c.IncludeBehavioral
	case model.TypeCreational:
		return c.IncludeCreational
	case model.TypeArchitectural:
		return c.IncludeArchitectural
	case model.TypeAutonomous:
		return c.IncludeAutonomous
	default:
		return false
	}
}

// Apply merges the overrides onto c and returns the merged config.
func (c Extraction) Apply(o ExtractionOverrides) Extraction {
	if o.IncludeStructural != nil {
		c.IncludeStructural = *o.IncludeStructural
	}
	if o.IncludeBehavioral != nil {
		c.IncludeBehavioral = *o.IncludeBehavioral
	}
	if o.IncludeCreational != nil {
		c.IncludeCreational = *o.IncludeCreational
	}
	if o.IncludeArchitectural != nil {
		c.IncludeArchitectural = *o.IncludeArchitectural
	}
	if o.IncludeAutonomous != nil {
		c.IncludeAutonomous = *o.IncludeAutonomous
	}
	if o.MinConfidence != nil {
		c.MinConfidence = *o.MinConfidence
	}
	if o.MaxPatterns != nil {
		c.MaxPatterns = *o.MaxPatterns
	}
	return c
}

// Points configures the point calculation stage. Multipliers are applied to
// the category sum before the grand total is clamped.
type Points struct {
	EnableFoundation   bool `json:"enable_foundation" yaml:"enable_foundation"`
	EnableIntelligence bool `json:"enable_intelligence" yaml:"enable_intelligence"`
	EnableAutomation   bool `json:"enable_automation" yaml:"enable_automation"`
	EnableAdvanced     bool `json:"enable_advanced" yaml:"enable_advanced"`

	FoundationMultiplier   float64 `json:"foundation_multiplier" yaml:"foundation_multiplier"`
	IntelligenceMultiplier float64 `json:"intelligence_multiplier" yaml:"intelligence_multiplier"`
	AutomationMultiplier   float64 `json:"automation_multiplier" yaml:"automation_multiplier"`
	AdvancedMultiplier     float64 `json:"advanced_multiplier" yaml:"advanced_multiplier"`
}

// PointsOverrides is a partial Points; nil fields keep the base value.
type PointsOverrides struct {
	EnableFoundation   *bool `json:"enable_foundation,omitempty" yaml:"enable_foundation,omitempty"`
	EnableIntelligence *bool `json:"enable_intelligence,omitempty" yaml:"enable_intelligence,omitempty"`
	EnableAutomation   *bool `json:"enable_automation,omitempty" yaml:"enable_automation,omitempty"`
	EnableAdvanced     *bool `json:"enable_advanced,omitempty" yaml:"enable_advanced,omitempty"`

	FoundationMultiplier   *float64 `json:"foundation_multiplier,omitempty" yaml:"foundation_multiplier,omitempty"`
	IntelligenceMultiplier *float64 `json:"intelligence_multiplier,omitempty" yaml:"intelligence_multiplier,omitempty"`
	AutomationMultiplier   *float64 `json:"automation_multiplier,omitempty" yaml:"automation_multiplier,omitempty"`
	AdvancedMultiplier     *float64 `json:"advanced_multiplier,omitempty" yaml:"advanced_multiplier,omitempty"`
}

// DefaultPoints enables all four categories with neutral multipliers.
func DefaultPoints() Points {
	return Points{
		EnableFoundation:       true,
		EnableIntelligence:     true,
		EnableAutomation:       true,
		EnableAdvanced:         true,
		FoundationMultiplier:   1.0,
		IntelligenceMultiplier: 1.0,
		AutomationMultiplier:   1.0,
		AdvancedMultiplier:     1.0,
	}
}

// Apply merges the overrides onto c and returns the merged config.
func (c Points) Apply(o PointsOverrides) Points {
	if o.EnableFoundation != nil {
		c.EnableFoundation = *o.EnableFoundation
	}
	if o.EnableIntelligence != nil {
		c.EnableIntelligence = *o.EnableIntelligence
	}
	if o.EnableAutomation != nil {
		c.EnableAutomation = *o.EnableAutomation
	}
	if o.EnableAdvanced != nil {
		c.EnableAdvanced = *o.EnableAdvanced
	}
	if o.FoundationMultiplier != nil {
		c.FoundationMultiplier = *o.FoundationMultiplier
	}
	if o.IntelligenceMultiplier != nil {
		c.IntelligenceMultiplier = *o.IntelligenceMultiplier
	}
	if o.AutomationMultiplier != nil {
		c.AutomationMultiplier = *o.AutomationMultiplier
	}
	if o.AdvancedMultiplier != nil {
		c.AdvancedMultiplier = *o.AdvancedMultiplier
	}
	return c
}

// Autonomy configures the autonomy analysis stage. Thresholds, when set,
// replaces the standard level threshold table and must hold four ascending
// minimum point values (level 1 through 4).
type Autonomy struct {
	IncludeStrengths       bool  `json:"include_strengths" yaml:"include_strengths"`
	IncludeWeaknesses      bool  `json:"include_weaknesses" yaml:"include_weaknesses"`
	IncludeRecommendations bool  `json:"include_recommendations" yaml:"include_recommendations"`
	IncludeNextLevel       bool  `json:"include_next_level" yaml:"include_next_level"`
	Thresholds             []int `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
}

// AutonomyOverrides is a partial Autonomy; nil fields keep the base value.
type AutonomyOverrides struct {
	IncludeStrengths       *bool `json:"include_strengths,omitempty" yaml:"include_strengths,omitempty"`
	IncludeWeaknesses      *bool `json:"include_weaknesses,omitempty" yaml:"include_weaknesses,omitempty"`
	IncludeRecommendations *bool `json:"include_recommendations,omitempty" yaml:"include_recommendations,omitempty"`
	IncludeNextLevel       *bool `json:"include_next_level,omitempty" yaml:"include_next_level,omitempty"`
	Thresholds             []int `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
}

// DefaultAutonomy populates every narrative section and uses the standard
// threshold table.
func DefaultAutonomy() Autonomy {
	return Autonomy{
		IncludeStrengths:       true,
		IncludeWeaknesses:      true,
		IncludeRecommendations: true,
		IncludeNextLevel:       true,
	}
}

// Apply merges the overrides onto c and returns the merged config.
func (c Autonomy) Apply(o AutonomyOverrides) Autonomy {
	if o.IncludeStrengths != nil {
		c.IncludeStrengths = *o.IncludeStrengths
	}
	if o.IncludeWeaknesses != nil {
		c.IncludeWeaknesses = *o.IncludeWeaknesses
	}
	if o.IncludeRecommendations != nil {
		c.IncludeRecommendations = *o.IncludeRecommendations
	}
	if o.IncludeNextLevel != nil {
		c.IncludeNextLevel = *o.IncludeNextLevel
	}
	if len(o.Thresholds) > 0 {
		c.Thresholds = append([]int(nil), o.Thresholds...)
	}
	return c
}
