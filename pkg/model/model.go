package model

import "time"

// MaxPoints is the global TESLA point ceiling across all four categories.
const MaxPoints = 10000

// PatternType classifies a detected architecture pattern.
type PatternType string

const (
	TypeStructural    PatternType = "structural"
	TypeBehavioral    PatternType = "behavioral"
	TypeCreational    PatternType = "creational"
	TypeArchitectural PatternType = "architectural"
	TypeAutonomous    PatternType = "autonomous"
)

// PatternTypes lists every known pattern type.
func PatternTypes() []PatternType {
	return []PatternType{
		TypeStructural,
		TypeBehavioral,
		TypeCreational,
		TypeArchitectural,
		TypeAutonomous,
	}
}

// Pattern is a detected architecture pattern. Patterns are produced fresh on
// every scan and are read-only once handed to the scoring stages.
type Pattern struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Type        PatternType     `json:"type" yaml:"type"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Components  []string        `json:"components,omitempty" yaml:"components,omitempty"`
	Benefits    []string        `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Drawbacks   []string        `json:"drawbacks,omitempty" yaml:"drawbacks,omitempty"`
	Quality     Quality         `json:"quality" yaml:"quality"`
	Metadata    PatternMetadata `json:"metadata" yaml:"metadata"`
}

// Quality scores a pattern on three 0-10 axes.
type Quality struct {
	Correctness  int `json:"correctness" yaml:"correctness"`
	Completeness int `json:"completeness" yaml:"completeness"`
	Consistency  int `json:"consistency" yaml:"consistency"`
}

// PatternMetadata carries provenance for a detected pattern.
type PatternMetadata struct {
	Source       string    `json:"source" yaml:"source"`
	Confidence   float64   `json:"confidence" yaml:"confidence"` // 0.0 - 1.0
	LastDetected time.Time `json:"last_detected" yaml:"last_detected"`
	TeslaLevel   int       `json:"tesla_level" yaml:"tesla_level"` // 1 - 4
}

// Analysis is the result of a full TESLA scan: the point total, the derived
// autonomy level, and the narrative sections.
type Analysis struct {
	CurrentLevel          int       `json:"current_level" yaml:"current_level"`
	LevelName             string    `json:"level_name" yaml:"level_name"`
	PointsAchieved        int       `json:"points_achieved" yaml:"points_achieved"`
	MaxPoints             int       `json:"max_points" yaml:"max_points"`
	AutonomyPercentage    float64   `json:"autonomy_percentage" yaml:"autonomy_percentage"`
	Patterns              []Pattern `json:"patterns" yaml:"patterns"`
	Strengths             []string  `json:"strengths" yaml:"strengths"`
	Weaknesses            []string  `json:"weaknesses" yaml:"weaknesses"`
	Recommendations       []string  `json:"recommendations" yaml:"recommendations"`
	NextLevelRequirements []string  `json:"next_level_requirements" yaml:"next_level_requirements"`
	Timestamp             time.Time `json:"timestamp" yaml:"timestamp"`
}

// Breakdown holds per-category sub-scores for diagnostic display. Only the
// total is clamped to MaxPoints; the category values are raw sums.
type Breakdown struct {
	Foundation   int `json:"foundation" yaml:"foundation"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Automation   int `json:"automation" yaml:"automation"`
	Advanced     int `json:"advanced" yaml:"advanced"`
	Total        int `json:"total" yaml:"total"`
}
