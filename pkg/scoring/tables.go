package scoring

// Category point ceilings. These are nominal budgets for reporting; only the
// grand total is clamped, to model.MaxPoints.
const (
	FoundationMax   = 2000
	IntelligenceMax = 3000
	AutomationMax   = 3000
	AdvancedMax     = 2000
)

// check awards a fixed point value when any pattern matches either the exact
// category or the lowercase name keyword. Checks are independent and
// additive; one pattern can satisfy several.
type check struct {
	Category string
	Keyword  string
	Points   int
}

var foundationChecks = []check{
	{Category: "monorepo", Keyword: "monorepo", Points: 300},
	{Category: "testing", Keyword: "test", Points: 300},
	{Category: "quality", Keyword: "lint", Points: 300},
	{Category: "api", Keyword: "api", Points: 300},
	{Category: "package", Keyword: "package", Points: 200},
	{Category: "documentation", Keyword: "doc", Points: 200},
	{Category: "security", Keyword: "auth", Points: 200},
}

var intelligenceChecks = []check{
	{Category: "ai", Keyword: "ai", Points: 500},
	{Category: "semantic", Keyword: "semantic", Points: 400},
	{Category: "pattern-recognition", Keyword: "pattern", Points: 400},
	{Category: "architecture-mapping", Keyword: "architecture", Points: 400},
	{Category: "code-analysis", Keyword: "analysis", Points: 300},
	{Category: "dependency-analysis", Keyword: "dependency", Points: 300},
	{Category: "relationship-mapping", Keyword: "relationship", Points: 300},
}

var automationChecks = []check{
	{Category: "build", Keyword: "build", Points: 500},
	{Category: "test-automation", Keyword: "test-automation", Points: 500},
	{Category: "deployment", Keyword: "deploy", Points: 400},
	{Category: "code-generation", Keyword: "generation", Points: 400},
	{Category: "workflow", Keyword: "workflow", Points: 400},
	{Category: "monitoring", Keyword: "monitoring", Points: 400},
	{Category: "self-healing", Keyword: "self-healing", Points: 400},
}

var advancedChecks = []check{
	{Category: "predictive-analytics", Keyword: "predictive", Points: 500},
	{Category: "autonomous-decision", Keyword: "autonomous", Points: 500},
	{Category: "self-optimization", Keyword: "self-optimization", Points: 400},
	{Category: "adaptive-learning", Keyword: "adaptive", Points: 400},
	{Category: "proactive-maintenance", Keyword: "proactive", Points: 200},
}
