package autonomy

// Autonomy levels, ordered. A scan's level is the highest one whose point
// threshold has been reached.
const (
	BasicAutomation    = 1
	SmartAutomation    = 2
	FullAutonomy       = 3
	PredictiveAutonomy = 4
)

// defaultThresholds maps level-1 .. level-4 to their minimum point totals.
var defaultThresholds = []int{0, 2000, 4000, 7000}

var levelNames = map[int]string{
	BasicAutomation:    "Basic Automation",
	SmartAutomation:    "Smart Automation",
	FullAutonomy:       "Full Autonomy",
	PredictiveAutonomy: "Predictive Autonomy",
}

var levelDescriptions = map[int]string{
	BasicAutomation:    "Basic Automation: scripted tasks with manual oversight",
	SmartAutomation:    "Smart Automation: AI-assisted workflows with human approval",
	FullAutonomy:       "Full Autonomy: self-managing systems with minimal intervention",
	PredictiveAutonomy: "Predictive Autonomy: anticipates needs and acts before issues arise",
}

// strengthChecks match against pattern categories; each hit emits one
// fixed strength line.
var strengthChecks = []struct {
	Keyword  string
	Strength string
}{
	{"monorepo", "Strong monorepo foundation with unified tooling"},
	{"testing", "Comprehensive testing culture across packages"},
	{"ai", "AI integration woven into the architecture"},
	{"architecture", "Explicit architecture mapping and documentation"},
	{"automation", "Mature automation across build and delivery workflows"},
	{"quality", "Consistent code quality enforcement"},
}

// capabilityChecks match against pattern categories and names; each MISS
// emits the weakness line and, when recommendations are enabled, the
// matching recommendation line.
var capabilityChecks = []struct {
	Keyword        string
	Weakness       string
	Recommendation string
}{
	{
		"autonomous",
		"Limited autonomous decision-making capabilities",
		"Add autonomous decision-making for routine maintenance tasks",
	},
	{
		"predictive",
		"No predictive analytics capabilities detected",
		"Adopt predictive analytics to anticipate failures before they occur",
	},
	{
		"self-healing",
		"Missing self-healing mechanisms",
		"Implement self-healing workflows that recover from known failure modes",
	},
	{
		"learning",
		"No adaptive learning systems in place",
		"Invest in adaptive learning loops that tune the system from feedback",
	},
	{
		"monitoring",
		"Limited monitoring and observability coverage",
		"Expand monitoring coverage to every critical component",
	},
}

// recommendationTiers unlock progressively: tier N applies once the current
// level is at least N.
var recommendationTiers = [][]string{
	{
		"Strengthen foundation tooling: expand test coverage and linting",
		"Document architecture decisions and component relationships",
	},
	{
		"Integrate AI-assisted code analysis into the development workflow",
		"Automate deployment and monitoring pipelines end to end",
	},
	{
		"Introduce predictive analytics over build and runtime telemetry",
		"Pilot autonomous remediation for recurring operational issues",
	},
}

// nextLevelRequirements names what unlocks the following level; the top
// level carries the terminal message.
var nextLevelRequirements = map[int][]string{
	BasicAutomation: {
		"Reach 2000 points to unlock Smart Automation",
		"Build out AI-assisted analysis and workflow automation",
	},
	SmartAutomation: {
		"Reach 4000 points to unlock Full Autonomy",
		"Automate deployment, monitoring and self-healing end to end",
	},
	FullAutonomy: {
		"Reach 7000 points to unlock Predictive Autonomy",
		"Add predictive analytics and autonomous decision-making",
	},
	PredictiveAutonomy: {
		"Maximum autonomy achieved - all TESLA capabilities unlocked",
	},
}
