// Package codebase detects architecture patterns from a repository's layout
// on the local filesystem.
package codebase

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reynard-tools/tesla-scan/pkg/model"
)

// Default directories skipped during discovery.
var defaultExcludes = map[string]bool{
	".git":          true,
	"node_modules":  true,
	"vendor":        true,
	"dist":          true,
	"build":         true,
	"coverage":      true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
}

// Source walks a repository root and emits patterns from layout signals:
// workspace manifests, test files, lint configs, CI workflows and so on.
type Source struct {
	root     string
	maxDepth int
	excludes map[string]bool
}

// NewSource creates a filesystem source rooted at the given directory.
func NewSource(root string) *Source {
	return &Source{
		root:     root,
		maxDepth: 12,
		excludes: defaultExcludes,
	}
}

// WithMaxDepth caps directory recursion depth.
func (s *Source) WithMaxDepth(depth int) *Source {
	s.maxDepth = depth
	return s
}

func (s *Source) Name() string { return "filesystem" }

// Fetch walks the tree once, collects evidence per signal and converts each
// signal with evidence into a pattern.
func (s *Source) Fetch(ctx context.Context) ([]model.Pattern, error) {
	evidence := make(map[string][]string)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if s.excludes[d.Name()] {
				return filepath.SkipDir
			}
			if strings.Count(rel, string(filepath.Separator)) >= s.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		for _, sig := range classify(rel) {
			evidence[sig] = append(evidence[sig], rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Monorepo signal needs more than one module manifest unless an explicit
	// workspace file is present.
	if len(evidence["manifest"]) > 1 {
		evidence["monorepo"] = append(evidence["monorepo"], evidence["manifest"]...)
	}
	if len(evidence["manifest"]) > 0 {
		evidence["package"] = evidence["manifest"]
	}
	delete(evidence, "manifest")

	var patterns []model.Pattern
	for _, def := range signalDefs {
		files := evidence[def.Signal]
		if len(files) == 0 {
			continue
		}
		patterns = append(patterns, s.buildPattern(def, files))
	}

	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Category < patterns[j].Category })
	return patterns, nil
}

// signalDef maps a layout signal to the pattern it produces.
type signalDef struct {
	Signal      string
	Name        string
	Type        model.PatternType
	Category    string
	Description string
	Benefits    []string
}

var signalDefs = []signalDef{
	{
		Signal: "monorepo", Name: "Monorepo Workspace",
		Type: model.TypeStructural, Category: "monorepo",
		Description: "Multiple module manifests or an explicit workspace file",
		Benefits:    []string{"unified tooling", "atomic cross-cutting changes"},
	},
	{
		Signal: "testing", Name: "Test Suites",
		Type: model.TypeBehavioral, Category: "testing",
		Description: "Dedicated test files alongside the code they cover",
		Benefits:    []string{"regression safety"},
	},
	{
		Signal: "quality", Name: "Lint Configuration",
		Type: model.TypeStructural, Category: "quality",
		Description: "Linter or formatter configuration at the repository root",
		Benefits:    []string{"consistent style"},
	},
	{
		Signal: "api", Name: "API Contracts",
		Type: model.TypeArchitectural, Category: "api",
		Description: "OpenAPI or protobuf interface definitions",
		Benefits:    []string{"explicit service boundaries"},
	},
	{
		Signal: "documentation", Name: "Documentation Tree",
		Type: model.TypeStructural, Category: "documentation",
		Description: "README and docs directories",
		Benefits:    []string{"discoverability"},
	},
	{
		Signal: "package", Name: "Package Manifests",
		Type: model.TypeStructural, Category: "package",
		Description: "Declared dependency manifests",
		Benefits:    []string{"reproducible builds"},
	},
	{
		Signal: "build", Name: "CI Build Pipeline",
		Type: model.TypeBehavioral, Category: "build",
		Description: "Continuous integration workflow definitions",
		Benefits:    []string{"repeatable builds"},
	},
	{
		Signal: "deployment", Name: "Deployment Pipeline",
		Type: model.TypeStructural, Category: "deployment",
		Description: "Container or deployment manifests",
		Benefits:    []string{"push-button releases"},
	},
	{
		Signal: "monitoring", Name: "Monitoring Configuration",
		Type: model.TypeBehavioral, Category: "monitoring",
		Description: "Metrics or alerting configuration",
		Benefits:    []string{"operational visibility"},
	},
}

func (s *Source) buildPattern(def signalDef, files []string) model.Pattern {
	components := files
	if len(components) > 10 {
		components = components[:10]
	}

	// Confidence grows with evidence, capped below certainty.
	confidence := 0.6 + 0.1*float64(min(len(files), 3))

	return model.Pattern{
		ID:          uuid.NewString(),
		Name:        def.Name,
		Type:        def.Type,
		Category:    def.Category,
		Description: def.Description,
		Components:  append([]string(nil), components...),
		Benefits:    def.Benefits,
		Quality: model.Quality{
			Correctness:  7,
			Completeness: min(len(files), 10),
			Consistency:  7,
		},
		Metadata: model.PatternMetadata{
			Source:       s.Name(),
			Confidence:   confidence,
			LastDetected: time.Now(),
		},
	}
}

// classify returns the signals a single file contributes evidence to.
func classify(rel string) []string {
	base := strings.ToLower(filepath.Base(rel))
	dir := strings.ToLower(filepath.ToSlash(filepath.Dir(rel)))
	var signals []string

	switch base {
	case "go.work", "pnpm-workspace.yaml", "lerna.json":
		signals = append(signals, "monorepo")
	case "go.mod", "package.json", "pyproject.toml", "cargo.toml":
		signals = append(signals, "manifest")
	case ".golangci.yml", ".golangci.yaml", ".eslintrc", ".eslintrc.json", ".eslintrc.js", "ruff.toml", ".prettierrc":
		signals = append(signals, "quality")
	case "dockerfile", "docker-compose.yml", "docker-compose.yaml":
		signals = append(signals, "deployment")
	case "prometheus.yml", "prometheus.yaml", "alertmanager.yml":
		signals = append(signals, "monitoring")
	case "readme.md":
		signals = append(signals, "documentation")
	}

	switch {
	case strings.HasSuffix(base, "_test.go"),
		strings.HasSuffix(base, ".test.ts"), strings.HasSuffix(base, ".spec.ts"),
		strings.HasSuffix(base, ".test.tsx"), strings.HasSuffix(base, ".spec.tsx"),
		strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py"):
		signals = append(signals, "testing")
	case strings.HasSuffix(base, ".proto"),
		strings.Contains(base, "openapi"), strings.Contains(base, "swagger"):
		signals = append(signals, "api")
	}

	if strings.HasPrefix(dir, ".github/workflows") && (strings.HasSuffix(base, ".yml") || strings.HasSuffix(base, ".yaml")) {
		signals = append(signals, "build")
	}
	if dir == "docs" || strings.HasPrefix(dir, "docs/") {
		signals = append(signals, "documentation")
	}

	return signals
}
