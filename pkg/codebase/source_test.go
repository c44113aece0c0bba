package codebase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/reynard-tools/tesla-scan/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func categories(patterns []model.Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.Category
	}
	return out
}

func TestFetchEmptyTree(t *testing.T) {
	src := NewSource(t.TempDir())

	patterns, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestFetchDetectsLayoutSignals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod")
	writeFile(t, root, "store_test.go")
	writeFile(t, root, "README.md")
	writeFile(t, root, "docs/guide.md")
	writeFile(t, root, ".github/workflows/ci.yml")
	writeFile(t, root, "Dockerfile")
	writeFile(t, root, ".golangci.yml")

	patterns, err := NewSource(root).Fetch(context.Background())
	require.NoError(t, err)

	cats := categories(patterns)
	assert.Contains(t, cats, "package")
	assert.Contains(t, cats, "testing")
	assert.Contains(t, cats, "documentation")
	assert.Contains(t, cats, "build")
	assert.Contains(t, cats, "deployment")
	assert.Contains(t, cats, "quality")
	// A single module manifest is not a monorepo.
	assert.NotContains(t, cats, "monorepo")
}

func TestFetchDetectsMonorepo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.mod")
	writeFile(t, root, "web/package.json")

	patterns, err := NewSource(root).Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, categories(patterns), "monorepo")
}

func TestFetchDetectsWorkspaceFileAsMonorepo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "go.work")

	patterns, err := NewSource(root).Fetch(context.Background())
	require.NoError(t, err)
	assert.Contains(t, categories(patterns), "monorepo")
}

func TestFetchSkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/pkg/package.json")
	writeFile(t, root, ".git/config")

	patterns, err := NewSource(root).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestFetchPatternShape(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "alpha_test.go")
	writeFile(t, root, "beta_test.go")

	patterns, err := NewSource(root).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Test Suites", p.Name)
	assert.Equal(t, model.TypeBehavioral, p.Type)
	assert.Equal(t, "testing", p.Category)
	assert.Equal(t, "filesystem", p.Metadata.Source)
	assert.Len(t, p.Components, 2)
	assert.GreaterOrEqual(t, p.Metadata.Confidence, 0.5)
	assert.LessOrEqual(t, p.Metadata.Confidence, 1.0)
	assert.False(t, p.Metadata.LastDetected.IsZero())
}

func TestFetchRespectsMaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c/d/e/sub_test.go")

	patterns, err := NewSource(root).WithMaxDepth(2).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patterns)
}
