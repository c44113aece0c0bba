package mapper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPatterns(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"patterns": [
				{"id": "p1", "name": "AI Assistants", "type": "architectural", "category": "ai"},
				{"id": "p2", "name": "Test Suites", "type": "behavioral", "category": "testing"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	patterns, err := c.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/architecture/patterns", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	require.Len(t, patterns, 2)
	assert.Equal(t, "ai", patterns[0].Category)
	assert.Equal(t, "Test Suites", patterns[1].Name)
}

func TestFetchOmitsAuthWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"patterns": []}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestFetchNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestFetchServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "mapping run in progress"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping run in progress")
}

func TestFetchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode mapper response")
}

func TestFromEnvOverridesWin(t *testing.T) {
	t.Setenv(EnvMapperURL, "http://from-env")
	t.Setenv(EnvMapperToken, "env-token")

	c, err := FromEnv("http://explicit", "explicit-token")
	require.NoError(t, err)
	assert.Equal(t, "http://explicit", c.baseURL)
	assert.Equal(t, "explicit-token", c.token)
}

func TestFromEnvFallsBackToEnvironment(t *testing.T) {
	t.Setenv(EnvMapperURL, "http://from-env")
	t.Setenv(EnvMapperToken, "env-token")

	c, err := FromEnv("", "")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", c.baseURL)
	assert.Equal(t, "env-token", c.token)
}

func TestFromEnvMissingURL(t *testing.T) {
	t.Setenv(EnvMapperURL, "")

	_, err := FromEnv("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMapperURL)
}
