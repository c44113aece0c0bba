// Package mapper talks to an external architecture-mapping service over
// plain JSON HTTP. It is the remote pattern source for the scanner.
package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reynard-tools/tesla-scan/pkg/model"
)

// Client is an HTTP client for an architecture-mapping service.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a mapper client for the given service base URL. The
// token is optional; when set it is sent as a bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Name() string { return "mapper" }

// Fetch retrieves the detected patterns from the mapping service.
func (c *Client) Fetch(ctx context.Context) ([]model.Pattern, error) {
	url := c.baseURL + "/api/architecture/patterns"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mapper API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	// Minimal struct to pull out the pattern list.
	var mapperResp struct {
		Patterns []model.Pattern `json:"patterns"`
		Error    struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &mapperResp); err != nil {
		return nil, fmt.Errorf("decode mapper response: %w", err)
	}
	if mapperResp.Error.Message != "" {
		return nil, fmt.Errorf("mapper API error: %s", mapperResp.Error.Message)
	}
	return mapperResp.Patterns, nil
}
