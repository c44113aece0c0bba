package mapper

import (
	"fmt"
	"os"
)

// Environment variables read by FromEnv.
const (
	EnvMapperURL   = "TESLA_MAPPER_URL"
	EnvMapperToken = "TESLA_MAPPER_TOKEN"
)

// FromEnv creates a mapper client from environment variables. Explicit
// overrides win over the environment; an empty URL from both is an error.
func FromEnv(urlOverride, tokenOverride string) (*Client, error) {
	baseURL := urlOverride
	if baseURL == "" {
		baseURL = os.Getenv(EnvMapperURL)
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvMapperURL)
	}

	token := tokenOverride
	if token == "" {
		token = os.Getenv(EnvMapperToken)
	}

	return NewClient(baseURL, token), nil
}
