package search

import (
	"os"
	"strings"
)

// ConfigFromEnv builds a search config using environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}

	if provider := strings.TrimSpace(os.Getenv("SEARCH_PROVIDER")); provider != "" {
		cfg.Provider = provider
	}
	if fallbacks := strings.TrimSpace(os.Getenv("SEARCH_FALLBACKS")); fallbacks != "" {
		cfg.Fallbacks = splitCSV(fallbacks)
	}
	cfg.SearXNG.BaseURL = envOr(cfg.SearXNG.BaseURL, os.Getenv("SEARXNG_BASE_URL"))
	cfg.Brave.APIKey = envOr(cfg.Brave.APIKey, os.Getenv("BRAVE_API_KEY"))
	cfg.Brave.BaseURL = envOr(cfg.Brave.BaseURL, os.Getenv("BRAVE_BASE_URL"))

	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	current := cfg.WithDefaults()
	envCfg := ConfigFromEnv()

	if current.SearXNG.BaseURL == "" {
		current.SearXNG.BaseURL = envCfg.SearXNG.BaseURL
	}
	if current.Brave.APIKey == "" {
		current.Brave.APIKey = envCfg.Brave.APIKey
	}
	return current
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
