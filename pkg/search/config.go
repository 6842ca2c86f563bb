package search

import (
	"slices"
	"strings"
)

const (
	ProviderSearXNG    = "searxng"
	ProviderBrave      = "brave"
	ProviderDuckDuckGo = "ddg"
	DefaultSearchCount = 10
	MaxSearchCount     = 25
	DefaultTimeoutSecs = 15
)

var DefaultFallbackOrder = []string{
	ProviderSearXNG,
	ProviderBrave,
	ProviderDuckDuckGo,
}

// Config controls search provider selection and credentials.
type Config struct {
	Provider  string   `yaml:"provider"`
	Fallbacks []string `yaml:"fallbacks"`

	SearXNG SearXNGConfig `yaml:"searxng"`
	Brave   BraveConfig   `yaml:"brave"`
	DDG     DDGConfig     `yaml:"ddg"`
}

type SearXNGConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

type BraveConfig struct {
	Enabled        *bool  `yaml:"enabled"`
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	NewsBaseURL    string `yaml:"news_base_url"`
	TimeoutSecs    int    `yaml:"timeout_seconds"`
	DefaultCountry string `yaml:"default_country"`
}

type DDGConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderSearXNG
	}
	if len(c.Fallbacks) == 0 {
		c.Fallbacks = slices.Clone(DefaultFallbackOrder)
	}
	c.SearXNG = c.SearXNG.withDefaults()
	c.Brave = c.Brave.withDefaults()
	c.DDG = c.DDG.withDefaults()
	return c
}

func (c SearXNGConfig) withDefaults() SearXNGConfig {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c BraveConfig) withDefaults() BraveConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.search.brave.com/res/v1/web/search"
	}
	if c.NewsBaseURL == "" {
		c.NewsBaseURL = "https://api.search.brave.com/res/v1/news/search"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c DDGConfig) withDefaults() DDGConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://html.duckduckgo.com/html/"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
