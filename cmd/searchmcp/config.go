package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/metaquery/searchmcp/pkg/enrich"
	"github.com/metaquery/searchmcp/pkg/fetch"
	"github.com/metaquery/searchmcp/pkg/search"
	"github.com/metaquery/searchmcp/pkg/server"
)

// Config is the full server configuration, usually loaded from a YAML file
// with environment variables filling the gaps.
type Config struct {
	Server server.Config `yaml:"server"`
	Search search.Config `yaml:"search"`
	Fetch  fetch.Config  `yaml:"fetch"`
	Enrich enrich.Config `yaml:"enrich"`
}

// loadConfig reads the config file when path is non-empty, then applies
// environment defaults and normalizes every section.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Search = *search.ApplyEnvDefaults(&cfg.Search)
	cfg.Fetch = fetch.ApplyEnvDefaults(cfg.Fetch)
	cfg.Server = cfg.Server.WithDefaults()
	cfg.Enrich = cfg.Enrich.WithDefaults()
	return &cfg, nil
}
