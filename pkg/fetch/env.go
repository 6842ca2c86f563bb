package fetch

import (
	"os"
	"strings"
)

// ApplyEnvDefaults fills empty config fields from environment variables.
// PROXY_URL routes page fetches through an explicit egress proxy; when it is
// unset the standard HTTPS_PROXY / HTTP_PROXY variables still apply.
func ApplyEnvDefaults(cfg Config) Config {
	if cfg.ProxyURL == "" {
		cfg.ProxyURL = strings.TrimSpace(os.Getenv("PROXY_URL"))
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = strings.TrimSpace(os.Getenv("FETCH_USER_AGENT"))
	}
	return cfg.WithDefaults()
}
