package fetch

const (
	DefaultTimeoutSecs  = 10
	DefaultMaxRedirects = 5
	DefaultMaxPageBytes = 10 * 1024 * 1024
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config controls page fetching.
type Config struct {
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	UserAgent    string `yaml:"user_agent"`
	MaxPageBytes int64  `yaml:"max_page_bytes"`
	MaxRedirects int    `yaml:"max_redirects"`
	ProxyURL     string `yaml:"proxy_url"`
	// AllowPrivate disables the private-address guard. Meant for fetching
	// from intranet deployments; leave off when the server is exposed.
	AllowPrivate bool `yaml:"allow_private"`
}

func (c Config) WithDefaults() Config {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxPageBytes <= 0 {
		c.MaxPageBytes = DefaultMaxPageBytes
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}
	return c
}
