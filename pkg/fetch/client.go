package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Page is the raw outcome of a fetch, before extraction.
type Page struct {
	URL         string
	FinalURL    string
	Status      int
	ContentType string
	Body        []byte
}

// Client fetches pages over HTTP with SSRF validation, a redirect cap and a
// body size limit.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a fetch client from config.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.WithDefaults()

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	c := &Client{cfg: cfg}
	c.http = &http.Client{
		Transport: transport,
		Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("too many redirects")
			}
			// Redirect targets get the same treatment as the original URL.
			return validateURL(req.URL.String(), cfg.AllowPrivate)
		},
	}
	return c, nil
}

// Get fetches a single page. Non-2xx responses and unsupported content types
// are errors; the caller decides how to degrade.
func (c *Client) Get(ctx context.Context, rawURL string) (*Page, error) {
	if err := validateURL(rawURL, c.cfg.AllowPrivate); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	contentType := normalizeContentType(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(contentType, "text/html"),
		strings.Contains(contentType, "application/xhtml"),
		strings.Contains(contentType, "text/plain"):
	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Page{
		URL:         rawURL,
		FinalURL:    finalURL,
		Status:      resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

func normalizeContentType(value string) string {
	if value == "" {
		return "application/octet-stream"
	}
	parts := strings.Split(value, ";")
	return strings.TrimSpace(parts[0])
}
