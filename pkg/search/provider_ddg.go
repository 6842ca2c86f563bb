package search

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const ddgUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ddgProvider scrapes the DuckDuckGo HTML endpoint. It needs no API key,
// which makes it the fallback of last resort.
type ddgProvider struct {
	cfg DDGConfig
}

func newDDGProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.DDG.Enabled, true) {
		return nil
	}
	return &ddgProvider{cfg: cfg.DDG}
}

func (p *ddgProvider) Name() string {
	return ProviderDuckDuckGo
}

func (p *ddgProvider) Supports(category string) bool {
	return category == CategoryGeneral
}

func (p *ddgProvider) Search(ctx context.Context, req Request) (*Response, error) {
	searchURL, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	q := searchURL.Query()
	q.Set("q", req.Query)
	if req.Region != "" {
		q.Set("kl", strings.ToLower(req.Region))
	}
	q.Set("kp", ddgSafeSearch(req.SafeSearch))
	if df := ddgTimeLimit(req.TimeRange); df != "" {
		q.Set("df", df)
	}
	searchURL.RawQuery = q.Encode()

	start := time.Now()
	data, _, err := getHTML(ctx, searchURL.String(), map[string]string{
		"User-Agent": ddgUserAgent,
	}, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	results, err := parseDDGResults(data)
	if err != nil {
		return nil, err
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderDuckDuckGo,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}

func parseDDGResults(body []byte) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var results []Result
	doc.Find("div.result").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		href = resolveDDGRedirect(href)
		if href == "" {
			return
		}
		results = append(results, Result{
			Title:       strings.TrimSpace(link.Text()),
			URL:         href,
			Description: strings.TrimSpace(sel.Find("a.result__snippet").First().Text()),
			SiteName:    resolveSiteName(href),
		})
	})
	return results, nil
}

// resolveDDGRedirect unwraps DuckDuckGo's /l/?uddg=... redirect links into
// the target URL. Plain links pass through unchanged.
func resolveDDGRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(parsed.Path, "/l/") {
		if parsed.Scheme == "" {
			parsed.Scheme = "https"
		}
		return parsed.String()
	}
	target := parsed.Query().Get("uddg")
	if target == "" {
		return ""
	}
	return target
}

func ddgSafeSearch(level string) string {
	switch level {
	case "off":
		return "-2"
	case "strict":
		return "1"
	default:
		return "-1"
	}
}

func ddgTimeLimit(timeRange string) string {
	switch timeRange {
	case "day":
		return "d"
	case "week":
		return "w"
	case "month":
		return "m"
	case "year":
		return "y"
	}
	return ""
}
