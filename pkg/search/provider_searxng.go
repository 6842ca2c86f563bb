package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type searxngProvider struct {
	cfg SearXNGConfig
}

func newSearXNGProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.SearXNG.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.SearXNG.BaseURL) == "" {
		return nil
	}
	return &searxngProvider{cfg: cfg.SearXNG}
}

func (p *searxngProvider) Name() string {
	return ProviderSearXNG
}

func (p *searxngProvider) Supports(category string) bool {
	switch category {
	case CategoryGeneral, CategoryNews, CategoryImages, CategoryVideos:
		return true
	}
	return false
}

// searxngResponse models the relevant portion of the SearXNG JSON API.
type searxngResponse struct {
	Results []struct {
		Title         string `json:"title"`
		URL           string `json:"url"`
		Content       string `json:"content"`
		PublishedDate string `json:"publishedDate"`
		ImgSrc        string `json:"img_src"`
		Thumbnail     string `json:"thumbnail"`
		Length        string `json:"length"`
		Engine        string `json:"engine"`
	} `json:"results"`
	NumberOfResults int `json:"number_of_results"`
}

func (p *searxngProvider) Search(ctx context.Context, req Request) (*Response, error) {
	base := strings.TrimRight(p.cfg.BaseURL, "/")
	searchURL, err := url.Parse(base + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid searxng base url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("pageno", "1")
	if req.Category != "" && req.Category != CategoryGeneral {
		q.Set("categories", req.Category)
	}
	if lang := regionToLanguage(req.Region); lang != "" {
		q.Set("language", lang)
	}
	q.Set("safesearch", searxngSafeSearch(req.SafeSearch))
	if req.TimeRange != "" {
		q.Set("time_range", req.TimeRange)
	}
	searchURL.RawQuery = q.Encode()

	start := time.Now()
	data, _, err := getJSON(ctx, searchURL.String(), nil, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("searxng: %w", err)
	}

	var resp searxngResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("searxng: parse response: %w", err)
	}

	results := make([]Result, 0, len(resp.Results))
	for _, entry := range resp.Results {
		if strings.TrimSpace(entry.URL) == "" {
			continue
		}
		results = append(results, Result{
			Title:       strings.TrimSpace(entry.Title),
			URL:         entry.URL,
			Description: strings.TrimSpace(entry.Content),
			Published:   entry.PublishedDate,
			SiteName:    resolveSiteName(entry.URL),
			Image:       entry.ImgSrc,
			Thumbnail:   entry.Thumbnail,
			Duration:    entry.Length,
		})
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderSearXNG,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}

func searxngSafeSearch(level string) string {
	switch level {
	case "off":
		return "0"
	case "strict":
		return "2"
	default:
		return "1"
	}
}
