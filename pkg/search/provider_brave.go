package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type braveProvider struct {
	cfg BraveConfig
}

func newBraveProvider(cfg *Config) Provider {
	if cfg == nil {
		return nil
	}
	if !isEnabled(cfg.Brave.Enabled, true) {
		return nil
	}
	if strings.TrimSpace(cfg.Brave.APIKey) == "" {
		return nil
	}
	return &braveProvider{cfg: cfg.Brave}
}

func (p *braveProvider) Name() string {
	return ProviderBrave
}

func (p *braveProvider) Supports(category string) bool {
	return category == CategoryGeneral || category == CategoryNews
}

func (p *braveProvider) Search(ctx context.Context, req Request) (*Response, error) {
	base := p.cfg.BaseURL
	if req.Category == CategoryNews {
		base = p.cfg.NewsBaseURL
	}
	searchURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid brave base url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", req.Query)
	q.Set("count", fmt.Sprintf("%d", req.Count))
	country := regionCountry(req.Region)
	if country == "" {
		country = p.cfg.DefaultCountry
	}
	if country != "" {
		q.Set("country", country)
	}
	q.Set("safesearch", req.SafeSearch)
	if freshness := braveFreshness(req.TimeRange); freshness != "" {
		q.Set("freshness", freshness)
	}
	searchURL.RawQuery = q.Encode()

	start := time.Now()
	data, _, err := getJSON(ctx, searchURL.String(), map[string]string{
		"X-Subscription-Token": p.cfg.APIKey,
	}, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("brave: %w", err)
	}

	var results []Result
	if req.Category == CategoryNews {
		results, err = parseBraveNews(data)
	} else {
		results, err = parseBraveWeb(data)
	}
	if err != nil {
		return nil, fmt.Errorf("brave: %w", err)
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderBrave,
		Count:     len(results),
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}

func parseBraveWeb(data []byte) ([]Result, error) {
	var resp struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
				Age         string `json:"age"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(resp.Web.Results))
	for _, entry := range resp.Web.Results {
		results = append(results, Result{
			Title:       strings.TrimSpace(entry.Title),
			URL:         entry.URL,
			Description: strings.TrimSpace(entry.Description),
			Published:   entry.Age,
			SiteName:    resolveSiteName(entry.URL),
		})
	}
	return results, nil
}

func parseBraveNews(data []byte) ([]Result, error) {
	var resp struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
			Age         string `json:"age"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
			Thumbnail struct {
				Src string `json:"src"`
			} `json:"thumbnail"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(resp.Results))
	for _, entry := range resp.Results {
		siteName := entry.Source.Name
		if siteName == "" {
			siteName = resolveSiteName(entry.URL)
		}
		results = append(results, Result{
			Title:       strings.TrimSpace(entry.Title),
			URL:         entry.URL,
			Description: strings.TrimSpace(entry.Description),
			Published:   entry.Age,
			SiteName:    siteName,
			Thumbnail:   entry.Thumbnail.Src,
		})
	}
	return results, nil
}

func braveFreshness(timeRange string) string {
	switch timeRange {
	case "day":
		return "pd"
	case "week":
		return "pw"
	case "month":
		return "pm"
	case "year":
		return "py"
	}
	return ""
}
