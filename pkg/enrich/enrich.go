// Package enrich fetches result URLs and attaches their extracted page
// content to search results. Fetches run with bounded concurrency and a
// per-page timeout; a page that cannot be fetched or yields no content gets
// a sentinel string instead of failing the whole batch.
package enrich

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/metaquery/searchmcp/pkg/extract"
	"github.com/metaquery/searchmcp/pkg/fetch"
)

// FailedContent marks a result whose page could not be fetched or extracted.
const FailedContent = "[Content extraction failed or blocked]"

const (
	DefaultConcurrency      = 5
	MaxConcurrency          = 5
	DefaultMaxContentLength = 50_000
	DefaultTimeoutSecs      = 10
)

// Config controls the enrichment fan-out.
type Config struct {
	// Concurrency caps in-flight fetches. Clamped to MaxConcurrency so a
	// single request cannot hammer result hosts.
	Concurrency int    `yaml:"concurrency"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	Mode        string `yaml:"mode"`
}

func (c Config) WithDefaults() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Concurrency > MaxConcurrency {
		c.Concurrency = MaxConcurrency
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.Mode == "" {
		c.Mode = extract.ModeText
	}
	return c
}

// Fetcher is the page source. *fetch.Client implements it.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (*fetch.Page, error)
}

// Enricher runs the bounded fetch-and-extract fan-out.
type Enricher struct {
	cfg     Config
	fetcher Fetcher
}

// New creates an enricher. cfg is normalized through WithDefaults.
func New(cfg Config, fetcher Fetcher) *Enricher {
	return &Enricher{cfg: cfg.WithDefaults(), fetcher: fetcher}
}

// ContentFor fetches every URL and returns extracted content in the same
// order, one entry per input URL. Entries for failed pages hold
// FailedContent; empty input URLs also map to the sentinel. maxLen truncates
// each entry; <= 0 means DefaultMaxContentLength. ContentFor never fails as
// a whole.
func (e *Enricher) ContentFor(ctx context.Context, urls []string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLength
	}

	contents := make([]string, len(urls))
	sem := make(chan struct{}, e.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, pageURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			contents[i] = e.one(ctx, pageURL, maxLen)
		}(i, u)
	}
	wg.Wait()
	return contents
}

func (e *Enricher) one(ctx context.Context, pageURL string, maxLen int) string {
	if pageURL == "" {
		return FailedContent
	}
	log := zerolog.Ctx(ctx)

	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.TimeoutSecs)*time.Second)
	defer cancel()

	page, err := e.fetcher.Get(fetchCtx, pageURL)
	if err != nil {
		log.Debug().Err(err).Str("url", pageURL).Msg("Content fetch failed")
		return FailedContent
	}

	doc, err := extract.FromHTML(page.Body, page.FinalURL, e.cfg.Mode)
	if err != nil {
		log.Debug().Err(err).Str("url", pageURL).Msg("Content extraction failed")
		return FailedContent
	}
	content := doc.Content()
	if content == "" {
		return FailedContent
	}
	return truncate(content, maxLen)
}

// truncate cuts s to at most maxLen bytes without splitting a UTF-8
// sequence.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := s[:maxLen]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
