package enrich

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/metaquery/searchmcp/pkg/fetch"
)

type stubFetcher struct {
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	delay       time.Duration
	failOn      map[string]bool
}

func (s *stubFetcher) Get(ctx context.Context, rawURL string) (*fetch.Page, error) {
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		max := s.maxInFlight.Load()
		if current <= max || s.maxInFlight.CompareAndSwap(max, current) {
			break
		}
	}
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.failOn[rawURL] {
		return nil, fmt.Errorf("blocked")
	}
	body := fmt.Sprintf(`<html><head><title>Page</title></head><body><p>content for %s</p></body></html>`, rawURL)
	return &fetch.Page{URL: rawURL, FinalURL: rawURL, Status: 200, ContentType: "text/html", Body: []byte(body)}, nil
}

func TestContentForPreservesOrderAndCount(t *testing.T) {
	fetcher := &stubFetcher{failOn: map[string]bool{"https://c.example/": true}}
	e := New(Config{}, fetcher)

	urls := []string{"https://a.example/", "https://b.example/", "https://c.example/", ""}
	contents := e.ContentFor(context.Background(), urls, 0)

	if len(contents) != len(urls) {
		t.Fatalf("expected %d entries, got %d", len(urls), len(contents))
	}
	if !strings.Contains(contents[0], "https://a.example/") {
		t.Fatalf("entry 0 should hold a.example content, got %q", contents[0])
	}
	if !strings.Contains(contents[1], "https://b.example/") {
		t.Fatalf("entry 1 should hold b.example content, got %q", contents[1])
	}
	if contents[2] != FailedContent {
		t.Fatalf("failed fetch must yield sentinel, got %q", contents[2])
	}
	if contents[3] != FailedContent {
		t.Fatalf("empty url must yield sentinel, got %q", contents[3])
	}
}

func TestContentForBoundsConcurrency(t *testing.T) {
	fetcher := &stubFetcher{delay: 20 * time.Millisecond}
	e := New(Config{Concurrency: 3}, fetcher)

	urls := make([]string, 12)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://host%d.example/", i)
	}
	e.ContentFor(context.Background(), urls, 0)

	if got := fetcher.maxInFlight.Load(); got > 3 {
		t.Fatalf("expected at most 3 concurrent fetches, observed %d", got)
	}
}

func TestContentForTruncates(t *testing.T) {
	fetcher := &stubFetcher{}
	e := New(Config{}, fetcher)

	contents := e.ContentFor(context.Background(), []string{"https://a.example/"}, 10)
	if len(contents[0]) > 10 {
		t.Fatalf("content not truncated: %d bytes", len(contents[0]))
	}
}

func TestContentForTimeout(t *testing.T) {
	fetcher := &stubFetcher{delay: 200 * time.Millisecond}
	e := New(Config{TimeoutSecs: 1}, fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	contents := e.ContentFor(ctx, []string{"https://slow.example/"}, 0)
	if contents[0] != FailedContent {
		t.Fatalf("cancelled fetch must yield sentinel, got %q", contents[0])
	}
}

func TestConfigClampsConcurrency(t *testing.T) {
	cfg := Config{Concurrency: 50}.WithDefaults()
	if cfg.Concurrency != MaxConcurrency {
		t.Fatalf("expected clamp to %d, got %d", MaxConcurrency, cfg.Concurrency)
	}
	cfg = Config{}.WithDefaults()
	if cfg.Concurrency != DefaultConcurrency {
		t.Fatalf("expected default %d, got %d", DefaultConcurrency, cfg.Concurrency)
	}
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	s := strings.Repeat("é", 20)
	out := truncate(s, 11)
	if len(out) > 11 {
		t.Fatalf("truncate exceeded limit: %d", len(out))
	}
	for _, r := range out {
		if r == '�' {
			t.Fatalf("truncate split a multibyte rune: %q", out)
		}
	}
}
