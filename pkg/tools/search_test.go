package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/metaquery/searchmcp/pkg/search"
)

func stubSearch(results []search.Result, err error) SearchFunc {
	return func(ctx context.Context, req search.Request) (*search.Response, error) {
		if err != nil {
			return nil, err
		}
		return &search.Response{
			Query:    req.Query,
			Category: req.Category,
			Provider: "stub",
			Count:    len(results),
			Results:  results,
		}, nil
	}
}

type stubEnricher struct {
	lastMaxLen int
	content    string
}

func (s *stubEnricher) ContentFor(ctx context.Context, urls []string, maxLen int) []string {
	s.lastMaxLen = maxLen
	out := make([]string, len(urls))
	for i := range urls {
		out[i] = s.content
	}
	return out
}

func decodeRecords(t *testing.T, result *Result) []map[string]any {
	t.Helper()
	var records []map[string]any
	if err := json.Unmarshal([]byte(result.Text()), &records); err != nil {
		t.Fatalf("result is not a JSON array: %v\n%s", err, result.Text())
	}
	return records
}

func TestSearchTextTool(t *testing.T) {
	results := []search.Result{
		{Title: "First", URL: "https://a.example/", Description: "snippet a"},
		{Title: "Second", URL: "https://b.example/", Description: "snippet b"},
	}
	tool := NewSearchTextTool(Deps{Search: stubSearch(results, nil)})

	result, err := tool.Execute(context.Background(), map[string]any{"query": "golang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError() {
		t.Fatalf("unexpected error result: %s", result.Error)
	}

	records := decodeRecords(t, result)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["title"] != "First" || records[0]["href"] != "https://a.example/" || records[0]["body"] != "snippet a" {
		t.Fatalf("unexpected first record: %v", records[0])
	}
	if _, ok := records[0]["full_content"]; ok {
		t.Fatalf("full_content must be absent without fetch_full_content")
	}
}

func TestSearchTextToolFetchesFullContent(t *testing.T) {
	results := []search.Result{{Title: "First", URL: "https://a.example/", Description: "snippet"}}
	enricher := &stubEnricher{content: "extracted page text"}
	tool := NewSearchTextTool(Deps{Search: stubSearch(results, nil), Enricher: enricher})

	result, err := tool.Execute(context.Background(), map[string]any{
		"query":              "golang",
		"fetch_full_content": true,
		"max_content_length": float64(1234),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := decodeRecords(t, result)
	if records[0]["full_content"] != "extracted page text" {
		t.Fatalf("expected full_content, got %v", records[0])
	}
	if enricher.lastMaxLen != 1234 {
		t.Fatalf("expected max_content_length 1234 passed through, got %d", enricher.lastMaxLen)
	}
}

func TestSearchTextToolMissingQuery(t *testing.T) {
	tool := NewSearchTextTool(Deps{Search: stubSearch(nil, nil)})

	result, err := tool.Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("missing parameters must not surface as Go errors, got %v", err)
	}
	if !result.IsError() {
		t.Fatalf("expected error result for missing query")
	}
}

func TestSearchTextToolSearchFailure(t *testing.T) {
	tool := NewSearchTextTool(Deps{Search: stubSearch(nil, fmt.Errorf("upstream down"))})

	result, err := tool.Execute(context.Background(), map[string]any{"query": "golang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError() {
		t.Fatalf("expected error result for failed search")
	}
}

func TestSearchNewsTool(t *testing.T) {
	results := []search.Result{{
		Title:       "Breaking",
		URL:         "https://news.example/1",
		Description: "something happened",
		Published:   "2026-08-30T10:00:00Z",
		SiteName:    "Example News",
	}}
	var gotCategory string
	searchFn := func(ctx context.Context, req search.Request) (*search.Response, error) {
		gotCategory = req.Category
		return &search.Response{Results: results}, nil
	}
	tool := NewSearchNewsTool(Deps{Search: searchFn})

	result, err := tool.Execute(context.Background(), map[string]any{"query": "breaking"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategory != search.CategoryNews {
		t.Fatalf("expected news category, got %q", gotCategory)
	}

	records := decodeRecords(t, result)
	if records[0]["date"] != "2026-08-30T10:00:00Z" || records[0]["source"] != "Example News" {
		t.Fatalf("unexpected news record: %v", records[0])
	}
}

func TestSearchImagesAndVideosTools(t *testing.T) {
	results := []search.Result{{
		Title:     "Pic",
		URL:       "https://img.example/page",
		Image:     "https://img.example/full.jpg",
		Thumbnail: "https://img.example/thumb.jpg",
		Duration:  "3:25",
	}}
	deps := Deps{Search: stubSearch(results, nil)}

	imageResult, err := NewSearchImagesTool(deps).Execute(context.Background(), map[string]any{"query": "pic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := decodeRecords(t, imageResult)
	if records[0]["image"] != "https://img.example/full.jpg" || records[0]["thumbnail"] != "https://img.example/thumb.jpg" {
		t.Fatalf("unexpected image record: %v", records[0])
	}

	videoResult, err := NewSearchVideosTool(deps).Execute(context.Background(), map[string]any{"query": "clip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records = decodeRecords(t, videoResult)
	if records[0]["duration"] != "3:25" {
		t.Fatalf("unexpected video record: %v", records[0])
	}
}

func TestNewRegistryWithSearchTools(t *testing.T) {
	registry := NewRegistryWithSearchTools(Deps{Search: stubSearch(nil, nil)})

	all := registry.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(all))
	}
	for _, name := range []string{SearchTextName, SearchNewsName, SearchImagesName, SearchVideosName} {
		tool, ok := registry.Get(name)
		if !ok {
			t.Fatalf("missing tool %s", name)
		}
		schema, ok := tool.InputSchema.(map[string]any)
		if !ok {
			t.Fatalf("tool %s schema is not an object", name)
		}
		required, _ := schema["required"].([]string)
		if len(required) != 1 || required[0] != "query" {
			t.Fatalf("tool %s must require query, got %v", name, schema["required"])
		}
	}
}

func TestReadParamHelpers(t *testing.T) {
	args := map[string]any{
		"max_results": float64(7),
		"flag":        "true",
		"query":       "  padded  ",
	}
	if got := ReadIntDefault(args, "max_results", 10); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := ReadIntDefault(args, "missing", 10); got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}
	if !ReadBool(args, "flag", false) {
		t.Fatalf("expected string \"true\" to read as true")
	}
	query, err := ReadString(args, "query", true)
	if err != nil || query != "padded" {
		t.Fatalf("expected trimmed query, got %q err %v", query, err)
	}
}
