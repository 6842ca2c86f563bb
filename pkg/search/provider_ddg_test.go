package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const ddgResultPage = `<html><body>
<div class="result">
  <h2><a class="result__a" href="/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&amp;rut=abc">Example Page</a></h2>
  <a class="result__snippet">A snippet about the page.</a>
</div>
<div class="result">
  <h2><a class="result__a" href="https://direct.example.org/doc">Direct Link</a></h2>
  <a class="result__snippet">Another snippet.</a>
</div>
<div class="result">
  <h2><a class="result__a" href="/l/?rut=no-target">Broken redirect</a></h2>
</div>
</body></html>`

func TestDDGProviderParsesResults(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(ddgResultPage))
	}))
	defer server.Close()

	provider := &ddgProvider{cfg: DDGConfig{BaseURL: server.URL, TimeoutSecs: 5}}
	resp, err := provider.Search(context.Background(), Request{
		Query:      "example",
		Region:     "us-en",
		SafeSearch: "moderate",
		TimeRange:  "day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery["kl"]; len(got) != 1 || got[0] != "us-en" {
		t.Fatalf("expected kl=us-en, got %v", got)
	}
	if got := gotQuery["df"]; len(got) != 1 || got[0] != "d" {
		t.Fatalf("expected df=d, got %v", got)
	}
	if got := gotQuery["kp"]; len(got) != 1 || got[0] != "-1" {
		t.Fatalf("expected kp=-1, got %v", got)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results (broken redirect dropped), got %d", len(resp.Results))
	}
	if resp.Results[0].URL != "https://example.com/page" {
		t.Fatalf("expected unwrapped redirect URL, got %q", resp.Results[0].URL)
	}
	if resp.Results[0].Title != "Example Page" {
		t.Fatalf("unexpected title %q", resp.Results[0].Title)
	}
	if resp.Results[0].Description != "A snippet about the page." {
		t.Fatalf("unexpected snippet %q", resp.Results[0].Description)
	}
	if resp.Results[1].URL != "https://direct.example.org/doc" {
		t.Fatalf("unexpected direct URL %q", resp.Results[1].URL)
	}
}

func TestDDGProviderSupportsGeneralOnly(t *testing.T) {
	provider := &ddgProvider{}
	if !provider.Supports(CategoryGeneral) {
		t.Fatalf("ddg must support general search")
	}
	for _, category := range []string{CategoryNews, CategoryImages, CategoryVideos} {
		if provider.Supports(category) {
			t.Fatalf("ddg must not claim support for %s", category)
		}
	}
}

func TestResolveDDGRedirect(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/l/?uddg=https%3A%2F%2Fexample.com%2Fa%3Fx%3D1", "https://example.com/a?x=1"},
		{"https://example.com/direct", "https://example.com/direct"},
		{"/l/?rut=only", ""},
		{"://bad", ""},
	}
	for _, tc := range cases {
		if got := resolveDDGRedirect(tc.in); got != tc.want {
			t.Fatalf("resolveDDGRedirect(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
