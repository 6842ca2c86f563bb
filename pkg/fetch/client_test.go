package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(Config{AllowPrivate: true, TimeoutSecs: 5})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestClientGetReturnsPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); !strings.Contains(got, "Mozilla") {
			t.Errorf("expected browser user agent, got %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	page, err := testClient(t).Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", page.Status)
	}
	if page.ContentType != "text/html" {
		t.Fatalf("expected text/html, got %q", page.ContentType)
	}
	if !strings.Contains(string(page.Body), "hello") {
		t.Fatalf("unexpected body %q", page.Body)
	}
}

func TestClientGetRejectsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := testClient(t).Get(context.Background(), server.URL); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestClientGetRejectsBinaryContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	if _, err := testClient(t).Get(context.Background(), server.URL); err == nil {
		t.Fatalf("expected error for pdf content type")
	}
}

func TestClientGetLimitsBodySize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(strings.Repeat("a", 4096)))
	}))
	defer server.Close()

	client, err := NewClient(Config{AllowPrivate: true, TimeoutSecs: 5, MaxPageBytes: 1024})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	page, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Body) != 1024 {
		t.Fatalf("expected body truncated to 1024 bytes, got %d", len(page.Body))
	}
}

func TestValidateURL(t *testing.T) {
	cases := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/page", false},
		{"http://example.com", false},
		{"ftp://example.com", true},
		{"https://localhost/admin", true},
		{"https://foo.localhost/admin", true},
		{"http://127.0.0.1:8080/", true},
		{"http://10.1.2.3/", true},
		{"http://172.20.0.1/", true},
		{"http://192.168.1.1/", true},
		{"http://169.254.169.254/latest/meta-data", true},
		{"http://[::1]/", true},
		{"", true},
	}
	for _, tc := range cases {
		err := ValidateURL(tc.url)
		if tc.wantErr && err == nil {
			t.Fatalf("ValidateURL(%q) expected error", tc.url)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("ValidateURL(%q) unexpected error: %v", tc.url, err)
		}
	}
}

func TestValidateURLAllowPrivate(t *testing.T) {
	if err := validateURL("http://127.0.0.1:9999/", true); err != nil {
		t.Fatalf("allowPrivate must accept loopback, got %v", err)
	}
	if err := validateURL("ftp://127.0.0.1/", true); err == nil {
		t.Fatalf("allowPrivate must still reject non-http schemes")
	}
}
