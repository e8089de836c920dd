package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testCollyFetcher() *CollyFetcher {
	return &CollyFetcher{
		UserAgent:       browserUserAgent,
		MaxRetries:      2,
		RequestTimeout:  5 * time.Second,
		DomainDelay:     time.Millisecond,
		RetryBaseDelay:  time.Millisecond,
		IgnoreRobotsTxt: true,
		MaxBodySize:     1 << 20,
	}
}

func TestCollyFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html><body>funder page</body></html>")
	}))
	defer srv.Close()

	// The test server address carries an explicit port, which the
	// allowed-domain check must not reject.
	doc, err := testCollyFetcher().Fetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	defer doc.Body.Close()

	if doc.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", doc.StatusCode)
	}
	body, _ := io.ReadAll(doc.Body)
	if !strings.Contains(string(body), "funder page") {
		t.Errorf("body = %q", body)
	}
}

func TestCollyFetcherRetriesThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "recovered")
	}))
	defer srv.Close()

	doc, err := testCollyFetcher().Fetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch after retry: %v", err)
	}
	defer doc.Body.Close()

	if got := attempts.Load(); got < 2 {
		t.Errorf("attempts = %d, want at least 2", got)
	}
	body, _ := io.ReadAll(doc.Body)
	if string(body) != "recovered" {
		t.Errorf("body = %q, want recovered", body)
	}
}

func TestCollyFetcherExhaustedRetriesReturnsError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := testCollyFetcher()
	doc, err := f.Fetch(context.Background(), srv.URL+"/page")
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if doc != nil {
		t.Errorf("doc = %+v, want nil", doc)
	}
	// Initial attempt plus every configured retry.
	if got := attempts.Load(); got != int32(f.MaxRetries)+1 {
		t.Errorf("attempts = %d, want %d", got, f.MaxRetries+1)
	}
}

func TestCollyFetcherUnresolvableHost(t *testing.T) {
	f := testCollyFetcher()
	if _, err := f.Fetch(context.Background(), "http://nonexistent.invalid/page"); err == nil {
		t.Fatal("expected an error for unresolvable host")
	}
}

func TestCollyFetcherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testCollyFetcher().Fetch(ctx, "http://example.org/"); err == nil {
		t.Fatal("expected an error for cancelled context")
	}
}
