// ABOUTME: Tests for the image disk cache
// ABOUTME: Covers cache hits, bounded retries, and non-retryable failures

package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	c := New(t.TempDir())
	c.delay = time.Millisecond
	return c
}

func TestFetch_DownloadsAndCaches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	c := testCache(t)

	path, err := c.Fetch(context.Background(), server.URL+"/img.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected cache file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("unexpected cache content %q", data)
	}

	// Second fetch is served from disk.
	again, err := c.Fetch(context.Background(), server.URL+"/img.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != path {
		t.Errorf("expected same cache path, got %q and %q", path, again)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 download, got %d", got)
	}
}

func TestFetch_RetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The image host answers 503 until the render is ready.
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	c := testCache(t)
	if _, err := c.Fetch(context.Background(), server.URL+"/img.jpg"); err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestFetch_GivesUpAfterAttemptBudget(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := testCache(t)
	if _, err := c.Fetch(context.Background(), server.URL+"/img.jpg"); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if got := hits.Load(); got != maxAttempts {
		t.Errorf("expected %d attempts, got %d", maxAttempts, got)
	}
}

func TestFetch_ClientErrorsDoNotRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := testCache(t)
	if _, err := c.Fetch(context.Background(), server.URL+"/missing.jpg"); err == nil {
		t.Fatal("expected error for 404")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected a single attempt for a client error, got %d", got)
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	c := testCache(t)
	if _, err := c.Fetch(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestPrefetch_WarmsCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	c := testCache(t)
	urls := []string{server.URL + "/a.jpg", server.URL + "/b.jpg", ""}
	c.Prefetch(context.Background(), urls)

	for _, url := range urls[:2] {
		if _, err := os.Stat(c.pathFor(url)); err != nil {
			t.Errorf("expected %s cached: %v", url, err)
		}
	}
}

func TestPathFor_Stable(t *testing.T) {
	c := testCache(t)
	if c.pathFor("https://x/a.jpg") != c.pathFor("https://x/a.jpg") {
		t.Error("expected stable cache path for the same url")
	}
	if c.pathFor("https://x/a.jpg") == c.pathFor("https://x/b.jpg") {
		t.Error("expected distinct cache paths for distinct urls")
	}
}
