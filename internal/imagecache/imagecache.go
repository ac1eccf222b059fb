// ABOUTME: Disk cache for recipe images with a bounded retry policy
// ABOUTME: Mirrors the app's image loading: fixed attempts, fixed delay, fallback image

package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/sync/errgroup"
)

// FallbackURL is shown when a recipe image cannot be fetched.
const FallbackURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"

const (
	// The image host is slow to render freshly generated images, so fetches
	// retry a few times at a fixed interval before giving up.
	maxAttempts     = 5
	retryDelay      = 3 * time.Second
	requestTimeout  = 20 * time.Second
	prefetchWorkers = 4
)

// Cache downloads recipe images into a directory keyed by URL hash.
type Cache struct {
	dir        string
	httpClient *http.Client
	delay      time.Duration
}

// New creates a cache rooted at dir.
func New(dir string) *Cache {
	return &Cache{
		dir: dir,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		delay: retryDelay,
	}
}

// DefaultDir returns the image cache location following the XDG spec.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pratiksef", "images")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", "pratiksef", "images")
}

// Fetch returns a local file path for the image at url, downloading it on a
// cache miss. Transient failures retry up to the attempt budget.
func (c *Cache) Fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty image url")
	}

	path := c.pathFor(url)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}

	return backoff.Retry(ctx, func() (string, error) {
		if err := c.download(ctx, url, path); err != nil {
			return "", err
		}
		return path, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(c.delay)),
		backoff.WithMaxTries(maxAttempts),
	)
}

// Prefetch warms the cache for the given URLs. Failures are cosmetic and
// only logged; the listing renders with or without images.
func (c *Cache) Prefetch(ctx context.Context, urls []string) {
	var grp errgroup.Group
	grp.SetLimit(prefetchWorkers)
	for _, url := range urls {
		if url == "" {
			continue
		}
		grp.Go(func() error {
			if _, err := c.Fetch(ctx, url); err != nil {
				slog.Debug("image prefetch failed", "url", url, "error", err)
			}
			return nil
		})
	}
	_ = grp.Wait()
}

// pathFor maps a URL to its cache file.
func (c *Cache) pathFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:8])+".img")
}

// download fetches url into path via a temp file so partial downloads never
// appear as cache hits.
func (c *Cache) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Client errors will not heal on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("image fetch returned status %d", resp.StatusCode))
		}
		return fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(c.dir, "dl-*")
	if err != nil {
		return backoff.Permanent(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
