package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultPageCacheTTL is how long a cached page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// CachedFetcher wraps URL fetching with an on-disk page cache keyed by URL.
// Re-running a scrape against the same URL list within the TTL reuses the
// saved pages instead of refetching.
type CachedFetcher struct {
	dir       string
	options   *Options
	cacheTTL  time.Duration
	verbose   bool
	skipCache bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Verbose   bool
	Options   *Options
}

// NewCachedFetcher creates a fetcher caching pages under dir.
func NewCachedFetcher(dir string, config *CachedFetcherConfig) (*CachedFetcher, error) {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultPageCacheTTL
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	return &CachedFetcher{
		dir:       dir,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		verbose:   config.Verbose,
		skipCache: config.SkipCache,
	}, nil
}

type cacheEntry struct {
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentType string    `json:"content_type"`
	StatusCode  int       `json:"status_code"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Fetch retrieves a URL, serving from cache when a fresh entry exists.
// Only successful responses are cached; failures always retry the network
// on the next call.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	path := f.entryPath(urlStr)

	if !f.skipCache {
		if entry, ok := f.load(path); ok {
			if f.verbose {
				log.Printf("[CACHE] Hit for %s", urlStr)
			}
			return &Result{
				URL:         entry.URL,
				HTML:        entry.HTML,
				ContentType: entry.ContentType,
				StatusCode:  entry.StatusCode,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return result, err
	}

	if saveErr := f.save(path, result); saveErr != nil && f.verbose {
		log.Printf("[CACHE] Failed to save %s: %v", urlStr, saveErr)
	}

	return result, nil
}

func (f *CachedFetcher) entryPath(urlStr string) string {
	sum := sha256.Sum256([]byte(urlStr))
	return filepath.Join(f.dir, hex.EncodeToString(sum[:])+".json")
}

func (f *CachedFetcher) load(path string) (*cacheEntry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt entry is treated as a miss and overwritten on save.
		return nil, false
	}
	if time.Since(entry.FetchedAt) > f.cacheTTL {
		return nil, false
	}
	return &entry, true
}

func (f *CachedFetcher) save(path string, result *Result) error {
	entry := cacheEntry{
		URL:         result.URL,
		HTML:        result.HTML,
		ContentType: result.ContentType,
		StatusCode:  result.StatusCode,
		FetchedAt:   time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Invalidate removes the cache entry for a URL, if present.
func (f *CachedFetcher) Invalidate(urlStr string) error {
	err := os.Remove(f.entryPath(urlStr))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
