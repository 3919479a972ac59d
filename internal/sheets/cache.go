package sheets

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/karpix25/parser-mass/internal/config"
	"github.com/karpix25/parser-mass/internal/domain"
)

const (
	keyAccounts = "accounts"
	keyTags     = "tags"
	keyYouTube  = "youtube"
	keyTikTok   = "tiktok"
)

// Cache is the process-wide reference-data cache. Each dataset is loaded at
// most once per refresh interval, replaced wholesale on reload, and kept
// stale-but-available when a reload fails.
type Cache struct {
	fetcher RowFetcher
	urls    config.SheetsConfig
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu       sync.Mutex
	records  any
	loadedAt time.Time
	loaded   bool
}

func New(fetcher RowFetcher, cfg config.SheetsConfig, logger *slog.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		urls:    cfg,
		ttl:     cfg.RefreshInterval,
		logger:  logger.With("component", "sheets"),
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

func (c *Cache) Accounts(ctx context.Context, force bool) []domain.Account {
	return load(ctx, c, keyAccounts, c.urls.AccountsURL, mapAccount, force)
}

func (c *Cache) Tags(ctx context.Context, force bool) []domain.TagRule {
	return load(ctx, c, keyTags, c.urls.TagsURL, mapTag, force)
}

func (c *Cache) Channels(ctx context.Context, force bool) []domain.Channel {
	return load(ctx, c, keyYouTube, c.urls.YouTubeURL, mapChannel, force)
}

func (c *Cache) Profiles(ctx context.Context, force bool) []domain.Profile {
	return load(ctx, c, keyTikTok, c.urls.TikTokURL, mapProfile, force)
}

// Preload loads all datasets, concurrently as they are independent sources.
func (c *Cache) Preload(ctx context.Context, force bool) {
	var wg sync.WaitGroup
	for _, fn := range []func(){
		func() { c.Accounts(ctx, force) },
		func() { c.Tags(ctx, force) },
		func() { c.Channels(ctx, force) },
		func() { c.Profiles(ctx, force) },
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	wg.Wait()
}

func (c *Cache) entry(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// load serves a dataset from cache, reloading under the entry's own mutex
// when the entry is stale or a refresh is forced. Concurrent callers during
// a refresh block on the mutex and re-check staleness after acquiring it,
// so only one upstream fetch happens per refresh window.
func load[T any](ctx context.Context, c *Cache, key, url string, mapper func(Row) (T, string, error), force bool) []T {
	e := c.entry(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if force || !e.loaded || c.now().Sub(e.loadedAt) > c.ttl {
		reload(ctx, c, e, key, url, mapper)
	}

	records, _ := e.records.([]T)
	return slices.Clone(records)
}

func reload[T any](ctx context.Context, c *Cache, e *entry, key, url string, mapper func(Row) (T, string, error)) {
	if url == "" {
		// Absence is latched so it is not re-checked on every call.
		e.records = []T(nil)
		e.loadedAt = c.now()
		e.loaded = true
		c.logger.Warn("source url is not set", "dataset", key)
		return
	}

	c.logger.Info("fetching reference data", "dataset", key)

	rows, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		// Keep previous contents if there are any; a first load that fails
		// stays unloaded so the next call retries.
		c.logger.Warn("reference fetch failed, serving previous data",
			"dataset", key,
			"cached", e.loaded,
			"error", err,
		)
		return
	}

	seen := make(map[string]struct{})
	clean := make([]T, 0, len(rows))
	skippedEmpty := 0
	skippedDupe := 0

	for _, row := range rows {
		item, dedupKey, err := mapper(row)
		if err != nil {
			c.logger.Warn("skipping malformed row", "dataset", key, "error", err)
			continue
		}
		if dedupKey == "" {
			skippedEmpty++
			continue
		}
		if _, dup := seen[dedupKey]; dup {
			skippedDupe++
			continue
		}
		seen[dedupKey] = struct{}{}
		clean = append(clean, item)
	}

	e.records = clean
	e.loadedAt = c.now()
	e.loaded = true

	c.logger.Info("reference data loaded",
		"dataset", key,
		"records", len(clean),
		"skipped_empty", skippedEmpty,
		"skipped_duplicates", skippedDupe,
	)
}
