package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/u0927156/MBTAProject/internal/clock"
	"github.com/u0927156/MBTAProject/internal/logging"
)

// CachedProvider serves snapshots from a file on disk while they are fresh
// and refreshes them from the wrapped Provider otherwise.
type CachedProvider struct {
	Provider Provider
	Path     string
	MaxAge   time.Duration
	Clock    clock.Clock
	// Refresh skips the cache read but still writes the fetched snapshot.
	Refresh bool

	logger *slog.Logger
}

func NewCachedProvider(p Provider, path string, maxAge time.Duration) *CachedProvider {
	return &CachedProvider{
		Provider: p,
		Path:     path,
		MaxAge:   maxAge,
		Clock:    clock.RealClock{},
		logger:   logging.Component("snapshot_cache"),
	}
}

func (c *CachedProvider) Name() string { return c.Provider.Name() }

func (c *CachedProvider) Fetch(ctx context.Context) (*Snapshot, error) {
	logger := c.log()
	if !c.Refresh {
		if snap, ok := c.load(logger); ok {
			return snap, nil
		}
	}

	snap, err := c.Provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := SaveSnapshotFile(snap, c.Path); err != nil {
		logging.LogError(logger, "Failed to write snapshot cache", err, slog.String("path", c.Path))
	} else {
		logging.LogOperation(logger, "snapshot_cached",
			slog.String("path", c.Path),
			slog.Int("lines", len(snap.Lines)))
	}
	return snap, nil
}

func (c *CachedProvider) load(logger *slog.Logger) (*Snapshot, bool) {
	snap, err := LoadSnapshotFile(c.Path)
	if err != nil {
		logger.Debug("snapshot cache miss", slog.String("path", c.Path), slog.String("reason", err.Error()))
		return nil, false
	}
	if snap.Source != c.Provider.Name() {
		logger.Info("snapshot cache belongs to another source",
			slog.String("cached", snap.Source),
			slog.String("want", c.Provider.Name()))
		return nil, false
	}
	age := c.now().Sub(snap.FetchedAt)
	if c.MaxAge > 0 && age > c.MaxAge {
		logger.Info("snapshot cache is stale", slog.Duration("age", age))
		return nil, false
	}
	logging.LogOperation(logger, "snapshot_cache_hit",
		slog.String("path", c.Path),
		slog.Duration("age", age))
	return snap, true
}

func (c *CachedProvider) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

func (c *CachedProvider) log() *slog.Logger {
	if c.logger == nil {
		return logging.Component("snapshot_cache")
	}
	return c.logger
}
