package main

import (
	"fmt"
	"time"

	"github.com/u0927156/MBTAProject/config"
	"github.com/u0927156/MBTAProject/metrics"
	"github.com/u0927156/MBTAProject/provider"
)

// newProvider builds the provider for feed, wrapped in the snapshot cache
// when one is configured.
func newProvider(feed config.Feed, cache config.CacheConfig, m *metrics.Metrics, refresh bool) (provider.Provider, error) {
	var p provider.Provider
	switch feed.Provider {
	case "", "mbta":
		key, err := config.ResolveAPIKey(feed.MBTA)
		if err != nil {
			return nil, err
		}
		c := provider.NewMBTAClient(feed.MBTA, key)
		c.Metrics = m
		p = c
	case "gtfs":
		p = provider.NewGTFSProvider(feed.GTFS)
	default:
		return nil, fmt.Errorf("unknown provider %q", feed.Provider)
	}

	if cache.SnapshotPath == "" {
		return p, nil
	}
	cp := provider.NewCachedProvider(p, cache.SnapshotPath, time.Duration(cache.MaxAgeMinutes)*time.Minute)
	cp.Refresh = refresh
	return cp, nil
}
