/*
Package provider fetches the static line/stop snapshot the route finder works
on.

Two sources are supported:

  - MBTAClient talks to the MBTA v3 JSON:API (https://api-v3.mbta.com). It
    lists rail routes, then fetches each route's stops concurrently under a
    shared rate limiter.
  - GTFSProvider reads a static GTFS zip from a URL or local path.

Both return a *Snapshot only after every request has completed; the snapshot
is never modified afterwards.

CachedProvider wraps either one with an on-disk snapshot (gob, zstd
compressed) so repeated CLI runs do not hit the API. Only provider data is
cached; indices and the connectivity graph are rebuilt on every run.

	key, _ := config.ResolveAPIKey(cfg.MBTA)
	p := provider.NewMBTAClient(cfg.MBTA, key)
	snap, err := p.Fetch(ctx)
	idx := snap.Index()
*/
package provider
