package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/OneBusAway/go-gtfs"

	"github.com/u0927156/MBTAProject/config"
	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/network"
)

// GTFSProvider builds a snapshot from a static GTFS zip.
type GTFSProvider struct {
	Source     string // http(s) URL or local path
	HTTPClient *http.Client

	routeTypes []int
	logger     *slog.Logger
}

// NewGTFSProvider creates a provider for cfg.StaticURL.
func NewGTFSProvider(cfg config.GTFSConfig) *GTFSProvider {
	routeTypes := cfg.RouteTypes
	if len(routeTypes) == 0 {
		routeTypes = config.DefaultRouteTypes
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &GTFSProvider{
		Source: cfg.StaticURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		routeTypes: append([]int(nil), routeTypes...),
		logger:     logging.Component("gtfs_loader"),
	}
}

func (p *GTFSProvider) Name() string { return "gtfs:" + p.Source }

// Fetch downloads or reads the zip, parses it and selects rail routes.
func (p *GTFSProvider) Fetch(ctx context.Context) (*Snapshot, error) {
	if p.Source == "" {
		return nil, fmt.Errorf("no GTFS source configured")
	}
	b, err := fetchSource(ctx, p.HTTPClient, p.Source)
	if err != nil {
		return nil, err
	}
	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	if len(static.Warnings) > 0 {
		p.logger.Warn("gtfs parse warnings", slog.Int("count", len(static.Warnings)))
	}

	lines := LinesFromStatic(static, p.routeTypes)
	logging.LogOperation(p.logger, "gtfs_snapshot_loaded",
		slog.String("source", p.Source),
		slog.Int("routes", len(static.Routes)),
		slog.Int("lines", len(lines)))

	return &Snapshot{Source: p.Name(), FetchedAt: time.Now().UTC(), Lines: lines}, nil
}

// LinesFromStatic selects routes of the given types and collects each
// route's distinct stops from its trips, in first-seen order. Platforms are
// folded into their parent station.
func LinesFromStatic(static *gtfs.Static, routeTypes []int) []network.Line {
	byID := map[string]int{} // route_id -> position in lines
	lines := []network.Line{}
	for _, r := range static.Routes {
		if !containsInt(routeTypes, int(r.Type)) {
			continue
		}
		if _, ok := byID[r.Id]; ok {
			continue
		}
		byID[r.Id] = len(lines)
		lines = append(lines, network.Line{
			ID:        r.Id,
			LongName:  r.LongName,
			ShortName: r.ShortName,
			Type:      int(r.Type),
		})
	}

	seen := map[string]map[string]struct{}{} // route_id -> stop names
	for _, trip := range static.Trips {
		if trip.Route == nil {
			continue
		}
		pos, ok := byID[trip.Route.Id]
		if !ok {
			continue
		}
		names, ok := seen[trip.Route.Id]
		if !ok {
			names = map[string]struct{}{}
			seen[trip.Route.Id] = names
		}
		for _, st := range trip.StopTimes {
			stop := st.Stop
			if stop == nil {
				continue
			}
			if stop.Parent != nil {
				stop = stop.Parent
			}
			if stop.Name == "" {
				continue
			}
			if _, dup := names[stop.Name]; dup {
				continue
			}
			names[stop.Name] = struct{}{}
			lines[pos].Stops = append(lines[pos].Stops, toNetworkStop(stop))
		}
	}
	return lines
}

func toNetworkStop(s *gtfs.Stop) network.Stop {
	out := network.Stop{ID: s.Id, Name: s.Name}
	if s.Latitude != nil && s.Longitude != nil {
		out.Latitude = *s.Latitude
		out.Longitude = *s.Longitude
	}
	return out
}
