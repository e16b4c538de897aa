package transit

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bluele/gcache"

	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/metrics"
	"github.com/u0927156/MBTAProject/network"
	"github.com/u0927156/MBTAProject/provider"
	"github.com/u0927156/MBTAProject/report"
	"github.com/u0927156/MBTAProject/routing"
)

// Planner answers queries against one frozen snapshot. It is safe for
// concurrent use.
type Planner struct {
	index     *network.Index
	finder    *routing.Finder
	source    string
	fetchedAt time.Time

	routes  gcache.Cache // nil when memoization is disabled
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewPlanner indexes snap. cacheSize bounds the number of memoized route
// answers; zero disables memoization. m may be nil.
func NewPlanner(snap *provider.Snapshot, cacheSize int, m *metrics.Metrics) *Planner {
	idx := snap.Index()
	logger := logging.Component("planner")
	p := &Planner{
		index:     idx,
		finder:    &routing.Finder{Lines: idx.LineIndex(), Stops: idx.StopLineIndex(), Logger: logger},
		source:    snap.Source,
		fetchedAt: snap.FetchedAt,
		metrics:   m,
		logger:    logger,
	}
	if cacheSize > 0 {
		p.routes = gcache.New(cacheSize).LRU().Build()
	}

	lines, stops := idx.Counts()
	m.SetSnapshotSize(lines, stops)
	logging.LogOperation(logger, "planner_ready",
		slog.String("source", snap.Source),
		slog.Int("lines", lines),
		slog.Int("stops", stops))
	return p
}

func (p *Planner) Index() *network.Index { return p.index }

// Source names the provider the snapshot came from.
func (p *Planner) Source() string { return p.source }

func (p *Planner) FetchedAt() time.Time { return p.fetchedAt }

// routeKey identifies a memoized search.
type routeKey struct {
	from, to string
}

// FindRoute searches for a line sequence from one stop to another. A search
// that finds nothing is not an error; unknown stops wrap
// routing.ErrUnknownStop.
func (p *Planner) FindRoute(from, to string) (routing.Result, error) {
	key := routeKey{from: from, to: to}
	if p.routes != nil {
		if v, err := p.routes.Get(key); err == nil {
			p.metrics.ObserveCacheHit()
			return copyResult(v.(routing.Result)), nil
		}
	}

	started := time.Now()
	res, err := p.finder.Find(from, to)
	elapsed := time.Since(started)
	if err != nil {
		outcome := "error"
		if errors.Is(err, routing.ErrUnknownStop) {
			outcome = "unknown_stop"
		}
		p.metrics.ObserveSearch(outcome, 0, elapsed)
		p.logger.Info("route search rejected",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return res, err
	}

	outcome := "exhausted"
	if res.Found() {
		outcome = "found"
	}
	p.metrics.ObserveSearch(outcome, len(res.Lines), elapsed)
	logging.LogOperation(p.logger, "route_search",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("state", res.State.String()),
		slog.Int("lines", len(res.Lines)),
		slog.Int("explored", res.Explored),
		slog.Duration("elapsed", elapsed))

	if p.routes != nil {
		if err := p.routes.Set(key, copyResult(res)); err != nil {
			logging.LogError(p.logger, "Failed to memoize route", err)
		}
	}
	return res, nil
}

func copyResult(r routing.Result) routing.Result {
	if r.Lines != nil {
		r.Lines = append([]string(nil), r.Lines...)
	}
	return r
}

// Report summarizes the network.
func (p *Planner) Report() report.Summary {
	return report.Summarize(p.index)
}

// NearestStop finds the closest located stop to a coordinate.
func (p *Planner) NearestStop(lat, lon float64) (network.Stop, float64, error) {
	return p.index.NearestStop(lat, lon)
}

// Lines returns line metadata in provider order.
func (p *Planner) Lines() []network.Line {
	ids := p.index.Lines()
	out := make([]network.Line, 0, len(ids))
	for _, id := range ids {
		l, _ := p.index.Line(id)
		l.Stops = append([]network.Stop(nil), p.index.StopsForLine(id)...)
		out = append(out, l)
	}
	return out
}

// Stops returns every stop name, sorted.
func (p *Planner) Stops() []string {
	return p.index.StopNames()
}
