package transit

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u0927156/MBTAProject/metrics"
	"github.com/u0927156/MBTAProject/network"
	"github.com/u0927156/MBTAProject/provider"
	"github.com/u0927156/MBTAProject/routing"
)

func testSnapshot() *provider.Snapshot {
	return &provider.Snapshot{
		Source:    "mbta:test",
		FetchedAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		Lines: []network.Line{
			{ID: "Red", LongName: "Red Line", Type: 1, Stops: []network.Stop{
				{ID: "place-alfcl", Name: "Alewife", Latitude: 42.3954, Longitude: -71.1425},
				{ID: "place-pktrm", Name: "Park Street", Latitude: 42.3564, Longitude: -71.0624},
				{ID: "place-dwnxg", Name: "Downtown Crossing", Latitude: 42.3555, Longitude: -71.0605},
			}},
			{ID: "Orange", LongName: "Orange Line", Type: 1, Stops: []network.Stop{
				{ID: "place-ogmnl", Name: "Oak Grove", Latitude: 42.4367, Longitude: -71.0711},
				{ID: "place-dwnxg", Name: "Downtown Crossing"},
				{ID: "place-state", Name: "State", Latitude: 42.3589, Longitude: -71.0576},
			}},
			{ID: "Blue", LongName: "Blue Line", Type: 1, Stops: []network.Stop{
				{ID: "place-state", Name: "State"},
				{ID: "place-wondl", Name: "Wonderland", Latitude: 42.4134, Longitude: -70.9916},
			}},
			{ID: "Mattapan", LongName: "Mattapan Trolley", Type: 0, Stops: []network.Stop{
				{ID: "place-matt", Name: "Mattapan", Latitude: 42.2677, Longitude: -71.0924},
				{ID: "place-cedgr", Name: "Cedar Grove"},
			}},
		},
	}
}

func TestPlanner_FindRoute(t *testing.T) {
	p := NewPlanner(testSnapshot(), 16, nil)

	res, err := p.FindRoute("Alewife", "Wonderland")
	require.NoError(t, err)
	assert.Equal(t, routing.Found, res.State)
	assert.Equal(t, []string{"Red", "Orange", "Blue"}, res.Lines)
	assert.Equal(t, 2, res.Transfers())

	res, err = p.FindRoute("Alewife", "Mattapan")
	require.NoError(t, err)
	assert.Equal(t, routing.Exhausted, res.State)
	assert.Empty(t, res.Lines)

	_, err = p.FindRoute("Alewife", "Nowhere")
	assert.ErrorIs(t, err, routing.ErrUnknownStop)
}

func TestPlanner_MemoizesRoutes(t *testing.T) {
	m := metrics.New()
	p := NewPlanner(testSnapshot(), 16, m)

	first, err := p.FindRoute("Alewife", "Wonderland")
	require.NoError(t, err)
	first.Lines[0] = "mutated"

	second, err := p.FindRoute("Alewife", "Wonderland")
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Orange", "Blue"}, second.Lines)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RouteCacheHitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RouteSearchesTotal.WithLabelValues("found")))
}

func TestPlanner_NoCache(t *testing.T) {
	m := metrics.New()
	p := NewPlanner(testSnapshot(), 0, m)

	for i := 0; i < 3; i++ {
		_, err := p.FindRoute("Oak Grove", "Cedar Grove")
		require.NoError(t, err)
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RouteCacheHitsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RouteSearchesTotal.WithLabelValues("exhausted")))
}

func TestPlanner_RecordsSnapshotSize(t *testing.T) {
	m := metrics.New()
	NewPlanner(testSnapshot(), 0, m)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.SnapshotLines))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.SnapshotStops))
}

func TestPlanner_UnknownStopMetric(t *testing.T) {
	m := metrics.New()
	p := NewPlanner(testSnapshot(), 4, m)
	_, err := p.FindRoute("Nowhere", "State")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RouteSearchesTotal.WithLabelValues("unknown_stop")))
}

func TestPlanner_Listings(t *testing.T) {
	p := NewPlanner(testSnapshot(), 0, nil)

	lines := p.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "Red", lines[0].ID)
	assert.Len(t, lines[0].Stops, 3)
	assert.Equal(t, "Mattapan", lines[3].ID)

	stops := p.Stops()
	assert.Len(t, stops, 8)
	assert.Equal(t, "Alewife", stops[0])

	sum := p.Report()
	assert.Equal(t, 4, sum.LineCount)
	require.Len(t, sum.Interchanges, 2)
	assert.Equal(t, "Downtown Crossing", sum.Interchanges[0].Stop)
	assert.Equal(t, "State", sum.Interchanges[1].Stop)

	stop, _, err := p.NearestStop(42.4130, -70.9920)
	require.NoError(t, err)
	assert.Equal(t, "Wonderland", stop.Name)
}

func TestParseLatLon(t *testing.T) {
	lat, lon, err := ParseLatLon("42.35, -71.06")
	require.NoError(t, err)
	assert.InDelta(t, 42.35, lat, 1e-9)
	assert.InDelta(t, -71.06, lon, 1e-9)

	_, _, err = ParseLatLon("42.35")
	assert.Error(t, err)
	_, _, err = ParseLatLon("95,0")
	assert.Error(t, err)
}

func TestPlanner_MemoKeepsStopNamesApart(t *testing.T) {
	snap := &provider.Snapshot{
		Source: "test",
		Lines: []network.Line{
			{ID: "X", Stops: []network.Stop{{Name: "a|b"}, {Name: "c"}}},
			{ID: "Y", Stops: []network.Stop{{Name: "a"}, {Name: "b|c"}}},
		},
	}
	p := NewPlanner(snap, 16, nil)

	first, err := p.FindRoute("a|b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, first.Lines)

	second, err := p.FindRoute("a", "b|c")
	require.NoError(t, err)
	assert.Equal(t, "a", second.From)
	assert.Equal(t, "b|c", second.To)
	assert.Equal(t, []string{"Y"}, second.Lines)
}

func TestPlanner_LinesDoesNotExposeIndex(t *testing.T) {
	p := NewPlanner(testSnapshot(), 0, nil)

	lines := p.Lines()
	lines[0].Stops[0].Name = "Renamed"

	assert.Equal(t, "Alewife", p.Index().StopsForLine("Red")[0].Name)
	assert.Equal(t, "Alewife", p.Lines()[0].Stops[0].Name)
}
