package provider

import (
	"context"
	"testing"

	"github.com/OneBusAway/go-gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u0927156/MBTAProject/config"
)

func fp(v float64) *float64 { return &v }

func sampleStatic() *gtfs.Static {
	parkStation := &gtfs.Stop{Id: "place-pktrm", Name: "Park Street", Latitude: fp(42.3564), Longitude: fp(-71.0624)}
	parkPlatform := &gtfs.Stop{Id: "70075", Name: "Park Street - Red Line", Parent: parkStation}
	alewife := &gtfs.Stop{Id: "place-alfcl", Name: "Alewife", Latitude: fp(42.3954), Longitude: fp(-71.1425)}
	bc := &gtfs.Stop{Id: "place-lake", Name: "Boston College"}
	southStation := &gtfs.Stop{Id: "place-sstat", Name: "South Station"}

	red := gtfs.Route{Id: "Red", LongName: "Red Line", Type: 1}
	greenB := gtfs.Route{Id: "Green-B", LongName: "Green Line B", ShortName: "B", Type: 0}
	cr := gtfs.Route{Id: "CR-Providence", LongName: "Providence Line", Type: 2}

	static := &gtfs.Static{
		Routes: []gtfs.Route{red, greenB, cr},
		Stops:  []gtfs.Stop{*parkStation, *parkPlatform, *alewife, *bc, *southStation},
	}
	static.Trips = []gtfs.ScheduledTrip{
		{ID: "r1", Route: &static.Routes[0], StopTimes: []gtfs.ScheduledStopTime{
			{Stop: alewife, StopSequence: 1},
			{Stop: parkPlatform, StopSequence: 2},
		}},
		{ID: "r2", Route: &static.Routes[0], StopTimes: []gtfs.ScheduledStopTime{
			{Stop: parkPlatform, StopSequence: 1},
			{Stop: alewife, StopSequence: 2},
		}},
		{ID: "g1", Route: &static.Routes[1], StopTimes: []gtfs.ScheduledStopTime{
			{Stop: bc, StopSequence: 1},
			{Stop: parkStation, StopSequence: 2},
			{Stop: nil, StopSequence: 3},
		}},
		{ID: "c1", Route: &static.Routes[2], StopTimes: []gtfs.ScheduledStopTime{
			{Stop: southStation, StopSequence: 1},
		}},
		{ID: "orphan", Route: nil},
	}
	return static
}

func TestLinesFromStatic(t *testing.T) {
	lines := LinesFromStatic(sampleStatic(), []int{0, 1})

	require.Len(t, lines, 2)
	assert.Equal(t, "Red", lines[0].ID)
	assert.Equal(t, "Green-B", lines[1].ID)
	assert.Equal(t, "B", lines[1].ShortName)

	var red []string
	for _, s := range lines[0].Stops {
		red = append(red, s.Name)
	}
	assert.Equal(t, []string{"Alewife", "Park Street"}, red)
	assert.Equal(t, "place-pktrm", lines[0].Stops[1].ID)
	assert.InDelta(t, 42.3564, lines[0].Stops[1].Latitude, 1e-9)

	var green []string
	for _, s := range lines[1].Stops {
		green = append(green, s.Name)
	}
	assert.Equal(t, []string{"Boston College", "Park Street"}, green)
	assert.False(t, lines[1].Stops[0].HasLocation())
}

func TestLinesFromStatic_RouteTypes(t *testing.T) {
	lines := LinesFromStatic(sampleStatic(), []int{2})
	require.Len(t, lines, 1)
	assert.Equal(t, "CR-Providence", lines[0].ID)
	require.Len(t, lines[0].Stops, 1)
	assert.Equal(t, "South Station", lines[0].Stops[0].Name)
}

func TestLinesFromStatic_RouteWithoutTrips(t *testing.T) {
	static := &gtfs.Static{Routes: []gtfs.Route{{Id: "Blue", Type: 1}}}
	lines := LinesFromStatic(static, []int{1})
	require.Len(t, lines, 1)
	assert.Empty(t, lines[0].Stops)
}

func TestGTFSProvider_MissingSource(t *testing.T) {
	p := NewGTFSProvider(config.GTFSConfig{})
	_, err := p.Fetch(context.Background())
	assert.Error(t, err)
}

func TestGTFSProvider_UnreadableFile(t *testing.T) {
	p := NewGTFSProvider(config.GTFSConfig{StaticURL: t.TempDir() + "/missing.zip"})
	assert.Equal(t, "gtfs:"+p.Source, p.Name())
	_, err := p.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading local GTFS file")
}

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("https://cdn.mbta.com/MBTA_GTFS.zip"))
	assert.True(t, isRemote("http://localhost/gtfs.zip"))
	assert.False(t, isRemote("testdata/gtfs.zip"))
}

func TestGTFSProvider_FetchLocalZip(t *testing.T) {
	p := NewGTFSProvider(config.GTFSConfig{StaticURL: "testdata/mini_gtfs.zip"})

	snap, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gtfs:testdata/mini_gtfs.zip", snap.Source)

	idx := snap.Index()
	assert.Equal(t, []string{"Red", "Green-B"}, idx.Lines())
	assert.Equal(t, []string{"Red", "Green-B"}, idx.LinesForStop("Park Street"))
	assert.False(t, idx.HasStop("Fitchburg Line"))
}
