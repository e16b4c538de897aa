package formatter

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u0927156/MBTAProject/network"
	"github.com/u0927156/MBTAProject/report"
	"github.com/u0927156/MBTAProject/routing"
)

var at = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func testIndex() *network.Index {
	return network.NewIndex([]network.Line{
		{ID: "Red", LongName: "Red Line", Type: 1, Stops: []network.Stop{
			{ID: "place-davis", Name: "Davis", Latitude: 42.3967, Longitude: -71.1218},
			{ID: "place-pktrm", Name: "Park Street", Latitude: 42.3564, Longitude: -71.0624},
		}},
		{ID: "Green-B", LongName: "Green Line B", Type: 0, Stops: []network.Stop{
			{ID: "place-pktrm", Name: "Park Street"},
			{ID: "place-lake", Name: "Boston College"},
		}},
		{ID: "Blue", LongName: "Blue Line", Type: 1, Stops: []network.Stop{
			{ID: "place-wondl", Name: "Wonderland"},
		}},
	})
}

func route(t *testing.T, idx *network.Index, from, to string) RouteResponse {
	t.Helper()
	res, err := routing.FindRoute(from, to, idx.LineIndex(), idx.StopLineIndex())
	require.NoError(t, err)
	return NewRouteResponse(res, idx, at)
}

func TestNewRouteResponse(t *testing.T) {
	idx := testIndex()
	r := route(t, idx, "Davis", "Boston College")

	assert.True(t, r.Found)
	assert.Equal(t, "FOUND", r.State)
	assert.Equal(t, "2026-05-04T10:30:00Z", r.ResponseTimestamp)
	require.Len(t, r.Lines, 2)
	assert.Equal(t, LineRef{ID: "Red", Name: "Red Line", Type: 1, Stops: 2}, r.Lines[0])
	assert.Equal(t, 1, r.TransferCount)
	require.Len(t, r.Transfers, 1)
	assert.Equal(t, []string{"Park Street"}, r.Transfers[0].Stops)
}

func TestNewRouteResponse_NotFound(t *testing.T) {
	idx := testIndex()
	r := route(t, idx, "Davis", "Wonderland")

	assert.False(t, r.Found)
	assert.Equal(t, "EXHAUSTED", r.State)
	assert.Equal(t, -1, r.TransferCount)

	b, err := NewResponseBuilder().BuildJSON(r)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, []any{}, decoded["lines"])
	assert.Equal(t, []any{}, decoded["transfers"])
}

func TestBuildXML_Route(t *testing.T) {
	idx := testIndex()
	b, err := NewResponseBuilder().BuildXML(route(t, idx, "Davis", "Boston College"))
	require.NoError(t, err)

	s := string(b)
	assert.Contains(t, s, "<RouteResponse>")
	assert.Contains(t, s, "<Found>true</Found>")
	assert.Contains(t, s, "<Line><LineRef>Red</LineRef><Name>Red Line</Name>")
	assert.Contains(t, s, "<Transfer><FromLine>Red</FromLine><ToLine>Green-B</ToLine><StopName>Park Street</StopName></Transfer>")
}

func TestBuildXML_Escapes(t *testing.T) {
	b, err := NewResponseBuilder().BuildXML(NewErrorResponse(404, errors.New(`unknown stop: "A & <B>"`), at))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<Error>unknown stop: &quot;A &amp; &lt;B&gt;&quot;</Error>")
}

func TestBuildXML_UnsupportedType(t *testing.T) {
	_, err := NewResponseBuilder().BuildXML(42)
	assert.Error(t, err)
}

func TestReportResponse(t *testing.T) {
	idx := testIndex()
	r := NewReportResponse(report.Summarize(idx), idx, at)

	assert.Equal(t, 3, r.LineCount)
	assert.Equal(t, 4, r.StopCount)
	require.NotNil(t, r.MostStops)
	assert.Equal(t, "Green-B", r.MostStops.ID)
	assert.Equal(t, "Green Line B", r.MostStops.Name)
	require.NotNil(t, r.FewestStops)
	assert.Equal(t, "Blue", r.FewestStops.ID)
	require.Len(t, r.Interchanges, 1)
	assert.Equal(t, "Park Street", r.Interchanges[0].Stop)

	text, err := NewResponseBuilder().BuildText(r)
	require.NoError(t, err)
	assert.Contains(t, text, "3 lines, 4 stops")
	assert.Contains(t, text, "Most stops: Green Line B (2)")
	assert.Contains(t, text, "  Park Street: Red, Green-B")

	x, err := NewResponseBuilder().BuildXML(r)
	require.NoError(t, err)
	assert.Contains(t, string(x), "<FewestStops><LineRef>Blue</LineRef>")
}

func TestReportResponse_Empty(t *testing.T) {
	idx := network.NewIndex(nil)
	r := NewReportResponse(report.Summarize(idx), idx, at)
	assert.Nil(t, r.MostStops)
	assert.NotNil(t, r.Interchanges)
}

func TestBuildText_Route(t *testing.T) {
	idx := testIndex()
	rb := NewResponseBuilder()

	text, err := rb.BuildText(route(t, idx, "Davis", "Boston College"))
	require.NoError(t, err)
	assert.Equal(t, "Davis to Boston College: Red Line -> change at Park Street -> Green Line B\n1 transfer\n", text)

	text, err = rb.BuildText(route(t, idx, "Davis", "Park Street"))
	require.NoError(t, err)
	assert.Equal(t, "Davis to Park Street: Red Line\n0 transfers\n", text)

	text, err = rb.BuildText(route(t, idx, "Davis", "Wonderland"))
	require.NoError(t, err)
	assert.Equal(t, "No route from Davis to Wonderland\n", text)
}

func TestBuildText_Lines(t *testing.T) {
	text, err := NewResponseBuilder().BuildText(NewLinesResponse(testIndex(), at))
	require.NoError(t, err)
	assert.Equal(t, "Red Line\nGreen Line B\nBlue Line\n", text)
}

func TestStopsResponse(t *testing.T) {
	r := NewStopsResponse(testIndex(), at)
	require.Len(t, r.Stops, 4)
	assert.Equal(t, "Boston College", r.Stops[0].Name)
	park := r.Stops[2]
	assert.Equal(t, "Park Street", park.Name)
	assert.Equal(t, []string{"Red", "Green-B"}, park.Lines)
	assert.InDelta(t, 42.3564, park.Latitude, 1e-9)
}

func TestNearestStopResponse(t *testing.T) {
	idx := testIndex()
	stop, km, err := idx.NearestStop(42.3960, -71.1220)
	require.NoError(t, err)

	r := NewNearestStopResponse(stop, km, idx, at)
	assert.Equal(t, "Davis", r.Stop.Name)

	text, err := NewResponseBuilder().BuildText(r)
	require.NoError(t, err)
	assert.Contains(t, text, "Davis (")
	assert.Contains(t, text, "feet away), served by Red")
}

func TestBuildJSON_Indent(t *testing.T) {
	rb := &ResponseBuilder{Indent: true}
	b, err := rb.BuildJSON(NewErrorResponse(400, errors.New("missing from"), at))
	require.NoError(t, err)
	assert.Contains(t, string(b), "\n  \"status\": 400")
}
