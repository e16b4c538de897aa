package formatter

import (
	"time"

	"github.com/u0927156/MBTAProject/network"
	"github.com/u0927156/MBTAProject/report"
	"github.com/u0927156/MBTAProject/routing"
	"github.com/u0927156/MBTAProject/utils"
)

// LineRef describes one line in a response.
type LineRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  int    `json:"type"`
	Stops int    `json:"stops"`
}

// StopRef describes one stop in a response.
type StopRef struct {
	Name      string   `json:"name"`
	ID        string   `json:"id,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
	Lines     []string `json:"lines"`
}

// RouteResponse is the outcome of one route search.
type RouteResponse struct {
	ResponseTimestamp string             `json:"response_timestamp"`
	From              string             `json:"from"`
	To                string             `json:"to"`
	Found             bool               `json:"found"`
	State             string             `json:"state"`
	Lines             []LineRef          `json:"lines"`
	Transfers         []routing.Transfer `json:"transfers"`
	TransferCount     int                `json:"transfer_count"`
	Explored          int                `json:"explored"`
}

// LineStat names a line together with its stop count.
type LineStat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stops int    `json:"stops"`
}

// ReportResponse carries network statistics.
type ReportResponse struct {
	ResponseTimestamp string               `json:"response_timestamp"`
	LineCount         int                  `json:"line_count"`
	StopCount         int                  `json:"stop_count"`
	MostStops         *LineStat            `json:"most_stops,omitempty"`
	FewestStops       *LineStat            `json:"fewest_stops,omitempty"`
	Interchanges      []report.Interchange `json:"interchanges"`
}

type LinesResponse struct {
	ResponseTimestamp string    `json:"response_timestamp"`
	Lines             []LineRef `json:"lines"`
}

type StopsResponse struct {
	ResponseTimestamp string    `json:"response_timestamp"`
	Stops             []StopRef `json:"stops"`
}

type NearestStopResponse struct {
	ResponseTimestamp string  `json:"response_timestamp"`
	Stop              StopRef `json:"stop"`
	DistanceKM        float64 `json:"distance_km"`
}

type ErrorResponse struct {
	ResponseTimestamp string `json:"response_timestamp"`
	Status            int    `json:"status"`
	Error             string `json:"error"`
}

func lineRef(idx *network.Index, id string) LineRef {
	ref := LineRef{ID: id, Name: id, Stops: len(idx.StopsForLine(id))}
	if l, ok := idx.Line(id); ok {
		ref.Name = l.DisplayName()
		ref.Type = l.Type
	}
	return ref
}

func stopRef(idx *network.Index, name string) StopRef {
	ref := StopRef{Name: name, Lines: append([]string{}, idx.LinesForStop(name)...)}
	if s, ok := idx.Stop(name); ok {
		ref.ID = s.ID
		ref.Latitude = s.Latitude
		ref.Longitude = s.Longitude
	}
	return ref
}

// NewRouteResponse describes res, resolving line names and transfer stops
// against idx.
func NewRouteResponse(res routing.Result, idx *network.Index, at time.Time) RouteResponse {
	out := RouteResponse{
		ResponseTimestamp: utils.Iso8601(at),
		From:              res.From,
		To:                res.To,
		Found:             res.Found(),
		State:             res.State.String(),
		Lines:             make([]LineRef, 0, len(res.Lines)),
		Transfers:         []routing.Transfer{},
		TransferCount:     res.Transfers(),
		Explored:          res.Explored,
	}
	for _, id := range res.Lines {
		out.Lines = append(out.Lines, lineRef(idx, id))
	}
	if tp := routing.TransferPoints(res, idx.LineIndex(), idx.StopLineIndex()); tp != nil {
		out.Transfers = tp
	}
	return out
}

func NewReportResponse(sum report.Summary, idx *network.Index, at time.Time) ReportResponse {
	out := ReportResponse{
		ResponseTimestamp: utils.Iso8601(at),
		LineCount:         sum.LineCount,
		StopCount:         sum.StopCount,
		Interchanges:      sum.Interchanges,
	}
	if out.Interchanges == nil {
		out.Interchanges = []report.Interchange{}
	}
	if ext := sum.Extremes; ext != nil {
		out.MostStops = &LineStat{ID: ext.MaxLine, Name: lineRef(idx, ext.MaxLine).Name, Stops: ext.MaxCount}
		out.FewestStops = &LineStat{ID: ext.MinLine, Name: lineRef(idx, ext.MinLine).Name, Stops: ext.MinCount}
	}
	return out
}

// NewLinesResponse lists lines in provider order.
func NewLinesResponse(idx *network.Index, at time.Time) LinesResponse {
	ids := idx.Lines()
	out := LinesResponse{ResponseTimestamp: utils.Iso8601(at), Lines: make([]LineRef, 0, len(ids))}
	for _, id := range ids {
		out.Lines = append(out.Lines, lineRef(idx, id))
	}
	return out
}

// NewStopsResponse lists stops sorted by name.
func NewStopsResponse(idx *network.Index, at time.Time) StopsResponse {
	names := idx.StopNames()
	out := StopsResponse{ResponseTimestamp: utils.Iso8601(at), Stops: make([]StopRef, 0, len(names))}
	for _, name := range names {
		out.Stops = append(out.Stops, stopRef(idx, name))
	}
	return out
}

func NewNearestStopResponse(stop network.Stop, km float64, idx *network.Index, at time.Time) NearestStopResponse {
	return NearestStopResponse{
		ResponseTimestamp: utils.Iso8601(at),
		Stop:              stopRef(idx, stop.Name),
		DistanceKM:        km,
	}
}

func NewErrorResponse(status int, err error, at time.Time) ErrorResponse {
	return ErrorResponse{ResponseTimestamp: utils.Iso8601(at), Status: status, Error: err.Error()}
}
