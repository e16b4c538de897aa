package routing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/u0927156/MBTAProject/network"
)

// ErrUnknownStop is returned when a stop name is absent from the index.
var ErrUnknownStop = errors.New("unknown stop")

type queueItem struct {
	line string
	path []string
}

// FindRoute returns a shortest sequence of lines connecting start to end.
// Both stops must be present in stops; an empty dataset therefore always
// yields ErrUnknownStop.
func FindRoute(start, end string, lines network.LineIndex, stops network.StopLineIndex) (Result, error) {
	return (&Finder{Lines: lines, Stops: stops}).Find(start, end)
}

// Finder runs route searches against a fixed pair of indices.
type Finder struct {
	Lines  network.LineIndex
	Stops  network.StopLineIndex
	Logger *slog.Logger // optional; receives per-layer debug records
}

// Find is FindRoute bound to the finder's indices.
func (f *Finder) Find(start, end string) (Result, error) {
	res := Result{From: start, To: end, State: Initializing}

	startLines, ok := f.Stops[start]
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrUnknownStop, start)
	}
	endLines, ok := f.Stops[end]
	if !ok {
		return res, fmt.Errorf("%w: %q", ErrUnknownStop, end)
	}

	goal := make(map[string]struct{}, len(endLines))
	for _, l := range endLines {
		goal[l] = struct{}{}
	}

	// visited covers every line on every queued path, so excluding it also
	// excludes the full history of the path being extended.
	visited := make(map[string]struct{}, len(f.Lines))
	queue := make([]queueItem, 0, len(startLines))
	for _, l := range startLines {
		if _, dup := visited[l]; dup {
			continue
		}
		visited[l] = struct{}{}
		res.Explored++
		if _, ok := goal[l]; ok {
			return f.found(res, []string{l}), nil
		}
		queue = append(queue, queueItem{line: l, path: []string{l}})
	}

	res.State = Expanding
	for len(queue) > 0 {
		res.Depth++
		layer := queue
		queue = nil
		f.debug("expanding layer", slog.Int("depth", res.Depth), slog.Int("frontier", len(layer)))
		for _, item := range layer {
			for _, next := range Neighbors(item.line, f.Lines, f.Stops) {
				if _, seen := visited[next]; seen {
					continue
				}
				visited[next] = struct{}{}
				res.Explored++

				path := make([]string, len(item.path), len(item.path)+1)
				copy(path, item.path)
				path = append(path, next)
				if _, ok := goal[next]; ok {
					return f.found(res, path), nil
				}
				queue = append(queue, queueItem{line: next, path: path})
			}
		}
	}

	res.State = Exhausted
	f.debug("search exhausted", slog.String("from", start), slog.String("to", end), slog.Int("explored", res.Explored))
	return res, nil
}

func (f *Finder) found(res Result, path []string) Result {
	res.State = Found
	res.Lines = path
	f.debug("route found", slog.String("from", res.From), slog.String("to", res.To), slog.Any("lines", path))
	return res
}

func (f *Finder) debug(msg string, attrs ...any) {
	if f.Logger != nil {
		f.Logger.Debug(msg, attrs...)
	}
}
