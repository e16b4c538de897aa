package network

import (
	"sort"

	"github.com/davecgh/go-spew/spew"
)

// BuildIndices derives the line -> stops and stop -> lines maps from the
// provider's lines in a single pass.
func BuildIndices(lines []Line) (LineIndex, StopLineIndex) {
	lineIndex := make(LineIndex, len(lines))
	stopLines := StopLineIndex{}
	members := make(map[string]map[string]struct{}, len(lines)) // line_id -> stop names already recorded
	for _, line := range lines {
		seen, ok := members[line.ID]
		if !ok {
			seen = make(map[string]struct{}, len(line.Stops))
			members[line.ID] = seen
			lineIndex[line.ID] = make([]Stop, 0, len(line.Stops))
		}
		for _, stop := range line.Stops {
			if _, dup := seen[stop.Name]; dup {
				continue
			}
			seen[stop.Name] = struct{}{}
			stopLines[stop.Name] = append(stopLines[stop.Name], line.ID)
			lineIndex[line.ID] = append(lineIndex[line.ID], stop)
		}
	}
	return lineIndex, stopLines
}

// Index stores a frozen snapshot of lines and stops for fast lookups.
type Index struct {
	lineIndex LineIndex
	stopLines StopLineIndex
	lines     map[string]Line // line_id -> metadata (Stops cleared)
	lineOrder []string        // line ids in discovery order
	stops     map[string]Stop // stop name -> first record seen
	locator   *stopLocator
}

// NewIndex builds an Index from provider lines.
func NewIndex(lines []Line) *Index {
	lineIndex, stopLines := BuildIndices(lines)
	idx := &Index{
		lineIndex: lineIndex,
		stopLines: stopLines,
		lines:     make(map[string]Line, len(lines)),
		lineOrder: make([]string, 0, len(lines)),
		stops:     make(map[string]Stop, len(stopLines)),
	}
	for _, line := range lines {
		if _, ok := idx.lines[line.ID]; ok {
			continue
		}
		meta := line
		meta.Stops = nil
		idx.lines[line.ID] = meta
		idx.lineOrder = append(idx.lineOrder, line.ID)
	}
	for _, id := range idx.lineOrder {
		for _, s := range lineIndex[id] {
			if prev, ok := idx.stops[s.Name]; !ok || (!prev.HasLocation() && s.HasLocation()) {
				idx.stops[s.Name] = s
			}
		}
	}
	idx.locator = newStopLocator(idx.stops)
	return idx
}

// LineIndex exposes the line -> stops map. Callers must not modify it.
func (idx *Index) LineIndex() LineIndex { return idx.lineIndex }

// StopLineIndex exposes the stop -> lines map. Callers must not modify it.
func (idx *Index) StopLineIndex() StopLineIndex { return idx.stopLines }

// Lines returns line ids in the order the provider supplied them.
func (idx *Index) Lines() []string {
	out := make([]string, len(idx.lineOrder))
	copy(out, idx.lineOrder)
	return out
}

// Line returns a line's metadata without its stops.
func (idx *Index) Line(id string) (Line, bool) {
	l, ok := idx.lines[id]
	return l, ok
}

func (idx *Index) StopsForLine(id string) []Stop { return idx.lineIndex[id] }

func (idx *Index) LinesForStop(name string) []string { return idx.stopLines[name] }

func (idx *Index) HasStop(name string) bool {
	_, ok := idx.stopLines[name]
	return ok
}

func (idx *Index) Stop(name string) (Stop, bool) {
	s, ok := idx.stops[name]
	return s, ok
}

// StopNames returns every stop name, sorted.
func (idx *Index) StopNames() []string {
	names := make([]string, 0, len(idx.stopLines))
	for name := range idx.stopLines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counts returns the number of lines and distinct stops.
func (idx *Index) Counts() (lines, stops int) {
	return len(idx.lineOrder), len(idx.stopLines)
}

// Dump renders both maps for debugging.
func (idx *Index) Dump() string {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
	return cfg.Sdump(idx.lineIndex) + cfg.Sdump(idx.stopLines)
}
