// Package report computes descriptive statistics over the network indices.
package report

import (
	"sort"

	"github.com/u0927156/MBTAProject/network"
)

// LineExtremes holds the lines with the most and the fewest stops.
type LineExtremes struct {
	MaxLine  string `json:"max_line"`
	MaxCount int    `json:"max_count"`
	MinLine  string `json:"min_line"`
	MinCount int    `json:"min_count"`
}

// Interchange is a stop served by more than one line.
type Interchange struct {
	Stop  string   `json:"stop"`
	Lines []string `json:"lines"`
}

// Summary bundles every statistic the CLI and server report.
type Summary struct {
	LineCount    int           `json:"line_count"`
	StopCount    int           `json:"stop_count"`
	Extremes     *LineExtremes `json:"extremes,omitempty"`
	Interchanges []Interchange `json:"interchanges"`
}

// Extremes finds the lines with the maximum and minimum stop counts.
// Ties go to the lexicographically smallest line id. ok is false for an
// empty index.
func Extremes(lines network.LineIndex) (ext LineExtremes, ok bool) {
	if len(lines) == 0 {
		return LineExtremes{}, false
	}
	ids := make([]string, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ext = LineExtremes{
		MaxLine: ids[0], MaxCount: len(lines[ids[0]]),
		MinLine: ids[0], MinCount: len(lines[ids[0]]),
	}
	for _, id := range ids[1:] {
		n := len(lines[id])
		if n > ext.MaxCount {
			ext.MaxLine, ext.MaxCount = id, n
		}
		if n < ext.MinCount {
			ext.MinLine, ext.MinCount = id, n
		}
	}
	return ext, true
}

// Interchanges lists stops served by more than one line, sorted by
// stop name. Lines keep their discovery order.
func Interchanges(stops network.StopLineIndex) []Interchange {
	out := []Interchange{}
	for name, lines := range stops {
		if len(lines) < 2 {
			continue
		}
		cp := make([]string, len(lines))
		copy(cp, lines)
		out = append(out, Interchange{Stop: name, Lines: cp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stop < out[j].Stop })
	return out
}

// Summarize reports on a built index.
func Summarize(idx *network.Index) Summary {
	lineCount, stopCount := idx.Counts()
	s := Summary{
		LineCount:    lineCount,
		StopCount:    stopCount,
		Interchanges: Interchanges(idx.StopLineIndex()),
	}
	if ext, ok := Extremes(idx.LineIndex()); ok {
		s.Extremes = &ext
	}
	return s
}
