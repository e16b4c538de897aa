package routing

import "github.com/u0927156/MBTAProject/network"

// State is a phase of the route search.
type State int

const (
	Initializing State = iota
	Expanding
	Found
	Exhausted
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "INITIALIZING"
	case Expanding:
		return "EXPANDING"
	case Found:
		return "FOUND"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of a search. Lines is empty unless State is Found.
type Result struct {
	From     string
	To       string
	State    State
	Lines    []string // first serves From, last serves To
	Explored int      // distinct lines enqueued
	Depth    int      // BFS layers expanded
}

// Found reports whether a connecting sequence of lines exists.
func (r Result) Found() bool { return r.State == Found }

// Transfers is the number of line changes along the route, -1 if none found.
func (r Result) Transfers() int {
	if !r.Found() {
		return -1
	}
	return len(r.Lines) - 1
}

// Transfer is a change from one line to the next at any of Stops.
type Transfer struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Stops []string `json:"stops"`
}

// TransferPoints lists, for each consecutive pair of lines in the route, the
// stops where the change can be made.
func TransferPoints(r Result, lines network.LineIndex, stops network.StopLineIndex) []Transfer {
	if !r.Found() || len(r.Lines) < 2 {
		return nil
	}
	out := make([]Transfer, 0, len(r.Lines)-1)
	for i := 0; i+1 < len(r.Lines); i++ {
		out = append(out, Transfer{
			From:  r.Lines[i],
			To:    r.Lines[i+1],
			Stops: SharedStops(r.Lines[i], r.Lines[i+1], lines, stops),
		})
	}
	return out
}
