package network

// Stop is a named station served by one or more lines.
type Stop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// HasLocation reports whether the provider supplied coordinates.
func (s Stop) HasLocation() bool {
	return s.Latitude != 0 || s.Longitude != 0
}

// Line is a single transit route and the stops it serves.
type Line struct {
	ID        string `json:"id"`
	LongName  string `json:"long_name"`
	ShortName string `json:"short_name,omitempty"`
	Type      int    `json:"type"` // GTFS route_type: 0 light rail, 1 heavy rail
	Stops     []Stop `json:"stops"`
}

// DisplayName prefers the long name and falls back to the id.
func (l Line) DisplayName() string {
	if l.LongName != "" {
		return l.LongName
	}
	if l.ShortName != "" {
		return l.ShortName
	}
	return l.ID
}

// LineIndex maps a line id to the stops it serves.
type LineIndex map[string][]Stop

// StopLineIndex maps a stop name to the ids of the lines serving it.
type StopLineIndex map[string][]string

// Serves reports whether line serves the named stop.
func (li LineIndex) Serves(line, stopName string) bool {
	for _, s := range li[line] {
		if s.Name == stopName {
			return true
		}
	}
	return false
}
