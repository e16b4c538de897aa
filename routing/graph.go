package routing

import "github.com/u0927156/MBTAProject/network"

// Neighbors returns the lines sharing at least one stop with line, excluding
// line itself, in discovery order and without duplicates.
func Neighbors(line string, lines network.LineIndex, stops network.StopLineIndex) []string {
	seen := map[string]struct{}{line: {}}
	var out []string
	for _, s := range lines[line] {
		for _, next := range stops[s.Name] {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			out = append(out, next)
		}
	}
	return out
}

// SharedStops returns the names of stops served by both a and b, in a's order.
func SharedStops(a, b string, lines network.LineIndex, stops network.StopLineIndex) []string {
	var out []string
	for _, s := range lines[a] {
		for _, l := range stops[s.Name] {
			if l == b {
				out = append(out, s.Name)
				break
			}
		}
	}
	return out
}
