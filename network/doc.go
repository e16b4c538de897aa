/*
Package network holds the static line/stop snapshot and the two lookup
structures derived from it.

This package is data-source agnostic - it accepts typed Line records from any
provider and builds an in-memory index. It does NOT handle HTTP downloads,
credentials or file paths.

# Basic Usage

	lines := snapshot.Lines // []network.Line from a provider
	idx := network.NewIndex(lines)

	idx.LinesForStop("Park Street") // ["Red", "Green-B", ...]
	idx.StopsForLine("Red")         // ordered stops served by Red

The raw maps are available for the route finder and reporter:

	lineIndex, stopLineIndex := network.BuildIndices(lines)

# Data Structure

- LineIndex: line id -> stops served (every supplied line has an entry)
- StopLineIndex: stop name -> ids of lines serving it, in discovery order

The two maps describe the same membership relation and are always built
together. Nothing mutates them after construction, so an Index is safe for
concurrent readers.

# Stop identity

Stops are keyed by name. Providers that report several platforms for one
station are expected to collapse them to the station name before building.
*/
package network
