// Package routing finds line-transfer routes between two stops.
//
// The search runs over lines, not stops: two lines are adjacent when they
// share at least one stop. Adjacency is never materialized; Neighbors derives
// it from the network indices on demand.
//
// FindRoute is a breadth-first search with a global visited set, so the first
// route it returns uses the fewest lines and the search touches each line at
// most once. A missing route is reported as an EXHAUSTED Result, not an error.
package routing
