// Package transit answers line-transfer questions about the MBTA rail
// network: which sequence of lines connects two stops, which stops connect
// lines, and which stop is nearest a coordinate. Planner is the query facade;
// Server exposes it over HTTP.
package transit
