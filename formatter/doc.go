// Package formatter turns route searches, reports and listings into response
// records and serializes them.
//
// This package is organized into:
// - response.go: response records and their constructors
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - text.go: console rendering for the CLI
//
// XML is written by hand for precise control over element order.
package formatter
