package formatter

import (
	"encoding/json"
)

// ResponseBuilder serializes response records.
type ResponseBuilder struct {
	// Indent pretty-prints JSON output.
	Indent bool
}

// NewResponseBuilder creates a new response builder
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// BuildJSON serializes a response record to JSON
func (rb *ResponseBuilder) BuildJSON(res any) ([]byte, error) {
	if rb.Indent {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
