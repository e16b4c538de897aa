package provider

import (
	"strings"

	"github.com/u0927156/MBTAProject/network"
)

// JSON:API envelopes returned by api-v3.mbta.com. Only the attributes the
// route finder needs are decoded.

type routesResponse struct {
	Data []routeResource `json:"data"`
}

type routeResource struct {
	ID         string `json:"id"`
	Attributes struct {
		LongName  string `json:"long_name"`
		ShortName string `json:"short_name"`
		Type      int    `json:"type"`
	} `json:"attributes"`
}

type stopsResponse struct {
	Data []stopResource `json:"data"`
}

type stopResource struct {
	ID         string `json:"id"`
	Attributes struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"attributes"`
}

type errorResponse struct {
	Errors []struct {
		Status string `json:"status"`
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (e errorResponse) String() string {
	parts := make([]string, 0, len(e.Errors))
	for _, er := range e.Errors {
		msg := er.Code
		switch {
		case msg == "":
			msg = er.Detail
		case er.Detail != "":
			msg += ": " + er.Detail
		}
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

// toLine validates a route resource; ok is false for records without an id.
func (r routeResource) toLine() (network.Line, bool) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return network.Line{}, false
	}
	return network.Line{
		ID:        id,
		LongName:  strings.TrimSpace(r.Attributes.LongName),
		ShortName: strings.TrimSpace(r.Attributes.ShortName),
		Type:      r.Attributes.Type,
	}, true
}

// toStop validates a stop resource; ok is false for unnamed stops.
func (s stopResource) toStop() (network.Stop, bool) {
	name := strings.TrimSpace(s.Attributes.Name)
	if name == "" {
		return network.Stop{}, false
	}
	return network.Stop{
		ID:        s.ID,
		Name:      name,
		Latitude:  s.Attributes.Latitude,
		Longitude: s.Attributes.Longitude,
	}, true
}
