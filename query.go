package transit

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryError is a malformed or missing request parameter.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func requiredParam(q url.Values, name string) (string, error) {
	v := strings.TrimSpace(q.Get(name))
	if v == "" {
		return "", &QueryError{Msg: "Missing required parameter: " + name + "."}
	}
	return v, nil
}

func parseCoordinate(q url.Values, name string, limit float64) (float64, error) {
	raw, err := requiredParam(q, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < -limit || v > limit {
		return 0, &QueryError{Msg: "Parameter " + name + " must be a number between -" +
			strconv.FormatFloat(limit, 'f', -1, 64) + " and " + strconv.FormatFloat(limit, 'f', -1, 64) + "."}
	}
	return v, nil
}

// ParseLatLon reads "lat,lon" as used by the CLI -near flag.
func ParseLatLon(s string) (lat, lon float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, &QueryError{Msg: "Coordinates must be given as lat,lon."}
	}
	q := url.Values{}
	q.Set("lat", parts[0])
	q.Set("lon", parts[1])
	if lat, err = parseCoordinate(q, "lat", 90); err != nil {
		return 0, 0, err
	}
	if lon, err = parseCoordinate(q, "lon", 180); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
