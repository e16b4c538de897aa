package transit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/u0927156/MBTAProject/formatter"
	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/network"
	"github.com/u0927156/MBTAProject/routing"
)

type outputFormat int

const (
	formatJSON outputFormat = iota
	formatXML
)

func (s *Server) write(w http.ResponseWriter, r *http.Request, f outputFormat, status int, res any) {
	var (
		body []byte
		err  error
	)
	if f == formatXML {
		w.Header().Set("Content-Type", "application/xml")
		body, err = s.builder.BuildXML(res)
	} else {
		w.Header().Set("Content-Type", "application/json")
		body, err = s.builder.BuildJSON(res)
	}
	if err != nil {
		logging.LogError(s.logger, "Failed to encode response", err,
			slog.String("request_id", GetRequestID(r.Context())))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, f outputFormat, status int, err error) {
	s.write(w, r, f, status, formatter.NewErrorResponse(status, err, s.now()))
}

// statusFor maps planner errors to HTTP status codes.
func statusFor(err error) int {
	var qe *QueryError
	switch {
	case errors.As(err, &qe):
		return http.StatusBadRequest
	case errors.Is(err, routing.ErrUnknownStop):
		return http.StatusNotFound
	case errors.Is(err, network.ErrNoLocatedStops):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleRoute(f outputFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, err := requiredParam(q, "from")
		if err != nil {
			s.writeError(w, r, f, statusFor(err), err)
			return
		}
		to, err := requiredParam(q, "to")
		if err != nil {
			s.writeError(w, r, f, statusFor(err), err)
			return
		}
		res, err := s.Planner.FindRoute(from, to)
		if err != nil {
			s.writeError(w, r, f, statusFor(err), err)
			return
		}
		s.write(w, r, f, http.StatusOK, formatter.NewRouteResponse(res, s.Planner.Index(), s.now()))
	}
}

func (s *Server) handleReport(f outputFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := formatter.NewReportResponse(s.Planner.Report(), s.Planner.Index(), s.now())
		s.write(w, r, f, http.StatusOK, res)
	}
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, formatJSON, http.StatusOK, formatter.NewLinesResponse(s.Planner.Index(), s.now()))
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, formatJSON, http.StatusOK, formatter.NewStopsResponse(s.Planner.Index(), s.now()))
}

func (s *Server) handleNearestStop(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := parseCoordinate(q, "lat", 90)
	if err != nil {
		s.writeError(w, r, formatJSON, statusFor(err), err)
		return
	}
	lon, err := parseCoordinate(q, "lon", 180)
	if err != nil {
		s.writeError(w, r, formatJSON, statusFor(err), err)
		return
	}
	stop, km, err := s.Planner.NearestStop(lat, lon)
	if err != nil {
		s.writeError(w, r, formatJSON, statusFor(err), err)
		return
	}
	s.write(w, r, formatJSON, http.StatusOK, formatter.NewNearestStopResponse(stop, km, s.Planner.Index(), s.now()))
}
