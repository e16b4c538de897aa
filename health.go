package transit

import (
	"net/http"

	"github.com/u0927156/MBTAProject/utils"
)

type healthResponse struct {
	Status    string `json:"status"`
	Source    string `json:"source"`
	FetchedAt string `json:"fetched_at"`
	Age       string `json:"snapshot_age"`
	Lines     int    `json:"lines"`
	Stops     int    `json:"stops"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	lines, stops := s.Planner.Index().Counts()
	resp := healthResponse{
		Status:    "ok",
		Source:    s.Planner.Source(),
		FetchedAt: utils.Iso8601(s.Planner.FetchedAt()),
		Age:       utils.Age(s.now(), s.Planner.FetchedAt()),
		Lines:     lines,
		Stops:     stops,
	}
	s.write(w, r, formatJSON, http.StatusOK, resp)
}
