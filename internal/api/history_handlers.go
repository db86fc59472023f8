package api

import (
	"net/http"

	"github.com/vytor/studybuddy/internal/models"
)

func (s *Server) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	since, err := queryTime(r, "since")
	if err != nil {
		handleError(w, r, err)
		return
	}
	until, err := queryTime(r, "until")
	if err != nil {
		handleError(w, r, err)
		return
	}

	records, total, err := s.HistoryService.Sessions(r.Context(), models.SessionFilter{
		Subject: r.URL.Query().Get("subject"),
		Since:   since,
		Until:   until,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": records, "total": total})
}

func (s *Server) handleSubjectStats(w http.ResponseWriter, r *http.Request) {
	totals, err := s.HistoryService.SubjectTotals(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"subjects": totals})
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		handleError(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	events, err := s.HistoryService.Rewards(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rewards": events})
}
