package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/studybuddy/internal/models"
)

type addAgendaRequest struct {
	Title           string            `json:"title"`
	Subject         string            `json:"subject"`
	Type            models.AgendaType `json:"type"`
	Date            time.Time         `json:"date"`
	DurationMinutes int               `json:"duration_minutes"`
}

// handleAgenda lists agenda items. view is "today", "upcoming" or empty for all.
func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	items := s.GameService.Agenda(r.Context(), r.URL.Query().Get("view"))
	if items == nil {
		items = []models.AgendaItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleAddAgendaItem(w http.ResponseWriter, r *http.Request) {
	var req addAgendaRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	item, err := s.GameService.AddAgendaItem(r.Context(), models.AgendaItem{
		Title:           req.Title,
		Subject:         req.Subject,
		Type:            req.Type,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleCompleteAgendaItem(w http.ResponseWriter, r *http.Request) {
	out, err := s.GameService.CompleteAgendaItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outcome": out})
}
