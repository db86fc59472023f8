package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type progressRequest struct {
	Progress int `json:"progress"`
}

func (s *Server) handleQuests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"quests": s.GameService.Quests(r.Context())})
}

func (s *Server) handleQuestProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	q, err := s.GameService.UpdateQuestProgress(r.Context(), chi.URLParam(r, "id"), req.Progress)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleClaimQuest(w http.ResponseWriter, r *http.Request) {
	claim, err := s.GameService.ClaimQuest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, claim)
}

func (s *Server) handleResetQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := s.GameService.ResetQuests(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"quests": quests})
}
