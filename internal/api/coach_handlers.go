package api

import (
	"net/http"

	"github.com/vytor/studybuddy/internal/coach"
)

type messageRequest struct {
	Context coach.MessageContext `json:"context"`
}

// Coach routes always answer 200; the coach substitutes canned content when the
// model is unavailable and flags it in the response.

func (s *Server) handleCoachMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Context == "" {
		req.Context = coach.ContextSessionStart
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": s.CoachService.Message(r.Context(), req.Context),
	})
}

func (s *Server) handleCoachTips(w http.ResponseWriter, r *http.Request) {
	var req coach.TipsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tips": s.CoachService.Tips(r.Context(), req)})
}

func (s *Server) handleCoachQuestions(w http.ResponseWriter, r *http.Request) {
	var req coach.QuestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.CoachService.Questions(r.Context(), req))
}

func (s *Server) handleCoachAnalyze(w http.ResponseWriter, r *http.Request) {
	var req coach.MaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.CoachService.Analyze(r.Context(), req))
}
