package api

import (
	"io"
	"net/http"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/game"
)

type amountRequest struct {
	Amount int `json:"amount"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.GameService.State(r.Context()))
}

// handleExport returns the versioned snapshot, suitable for a later import.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	raw, err := game.EncodeSnapshot(s.GameService.State(r.Context()))
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="studybuddy.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("could not read body"))
		return
	}
	if err := s.GameService.Import(r.Context(), raw); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.GameService.State(r.Context()))
}

func (s *Server) handleGainXP(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	change, err := s.GameService.GainXP(r.Context(), req.Amount)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"level":    change,
		"level_up": change.Up(),
		"progress": s.GameService.State(r.Context()).Progress,
	})
}

func (s *Server) handleGainCoins(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.GameService.GainCoins(r.Context(), req.Amount); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"progress": s.GameService.State(r.Context()).Progress,
	})
}
