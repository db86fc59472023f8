package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleShop(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": s.GameService.Shop(r.Context())})
}

func (s *Server) handleBuyItem(w http.ResponseWriter, r *http.Request) {
	p, err := s.GameService.BuyItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleEquipItem(w http.ResponseWriter, r *http.Request) {
	out, err := s.GameService.EquipItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"outcome": out,
		"buddy":   s.GameService.State(r.Context()).Buddy,
	})
}
