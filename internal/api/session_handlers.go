package api

import "net/http"

type startSessionRequest struct {
	Subject string `json:"subject"`
}

type stopSessionRequest struct {
	WithUpload bool `json:"with_upload"`
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.GameService.CurrentSession(r.Context()))
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	sess, err := s.GameService.StartSession(r.Context(), req.Subject)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleStopSession(w http.ResponseWriter, r *http.Request) {
	var req stopSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	sum, err := s.GameService.StopSession(r.Context(), req.WithUpload)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
