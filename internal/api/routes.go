package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// coachTimeout bounds coach routes; the coach itself falls back well before this.
const coachTimeout = 45 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)

		r.Post("/progress/xp", s.handleGainXP)
		r.Post("/progress/coins", s.handleGainCoins)

		r.Get("/shop", s.handleShop)
		r.Post("/shop/{id}/buy", s.handleBuyItem)
		r.Post("/inventory/{id}/equip", s.handleEquipItem)

		r.Get("/quests", s.handleQuests)
		r.Post("/quests/reset", s.handleResetQuests)
		r.Post("/quests/{id}/progress", s.handleQuestProgress)
		r.Post("/quests/{id}/claim", s.handleClaimQuest)

		r.Get("/session", s.handleCurrentSession)
		r.Post("/session/start", s.handleStartSession)
		r.Post("/session/stop", s.handleStopSession)

		r.Get("/agenda", s.handleAgenda)
		r.Post("/agenda", s.handleAddAgendaItem)
		r.Post("/agenda/{id}/complete", s.handleCompleteAgendaItem)

		r.Get("/sessions", s.handleSessionHistory)
		r.Get("/stats/subjects", s.handleSubjectStats)
		r.Get("/rewards", s.handleRewards)

		r.Group(func(r chi.Router) {
			r.Use(timeoutMiddleware(coachTimeout))
			r.Post("/coach/message", s.handleCoachMessage)
			r.Post("/coach/tips", s.handleCoachTips)
			r.Post("/coach/questions", s.handleCoachQuestions)
			r.Post("/coach/analyze", s.handleCoachAnalyze)
		})
	})
	return r
}
