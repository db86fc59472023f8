package services

import (
	"context"

	"github.com/vytor/studybuddy/internal/coach"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/logger"
)

// CoachService fills coach requests in with the player's own stats.
type CoachService interface {
	Message(ctx context.Context, mc coach.MessageContext) string
	Tips(ctx context.Context, req coach.TipsRequest) []string
	Questions(ctx context.Context, req coach.QuestionsRequest) coach.StudyQuestions
	Analyze(ctx context.Context, req coach.MaterialRequest) coach.StudyAnalysis
}

type coachService struct {
	store *game.Store
	coach *coach.Coach
}

func NewCoachService(store *game.Store, c *coach.Coach) CoachService {
	return &coachService{store: store, coach: c}
}

func (s *coachService) Message(ctx context.Context, mc coach.MessageContext) string {
	logger.FromContext(ctx).Debug("coach message: context=%s", mc)

	st := s.store.Snapshot()
	stats := coach.UserStats{Level: st.Progress.Level, Streak: st.Progress.StreakDays}
	if st.CurrentSession != nil {
		stats.Subject = st.CurrentSession.Subject
		stats.SessionTime = int(s.store.Now().Sub(st.CurrentSession.StartTime).Minutes())
	}
	return s.coach.MotivationalMessage(ctx, mc, stats)
}

func (s *coachService) Tips(ctx context.Context, req coach.TipsRequest) []string {
	logger.FromContext(ctx).Debug("coach tips: subjects=%v", req.Subjects)
	if req.Level == 0 {
		req.Level = s.store.Snapshot().Progress.Level
	}
	return s.coach.PersonalizedTips(ctx, req)
}

func (s *coachService) Questions(ctx context.Context, req coach.QuestionsRequest) coach.StudyQuestions {
	logger.FromContext(ctx).Debug("coach questions: subject=%s topic=%s", req.Subject, req.Topic)
	if req.Subject == "" {
		if sess := s.store.Snapshot().CurrentSession; sess != nil {
			req.Subject = sess.Subject
		}
	}
	return s.coach.StudyQuestions(ctx, req)
}

func (s *coachService) Analyze(ctx context.Context, req coach.MaterialRequest) coach.StudyAnalysis {
	logger.FromContext(ctx).Debug("coach analysis: subject=%s type=%s", req.Subject, req.StudyType)
	if req.Level == 0 {
		req.Level = s.store.Snapshot().Progress.Level
	}
	return s.coach.AnalyzeMaterial(ctx, req)
}
