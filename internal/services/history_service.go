package services

import (
	"context"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
)

// HistoryService reads the session history and reward ledger of one store
type HistoryService interface {
	Sessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, int, error)
	SubjectTotals(ctx context.Context) ([]models.SubjectTotal, error)
	Rewards(ctx context.Context, limit, offset int) ([]models.RewardEvent, error)
}

type historyService struct {
	storeName string
	sessions  repository.SessionRepository
	rewards   repository.RewardRepository
}

func NewHistoryService(storeName string, sessions repository.SessionRepository, rewards repository.RewardRepository) HistoryService {
	return &historyService{storeName: storeName, sessions: sessions, rewards: rewards}
}

func (s *historyService) Sessions(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing session history: subject=%s", filter.Subject)

	filter.StoreName = s.storeName
	list, err := s.sessions.List(ctx, filter)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.sessions.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count sessions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	if list == nil {
		list = []models.SessionRecord{}
	}
	return list, total, nil
}

func (s *historyService) SubjectTotals(ctx context.Context) ([]models.SubjectTotal, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading subject totals")

	totals, err := s.sessions.SubjectTotals(ctx, s.storeName)
	if err != nil {
		log.Error("failed to load subject totals: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if totals == nil {
		totals = []models.SubjectTotal{}
	}
	return totals, nil
}

func (s *historyService) Rewards(ctx context.Context, limit, offset int) ([]models.RewardEvent, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing rewards: limit=%d offset=%d", limit, offset)

	events, err := s.rewards.List(ctx, s.storeName, limit, offset)
	if err != nil {
		log.Error("failed to list rewards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if events == nil {
		events = []models.RewardEvent{}
	}
	return events, nil
}
