package services

import (
	"context"
	"time"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/jobs"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
)

// SessionStatus is the open session, if any, with its pomodoro position.
type SessionStatus struct {
	Active   bool                 `json:"active"`
	Session  *models.StudySession `json:"session,omitempty"`
	Pomodoro *game.Pomodoro       `json:"pomodoro,omitempty"`
}

// GameService exposes the store operations and records credited rewards.
type GameService interface {
	State(ctx context.Context) models.GameState
	GainXP(ctx context.Context, amount int) (game.LevelChange, error)
	GainCoins(ctx context.Context, amount int) error
	Shop(ctx context.Context) []models.ShopListing
	BuyItem(ctx context.Context, itemID string) (game.Purchase, error)
	EquipItem(ctx context.Context, itemID string) (game.Outcome, error)
	Quests(ctx context.Context) []models.Quest
	UpdateQuestProgress(ctx context.Context, id string, progress int) (models.Quest, error)
	ClaimQuest(ctx context.Context, id string) (game.QuestClaim, error)
	ResetQuests(ctx context.Context) ([]models.Quest, error)
	StartSession(ctx context.Context, subject string) (models.StudySession, error)
	StopSession(ctx context.Context, withUpload bool) (game.SessionSummary, error)
	CurrentSession(ctx context.Context) SessionStatus
	Agenda(ctx context.Context, view string) []models.AgendaItem
	AddAgendaItem(ctx context.Context, item models.AgendaItem) (models.AgendaItem, error)
	CompleteAgendaItem(ctx context.Context, id string) (game.Outcome, error)
	Import(ctx context.Context, raw []byte) error
}

type gameService struct {
	store *game.Store
	queue jobs.JobQueue
}

// NewGameService creates a new GameService. queue may be nil, in which case no
// history is recorded.
func NewGameService(store *game.Store, queue jobs.JobQueue) GameService {
	return &gameService{store: store, queue: queue}
}

func (s *gameService) State(ctx context.Context) models.GameState {
	return s.store.Snapshot()
}

func (s *gameService) GainXP(ctx context.Context, amount int) (game.LevelChange, error) {
	log := logger.FromContext(ctx)
	log.Debug("gaining xp: amount=%d", amount)

	change, err := s.store.GainXP(ctx, amount)
	if err != nil {
		return game.LevelChange{}, err
	}
	s.recordReward(ctx, models.RewardSourceManual, "xp", amount, 0)
	return change, nil
}

func (s *gameService) GainCoins(ctx context.Context, amount int) error {
	log := logger.FromContext(ctx)
	log.Debug("gaining coins: amount=%d", amount)

	if err := s.store.GainCoins(ctx, amount); err != nil {
		return err
	}
	s.recordReward(ctx, models.RewardSourceManual, "coins", 0, amount)
	return nil
}

func (s *gameService) Shop(ctx context.Context) []models.ShopListing {
	return s.store.ShopListings()
}

func (s *gameService) BuyItem(ctx context.Context, itemID string) (game.Purchase, error) {
	log := logger.FromContext(ctx)
	log.Debug("buying item: id=%s", itemID)

	p, err := s.store.BuyItem(ctx, itemID)
	if err != nil {
		return game.Purchase{}, err
	}
	s.recordReward(ctx, models.RewardSourcePurchase, itemID, 0, -p.Item.Price)
	return p, nil
}

func (s *gameService) EquipItem(ctx context.Context, itemID string) (game.Outcome, error) {
	logger.FromContext(ctx).Debug("equipping item: id=%s", itemID)
	return s.store.EquipItem(ctx, itemID)
}

func (s *gameService) Quests(ctx context.Context) []models.Quest {
	return s.store.Snapshot().DailyQuests
}

func (s *gameService) UpdateQuestProgress(ctx context.Context, id string, progress int) (models.Quest, error) {
	logger.FromContext(ctx).Debug("updating quest progress: id=%s progress=%d", id, progress)
	return s.store.UpdateQuestProgress(ctx, id, progress)
}

func (s *gameService) ClaimQuest(ctx context.Context, id string) (game.QuestClaim, error) {
	log := logger.FromContext(ctx)
	log.Debug("claiming quest: id=%s", id)

	claim, err := s.store.CompleteQuest(ctx, id)
	if err != nil {
		return game.QuestClaim{}, err
	}
	if claim.Outcome == game.OutcomeApplied {
		s.recordReward(ctx, models.RewardSourceQuest, id, claim.Reward.XP, claim.Reward.Coins)
	}
	return claim, nil
}

func (s *gameService) ResetQuests(ctx context.Context) ([]models.Quest, error) {
	logger.FromContext(ctx).Debug("regenerating daily quests")
	return s.store.GenerateDailyQuests(ctx)
}

func (s *gameService) StartSession(ctx context.Context, subject string) (models.StudySession, error) {
	logger.FromContext(ctx).Debug("starting session: subject=%s", subject)
	return s.store.StartSession(ctx, subject)
}

func (s *gameService) StopSession(ctx context.Context, withUpload bool) (game.SessionSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("stopping session: with_upload=%t", withUpload)

	var (
		sum game.SessionSummary
		err error
	)
	if withUpload {
		sum, err = s.store.FinishSessionWithUpload(ctx)
	} else {
		sum, err = s.store.StopSession(ctx)
	}
	if err != nil {
		return game.SessionSummary{}, err
	}

	if s.queue != nil {
		if err := s.queue.EnqueueSessionRecord(s.store.Name(), sum); err != nil {
			log.Warn("failed to enqueue session record: %v", err)
		}
	}
	return sum, nil
}

func (s *gameService) CurrentSession(ctx context.Context) SessionStatus {
	sess, pomo := s.store.CurrentSession()
	if sess == nil {
		return SessionStatus{}
	}
	return SessionStatus{Active: true, Session: sess, Pomodoro: &pomo}
}

func (s *gameService) Agenda(ctx context.Context, view string) []models.AgendaItem {
	return s.store.Agenda(view)
}

func (s *gameService) AddAgendaItem(ctx context.Context, item models.AgendaItem) (models.AgendaItem, error) {
	logger.FromContext(ctx).Debug("adding agenda item: title=%s type=%s", item.Title, item.Type)
	return s.store.AddAgendaItem(ctx, item)
}

func (s *gameService) CompleteAgendaItem(ctx context.Context, id string) (game.Outcome, error) {
	logger.FromContext(ctx).Debug("completing agenda item: id=%s", id)
	return s.store.CompleteAgendaItem(ctx, id)
}

func (s *gameService) Import(ctx context.Context, raw []byte) error {
	logger.FromContext(ctx).Debug("importing snapshot: bytes=%d", len(raw))
	return s.store.Import(ctx, raw)
}

func (s *gameService) recordReward(ctx context.Context, source, ref string, xp, coins int) {
	if s.queue == nil {
		return
	}
	err := s.queue.EnqueueReward(models.RewardEvent{
		StoreName: s.store.Name(),
		Source:    source,
		Reference: ref,
		XP:        xp,
		Coins:     coins,
		CreatedAt: s.store.Now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		logger.FromContext(ctx).Warn("failed to enqueue reward: %v", err)
	}
}
