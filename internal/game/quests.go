package game

import (
	"context"
	"time"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/models"
)

// Quest ids referenced by the session flow.
const (
	QuestDailyGrind  = "daily-grind-30"
	QuestScreenshot  = "daily-screenshot"
	QuestQuizMaster  = "daily-quiz-master"
	QuestDailyStreak = "daily-streak"
)

// QuestClaim is the result of CompleteQuest.
type QuestClaim struct {
	Outcome Outcome            `json:"outcome"`
	Quest   models.Quest       `json:"quest"`
	Reward  models.QuestReward `json:"reward"`
	Level   LevelChange        `json:"level"`
}

// UpdateQuestProgress sets the absolute progress of a quest, clamped to its target.
func (s *Store) UpdateQuestProgress(ctx context.Context, id string, progress int) (models.Quest, error) {
	if progress < 0 {
		return models.Quest{}, errors.NewInvalidAmountError("progress", progress)
	}
	var out models.Quest
	_, err := s.mutate(ctx, "update_quest_progress", func(st *models.GameState) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return errors.NewUnknownEntityError("quest", id)
		}
		q := &st.DailyQuests[i]
		q.Progress = min(progress, q.Target)
		out = *q
		return nil
	})
	return out, err
}

// CompleteQuest claims a quest reward exactly once. Claiming an already completed quest
// is a no-op reported as OutcomeUnchanged; claiming before the target is reached fails.
func (s *Store) CompleteQuest(ctx context.Context, id string) (QuestClaim, error) {
	var claim QuestClaim
	_, err := s.mutate(ctx, "complete_quest", func(st *models.GameState) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return errors.NewUnknownEntityError("quest", id)
		}
		q := st.DailyQuests[i]
		if q.Completed {
			claim = QuestClaim{Outcome: OutcomeUnchanged, Quest: q}
			return errNoChange
		}
		if q.Progress < q.Target {
			return errors.NewNotClaimableError(q.ID, q.Progress, q.Target)
		}
		claim.Level = s.credit(st, q.Reward.XP, q.Reward.Coins)
		st.DailyQuests[i].Completed = true
		st.Buddy.Mood = models.MoodExcited
		claim.Outcome = OutcomeApplied
		claim.Quest = st.DailyQuests[i]
		claim.Reward = q.Reward
		return nil
	})
	if errors.Is(err, errNoChange) {
		return claim, nil
	}
	if err != nil {
		return QuestClaim{}, err
	}
	return claim, nil
}

// GenerateDailyQuests replaces the quest list with a fresh copy of the daily set.
func (s *Store) GenerateDailyQuests(ctx context.Context) ([]models.Quest, error) {
	st, err := s.mutate(ctx, "generate_daily_quests", func(st *models.GameState) error {
		st.DailyQuests = s.catalog.FreshDailyQuests()
		st.QuestsGeneratedOn = dayKey(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st.DailyQuests, nil
}

// EnsureDailyQuests regenerates the daily set when it was generated on an earlier day.
func (s *Store) EnsureDailyQuests(ctx context.Context, now time.Time) (Outcome, error) {
	today := dayKey(now)
	_, err := s.mutate(ctx, "ensure_daily_quests", func(st *models.GameState) error {
		if st.QuestsGeneratedOn == today {
			return errNoChange
		}
		st.DailyQuests = s.catalog.FreshDailyQuests()
		st.QuestsGeneratedOn = today
		return nil
	})
	if errors.Is(err, errNoChange) {
		return OutcomeUnchanged, nil
	}
	if err != nil {
		return "", err
	}
	s.log.Info("daily quests regenerated for %s", today)
	return OutcomeApplied, nil
}
