package worker

import (
	"context"
	"time"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
)

// RecordSessionJob writes a closed session to history and its credit to the reward ledger.
type RecordSessionJob struct {
	Sessions repository.SessionRepository
	Rewards  repository.RewardRepository
	Record   models.SessionRecord
	Reward   models.RewardEvent
}

func (j *RecordSessionJob) Name() string { return "record_session" }

func (j *RecordSessionJob) Run(ctx context.Context) error {
	if err := j.Sessions.Insert(ctx, j.Record); err != nil {
		return err
	}
	if j.Reward.XP == 0 && j.Reward.Coins == 0 {
		return nil
	}
	return j.Rewards.Insert(ctx, j.Reward)
}

// RecordRewardJob appends one entry to the reward ledger.
type RecordRewardJob struct {
	Rewards repository.RewardRepository
	Event   models.RewardEvent
}

func (j *RecordRewardJob) Name() string { return "record_reward" }

func (j *RecordRewardJob) Run(ctx context.Context) error {
	return j.Rewards.Insert(ctx, j.Event)
}

// DailyResetJob regenerates the daily quests once the calendar day changed.
type DailyResetJob struct {
	Store *game.Store
	At    time.Time
}

func (j *DailyResetJob) Name() string { return "daily_reset" }

func (j *DailyResetJob) Run(ctx context.Context) error {
	out, err := j.Store.EnsureDailyQuests(ctx, j.At)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("daily reset: %s", out)
	return nil
}
