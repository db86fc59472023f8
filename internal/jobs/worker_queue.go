package jobs

import (
	"time"

	"github.com/google/uuid"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
	"github.com/vytor/studybuddy/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool     *worker.Pool
	sessions repository.SessionRepository
	rewards  repository.RewardRepository
	newID    func() string
	now      func() time.Time
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, sessions repository.SessionRepository, rewards repository.RewardRepository) *WorkerQueue {
	return &WorkerQueue{
		pool:     pool,
		sessions: sessions,
		rewards:  rewards,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

var _ JobQueue = (*WorkerQueue)(nil)

func (q *WorkerQueue) EnqueueSessionRecord(storeName string, sum game.SessionSummary) error {
	return q.pool.Submit(&worker.RecordSessionJob{
		Sessions: q.sessions,
		Rewards:  q.rewards,
		Record: models.SessionRecord{
			ID:              sum.SessionID,
			StoreName:       storeName,
			Subject:         sum.Subject,
			StartedAt:       sum.StartedAt,
			EndedAt:         sum.EndedAt,
			DurationMinutes: sum.DurationMinutes,
			XPGained:        sum.XPGained,
			CoinsGained:     sum.CoinsGained,
		},
		Reward: models.RewardEvent{
			ID:        q.newID(),
			StoreName: storeName,
			Source:    models.RewardSourceSession,
			Reference: sum.SessionID,
			XP:        sum.XPGained,
			Coins:     sum.CoinsGained,
			CreatedAt: sum.EndedAt,
		},
	})
}

// EnqueueReward fills in the id and timestamp when they are missing.
func (q *WorkerQueue) EnqueueReward(ev models.RewardEvent) error {
	if ev.ID == "" {
		ev.ID = q.newID()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = q.now()
	}
	return q.pool.Submit(&worker.RecordRewardJob{Rewards: q.rewards, Event: ev})
}
