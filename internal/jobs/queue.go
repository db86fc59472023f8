package jobs

import (
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
)

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueSessionRecord(storeName string, sum game.SessionSummary) error
	EnqueueReward(ev models.RewardEvent) error
}
