package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/jobs"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository/sqlite"
	"github.com/vytor/studybuddy/internal/testutil"
	"github.com/vytor/studybuddy/internal/worker"
)

func TestWorkerQueue_RecordsHistory(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	defer testutil.MustClose(t, db)
	sessions := sqlite.NewSessionRepository(db)
	rewards := sqlite.NewRewardRepository(db)

	pool := worker.NewPool(1, 8)
	pool.Start(ctx)
	q := jobs.NewWorkerQueue(pool, sessions, rewards)

	end := time.Date(2024, 3, 4, 15, 31, 0, 0, time.UTC)
	require.NoError(t, q.EnqueueSessionRecord("main", game.SessionSummary{
		SessionID:       "sess-1",
		Subject:         "Wiskunde",
		StartedAt:       end.Add(-31 * time.Minute),
		EndedAt:         end,
		DurationMinutes: 31,
		XPGained:        93,
		CoinsGained:     10,
	}))
	require.NoError(t, q.EnqueueReward(models.RewardEvent{
		StoreName: "main", Source: models.RewardSourceQuest, Reference: "daily-grind-30", XP: 50, Coins: 25,
	}))
	pool.Stop()

	list, err := sessions.List(ctx, models.SessionFilter{StoreName: "main"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sess-1", list[0].ID)

	events, err := rewards.List(ctx, "main", 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.NotEmpty(t, ev.ID)
	}
}
