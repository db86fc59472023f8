package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/testutil/mocks"
	"github.com/vytor/studybuddy/internal/worker"
)

func TestRecordSessionJob(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	rewards := new(mocks.MockRewardRepository)
	rec := models.SessionRecord{ID: "s1", Subject: "Wiskunde", DurationMinutes: 31, XPGained: 93, CoinsGained: 10}
	ev := models.RewardEvent{ID: "r1", Source: models.RewardSourceSession, Reference: "s1", XP: 93, Coins: 10}
	sessions.On("Insert", mock.Anything, rec).Return(nil)
	rewards.On("Insert", mock.Anything, ev).Return(nil)

	job := &worker.RecordSessionJob{Sessions: sessions, Rewards: rewards, Record: rec, Reward: ev}
	require.NoError(t, job.Run(context.Background()))

	sessions.AssertExpectations(t)
	rewards.AssertExpectations(t)
}

func TestRecordSessionJob_SkipsEmptyRewardAndStopsOnError(t *testing.T) {
	sessions := new(mocks.MockSessionRepository)
	rewards := new(mocks.MockRewardRepository)
	sessions.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	job := &worker.RecordSessionJob{Sessions: sessions, Rewards: rewards, Record: models.SessionRecord{ID: "s1"}}
	require.NoError(t, job.Run(context.Background()))
	rewards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)

	sessions.On("Insert", mock.Anything, mock.Anything).Return(errors.New("locked")).Once()
	job.Reward = models.RewardEvent{ID: "r1", XP: 3}
	assert.Error(t, job.Run(context.Background()))
	rewards.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDailyResetJob(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	store, err := game.New(ctx, game.Config{}, game.NewMemoryPersister(), game.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.UpdateQuestProgress(ctx, game.QuestQuizMaster, 4)
	require.NoError(t, err)

	job := &worker.DailyResetJob{Store: store, At: now.Add(10 * time.Hour)}
	require.NoError(t, job.Run(ctx))

	st := store.Snapshot()
	assert.Zero(t, st.DailyQuests[st.QuestIndex(game.QuestQuizMaster)].Progress)
	assert.Equal(t, "2024-03-05", st.QuestsGeneratedOn)
}
