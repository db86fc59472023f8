package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
	"github.com/vytor/studybuddy/internal/repository/sqlite"
	"github.com/vytor/studybuddy/internal/testutil"
)

type RewardRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.RewardRepository
}

func (s *RewardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewRewardRepository(s.db)
}

func (s *RewardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *RewardRepositorySuite) TestInsertAndList() {
	ctx := context.Background()
	at := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	s.Require().NoError(s.repo.Insert(ctx, models.RewardEvent{
		ID: "r1", StoreName: "main", Source: models.RewardSourceSession, Reference: "sess-1", XP: 93, Coins: 10, CreatedAt: at,
	}))
	s.Require().NoError(s.repo.Insert(ctx, models.RewardEvent{
		ID: "r2", StoreName: "main", Source: models.RewardSourceQuest, Reference: "daily-grind-30", XP: 50, Coins: 25, CreatedAt: at.Add(time.Minute),
	}))
	s.Require().NoError(s.repo.Insert(ctx, models.RewardEvent{
		ID: "r3", StoreName: "other", Source: models.RewardSourceManual, XP: 1, CreatedAt: at,
	}))

	events, err := s.repo.List(ctx, "main", 10, 0)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Assert().Equal("r2", events[0].ID)
	s.Assert().Equal(models.RewardSourceQuest, events[0].Source)
	s.Assert().Equal(93, events[1].XP)
}

func (s *RewardRepositorySuite) TestInsert_DuplicateID() {
	ctx := context.Background()
	ev := models.RewardEvent{ID: "r1", StoreName: "main", Source: models.RewardSourceManual, XP: 5, CreatedAt: time.Now()}

	s.Require().NoError(s.repo.Insert(ctx, ev))
	s.Assert().Error(s.repo.Insert(ctx, ev))
}

func TestRewardRepositorySuite(t *testing.T) {
	suite.Run(t, new(RewardRepositorySuite))
}
