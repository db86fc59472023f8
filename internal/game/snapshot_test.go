package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
)

const legacySnapshot = `{
  "state": {
    "level": 9,
    "xp": 250,
    "studyCoins": 340,
    "totalStudyTime": 95,
    "streak": 4,
    "buddy": {
      "evolution": {"id": "gamer"},
      "accessories": ["snapback", "snapback"],
      "pets": [],
      "name": "Kiki",
      "mood": "fire"
    },
    "inventory": [
      {"id": "snapback", "name": "Fresh Snapback", "emoji": "🧢", "price": 50, "category": "accessory", "description": "Drip", "rarity": "common"},
      {"id": "snapback", "name": "Fresh Snapback", "emoji": "🧢", "price": 50, "category": "accessory", "description": "Drip", "rarity": "common"}
    ],
    "equippedItems": [],
    "dailyQuests": [
      {"id": "daily-grind-30", "title": "Daily Grind", "description": "", "progress": 30, "target": 30, "reward": {"xp": 50, "coins": 25}, "completed": true, "type": "daily"}
    ],
    "weeklyQuests": [],
    "currentSession": null,
    "agenda": [
      {"id": "review-Engels-1-1", "title": "Quick Review: Engels 🔄", "subject": "Engels", "type": "review", "date": "2024-03-05T10:00:00.000Z", "duration": 5, "completed": false}
    ],
    "focusMode": true,
    "selectedTheme": "dark-mode"
  },
  "version": 0
}`

func TestDecodeSnapshot_Legacy(t *testing.T) {
	st, err := game.DecodeSnapshot([]byte(legacySnapshot))
	require.NoError(t, err)

	assert.Equal(t, 250, st.Progress.XP)
	assert.Equal(t, 340, st.Progress.Currency)
	assert.Equal(t, 95, st.Progress.TotalStudyMinutes)
	assert.Equal(t, 4, st.Progress.StreakDays)
	assert.Equal(t, "Kiki", st.Buddy.Name)
	assert.Equal(t, []string{"snapback"}, st.Buddy.Accessories)
	assert.Len(t, st.Inventory, 1)
	assert.Equal(t, "dark-mode", st.EquippedTheme)
	require.Len(t, st.Agenda, 1)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), st.Agenda[0].Date.UTC())
	assert.Equal(t, 5, st.Agenda[0].DurationMinutes)
}

func TestNew_MigratesLegacySnapshotAndRederives(t *testing.T) {
	p := game.NewMemoryPersister()
	p.Put(game.DefaultStoreName, []byte(legacySnapshot))

	s, err := game.New(context.Background(), game.Config{}, p)
	require.NoError(t, err)
	defer s.Close()

	st := s.Snapshot()
	assert.Equal(t, game.SchemaVersion, st.Version)
	assert.Equal(t, 3, st.Progress.Level, "level is derived from xp, not copied")
	assert.Equal(t, "noob", st.Buddy.Evolution.ID)
	assert.False(t, st.FocusMode, "focus mode follows the absent session")
}

func TestSnapshot_RoundTripPreservesSession(t *testing.T) {
	st := models.GameState{
		Progress: models.PlayerProgress{XP: 42, Currency: 7},
		CurrentSession: &models.StudySession{
			ID:        "s1",
			Subject:   "Wiskunde",
			StartTime: time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC),
			Questions: []string{"a", "b", "c"},
		},
	}

	raw, err := game.EncodeSnapshot(st)
	require.NoError(t, err)
	back, err := game.DecodeSnapshot(raw)
	require.NoError(t, err)

	assert.Equal(t, game.SchemaVersion, back.Version)
	require.NotNil(t, back.CurrentSession)
	assert.Equal(t, st.CurrentSession.StartTime, back.CurrentSession.StartTime)
	assert.Equal(t, 42, back.Progress.XP)
}

func TestDecodeSnapshot_Rejects(t *testing.T) {
	_, err := game.DecodeSnapshot([]byte("{not json"))
	assert.Error(t, err)

	_, err = game.DecodeSnapshot([]byte(`{"version": 99}`))
	assert.Error(t, err)

	_, err = game.DecodeSnapshot([]byte(`{"state": {}, "version": 3}`))
	assert.Error(t, err)
}

func TestImport_ReplacesState(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)
	_, err := s.GainXP(ctx, 10)
	require.NoError(t, err)

	require.NoError(t, s.Import(ctx, []byte(legacySnapshot)))

	st := s.Snapshot()
	assert.Equal(t, 250, st.Progress.XP)
	assert.Equal(t, "Kiki", st.Buddy.Name)
	assert.Len(t, st.DailyQuests, 1)

	raw, err := s.Export()
	require.NoError(t, err)
	back, err := game.DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, 250, back.Progress.XP)
}

func TestImport_RejectsGarbage(t *testing.T) {
	s, _, _ := newTestStore(t)

	err := s.Import(context.Background(), []byte("nope"))

	assert.Error(t, err)
	assert.Equal(t, 0, s.Snapshot().Progress.XP)
}

func TestImport_RejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"negative xp", `{"version":1,"progress":{"xp":-500}}`},
		{"negative currency", `{"version":1,"progress":{"xp":10,"currency":-40}}`},
		{"negative study minutes", `{"version":1,"progress":{"total_study_minutes":-1}}`},
		{"negative streak", `{"version":1,"progress":{"streak_days":-2}}`},
		{"quest without target", `{"version":1,"daily_quests":[{"id":"daily-grind-30","target":0}]}`},
		{"quest with negative progress", `{"version":1,"daily_quests":[{"id":"daily-grind-30","target":30,"progress":-3}]}`},
		{"session without start", `{"version":1,"current_session":{"id":"s1","subject":"Engels"}}`},
		{"session in the future", `{"version":1,"current_session":{"id":"s1","subject":"Engels","start_time":"2030-01-01T00:00:00Z"}}`},
		{"legacy session without start", `{"state":{"xp":10,"currentSession":{"id":"s1","subject":"Engels","questions":[]}},"version":0}`},
		{"legacy negative coins", `{"state":{"xp":10,"studyCoins":-5},"version":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, p, _ := newTestStore(t)
			_, err := s.GainXP(ctx, 10)
			require.NoError(t, err)
			saves := p.Saves()

			err = s.Import(ctx, []byte(tt.raw))

			assert.True(t, errors.Is(err, &errors.AppError{Code: errors.ErrCodeBadRequest}), "got %v", err)
			st := s.Snapshot()
			assert.Equal(t, 10, st.Progress.XP)
			assert.Equal(t, 200, st.Progress.Currency)
			assert.Nil(t, st.CurrentSession)
			assert.Equal(t, saves, p.Saves(), "nothing is persisted")
		})
	}
}

func TestImport_LegacySessionCannotInflateRewards(t *testing.T) {
	ctx := context.Background()
	s, _, clk := newTestStore(t)

	err := s.Import(ctx, []byte(`{"state":{"xp":10,"currentSession":{"id":"s1","subject":"Engels"}},"version":0}`))
	require.Error(t, err)
	clk.Advance(time.Minute)

	_, err = s.StopSession(ctx)
	assert.True(t, errors.Is(err, errors.ErrSessionAbsent))
	assert.Equal(t, 0, s.Snapshot().Progress.XP)
}

func TestImport_DedupesInventory(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	err := s.Import(ctx, []byte(`{
  "version": 1,
  "progress": {"xp": 120, "currency": 30},
  "buddy": {"name": "Kiki", "accessories": ["snapback", "snapback"], "pets": []},
  "inventory": [
    {"id": "snapback", "name": "Fresh Snapback", "price": 50, "category": "accessory"},
    {"id": "snapback", "name": "Fresh Snapback", "price": 50, "category": "accessory"},
    {"id": "cat", "name": "Study Cat", "price": 100, "category": "pet"}
  ]
}`))
	require.NoError(t, err)

	st := s.Snapshot()
	require.Len(t, st.Inventory, 2)
	assert.Equal(t, "snapback", st.Inventory[0].ID)
	assert.Equal(t, "cat", st.Inventory[1].ID)
	assert.Equal(t, []string{"snapback"}, st.Buddy.Accessories)
	assert.Equal(t, 2, st.Progress.Level)
}

func TestNew_RejectsCorruptStoredSnapshot(t *testing.T) {
	p := game.NewMemoryPersister()
	p.Put(game.DefaultStoreName, []byte(`{"version":1,"progress":{"xp":-500,"currency":-40}}`))

	_, err := game.New(context.Background(), game.Config{}, p)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
}
