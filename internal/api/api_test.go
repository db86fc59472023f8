package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/api"
	"github.com/vytor/studybuddy/internal/coach"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/services"
	"github.com/vytor/studybuddy/internal/testutil/mocks"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	handler  http.Handler
	sessions *mocks.MockSessionRepository
	rewards  *mocks.MockRewardRepository
	llm      *mocks.MockCompleter
}

func newTestServer(t *testing.T, ping error) *testServer {
	t.Helper()
	now := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	store, err := game.New(context.Background(), game.Config{StartingCoins: 200}, game.NewMemoryPersister(),
		game.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	ts := &testServer{
		sessions: new(mocks.MockSessionRepository),
		rewards:  new(mocks.MockRewardRepository),
		llm:      new(mocks.MockCompleter),
	}
	srv := &api.Server{
		GameService:    services.NewGameService(store, nil),
		HistoryService: services.NewHistoryService(game.DefaultStoreName, ts.sessions, ts.rewards),
		CoachService:   services.NewCoachService(store, coach.New(ts.llm, coach.Config{})),
		DB:             fakePinger{err: ping},
	}
	ts.handler = srv.Routes()
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rec)
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", rec.Body.String())
	return e["code"].(string)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = ts.do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReady_DatabaseDown(t *testing.T) {
	ts := newTestServer(t, errors.New("database is locked"))

	rec := ts.do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestState(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var st models.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 1, st.Progress.Level)
	assert.Equal(t, 200, st.Progress.Currency)
	assert.Len(t, st.DailyQuests, 4)
}

func TestGainXP(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/progress/xp", map[string]int{"amount": 250})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["level_up"])
	assert.EqualValues(t, 3, body["level"].(map[string]any)["to"])

	rec = ts.do(t, http.MethodPost, "/api/progress/xp", map[string]int{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", errorCode(t, rec))
}

func TestGainCoins_BadJSON(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/progress/coins", `{"amount":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/progress/coins", `{"amount":10,"bonus":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShop_BuyAndEquip(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/shop/crown/buy", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/shop/cat/buy", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p game.Purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 100, p.Balance)

	rec = ts.do(t, http.MethodPost, "/api/shop/cat/buy", nil)
	assert.Equal(t, "ALREADY_OWNED", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/inventory/cat/equip", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "applied", body["outcome"])
	assert.Contains(t, body["buddy"].(map[string]any)["pets"], "cat")

	rec = ts.do(t, http.MethodPost, "/api/shop/hoverboard/buy", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UNKNOWN_ENTITY", errorCode(t, rec))

	rec = ts.do(t, http.MethodGet, "/api/shop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["items"])
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/session", nil)
	assert.Equal(t, false, decode(t, rec)["active"])

	rec = ts.do(t, http.MethodPost, "/api/session/start", map[string]string{"subject": "Wiskunde"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Wiskunde", decode(t, rec)["subject"])

	rec = ts.do(t, http.MethodPost, "/api/session/start", map[string]string{"subject": "Engels"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SESSION_CONFLICT", errorCode(t, rec))

	rec = ts.do(t, http.MethodGet, "/api/session", nil)
	body := decode(t, rec)
	assert.Equal(t, true, body["active"])
	assert.Equal(t, "study", body["pomodoro"].(map[string]any)["phase"])

	rec = ts.do(t, http.MethodPost, "/api/session/stop", map[string]bool{"with_upload": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/session/stop", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SESSION_ABSENT", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/session/start", map[string]string{"subject": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuests(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/quests/daily-grind-30/claim", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "QUEST_NOT_CLAIMABLE", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/quests/daily-grind-30/progress", map[string]int{"progress": 45})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 30, decode(t, rec)["progress"])

	rec = ts.do(t, http.MethodPost, "/api/quests/daily-grind-30/claim", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "applied", decode(t, rec)["outcome"])

	rec = ts.do(t, http.MethodPost, "/api/quests/daily-grind-30/claim", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unchanged", decode(t, rec)["outcome"])

	rec = ts.do(t, http.MethodPost, "/api/quests/nope/progress", map[string]int{"progress": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/quests/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, q := range decode(t, rec)["quests"].([]any) {
		assert.EqualValues(t, 0, q.(map[string]any)["progress"])
	}
}

func TestAgenda(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/agenda?view=today", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decode(t, rec)["items"])

	rec = ts.do(t, http.MethodPost, "/api/agenda", map[string]any{
		"title": "Hoofdstuk 4", "subject": "Biologie", "type": "exam", "date": "2024-03-04T18:00:00Z", "duration_minutes": 45,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/agenda", map[string]any{
		"title": "Hoofdstuk 4", "subject": "Biologie", "type": "test", "date": "2024-03-04T18:00:00Z", "duration_minutes": 45,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = ts.do(t, http.MethodPost, "/api/agenda", map[string]any{
		"title": "Woordjes", "subject": "Frans", "type": "review", "date": "2024-03-06T09:00:00Z", "duration_minutes": 20,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/agenda?view=today", nil)
	assert.Len(t, decode(t, rec)["items"], 1)
	rec = ts.do(t, http.MethodGet, "/api/agenda", nil)
	assert.Len(t, decode(t, rec)["items"], 2)

	rec = ts.do(t, http.MethodPost, "/api/agenda/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "applied", decode(t, rec)["outcome"])

	rec = ts.do(t, http.MethodPost, "/api/agenda/missing/complete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionHistory(t *testing.T) {
	ts := newTestServer(t, nil)
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []models.SessionRecord{{ID: "r1", Subject: "Wiskunde", DurationMinutes: 31, XPGained: 93}}

	match := mock.MatchedBy(func(f models.SessionFilter) bool {
		return f.StoreName == game.DefaultStoreName && f.Subject == "Wiskunde" &&
			f.Since != nil && f.Since.Equal(since) && f.Limit == 10
	})
	ts.sessions.On("List", mock.Anything, match).Return(records, nil)
	ts.sessions.On("Count", mock.Anything, match).Return(12, nil)

	rec := ts.do(t, http.MethodGet, "/api/sessions?subject=Wiskunde&since=2024-03-01&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 12, body["total"])
	assert.Len(t, body["sessions"], 1)
	ts.sessions.AssertExpectations(t)

	rec = ts.do(t, http.MethodGet, "/api/sessions?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/sessions?limit=ten", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubjectStatsAndRewards(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.sessions.On("SubjectTotals", mock.Anything, game.DefaultStoreName).
		Return([]models.SubjectTotal{{Subject: "Wiskunde", Sessions: 2, TotalMinutes: 60, TotalXP: 180}}, nil)
	ts.rewards.On("List", mock.Anything, game.DefaultStoreName, 50, 0).Return(nil, errors.New("disk I/O error"))

	rec := ts.do(t, http.MethodGet, "/api/stats/subjects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["subjects"], 1)

	rec = ts.do(t, http.MethodGet, "/api/rewards", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "disk I/O")
}

func TestCoach_FallsBackWhenModelFails(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.llm.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("503 from upstream"))

	rec := ts.do(t, http.MethodPost, "/api/coach/message", map[string]string{"context": "level_up"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["message"])

	rec = ts.do(t, http.MethodPost, "/api/coach/questions", map[string]any{"subject": "Geschiedenis", "topic": "WO2", "count": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["fallback"])
	assert.NotEmpty(t, body["questions"])

	rec = ts.do(t, http.MethodPost, "/api/coach/analyze", map[string]string{"subject": "Engels", "study_type": "toets"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["fallback"])

	rec = ts.do(t, http.MethodPost, "/api/coach/tips", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["tips"])
}

func TestExportImport(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.do(t, http.MethodPost, "/api/progress/coins", map[string]int{"amount": 50})

	rec := ts.do(t, http.MethodGet, "/api/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()
	assert.Contains(t, exported, `"version":1`)

	other := newTestServer(t, nil)
	rec = other.do(t, http.MethodPost, "/api/import", exported)
	require.Equal(t, http.StatusOK, rec.Code)
	var st models.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 250, st.Progress.Currency)

	rec = other.do(t, http.MethodPost, "/api/import", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
