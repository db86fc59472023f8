package root

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/studybuddy/internal/errors"
)

func run(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", dbFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "buddy.db")
}

func TestStatus_NewPlayer(t *testing.T) {
	out, err := run(t, tempDB(t), "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Level: 1")
	assert.Contains(t, out, "200")
}

func TestSessionCommands(t *testing.T) {
	dbFile := tempDB(t)

	out, err := run(t, dbFile, "start", "Wiskunde")
	require.NoError(t, err)
	assert.Contains(t, out, "Studying Wiskunde")
	assert.Contains(t, out, "1. ")

	_, err = run(t, dbFile, "start", "Engels")
	assert.True(t, errors.Is(err, errors.ErrSessionConflict))

	out, err = run(t, dbFile, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Wiskunde")

	out, err = run(t, dbFile, "stop", "--upload")
	require.NoError(t, err)
	assert.Contains(t, out, "Session finished: Wiskunde")

	_, err = run(t, dbFile, "stop")
	assert.True(t, errors.Is(err, errors.ErrSessionAbsent))

	out, err = run(t, dbFile, "quests")
	require.NoError(t, err)
	assert.Contains(t, out, "daily-screenshot")
	assert.Contains(t, out, "1/1")
}

func TestShopCommands(t *testing.T) {
	dbFile := tempDB(t)

	out, err := run(t, dbFile, "buy", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "Study Cat")
	assert.Contains(t, out, "100 left")

	_, err = run(t, dbFile, "buy", "cat")
	assert.True(t, errors.Is(err, errors.ErrAlreadyOwned))

	out, err = run(t, dbFile, "equip", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "equipped")

	out, err = run(t, dbFile, "equip", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "already equipped")

	out, err = run(t, dbFile, "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "owned")
}

func TestClaim_NotReady(t *testing.T) {
	_, err := run(t, tempDB(t), "claim", "daily-grind-30")
	assert.True(t, errors.Is(err, errors.ErrNotClaimable))
}

func TestAgenda_View(t *testing.T) {
	dbFile := tempDB(t)

	out, err := run(t, dbFile, "agenda", "--view", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing planned")

	_, err = run(t, dbFile, "agenda", "--view", "tomorrow")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	dbFile := tempDB(t)
	export := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(export, []byte(`{
  "state": {
    "level": 2, "xp": 150, "studyCoins": 80, "totalStudyTime": 40, "streak": 2,
    "buddy": {"accessories": [], "pets": ["cat", "cat"], "name": "Kiki", "mood": "happy"},
    "inventory": [], "dailyQuests": [], "agenda": []
  },
  "version": 0
}`), 0o600))

	out, err := run(t, dbFile, "import", export)
	require.NoError(t, err)
	assert.Contains(t, out, "Kiki")

	out, err = run(t, dbFile, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Level: 2")
	assert.Contains(t, out, "80")

	_, err = run(t, dbFile, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	dbFile := tempDB(t)

	_, err := run(t, dbFile, "buy", "cat")
	require.NoError(t, err)

	_, err = run(t, dbFile, "reset")
	assert.True(t, errors.Is(err, &errors.AppError{Code: errors.ErrCodeBadRequest}))

	_, err = run(t, dbFile, "buy", "cat")
	assert.True(t, errors.Is(err, errors.ErrAlreadyOwned), "unconfirmed reset keeps the cat")

	out, err := run(t, dbFile, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "progress wiped")
	assert.Contains(t, out, "200")

	out, err = run(t, dbFile, "buy", "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "100 left")
}
