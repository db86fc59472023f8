package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/repository"
)

type stateRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewStateRepository creates a new StateRepository implementation
func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &stateRepository{db: db, now: time.Now}
}

func (r *stateRepository) Load(ctx context.Context, storeName string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("state_repo")
	log.Debug("loading state: store=%s", storeName)

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM game_states WHERE store_name = ?`, storeName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no state stored: store=%s", storeName)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load state: %v", err)
		return nil, err
	}
	return []byte(payload), nil
}

func (r *stateRepository) Save(ctx context.Context, storeName string, schemaVersion int, payload []byte) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")
	log.Debug("saving state: store=%s schema=%d bytes=%d", storeName, schemaVersion, len(payload))

	_, err := r.db.ExecContext(ctx, `
INSERT INTO game_states (store_name, schema_version, payload, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(store_name) DO UPDATE SET
    schema_version = excluded.schema_version,
    payload = excluded.payload,
    updated_at = excluded.updated_at
`, storeName, schemaVersion, string(payload), r.now().UTC())
	if err != nil {
		log.Error("failed to save state: %v", err)
	}
	return err
}

func (r *stateRepository) Delete(ctx context.Context, storeName string) error {
	log := logger.FromContext(ctx).WithPrefix("state_repo")
	log.Debug("deleting state: store=%s", storeName)

	_, err := r.db.ExecContext(ctx, `DELETE FROM game_states WHERE store_name = ?`, storeName)
	if err != nil {
		log.Error("failed to delete state: %v", err)
	}
	return err
}
