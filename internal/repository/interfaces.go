package repository

import (
	"context"

	"github.com/vytor/studybuddy/internal/models"
)

// StateRepository stores the encoded game state snapshot, one row per store name.
// Load returns nil, nil when nothing has been saved under name yet.
type StateRepository interface {
	Load(ctx context.Context, storeName string) ([]byte, error)
	Save(ctx context.Context, storeName string, schemaVersion int, payload []byte) error
	Delete(ctx context.Context, storeName string) error
}

// SessionRepository keeps the history of closed study sessions
type SessionRepository interface {
	Insert(ctx context.Context, rec models.SessionRecord) error
	List(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error)
	Count(ctx context.Context, filter models.SessionFilter) (int, error)
	SubjectTotals(ctx context.Context, storeName string) ([]models.SubjectTotal, error)
}

// RewardRepository is the append-only ledger of credited rewards
type RewardRepository interface {
	Insert(ctx context.Context, ev models.RewardEvent) error
	List(ctx context.Context, storeName string, limit, offset int) ([]models.RewardEvent, error)
}
