package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
)

type rewardRepository struct {
	db *sql.DB
}

// NewRewardRepository creates a new RewardRepository implementation
func NewRewardRepository(db *sql.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Insert(ctx context.Context, ev models.RewardEvent) error {
	log := logger.FromContext(ctx).WithPrefix("reward_repo")
	log.Debug("recording reward: source=%s ref=%s xp=%d coins=%d", ev.Source, ev.Reference, ev.XP, ev.Coins)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO reward_events (id, store_name, source, reference, xp, coins, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, ev.ID, ev.StoreName, ev.Source, ev.Reference, ev.XP, ev.Coins, ev.CreatedAt.UTC())
	if err != nil {
		log.Error("failed to record reward: %v", err)
	}
	return err
}

func (r *rewardRepository) List(ctx context.Context, storeName string, limit, offset int) ([]models.RewardEvent, error) {
	log := logger.FromContext(ctx).WithPrefix("reward_repo")
	log.Debug("listing rewards: store=%s", storeName)

	l, o := pageBounds(limit, offset)
	query, args, err := sqlBuilder.Select("id", "store_name", "source", "reference", "xp", "coins", "created_at").
		From("reward_events").
		Where("store_name = ?", storeName).
		OrderBy("created_at DESC", "id").
		Limit(l).
		Offset(o).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list rewards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.RewardEvent
	for rows.Next() {
		var ev models.RewardEvent
		if err := rows.Scan(&ev.ID, &ev.StoreName, &ev.Source, &ev.Reference, &ev.XP, &ev.Coins, &ev.CreatedAt); err != nil {
			log.Error("failed to scan reward row: %v", err)
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
