package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/studybuddy/internal/logger"
	"github.com/vytor/studybuddy/internal/models"
	"github.com/vytor/studybuddy/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, rec models.SessionRecord) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: id=%s subject=%s duration=%d", rec.ID, rec.Subject, rec.DurationMinutes)

	query, args, err := sqlBuilder.Insert("study_sessions").
		Columns("id", "store_name", "subject", "started_at", "ended_at", "duration_minutes", "xp_gained", "coins_gained").
		Values(rec.ID, rec.StoreName, rec.Subject, rec.StartedAt.UTC(), rec.EndedAt.UTC(), rec.DurationMinutes, rec.XPGained, rec.CoinsGained).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert session: %v", err)
		return err
	}
	return nil
}

func (r *sessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing sessions: store=%s subject=%s limit=%d offset=%d", filter.StoreName, filter.Subject, filter.Limit, filter.Offset)

	limit, offset := pageBounds(filter.Limit, filter.Offset)
	q := sqlBuilder.Select(
		"id", "store_name", "subject", "started_at", "ended_at",
		"duration_minutes", "xp_gained", "coins_gained", "created_at",
	).From("study_sessions")
	q = sessionWhere(q, filter).
		OrderBy("ended_at DESC", "id").
		Limit(limit).
		Offset(offset)

	query, args, err := q.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.SessionRecord
	for rows.Next() {
		var s models.SessionRecord
		if err := rows.Scan(&s.ID, &s.StoreName, &s.Subject, &s.StartedAt, &s.EndedAt,
			&s.DurationMinutes, &s.XPGained, &s.CoinsGained, &s.CreatedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		out = append(out, s)
	}
	log.Debug("found %d sessions", len(out))
	return out, rows.Err()
}

func (r *sessionRepository) Count(ctx context.Context, filter models.SessionFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	query, args, err := sessionWhere(sqlBuilder.Select("COUNT(*)").From("study_sessions"), filter).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Error("failed to count sessions: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *sessionRepository) SubjectTotals(ctx context.Context, storeName string) ([]models.SubjectTotal, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("aggregating subject totals: store=%s", storeName)

	query, args, err := sqlBuilder.Select(
		"subject", "COUNT(*)", "COALESCE(SUM(duration_minutes), 0)", "COALESCE(SUM(xp_gained), 0)",
	).From("study_sessions").
		Where("store_name = ?", storeName).
		GroupBy("subject").
		OrderBy("SUM(duration_minutes) DESC", "subject").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to aggregate sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.SubjectTotal
	for rows.Next() {
		var t models.SubjectTotal
		if err := rows.Scan(&t.Subject, &t.Sessions, &t.TotalMinutes, &t.TotalXP); err != nil {
			log.Error("failed to scan subject total: %v", err)
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
