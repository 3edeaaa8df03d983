package postgres

import (
	"context"
	"log"
	"time"

	"showcase/domain/activity"
	"showcase/domain/core"
	"showcase/domain/page"
	"showcase/internal/errors"
	"showcase/ports"

	"github.com/jmoiron/sqlx"
)

// ActivityRepositoryImpl implements ActivityRepository for PostgreSQL
type ActivityRepositoryImpl struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new PostgreSQL activity repository
func NewActivityRepository(db *sqlx.DB) ports.ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

type activityRow struct {
	ID        string    `db:"id"`
	Page      string    `db:"page"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

// Record inserts one entry into activity_log
func (r *ActivityRepositoryImpl) Record(ctx context.Context, entry activity.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (id, page, summary, created_at)
		VALUES ($1, $2, $3, $4)
	`, entry.ID.String(), entry.Page.Label(), entry.Summary, entry.CreatedAt)
	if err != nil {
		return errors.Wrap(errors.DatabaseError(err.Error()), "failed to record activity")
	}
	return nil
}

// ListRecent returns the newest entries first, optionally limited
func (r *ActivityRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]activity.Entry, error) {
	query := `
		SELECT id, page, summary, created_at
		FROM activity_log
		ORDER BY created_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(errors.DatabaseError(err.Error()), "failed to list activity")
	}

	entries := make([]activity.Entry, 0, len(rows))
	for _, row := range rows {
		id, err := core.ParseID(row.ID)
		if err != nil {
			log.Printf("[ActivityRepository] skipping row with invalid id %q", row.ID)
			continue
		}
		p, err := page.Parse(row.Page)
		if err != nil {
			log.Printf("[ActivityRepository] skipping row %s with unknown page %q", row.ID, row.Page)
			continue
		}
		entries = append(entries, activity.Entry{
			ID:        id,
			Page:      p,
			Summary:   row.Summary,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return entries, nil
}
