package ports

import (
	"context"

	"showcase/domain/activity"
)

// ActivityRepository stores the page activity log
type ActivityRepository interface {
	Record(ctx context.Context, entry activity.Entry) error
	// ListRecent returns up to limit entries, newest first
	ListRecent(ctx context.Context, limit int) ([]activity.Entry, error)
}
