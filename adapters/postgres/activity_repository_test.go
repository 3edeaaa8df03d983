package postgres

import (
	"context"
	"os"
	"testing"

	"showcase/domain/activity"
	"showcase/domain/page"
	"showcase/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.NewRunner().Run(context.Background(), db))
	_, err = db.Exec("TRUNCATE activity_log")
	require.NoError(t, err)
	return db
}

func TestActivityRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	first := activity.NewEntry(page.Calculator, "1 Add 2 = 3")
	second := activity.NewEntry(page.TextAnalysis, "4 words")
	second.CreatedAt = first.CreatedAt.Add(1)
	require.NoError(t, repo.Record(ctx, first))
	require.NoError(t, repo.Record(ctx, second))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, page.TextAnalysis, got[0].Page)

	got, err = repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
