package repository

import (
	"context"
	"testing"

	"github.com/acrane/studium/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_UpsertThenGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Finals", "2024-06-01", "2024-01-01")
	require.NoError(t, repo.Upsert(ctx, goal))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, goal, fetched)
}

func TestGoalRepo_UpsertReplacesSingleton(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestGoal("Finals", "2024-06-01", "2024-01-01")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestGoal("Thesis", "2024-09-01", "2024-02-01")))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Thesis", fetched.Name)
	assert.Equal(t, "2024-09-01", fetched.TargetDate)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM goal_settings`).Scan(&count))
	assert.Equal(t, 1, count, "goal is a singleton")
}

func TestGoalRepo_DeleteIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestGoal("Finals", "2024-06-01", "2024-01-01")))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx), "deleting an absent goal is not an error")

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
