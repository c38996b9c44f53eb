package repository

import (
	"context"
	"testing"

	"github.com/acrane/studium/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	subjRepo := NewSQLiteSubjectRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	subject := testutil.NewTestSubject("Math")
	require.NoError(t, subjRepo.Create(ctx, subject))

	return sessRepo, subject.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, subjectID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(subjectID, "2024-01-10", testutil.WithWindow("14:00", "15:30"), testutil.WithDuration(5400))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, fetched)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListBySubject(t *testing.T) {
	repo, subjectID := sessionTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(subjectID, "2024-01-10")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(subjectID, "2024-01-11")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("other-subject", "2024-01-10")))

	list, err := repo.ListBySubject(ctx, subjectID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// Ordered by date.
	assert.Equal(t, "2024-01-10", list[0].Date)
	assert.Equal(t, "2024-01-11", list[1].Date)
}

func TestSessionRepo_ListByDate(t *testing.T) {
	repo, subjectID := sessionTestSetup(t)
	ctx := context.Background()

	morning := testutil.NewTestSession(subjectID, "2024-01-10", testutil.WithWindow("08:00", "09:00"))
	evening := testutil.NewTestSession(subjectID, "2024-01-10", testutil.WithWindow("19:00", "20:00"))
	other := testutil.NewTestSession(subjectID, "2024-01-11")
	require.NoError(t, repo.Create(ctx, morning))
	require.NoError(t, repo.Create(ctx, evening))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByDate(ctx, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by start time within the day.
	assert.Equal(t, morning.ID, list[0].ID)
	assert.Equal(t, evening.ID, list[1].ID)
}

func TestSessionRepo_UpdateRewritesAllFields(t *testing.T) {
	repo, subjectID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(subjectID, "2024-01-10")
	require.NoError(t, repo.Create(ctx, sess))

	sess.Date = "2024-01-12"
	sess.StartTime = "10:00"
	sess.EndTime = "11:30"
	sess.DurationSec = 5400
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, fetched)
}

func TestSessionRepo_DeleteBySubject(t *testing.T) {
	repo, subjectID := sessionTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(subjectID, "2024-01-10")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(subjectID, "2024-01-11")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession("other-subject", "2024-01-10")))

	require.NoError(t, repo.DeleteBySubject(ctx, subjectID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "other-subject", list[0].SubjectID)
}
