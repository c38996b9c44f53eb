package repository

import (
	"context"
	"testing"

	"github.com/acrane/studium/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskTestSetup(t *testing.T) (*SQLiteTaskRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	subjRepo := NewSQLiteSubjectRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)

	subject := testutil.NewTestSubject("Math")
	require.NoError(t, subjRepo.Create(ctx, subject))

	return taskRepo, subject.ID
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo, subjectID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(subjectID, "Read chapter 4")
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, fetched)
	assert.False(t, fetched.Completed)
}

func TestTaskRepo_ListBySubject(t *testing.T) {
	repo, subjectID := taskTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(subjectID, "Task A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(subjectID, "Task B")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("other-subject", "Task C")))

	list, err := repo.ListBySubject(ctx, subjectID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, task := range list {
		assert.Equal(t, subjectID, task.SubjectID)
	}
}

func TestTaskRepo_UpdateTogglesCompleted(t *testing.T) {
	repo, subjectID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(subjectID, "Revise notes")
	require.NoError(t, repo.Create(ctx, task))

	task.Completed = true
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Completed)

	task.Completed = false
	require.NoError(t, repo.Update(ctx, task))

	fetched, err = repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Completed)
}

func TestTaskRepo_UpdateMissing(t *testing.T) {
	repo, subjectID := taskTestSetup(t)

	ghost := testutil.NewTestTask(subjectID, "Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_DeleteBySubject(t *testing.T) {
	repo, subjectID := taskTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(subjectID, "Task A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(subjectID, "Task B")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("other-subject", "Task C")))

	require.NoError(t, repo.DeleteBySubject(ctx, subjectID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "other-subject", list[0].SubjectID)
}
