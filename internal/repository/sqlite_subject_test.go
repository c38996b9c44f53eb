package repository

import (
	"context"
	"testing"

	"github.com/acrane/studium/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subject := testutil.NewTestSubject("Mathematics", testutil.WithColor("#fabd2f"))
	require.NoError(t, repo.Create(ctx, subject))

	fetched, err := repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, subject, fetched, "round trip should preserve every field")
}

func TestSubjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("Math")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSubject("History")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSubjectRepo_UpdatePreservesCreatedAt(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subject := testutil.NewTestSubject("Math")
	require.NoError(t, repo.Create(ctx, subject))

	subject.Name = "Applied Math"
	subject.Color = "#fb4934"
	require.NoError(t, repo.Update(ctx, subject))

	fetched, err := repo.GetByID(ctx, subject.ID)
	require.NoError(t, err)
	assert.Equal(t, "Applied Math", fetched.Name)
	assert.Equal(t, "#fb4934", fetched.Color)
	assert.Equal(t, subject.CreatedAt, fetched.CreatedAt)
}

func TestSubjectRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)

	ghost := testutil.NewTestSubject("Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectRepo_DeleteIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	subject := testutil.NewTestSubject("Math")
	require.NoError(t, repo.Create(ctx, subject))

	require.NoError(t, repo.Delete(ctx, subject.ID))
	require.NoError(t, repo.Delete(ctx, subject.ID), "deleting a missing id is not an error")

	_, err := repo.GetByID(ctx, subject.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
