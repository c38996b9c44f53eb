package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSubjectCascadesToTasksAndSessions(t *testing.T) {
	agg, database := newTestAggregator(t, fixedClock("2024-01-12 10:00"))
	ctx := context.Background()

	doomed, err := agg.UpsertSubject(ctx, "", "Doomed", "")
	require.NoError(t, err)
	survivor, err := agg.UpsertSubject(ctx, "", "Survivor", "")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := agg.UpsertTask(ctx, "", doomed.ID, fmt.Sprintf("Doomed task %d", i))
		require.NoError(t, err)
		_, err = agg.UpsertSession(ctx, "", doomed.ID, "2024-01-10", "09:00", "10:00")
		require.NoError(t, err)
	}
	_, err = agg.UpsertTask(ctx, "", survivor.ID, "Survivor task")
	require.NoError(t, err)
	_, err = agg.UpsertSession(ctx, "", survivor.ID, "2024-01-11", "09:00", "10:00")
	require.NoError(t, err)

	require.NoError(t, agg.DeleteSubject(ctx, doomed.ID))

	// Nothing referencing the deleted subject may remain, in memory or on disk.
	snap := agg.Snapshot()
	require.Len(t, snap.Subjects, 1)
	assert.Equal(t, survivor.ID, snap.Subjects[0].ID)
	require.Len(t, snap.Tasks, 1)
	require.Len(t, snap.Sessions, 1)

	for _, table := range []string{"tasks", "study_sessions"} {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE subject_id = ?`, table)
		require.NoError(t, database.QueryRow(query, doomed.ID).Scan(&count))
		assert.Zero(t, count, "%s should hold no rows for the deleted subject", table)
	}
}

func TestDeleteSubjectWithNoChildren(t *testing.T) {
	agg, _ := newTestAggregator(t, fixedClock("2024-01-12 10:00"))
	ctx := context.Background()

	subject, err := agg.UpsertSubject(ctx, "", "Lonely", "")
	require.NoError(t, err)

	require.NoError(t, agg.DeleteSubject(ctx, subject.ID))
	assert.Empty(t, agg.Snapshot().Subjects)
}
