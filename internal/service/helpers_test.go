package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/acrane/studium/internal/repository"
	"github.com/acrane/studium/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newTestAggregator wires an aggregator against a fresh in-memory database
// and a fixed clock, and returns both.
func newTestAggregator(t *testing.T, now time.Time) (*Aggregator, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)

	agg := NewAggregator(
		repository.NewSQLiteSubjectRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteGoalRepo(database),
		testutil.NewTestUoW(database),
		WithClock(func() time.Time { return now }),
	)
	require.NoError(t, agg.LoadAll(context.Background()))
	return agg, database
}

func fixedClock(date string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date)
	if err != nil {
		panic(err)
	}
	return t
}
