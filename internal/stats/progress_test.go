package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func instant(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeProgressMidway(t *testing.T) {
	result := ComputeProgress(ProgressInput{
		Start:  instant("2024-01-01"),
		Target: instant("2024-01-21"),
		Now:    instant("2024-01-11"),
	})

	assert.Equal(t, 10, result.DaysRemaining)
	assert.Equal(t, 2, result.WeeksRemaining)
	assert.InDelta(t, 50.0, result.PercentElapsed, 0.01)
}

func TestComputeProgressTargetEqualsStart(t *testing.T) {
	now := instant("2024-01-01")
	result := ComputeProgress(ProgressInput{Start: now, Target: now, Now: now})

	assert.Equal(t, 0, result.DaysRemaining)
	assert.Equal(t, 0, result.WeeksRemaining)
	assert.Equal(t, 100.0, result.PercentElapsed)
}

func TestComputeProgressPastTarget(t *testing.T) {
	result := ComputeProgress(ProgressInput{
		Start:  instant("2024-01-01"),
		Target: instant("2024-02-01"),
		Now:    instant("2024-03-01"),
	})

	assert.Equal(t, 0, result.DaysRemaining)
	assert.Equal(t, 0, result.WeeksRemaining)
	assert.Equal(t, 100.0, result.PercentElapsed)
}

func TestComputeProgressBeforeStart(t *testing.T) {
	result := ComputeProgress(ProgressInput{
		Start:  instant("2024-02-01"),
		Target: instant("2024-03-01"),
		Now:    instant("2024-01-01"),
	})

	assert.Equal(t, 0.0, result.PercentElapsed)
	assert.Equal(t, 60, result.DaysRemaining)
	assert.Equal(t, 9, result.WeeksRemaining)
}

func TestComputeProgressPartialDayRoundsUp(t *testing.T) {
	result := ComputeProgress(ProgressInput{
		Start:  instant("2024-01-01"),
		Target: instant("2024-01-10"),
		Now:    instant("2024-01-09").Add(6 * time.Hour),
	})

	// 18 hours left rounds up to one full day.
	assert.Equal(t, 1, result.DaysRemaining)
	assert.Equal(t, 1, result.WeeksRemaining)
}
