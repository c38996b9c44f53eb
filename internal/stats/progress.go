package stats

import (
	"math"
	"time"
)

// ProgressInput carries the three instants the goal calculator needs.
type ProgressInput struct {
	Start  time.Time
	Target time.Time
	Now    time.Time
}

// ProgressResult describes how far along a goal timeline now sits.
type ProgressResult struct {
	DaysRemaining  int
	WeeksRemaining int
	PercentElapsed float64
}

// ComputeProgress derives remaining/elapsed metrics for a goal window.
// A target at or before the start counts as fully elapsed, which keeps the
// percentage defined without division artifacts.
func ComputeProgress(input ProgressInput) ProgressResult {
	totalSpan := input.Target.Sub(input.Start)
	remaining := input.Target.Sub(input.Now)

	daysRemaining := int(math.Ceil(remaining.Hours() / 24))
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	weeksRemaining := int(math.Ceil(float64(daysRemaining) / 7))

	var percentElapsed float64
	if totalSpan <= 0 {
		percentElapsed = 100
	} else {
		elapsed := input.Now.Sub(input.Start)
		percentElapsed = elapsed.Hours() / totalSpan.Hours() * 100
		if percentElapsed < 0 {
			percentElapsed = 0
		}
		if percentElapsed > 100 {
			percentElapsed = 100
		}
	}

	return ProgressResult{
		DaysRemaining:  daysRemaining,
		WeeksRemaining: weeksRemaining,
		PercentElapsed: percentElapsed,
	}
}
