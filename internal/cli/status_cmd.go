package cli

import (
	"fmt"
	"time"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/acrane/studium/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatDashboard(buildDashboard(app)))
			return nil
		},
	}
}

// buildDashboard assembles the dashboard view from aggregator queries,
// using the configured analytics windows.
func buildDashboard(app *App) formatter.DashboardView {
	agg := app.Aggregator
	now := time.Now()
	today := domain.DateOf(now)

	windowDays := app.Config.Stats.BreakdownWindowDays
	since := domain.DateOf(now.AddDate(0, 0, -(windowDays - 1)))

	view := formatter.DashboardView{
		TodayKey:   today,
		TodaySec:   agg.TotalTimeForDate(today),
		Streak:     agg.Streak(),
		Series:     agg.DailySeries(app.Config.Stats.SeriesDays),
		WindowDays: windowDays,
	}

	for _, row := range agg.PeriodBreakdown(since) {
		name, color := "?", ""
		if s := agg.SubjectByID(row.SubjectID); s != nil {
			name, color = s.Name, s.Color
		}
		view.Breakdown = append(view.Breakdown, formatter.BreakdownRow{
			Name:     name,
			Color:    color,
			TotalSec: row.TotalSec,
		})
	}

	if goal := agg.Snapshot().Goal; goal != nil {
		if progress, ok := agg.GoalProgress(); ok {
			view.Goal = &formatter.GoalView{
				Name:       goal.Name,
				TargetDate: goal.TargetDate,
				Progress:   progress,
			}
		}
	}

	return view
}
