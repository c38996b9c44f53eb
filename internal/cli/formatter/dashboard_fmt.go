package formatter

import (
	"fmt"
	"strings"

	"github.com/acrane/studium/internal/stats"
)

const goalBarWidth = 20

// DashboardView carries everything the status dashboard renders. The
// caller assembles it from aggregator queries so this package stays free
// of storage concerns.
type DashboardView struct {
	TodayKey   string
	TodaySec   int
	Streak     int
	Goal       *GoalView
	Breakdown  []BreakdownRow
	Series     []stats.DayTotal
	WindowDays int
}

// GoalView is the goal line of the dashboard.
type GoalView struct {
	Name       string
	TargetDate string
	Progress   stats.ProgressResult
}

// BreakdownRow is one subject line of the period breakdown, already
// resolved to a display name and color.
type BreakdownRow struct {
	Name     string
	Color    string
	TotalSec int
}

// FormatDashboard renders the full status dashboard.
func FormatDashboard(v DashboardView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold("Today:"), StyleGreen.Render(FormatSeconds(v.TodaySec))))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Streak:"), streakLabel(v.Streak)))

	b.WriteString("\n")
	b.WriteString(formatGoalSection(v.Goal))

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Last %d days", v.WindowDays)) + "\n")
	if len(v.Breakdown) == 0 {
		b.WriteString(Dim("No sessions recorded in this period.") + "\n")
	} else {
		b.WriteString(formatBreakdownTable(v.Breakdown))
	}

	if len(v.Series) > 0 {
		b.WriteString("\n")
		b.WriteString(formatSeries(v.Series, v.TodayKey))
	}

	return RenderBox("Studium", b.String())
}

// FormatGoal renders the standalone goal view.
func FormatGoal(goal GoalView) string {
	return RenderBox("Goal", formatGoalSection(&goal))
}

func streakLabel(days int) string {
	if days == 0 {
		return Dim("no active streak")
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return StyleYellow.Render(fmt.Sprintf("%d %s in a row", days, unit))
}

func formatGoalSection(goal *GoalView) string {
	if goal == nil {
		return Dim("No goal set. Use `studium goal set` to track a deadline.") + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold(goal.Name),
		Dim("until "+goal.TargetDate),
		DueLabel(goal.Progress.DaysRemaining)))
	b.WriteString(fmt.Sprintf("%s %s\n",
		RenderProgress(goal.Progress.PercentElapsed, goalBarWidth),
		Dim(fmt.Sprintf("%d weeks remaining", goal.Progress.WeeksRemaining))))
	return b.String()
}

func formatBreakdownTable(rows []BreakdownRow) string {
	var total int
	for _, r := range rows {
		total += r.TotalSec
	}

	headers := []string{"SUBJECT", "TIME", "SHARE"}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		share := "0%"
		if total > 0 {
			share = fmt.Sprintf("%d%%", r.TotalSec*100/total)
		}
		table = append(table, []string{
			fmt.Sprintf("%s %s", SubjectSwatch(r.Color), r.Name),
			FormatSeconds(r.TotalSec),
			Dim(share),
		})
	}
	return RenderTable(headers, table)
}

// formatSeries renders one bar per day, scaled to the busiest day.
func formatSeries(series []stats.DayTotal, todayKey string) string {
	const barMax = 24

	var peak int
	for _, d := range series {
		if d.TotalSec > peak {
			peak = d.TotalSec
		}
	}

	var b strings.Builder
	for _, d := range series {
		width := 0
		if peak > 0 {
			width = d.TotalSec * barMax / peak
		}
		bar := strings.Repeat(filledBlock, width)
		// Pad before styling so the ANSI escapes do not skew alignment.
		label := fmt.Sprintf("%-10s", HumanDay(d.Date, todayKey))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(label),
			StyleBlue.Render(bar),
			FormatSeconds(d.TotalSec)))
	}
	return b.String()
}
