package formatter

import (
	"fmt"
	"strings"

	"github.com/acrane/studium/internal/domain"
)

// SubjectRow pairs a subject with its derived figures for listing.
type SubjectRow struct {
	Subject   *domain.Subject
	TotalSec  int
	OpenTasks int
}

// FormatSubjectList renders the subject overview table.
func FormatSubjectList(rows []SubjectRow) string {
	headers := []string{"ID", "SUBJECT", "TOTAL TIME", "OPEN TASKS"}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		open := Dim("none")
		if r.OpenTasks > 0 {
			open = fmt.Sprintf("%d", r.OpenTasks)
		}
		table = append(table, []string{
			TruncID(r.Subject.ID),
			fmt.Sprintf("%s %s", SubjectSwatch(r.Subject.Color), Bold(r.Subject.Name)),
			FormatSeconds(r.TotalSec),
			open,
		})
	}
	return RenderTable(headers, table)
}

// FormatTaskList renders tasks for one subject.
func FormatTaskList(subject *domain.Subject, tasks []*domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(subject.Name) + "\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks yet.") + "\n")
		return b.String()
	}
	for _, t := range tasks {
		desc := t.Description
		if t.Completed {
			desc = Dim(desc)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", Checkbox(t.Completed), desc, TruncID(t.ID)))
	}
	return b.String()
}

// FormatSessionList renders sessions with their subject names resolved.
func FormatSessionList(sessions []*domain.StudySession, subjectName func(id string) string, todayKey string) string {
	headers := []string{"ID", "DAY", "WINDOW", "DURATION", "SUBJECT"}
	table := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		table = append(table, []string{
			TruncID(s.ID),
			HumanDay(s.Date, todayKey),
			SessionWindow(s),
			FormatSeconds(s.DurationSec),
			subjectName(s.SubjectID),
		})
	}
	return RenderTable(headers, table)
}
