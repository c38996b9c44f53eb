package formatter

import (
	"fmt"
	"strings"

	"github.com/acrane/studium/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatSeconds converts raw seconds into human-friendly "2h 30m" form.
// Sub-minute amounts keep seconds so a fresh timer run is still visible.
func FormatSeconds(sec int) string {
	if sec <= 0 {
		return "0m"
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ClockFace renders elapsed seconds as HH:MM:SS for the running timer.
func ClockFace(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}

// HumanDay returns a friendly label for a calendar day key, relative to
// today's key. Malformed keys are returned unchanged.
func HumanDay(dateKey, todayKey string) string {
	if dateKey == todayKey {
		return "Today"
	}
	day, err := domain.ParseDate(dateKey)
	if err != nil {
		return dateKey
	}
	today, err := domain.ParseDate(todayKey)
	if err != nil {
		return dateKey
	}
	if day.AddDate(0, 0, 1).Equal(today) {
		return "Yesterday"
	}
	return day.Format("Jan 2")
}

// DueLabel renders days-until-target with urgency coloring.
func DueLabel(daysRemaining int) string {
	text := fmt.Sprintf("%dd left", daysRemaining)
	switch {
	case daysRemaining <= 0:
		return StyleRed.Render("due now")
	case daysRemaining <= 7:
		return StyleRed.Render(text)
	case daysRemaining <= 21:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SessionWindow renders the clock window of a session, "09:00-10:30".
func SessionWindow(s *domain.StudySession) string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}
