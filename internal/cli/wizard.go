package cli

import (
	"fmt"
	"regexp"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/acrane/studium/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// studiumHuhTheme returns the huh theme matching the formatter palette.
func studiumHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var hexColorInput = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateRequired rejects blank input.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// validateDate accepts a YYYY-MM-DD calendar day.
func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD calendar day.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

// validateOptionalColor accepts empty or a #rrggbb hex color.
func validateOptionalColor(s string) error {
	if s == "" {
		return nil
	}
	if !hexColorInput.MatchString(s) {
		return fmt.Errorf("use #rrggbb format")
	}
	return nil
}

// subjectForm collects a subject name and optional color.
func subjectForm(name, color *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject Name").
				Placeholder("Mathematics").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Color (hex, blank for default)").
				Placeholder("#83a598").
				Value(color).
				Validate(validateOptionalColor),
		),
	).WithTheme(studiumHuhTheme()).WithShowHelp(false)
}

// goalForm collects the goal fields.
func goalForm(name, target, start *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal Name").
				Placeholder("Finals").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Target Date (YYYY-MM-DD)").
				Placeholder("2026-06-30").
				Value(target).
				Validate(validateDate),
			huh.NewInput().
				Title("Start Date (blank for today)").
				Placeholder("2026-01-01").
				Value(start).
				Validate(validateOptionalDate),
		),
	).WithTheme(studiumHuhTheme()).WithShowHelp(false)
}

// subjectSelectForm picks a subject from the snapshot.
func subjectSelectForm(app *App, result *string) *huh.Form {
	subjects := app.Aggregator.Snapshot().Subjects

	options := make([]huh.Option[string], 0, len(subjects))
	for _, s := range subjects {
		options = append(options, huh.NewOption(s.Name, s.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(options...).
				Value(result),
		),
	).WithTheme(studiumHuhTheme()).WithShowHelp(false)
}
