package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the focus timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the timer needs an interactive terminal")
			}

			var subjectID string
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjectID = subject.ID
			} else {
				if len(app.Aggregator.Snapshot().Subjects) == 0 {
					return fmt.Errorf("no subjects yet, use `studium subject add` first")
				}
				if err := subjectSelectForm(app, &subjectID).Run(); err != nil {
					return err
				}
			}

			if err := app.Timer.SelectSubject(subjectID); err != nil {
				return err
			}

			model := newTimerModel(app, subjectID)
			_, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			// A commit failure inside the TUI surfaces after it closes.
			if model.commitErr != nil {
				return fmt.Errorf("last timer run was not saved: %w", model.commitErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject name or ID")

	return cmd
}
