package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/acrane/studium/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskToggleCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION...",
		Short: "Add a task to a subject",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			description := strings.Join(args, " ")
			task, err := app.Aggregator.UpsertTask(context.Background(), "", subject.ID, description)
			if err != nil {
				return err
			}

			fmt.Printf("Added task to %s: %s\n", subject.Name, task.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject name or ID")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var subjectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally for one subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Aggregator.Snapshot()

			subjects := snap.Subjects
			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				subjects = []*domain.Subject{subject}
			}

			if len(subjects) == 0 {
				fmt.Println("No subjects yet.")
				return nil
			}

			for _, s := range subjects {
				fmt.Print(formatter.FormatTaskList(s, app.Aggregator.TasksForSubject(s.ID)))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject name or ID")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle TASK_ID",
		Short: "Flip a task between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Aggregator.ToggleTask(context.Background(), task.ID); err != nil {
				return err
			}

			state := "done"
			if task.Completed {
				state = "open"
			}
			fmt.Printf("Marked %q as %s\n", task.Description, state)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TASK_ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := resolveTask(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Aggregator.DeleteTask(context.Background(), task.ID); err != nil {
				return err
			}

			fmt.Printf("Removed task %q\n", task.Description)
			return nil
		},
	}
}
