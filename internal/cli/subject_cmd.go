package cli

import (
	"context"
	"fmt"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectUpdateCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := subjectForm(&name, &color).Run(); err != nil {
					return err
				}
			}

			subject, err := app.Aggregator.UpsertSubject(context.Background(), "", name, color)
			if err != nil {
				return err
			}

			fmt.Printf("Created subject %s %s\n", formatter.SubjectSwatch(subject.Color), subject.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().StringVar(&color, "color", "", "Display color (#rrggbb)")

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Aggregator.Snapshot()
			if len(snap.Subjects) == 0 {
				fmt.Println("No subjects yet. Use `studium subject add` to create one.")
				return nil
			}

			rows := make([]formatter.SubjectRow, 0, len(snap.Subjects))
			for _, s := range snap.Subjects {
				open := 0
				for _, t := range app.Aggregator.TasksForSubject(s.ID) {
					if !t.Completed {
						open++
					}
				}
				rows = append(rows, formatter.SubjectRow{
					Subject:   s,
					TotalSec:  app.Aggregator.TotalTimeForSubject(s.ID),
					OpenTasks: open,
				})
			}

			fmt.Print(formatter.FormatSubjectList(rows))
			return nil
		},
	}
}

func newSubjectUpdateCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "update SUBJECT",
		Short: "Rename or recolor a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				subject.Name = name
			}
			if cmd.Flags().Changed("color") {
				subject.Color = color
			}

			updated, err := app.Aggregator.UpsertSubject(context.Background(), subject.ID, subject.Name, subject.Color)
			if err != nil {
				return err
			}

			fmt.Printf("Updated subject %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New subject name")
	cmd.Flags().StringVar(&color, "color", "", "New display color (#rrggbb)")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SUBJECT",
		Short: "Remove a subject and everything recorded under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, args[0])
			if err != nil {
				return err
			}

			tasks := len(app.Aggregator.TasksForSubject(subject.ID))
			if err := app.Aggregator.DeleteSubject(context.Background(), subject.ID); err != nil {
				return err
			}

			fmt.Printf("Removed subject %s (with %d task(s) and its sessions)\n", subject.Name, tasks)
			return nil
		},
	}
}
