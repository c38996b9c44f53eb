package cli

import (
	"context"
	"fmt"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the study goal",
	}

	cmd.AddCommand(
		newGoalSetCmd(app),
		newGoalShowCmd(app),
		newGoalClearCmd(app),
	)

	return cmd
}

func newGoalSetCmd(app *App) *cobra.Command {
	var name, target, start string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or replace the goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.interactive() {
				if err := goalForm(&name, &target, &start).Run(); err != nil {
					return err
				}
			}

			goal, err := app.Aggregator.SetGoal(context.Background(), name, target, start)
			if err != nil {
				return err
			}

			fmt.Printf("Goal %q set: %s until %s\n", goal.Name, goal.StartDate, goal.TargetDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")

	return cmd
}

func newGoalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := app.Aggregator.Snapshot().Goal
			progress, ok := app.Aggregator.GoalProgress()
			if goal == nil || !ok {
				fmt.Println("No goal set. Use `studium goal set` to track a deadline.")
				return nil
			}

			view := formatter.GoalView{
				Name:       goal.Name,
				TargetDate: goal.TargetDate,
				Progress:   progress,
			}
			fmt.Print(formatter.FormatGoal(view))
			return nil
		},
	}
}

func newGoalClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Aggregator.ResetGoal(context.Background()); err != nil {
				return err
			}
			fmt.Println("Goal cleared.")
			return nil
		},
	}
}
