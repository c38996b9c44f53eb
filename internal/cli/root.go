// Package cli wires the studium commands and the timer TUI.
package cli

import (
	"github.com/acrane/studium/internal/config"
	"github.com/acrane/studium/internal/service"
	"github.com/acrane/studium/internal/timer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the wired core the commands operate on.
type App struct {
	Aggregator *service.Aggregator
	Timer      *timer.Engine
	Config     *config.Config

	// IsInteractive gates the huh forms and the timer TUI.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studium" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studium",
		Short:         "Study tracker with subjects, tasks, sessions and a focus timer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetGlobalNormalizationFunc(normalizeFlags)

	root.AddCommand(
		newSubjectCmd(app),
		newTaskCmd(app),
		newSessionCmd(app),
		newGoalCmd(app),
		newTimerCmd(app),
		newStatusCmd(app),
	)

	return root
}

// normalizeFlags accepts the British spelling of --color.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colour" {
		name = "color"
	}
	return pflag.NormalizedName(name)
}
