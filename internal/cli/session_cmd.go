package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/acrane/studium/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and inspect study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var subjectRef, date, start, end string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a study session by its clock window",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := resolveSubject(app, subjectRef)
			if err != nil {
				return err
			}

			if date == "" {
				date = domain.DateOf(time.Now())
			}

			session, err := app.Aggregator.UpsertSession(context.Background(), "", subject.ID, date, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s of %s on %s\n",
				formatter.FormatSeconds(session.DurationSec), subject.Name, session.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Subject name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Calendar day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var subjectRef, date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Copy so sorting below cannot reorder the shared snapshot.
			sessions := append([]*domain.StudySession(nil), app.Aggregator.Snapshot().Sessions...)

			if subjectRef != "" {
				subject, err := resolveSubject(app, subjectRef)
				if err != nil {
					return err
				}
				sessions = filterSessions(sessions, func(s *domain.StudySession) bool {
					return s.SubjectID == subject.ID
				})
			}
			if date != "" {
				sessions = filterSessions(sessions, func(s *domain.StudySession) bool {
					return s.Date == date
				})
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}

			// Most recent day first, stable within a day.
			sort.SliceStable(sessions, func(i, j int) bool {
				return sessions[i].Date > sessions[j].Date
			})

			names := func(id string) string {
				if s := app.Aggregator.SubjectByID(id); s != nil {
					return s.Name
				}
				return "?"
			}
			today := domain.DateOf(time.Now())
			fmt.Print(formatter.FormatSessionList(sessions, names, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectRef, "subject", "", "Filter by subject name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Filter by calendar day (YYYY-MM-DD)")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SESSION_ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := resolveSession(app, args[0])
			if err != nil {
				return err
			}

			if err := app.Aggregator.DeleteSession(context.Background(), session.ID); err != nil {
				return err
			}

			fmt.Printf("Removed session %s on %s\n", formatter.SessionWindow(session), session.Date)
			return nil
		},
	}
}

func filterSessions(in []*domain.StudySession, keep func(*domain.StudySession) bool) []*domain.StudySession {
	var out []*domain.StudySession
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
