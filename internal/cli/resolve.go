package cli

import (
	"fmt"
	"strings"

	"github.com/acrane/studium/internal/domain"
)

// resolveSubject maps user input to a subject from the current snapshot.
// Matching order: exact name (case-insensitive), exact ID, ID prefix.
func resolveSubject(app *App, input string) (*domain.Subject, error) {
	if input == "" {
		return nil, fmt.Errorf("subject is required")
	}

	subjects := app.Aggregator.Snapshot().Subjects

	for _, s := range subjects {
		if strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}

	for _, s := range subjects {
		if s.ID == input {
			return s, nil
		}
	}

	var matches []*domain.Subject
	for _, s := range subjects {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("subject not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("subject %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTask maps an ID or ID prefix to a task from the snapshot.
func resolveTask(app *App, input string) (*domain.Task, error) {
	if input == "" {
		return nil, fmt.Errorf("task ID is required")
	}

	var matches []*domain.Task
	for _, t := range app.Aggregator.Snapshot().Tasks {
		if t.ID == input {
			return t, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSession maps an ID or ID prefix to a session from the snapshot.
func resolveSession(app *App, input string) (*domain.StudySession, error) {
	if input == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	var matches []*domain.StudySession
	for _, s := range app.Aggregator.Snapshot().Sessions {
		if s.ID == input {
			return s, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
