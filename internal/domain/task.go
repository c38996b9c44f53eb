package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is an actionable to-do item scoped to one subject. SubjectID is set
// at creation and never reassigned.
type Task struct {
	ID          string
	SubjectID   string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

func (t *Task) Validate() error {
	if t.SubjectID == "" {
		return fmt.Errorf("%w: task subject is required", ErrInvalid)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: task description is required", ErrInvalid)
	}
	return nil
}
