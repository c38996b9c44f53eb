package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Subject is a user-defined topic of study. Tasks and sessions hang off a
// subject; deleting one cascades (in the aggregator, not the store).
type Subject struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

// Validate checks the fields a subject must carry before it is persisted.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: subject name is required", ErrInvalid)
	}
	if s.Color != "" && !hexColorPattern.MatchString(s.Color) {
		return fmt.Errorf("%w: color %q must be a hex RGB value like #83a598", ErrInvalid, s.Color)
	}
	return nil
}
