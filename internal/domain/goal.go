package domain

import (
	"fmt"
	"strings"
)

// Goal is the singleton target-date record. StartDate defaults to the day
// the goal was set; both dates are calendar dates.
type Goal struct {
	Name       string
	TargetDate string // YYYY-MM-DD
	StartDate  string // YYYY-MM-DD
}

func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: goal name is required", ErrInvalid)
	}
	if _, err := ParseDate(g.TargetDate); err != nil {
		return err
	}
	if _, err := ParseDate(g.StartDate); err != nil {
		return err
	}
	return nil
}
