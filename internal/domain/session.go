package domain

import (
	"fmt"
	"time"
)

// StudySession is a completed, timestamped block of study time attributed
// to one subject. DurationSec is always positive for a persisted session.
//
// Sessions logged by hand derive DurationSec from StartTime/EndTime on
// Date. Sessions committed by the timer carry an authoritative DurationSec
// with StartTime/EndTime as derived wall-clock snapshots, so the two may
// disagree by sub-minute amounts.
type StudySession struct {
	ID          string
	SubjectID   string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	DurationSec int
	CreatedAt   time.Time
}

func (s *StudySession) Validate() error {
	if s.SubjectID == "" {
		return fmt.Errorf("%w: session subject is required", ErrInvalid)
	}
	if _, err := ParseDate(s.Date); err != nil {
		return err
	}
	if _, err := ParseClock(s.StartTime); err != nil {
		return err
	}
	if _, err := ParseClock(s.EndTime); err != nil {
		return err
	}
	if s.DurationSec <= 0 {
		return fmt.Errorf("%w: session duration must be positive", ErrInvalid)
	}
	return nil
}

// SessionWindowSeconds computes the span between two HH:MM clock readings
// anchored on the same calendar date. Zero or negative spans are returned
// as-is so the caller can reject them.
func SessionWindowSeconds(startTime, endTime string) (int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Seconds()), nil
}
