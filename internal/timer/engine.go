// Package timer holds the stopwatch state machine that turns wall-clock
// time into committed study sessions.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/acrane/studium/internal/domain"
)

// MinCommitSec is the default noise threshold: runs shorter than a minute
// are discarded on pause instead of being persisted.
const MinCommitSec = 60

// Sink receives the committed session. The aggregator satisfies it.
type Sink interface {
	LogTimedSession(ctx context.Context, subjectID string, endedAt time.Time, durationSec int) (*domain.StudySession, error)
}

// Engine is a resumable stopwatch for one subject at a time. It is
// process-local state: nothing here survives a restart, and it touches
// durable storage only at the single commit point inside Pause.
//
// While running, elapsed time is always derived from the start instant,
// never accumulated tick by tick, so a missed or delayed tick cannot skew
// the committed duration.
type Engine struct {
	sink         Sink
	now          func() time.Time
	minCommitSec int

	subjectID  string
	startedAt  time.Time // zero unless running
	elapsedSec int       // frozen elapsed while paused
	running    bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithMinCommit overrides the sub-minute discard threshold.
func WithMinCommit(seconds int) Option {
	return func(e *Engine) {
		if seconds >= 0 {
			e.minCommitSec = seconds
		}
	}
}

// NewEngine creates an idle engine committing through sink.
func NewEngine(sink Sink, opts ...Option) *Engine {
	e := &Engine{
		sink:         sink,
		now:          time.Now,
		minCommitSec: MinCommitSec,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectSubject arms the engine for a subject. Switching subjects while
// the clock is running is rejected: the accumulated time belongs to the
// current subject and must be paused (committed) or reset first.
func (e *Engine) SelectSubject(id string) error {
	if e.running && id != e.subjectID {
		return fmt.Errorf("%w: pause or reset before switching subjects", domain.ErrInvalid)
	}
	e.subjectID = id
	return nil
}

// Subject returns the armed subject id, empty when idle.
func (e *Engine) Subject() string {
	return e.subjectID
}

// Running reports whether the clock is counting.
func (e *Engine) Running() bool {
	return e.running
}

// Start begins or resumes counting. Resuming back-dates the start instant
// by the already-elapsed time, so the count continues instead of
// restarting. No-op when already running or when no subject is armed.
func (e *Engine) Start() {
	if e.running || e.subjectID == "" {
		return
	}
	e.startedAt = e.now().Add(-time.Duration(e.elapsedSec) * time.Second)
	e.running = true
}

// Elapsed returns whole elapsed seconds. While running it is recomputed
// from the start instant; paused it returns the frozen value. This is the
// tick path: the TUI calls it once a second for display only.
func (e *Engine) Elapsed() int {
	if !e.running {
		return e.elapsedSec
	}
	return int(e.now().Sub(e.startedAt).Seconds())
}

// Pause stops the clock and commits the run as a session. Runs under the
// minimum threshold are discarded as accidental starts. A failed commit
// keeps the elapsed time and the armed subject so the user can retry.
// Returns the persisted session, or nil when the run was discarded.
func (e *Engine) Pause(ctx context.Context) (*domain.StudySession, error) {
	if !e.running {
		return nil, nil
	}
	endedAt := e.now()
	elapsed := int(endedAt.Sub(e.startedAt).Seconds())

	e.running = false
	e.elapsedSec = elapsed

	if elapsed < e.minCommitSec {
		e.elapsedSec = 0
		e.startedAt = time.Time{}
		return nil, nil
	}

	session, err := e.sink.LogTimedSession(ctx, e.subjectID, endedAt, elapsed)
	if err != nil {
		// Armed with elapsed intact; Start resumes, Pause retries the commit.
		return nil, fmt.Errorf("committing timer session: %w", err)
	}

	e.elapsedSec = 0
	e.startedAt = time.Time{}
	return session, nil
}

// Reset discards the run unconditionally, running or not. Explicit user
// intent, so no commit regardless of the accumulated time.
func (e *Engine) Reset() {
	e.running = false
	e.elapsedSec = 0
	e.startedAt = time.Time{}
}
