package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/acrane/studium/internal/cli/formatter"
	"github.com/acrane/studium/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

type commitDoneMsg struct {
	session *domain.StudySession
	err     error
}

type timerKeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset, k.Quit}}
}

var timerKeys = timerKeyMap{
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "discard")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// timerModel drives the focus timer screen. The engine owns the stopwatch
// state; the model only reads it for display and forwards key presses.
type timerModel struct {
	app       *App
	subjectID string

	status     string
	committing bool
	quitting   bool
	commitErr  error

	keys timerKeyMap
	help help.Model
}

func newTimerModel(app *App, subjectID string) *timerModel {
	return &timerModel{
		app:       app,
		subjectID: subjectID,
		keys:      timerKeys,
		help:      help.New(),
	}
}

func (m *timerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// commitRun pauses the engine off the UI goroutine, since pausing above
// the threshold writes to storage.
func (m *timerModel) commitRun() tea.Cmd {
	engine := m.app.Timer
	return func() tea.Msg {
		session, err := engine.Pause(context.Background())
		return commitDoneMsg{session: session, err: err}
	}
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick()

	case commitDoneMsg:
		m.committing = false
		switch {
		case msg.err != nil:
			m.commitErr = msg.err
			m.status = formatter.StyleRed.Render("Save failed. Press space to resume, then pause to retry.")
		case msg.session != nil:
			m.commitErr = nil
			m.status = formatter.StyleGreen.Render(
				"Saved " + formatter.FormatSeconds(msg.session.DurationSec) + ".")
		default:
			m.status = formatter.Dim("Run under a minute, discarded.")
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.committing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if m.app.Timer.Running() {
				m.committing = true
				m.status = formatter.Dim("Saving...")
				return m, m.commitRun()
			}
			m.app.Timer.Start()
			m.status = ""
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.app.Timer.Reset()
			m.commitErr = nil
			m.status = formatter.Dim("Discarded.")
			return m, nil

		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.app.Timer.Running() {
				m.committing = true
				m.status = formatter.Dim("Saving...")
				return m, m.commitRun()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

var clockStyle = lipgloss.NewStyle().
	Foreground(formatter.ColorHeader).
	Bold(true).
	Padding(1, 4)

func (m *timerModel) View() string {
	if m.quitting && !m.committing {
		return ""
	}

	subjectName := m.subjectID
	if s := m.app.Aggregator.SubjectByID(m.subjectID); s != nil {
		subjectName = s.Name
	}

	state := formatter.Dim("paused")
	if m.app.Timer.Running() {
		state = formatter.StyleGreen.Render("running")
	}

	body := fmt.Sprintf("%s %s  %s\n\n%s\n",
		formatter.SubjectSwatch(subjectColor(m.app, m.subjectID)),
		formatter.Bold(subjectName),
		state,
		clockStyle.Render(formatter.ClockFace(m.app.Timer.Elapsed())))

	if m.status != "" {
		body += "\n" + m.status + "\n"
	}
	body += "\n" + m.help.View(m.keys)

	return formatter.RenderBox("Timer", body)
}

func subjectColor(app *App, id string) string {
	if s := app.Aggregator.SubjectByID(id); s != nil {
		return s.Color
	}
	return ""
}
