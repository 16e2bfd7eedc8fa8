// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tui renders the response panel in the terminal.
//
// The Bubble Tea program's update loop is the single-threaded
// rendering context the session requires: the model owns the panel
// buffer, and a scheduler adapter turns poll.Scheduler callbacks into
// tea commands (tea.Tick for delayed ticks, an immediate message for
// "next turn") so that every surface write happens inside Update. The
// request itself still runs on the worker's background goroutine; the
// only thing crossing back into the loop is the tick message.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	restclient "github.com/james-black/sublime-rest-client"
	"github.com/james-black/sublime-rest-client/internal/config"
	"github.com/james-black/sublime-rest-client/surface"
	"github.com/james-black/sublime-rest-client/worker"
)

const panelTitle = "REST Client Response"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// startMsg kicks off the request cycle on the first turn of the update
// loop.
type startMsg struct{}

// callbackMsg delivers one scheduled poller callback to the update
// loop.
type callbackMsg struct {
	fn func()
}

// scheduler adapts the update loop to poll.Scheduler. Callbacks are
// collected as tea commands and drained into the program after each
// Update, so they always run back on the loop.
type scheduler struct {
	cmds []tea.Cmd
}

func (s *scheduler) ScheduleAfter(d time.Duration, fn func()) {
	if d <= 0 {
		s.cmds = append(s.cmds, func() tea.Msg { return callbackMsg{fn: fn} })
		return
	}
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return callbackMsg{fn: fn} }))
}

// take returns and clears the pending commands.
func (s *scheduler) take() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

// Model is the Bubble Tea model for one request/response cycle.
type Model struct {
	source     string
	session    *restclient.Session
	sched      *scheduler
	buf        *surface.Buffer
	exitOnDone bool

	parseErr error
	started  time.Time
	elapsed  time.Duration
	finished bool
	width    int
}

// New returns a model that will send the request document source
// through transport when the program starts. If exitOnDone is set, the
// program quits as soon as the terminal result has rendered.
func New(source string, transport worker.Transport, settings config.Settings, exitOnDone bool) *Model {
	buf := surface.NewBuffer()
	sched := &scheduler{}
	return &Model{
		source: source,
		session: &restclient.Session{
			Transport:       transport,
			Surface:         buf,
			Scheduler:       sched,
			ThrobberWidth:   settings.ThrobberWidth,
			RefreshInterval: settings.RefreshInterval(),
		},
		sched:      sched,
		buf:        buf,
		exitOnDone: exitOnDone,
	}
}

// Panel returns the current response panel text.
func (m *Model) Panel() string {
	return m.buf.String()
}

// Finished reports whether the cycle has reached its terminal render
// (or was aborted by a parse error).
func (m *Model) Finished() bool {
	return m.finished
}

// ParseErr returns the parse error that aborted the cycle, if any.
func (m *Model) ParseErr() error {
	return m.parseErr
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case startMsg:
		m.started = time.Now()
		if err := m.session.Send(m.source); err != nil {
			// Parse failure: surfaced immediately, the cycle never
			// starts.
			m.parseErr = err
			m.finish()
			if m.exitOnDone {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, tea.Batch(m.sched.take()...)
	case callbackMsg:
		msg.fn()
		cmds := m.sched.take()
		if len(cmds) == 0 {
			// The poller stopped rescheduling: the terminal result is
			// on the surface.
			m.finish()
			if m.exitOnDone {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *Model) finish() {
	m.finished = true
	m.elapsed = time.Since(m.started)
}

func (m *Model) View() string {
	body := m.buf.String()
	if m.parseErr != nil {
		body = errorStyle.Render(m.parseErr.Error())
	}

	panel := panelStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}

	status := "sending..."
	if m.finished {
		status = fmt.Sprintf("done in %s - press q to quit", m.elapsed.Round(time.Millisecond))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(panelTitle),
		panel.Render(body),
		statusStyle.Render(status),
	)
}
