// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restclient "github.com/james-black/sublime-rest-client"
	"github.com/james-black/sublime-rest-client/internal/config"
	"github.com/james-black/sublime-rest-client/request"
)

func testServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func fastSettings() config.Settings {
	s := config.Default()
	s.RefreshIntervalMS = 1
	return s
}

// drive pumps the model's command/message cycle on the test goroutine,
// standing in for the Bubble Tea program loop, until no commands
// remain or the program quits.
func drive(t *testing.T, m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	deadline := time.Now().Add(10 * time.Second)
	for len(queue) > 0 {
		require.False(t, time.Now().After(deadline), "model never settled")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			return
		default:
			_, cmd := m.Update(msg)
			queue = append(queue, cmd)
		}
	}
}

func TestModelRunsFullCycle(t *testing.T) {
	server := testServer(t)
	m := New(server.URL, &restclient.Client{HTTPDoer: server.Client()}, fastSettings(), false)

	drive(t, m, m.Init())

	require.True(t, m.Finished())
	assert.NoError(t, m.ParseErr())
	assert.True(t, strings.HasPrefix(m.Panel(), "GET "+server.URL+" 200 OK"))
	assert.Contains(t, m.Panel(), "Content-Type: application/json")
	assert.True(t, strings.HasSuffix(m.Panel(), `{"ok":true}`))

	view := m.View()
	assert.Contains(t, view, "REST Client Response")
	assert.Contains(t, view, "200 OK")
	assert.Contains(t, view, "press q to quit")
}

func TestModelExitOnDone(t *testing.T) {
	server := testServer(t)
	m := New(server.URL, &restclient.Client{HTTPDoer: server.Client()}, fastSettings(), true)

	// drive returns when it observes the quit message the finished
	// cycle produced.
	drive(t, m, m.Init())
	assert.True(t, m.Finished())
	assert.Contains(t, m.Panel(), "200 OK")
}

func TestModelParseError(t *testing.T) {
	m := New("", &restclient.Client{}, fastSettings(), false)

	drive(t, m, m.Init())

	require.True(t, m.Finished())
	require.Error(t, m.ParseErr())
	var parseErr *request.ParseError
	assert.ErrorAs(t, m.ParseErr(), &parseErr)
	assert.Empty(t, m.Panel(), "no cycle may start on a parse error")
	assert.Contains(t, m.View(), "parse error")
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := New("https://example.test", &restclient.Client{}, fastSettings(), false)
			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModelShowsWaitingFrameWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	m := New(server.URL, &restclient.Client{HTTPDoer: server.Client()}, fastSettings(), false)

	// Run only the start turn and the first scheduled tick.
	_, cmd := m.Update(m.Init()())
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.NotEmpty(t, batch)
		msg = batch[0]()
	}
	_, _ = m.Update(msg)

	assert.Contains(t, m.Panel(), "Waiting for response [")
	assert.False(t, m.Finished())
}
