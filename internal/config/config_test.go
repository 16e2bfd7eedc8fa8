// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "restcli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 6, s.ThrobberWidth)
	assert.Equal(t, 100*time.Millisecond, s.RefreshInterval())
	assert.Equal(t, time.Duration(0), s.Timeout())
	assert.Equal(t, ViewPanel, s.ResponseView)
	assert.NoError(t, s.validate())
}

func TestLoad(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		path := writeFile(t, `
throbber_width: 10
refresh_interval_ms: 50
timeout_ms: 2500
response_view: inline
`)
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 10, s.ThrobberWidth)
		assert.Equal(t, 50*time.Millisecond, s.RefreshInterval())
		assert.Equal(t, 2500*time.Millisecond, s.Timeout())
		assert.Equal(t, ViewInline, s.ResponseView)
	})
	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeFile(t, "timeout_ms: 1000\n")
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 6, s.ThrobberWidth)
		assert.Equal(t, 100*time.Millisecond, s.RefreshInterval())
		assert.Equal(t, time.Second, s.Timeout())
		assert.Equal(t, ViewPanel, s.ResponseView)
	})
	t.Run("ExplicitMissingPathFails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("DefaultFileMissingYieldsDefaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		defer func() { _ = os.Chdir(wd) }()

		s, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})
	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeFile(t, "throbber_width: [not an int\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
	t.Run("InvalidValues", func(t *testing.T) {
		testCases := []struct {
			name     string
			contents string
		}{
			{name: "WidthTooSmall", contents: "throbber_width: 1\n"},
			{name: "ZeroInterval", contents: "refresh_interval_ms: 0\n"},
			{name: "NegativeTimeout", contents: "timeout_ms: -1\n"},
			{name: "UnknownView", contents: "response_view: hologram\n"},
		}
		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				_, err := Load(writeFile(t, testCase.contents))
				assert.Error(t, err)
			})
		}
	})
}
