// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads the restcli settings file.
//
// Settings are read once per invocation, the same way the original
// editor plugin read its settings at command time; there is no
// watching or hot reload.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/james-black/sublime-rest-client/poll"
	"github.com/james-black/sublime-rest-client/throbber"
)

// DefaultFile is the settings file name looked for in the working
// directory when no explicit path is given.
const DefaultFile = "restcli.yaml"

// Response view modes.
const (
	ViewPanel  = "panel"  // interactive terminal panel
	ViewInline = "inline" // final text printed to stdout
)

// Settings is the restcli configuration.
type Settings struct {
	// ThrobberWidth is the width of the progress indicator field.
	ThrobberWidth int `yaml:"throbber_width"`

	// RefreshIntervalMS is the delay between progress frames, in
	// milliseconds.
	RefreshIntervalMS int `yaml:"refresh_interval_ms"`

	// TimeoutMS is the transport timeout in milliseconds. Zero means
	// no timeout.
	TimeoutMS int `yaml:"timeout_ms"`

	// ResponseView selects where the response is rendered: ViewPanel
	// or ViewInline.
	ResponseView string `yaml:"response_view"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		ThrobberWidth:     throbber.DefaultWidth,
		RefreshIntervalMS: int(poll.DefaultInterval / time.Millisecond),
		TimeoutMS:         0,
		ResponseView:      ViewPanel,
	}
}

// Load reads settings from the file at path, filling unset fields with
// defaults.
//
// If path is empty, Load reads DefaultFile from the working directory,
// and a missing file simply yields the defaults. An explicitly given
// path must exist. A file that exists but cannot be parsed, or that
// contains invalid values, is an error either way.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}

	s := Default()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("restcli/config: parsing %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("restcli/config: %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.ThrobberWidth < 2 {
		return fmt.Errorf("throbber_width must be at least 2, got %d", s.ThrobberWidth)
	}
	if s.RefreshIntervalMS <= 0 {
		return fmt.Errorf("refresh_interval_ms must be positive, got %d", s.RefreshIntervalMS)
	}
	if s.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms must not be negative, got %d", s.TimeoutMS)
	}
	if s.ResponseView != ViewPanel && s.ResponseView != ViewInline {
		return fmt.Errorf("response_view must be %q or %q, got %q", ViewPanel, ViewInline, s.ResponseView)
	}
	return nil
}

// RefreshInterval returns the refresh interval as a duration.
func (s Settings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalMS) * time.Millisecond
}

// Timeout returns the transport timeout as a duration; zero means no
// timeout.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}
