// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package throbber implements the animated in-progress indicator: a
// single cursor bouncing back and forth inside a fixed-width field.
//
// The package only computes frames; it never draws. Each call to
// State.Advance moves the cursor exactly one cell, and State.Frame
// renders the current cell positions as a fixed-width string. The
// caller decides when ticks happen and where frames go.
package throbber

// DefaultWidth is the indicator field width used when a width is not
// configured.
const DefaultWidth = 6

const cursor = '='

// A State is the position of the indicator cursor within its field.
// The cursor starts at the left edge moving right, and reverses
// direction each time it reaches an edge, so for a field of width 6
// the position sequence is 0,1,2,3,4,5,4,3,2,1,0,1,...
//
// A State is not safe for concurrent use; it is owned by the poller
// and mutated only on the rendering context.
type State struct {
	width     int
	position  int
	direction int
}

// NewState returns a State at the left edge of a field of the given
// width, moving right. Widths below 2 cannot bounce and are replaced
// with DefaultWidth.
func NewState(width int) *State {
	if width < 2 {
		width = DefaultWidth
	}
	return &State{width: width, direction: 1}
}

// Width returns the field width.
func (s *State) Width() int {
	return s.width
}

// Position returns the current cursor position, always in the interval
// [0, Width()-1].
func (s *State) Position() int {
	return s.position
}

// Advance moves the cursor one cell in the current direction, then
// reverses the direction if the cursor has arrived at either edge.
func (s *State) Advance() {
	s.position += s.direction
	if s.position == 0 {
		s.direction = 1
	} else if s.position == s.width-1 {
		s.direction = -1
	}
}

// Frame renders the current state as a string of exactly Width()
// characters: the cursor at its current position, every other cell
// blank.
func (s *State) Frame() string {
	frame := make([]byte, s.width)
	for i := range frame {
		frame[i] = ' '
	}
	frame[s.position] = cursor
	return string(frame)
}

// Blank returns a fully blank field of the given width, as rendered
// into the initial waiting frame before the first tick. Widths below 2
// are replaced with DefaultWidth, consistent with NewState.
func Blank(width int) string {
	if width < 2 {
		width = DefaultWidth
	}
	frame := make([]byte, width)
	for i := range frame {
		frame[i] = ' '
	}
	return string(frame)
}
