// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restclient

import (
	"time"

	"github.com/james-black/sublime-rest-client/poll"
	"github.com/james-black/sublime-rest-client/render"
	"github.com/james-black/sublime-rest-client/request"
	"github.com/james-black/sublime-rest-client/surface"
	"github.com/james-black/sublime-rest-client/throbber"
	"github.com/james-black/sublime-rest-client/worker"
)

// A Session owns the lifecycle of request/response cycles against one
// surface: parse the document, seed the waiting frame, start the
// background worker, and start the poller that animates progress and
// renders the outcome.
//
// Surface and Scheduler are required; the zero values of the remaining
// fields select a default transport (a zero Client), the default
// indicator width, and the default refresh interval.
//
// A Session does not guard against overlapping cycles: starting a new
// request while one is still in flight on the same surface will
// interleave writes with the earlier cycle's poller and corrupt the
// panel. Callers that can re-trigger requests should create a fresh
// surface per cycle, or wait for the previous cycle to finish.
type Session struct {
	// Transport sends the request. If nil, a zero-value Client is
	// used.
	Transport worker.Transport

	// Surface is the panel the cycle renders into.
	Surface surface.Surface

	// Scheduler runs callbacks on the single-threaded context that
	// owns Surface.
	Scheduler poll.Scheduler

	// ThrobberWidth is the progress indicator width. Zero means
	// throbber.DefaultWidth.
	ThrobberWidth int

	// RefreshInterval is the delay between progress ticks. Zero means
	// poll.DefaultInterval.
	RefreshInterval time.Duration
}

// Send parses a request document and sends the resulting request.
//
// If the document cannot be parsed, the error (a *request.ParseError)
// is returned immediately and no background work starts. Otherwise
// Send behaves like SendRequest.
func (s *Session) Send(source string) error {
	req, err := request.Parse(source)
	if err != nil {
		return err
	}
	s.SendRequest(req)
	return nil
}

// SendRequest starts one request/response cycle and returns without
// blocking: it writes the initial waiting frame to the surface, starts
// the worker, and hands the poller to the scheduler. Progress frames
// and the final result arrive on the scheduler's context as the cycle
// advances.
//
// SendRequest panics if the session has no surface or no scheduler.
func (s *Session) SendRequest(req *request.Request) {
	if s.Surface == nil {
		panic("restclient: nil surface")
	}
	if s.Scheduler == nil {
		panic("restclient: nil scheduler")
	}

	width := s.ThrobberWidth
	if width == 0 {
		width = throbber.DefaultWidth
	}
	text, span := render.Waiting(req, width)
	surface.Apply(s.Surface, nil, text)

	w := worker.Start(s.transport(), req)
	p := poll.New(w, s.Surface, req, span, s.RefreshInterval)
	p.Run(s.Scheduler)
}

func (s *Session) transport() worker.Transport {
	if s.Transport == nil {
		return &Client{}
	}
	return s.Transport
}
