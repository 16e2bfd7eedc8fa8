// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package poll implements the cooperative progress poller that
// animates an in-flight request and hands its terminal outcome to the
// renderer.
//
// A Poller is an explicit state machine, not a goroutine. Each call to
// Step executes one tick on the caller's execution context: while the
// worker is still running, the tick redraws the progress indicator and
// asks to be rescheduled; once the worker is done, the tick writes the
// rendered outcome and the machine is terminal. Run drives Step
// through a Scheduler, which is how a host binds the poller to its own
// single-threaded rendering context.
//
// Because every tick for one poller runs on the same single-threaded
// context, progress frames and the final result are strictly ordered
// and the final dispatch happens exactly once.
package poll

import (
	"time"

	"github.com/james-black/sublime-rest-client/render"
	"github.com/james-black/sublime-rest-client/request"
	"github.com/james-black/sublime-rest-client/surface"
	"github.com/james-black/sublime-rest-client/throbber"
	"github.com/james-black/sublime-rest-client/worker"
)

// DefaultInterval is the delay between progress ticks when no interval
// is configured. It is a constant refresh rate, independent of request
// latency.
const DefaultInterval = 100 * time.Millisecond

// A Scheduler runs callbacks on the single-threaded execution context
// that owns the poller's surface.
//
// ScheduleAfter must arrange for fn to run on that context after
// approximately d has elapsed; a zero delay means the next available
// turn. Callbacks for one context must never run concurrently with
// each other.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func())
}

// The SchedulerFunc type is an adapter to allow the use of ordinary
// functions as schedulers. If f is a function with the appropriate
// signature, SchedulerFunc(f) is a Scheduler that calls f.
type SchedulerFunc func(d time.Duration, fn func())

// ScheduleAfter calls f(d, fn).
func (f SchedulerFunc) ScheduleAfter(d time.Duration, fn func()) {
	f(d, fn)
}

// A Poller animates one in-flight request and dispatches its outcome.
// Create one with New.
//
// A Poller is confined to the single-threaded context its surface is
// owned by; it is not safe for concurrent use.
type Poller struct {
	worker   *worker.Worker
	surface  surface.Surface
	req      *request.Request
	span     surface.Region
	state    *throbber.State
	interval time.Duration
	done     bool
}

// New returns a running poller observing w and drawing into s.
//
// The span is the character region of the progress indicator within
// the surface, as returned by render.Waiting; its width determines the
// indicator width. An interval of zero means DefaultInterval.
func New(w *worker.Worker, s surface.Surface, req *request.Request, span surface.Region, interval time.Duration) *Poller {
	if w == nil {
		panic("restclient/poll: nil worker")
	}
	if s == nil {
		panic("restclient/poll: nil surface")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		worker:   w,
		surface:  s,
		req:      req,
		span:     span,
		state:    throbber.NewState(span.End - span.Start),
		interval: interval,
	}
}

// Done reports whether the poller has dispatched the terminal result.
func (p *Poller) Done() bool {
	return p.done
}

// Step executes one tick and reports whether another tick should be
// scheduled.
//
// If the worker has completed, Step renders the outcome, replaces the
// surface's full extent with it, and returns false; the poller is then
// terminal and further Step calls do nothing. Otherwise Step draws the
// current indicator frame into the indicator span only, advances the
// indicator, and returns true.
func (p *Poller) Step() bool {
	if p.done {
		return false
	}
	if p.worker.Done() {
		out, err := p.worker.Outcome()
		if err != nil {
			// Unreachable: Done just reported true.
			panic(err)
		}
		var text string
		if out.Success() {
			text = render.Success(p.req, out.Response)
		} else {
			text = render.Failure(p.req, out.Err, out.Diagnostic)
		}
		surface.Apply(p.surface, nil, text)
		p.done = true
		return false
	}
	span := p.span
	surface.Apply(p.surface, &span, p.state.Frame())
	p.state.Advance()
	return true
}

// Run drives the poller through s until it is terminal: the first tick
// runs on the next available turn, and each subsequent tick is
// rescheduled after the poller's refresh interval.
func (p *Poller) Run(s Scheduler) {
	if s == nil {
		panic("restclient/poll: nil scheduler")
	}
	var tick func()
	tick = func() {
		if p.Step() {
			s.ScheduleAfter(p.interval, tick)
		}
	}
	s.ScheduleAfter(0, tick)
}
