// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package worker runs a single HTTP request on a background goroutine
// and publishes its outcome for a foreground poller to observe.
//
// Start a worker and poll it without blocking:
//
//	w := worker.Start(transport, req)
//	...
//	if w.Done() {
//		out, err := w.Outcome()
//		...
//	}
//
// A worker makes exactly one attempt. Whatever the transport does —
// return a response, return an error, or panic — is captured into a
// write-once Outcome; nothing escapes the worker goroutine, and the
// worker never retries.
package worker

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/james-black/sublime-rest-client/request"
)

// ErrNotDone is returned by Worker.Outcome when the outcome is
// requested before the worker has completed. Correct orchestration
// checks Done first, so receiving this error indicates a defect in the
// caller, not a request failure.
var ErrNotDone = errors.New("restclient/worker: outcome requested before completion")

// A Transport sends one HTTP request synchronously and returns the
// buffered response, or an error if the request could not be
// completed. restclient.Client is the standard implementation.
//
// Implementations must be safe for concurrent use by multiple
// goroutines if they are shared between workers.
type Transport interface {
	RoundTrip(req *request.Request) (*request.Response, error)
}

// An Outcome is the terminal result of one request execution: exactly
// one of Response (success) or Err (failure) is set, never both and
// never neither.
//
// An Outcome is written exactly once, by the worker goroutine, before
// the worker publishes completion. After that it is immutable, so it
// may be read without locking by anyone who observed Worker.Done
// return true.
type Outcome struct {
	// Response is the successful response. It is nil if and only if
	// the request failed.
	Response *request.Response

	// Err is the error the transport failed with. It is nil if and
	// only if the request succeeded.
	Err error

	// Diagnostic is the full human-readable trace captured at the
	// moment of failure: the unwrapped error chain followed by the
	// worker goroutine's stack. It is empty on success.
	Diagnostic string

	// Elapsed is the duration of the transport call, measured with
	// the monotonic clock from immediately before the call to
	// immediately after it resolved.
	Elapsed time.Duration
}

// Success reports whether the outcome is a successful response.
func (o *Outcome) Success() bool {
	return o.Err == nil
}

// A Worker is a single in-flight request execution. Create one with
// Start.
//
// Done may be called at any time from any goroutine and never blocks.
// Outcome is only valid once Done reports true.
type Worker struct {
	transport Transport
	req       *request.Request
	outcome   Outcome
	done      atomic.Bool
}

// Start begins executing req on a new goroutine and returns the
// worker immediately, without blocking.
func Start(t Transport, req *request.Request) *Worker {
	if t == nil {
		panic("restclient/worker: nil transport")
	}
	if req == nil {
		panic("restclient/worker: nil request")
	}
	w := &Worker{transport: t, req: req}
	go w.run()
	return w
}

// Done reports whether the worker has completed and its outcome is
// available. Once Done returns true it never returns false again.
func (w *Worker) Done() bool {
	return w.done.Load()
}

// Outcome returns the worker's outcome. Until Done reports true it
// returns ErrNotDone; afterwards it returns the same immutable outcome
// on every call.
func (w *Worker) Outcome() (*Outcome, error) {
	if !w.done.Load() {
		return nil, ErrNotDone
	}
	return &w.outcome, nil
}

func (w *Worker) run() {
	start := time.Now()
	resp, err := w.roundTrip()
	elapsed := time.Since(start)

	w.outcome.Elapsed = elapsed
	if err != nil {
		w.outcome.Err = err
		w.outcome.Diagnostic = diagnostic(err)
	} else {
		w.outcome.Response = resp
	}

	// The atomic store is the publish point: it must come after the
	// outcome is fully populated so that any goroutine observing
	// Done() == true also observes the complete outcome.
	w.done.Store(true)
}

// roundTrip calls the transport, converting a panic into an error so
// that every possible failure mode ends up in the outcome.
func (w *Worker) roundTrip() (resp *request.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp = nil
			err = fmt.Errorf("restclient/worker: transport panic: %v", p)
		}
	}()
	return w.transport.RoundTrip(w.req)
}

// diagnostic builds the full failure trace: each error in the wrapped
// chain on its own line, then the worker goroutine's stack at the
// moment the failure was captured.
func diagnostic(err error) string {
	var b strings.Builder
	b.WriteString("error chain:\n")
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&b, "\t%T: %v\n", e, e)
	}
	b.WriteString("\n")
	b.Write(debug.Stack())
	return b.String()
}
