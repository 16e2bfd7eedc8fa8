// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package poll

import (
	"sort"
	"time"
)

// A Loop is a minimal single-threaded Scheduler for hosts that have no
// event loop of their own, such as the inline command-line runner. The
// goroutine that calls Run becomes the rendering context: Run executes
// due callbacks one at a time, in due order, sleeping between them,
// and returns when no callbacks remain.
//
// ScheduleAfter may be called before Run starts or from within a
// running callback, never from another goroutine.
type Loop struct {
	queue []loopEntry
	seq   int
}

type loopEntry struct {
	at  time.Time
	seq int
	fn  func()
}

// ScheduleAfter enqueues fn to run after d elapses.
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) {
	if fn == nil {
		panic("restclient/poll: nil callback")
	}
	l.queue = append(l.queue, loopEntry{at: time.Now().Add(d), seq: l.seq, fn: fn})
	l.seq++
	// Stable due-order: earlier deadlines first, insertion order
	// breaking ties.
	sort.SliceStable(l.queue, func(i, j int) bool {
		if l.queue[i].at.Equal(l.queue[j].at) {
			return l.queue[i].seq < l.queue[j].seq
		}
		return l.queue[i].at.Before(l.queue[j].at)
	})
}

// Run executes callbacks until the queue is empty.
func (l *Loop) Run() {
	for len(l.queue) > 0 {
		next := l.queue[0]
		l.queue = l.queue[1:]
		if d := time.Until(next.at); d > 0 {
			time.Sleep(d)
		}
		next.fn()
	}
}
