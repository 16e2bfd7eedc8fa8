// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restclient executes HTTP requests in the background while a
foreground surface renders live progress, then renders the response (or
a formatted error) into the same surface.

A Session ties the pieces together for one request/response cycle. Give
it a surface to draw on and a scheduler bound to the surface's
single-threaded rendering context, then send a request document:

	session := &restclient.Session{
		Surface:   buf,
		Scheduler: sched,
	}
	err := session.Send("GET https://example.com/get")
	...

Send parses the document, seeds the surface with a waiting frame, and
returns immediately: the request itself runs on a background goroutine
(package worker) while a cooperative poller (package poll) animates a
progress indicator through the scheduler until the outcome is ready to
render (package render).

The HTTP transport is Client, which sends exactly one attempt per
request over an HTTPDoer:

	client := &restclient.Client{Timeout: 10 * time.Second}
	resp, err := client.RoundTrip(req)
	...

A zero-value Client sends over http.DefaultClient with no timeout. For
control over connections, TLS, redirects, and proxies, supply a custom
HTTPDoer such as a configured http.Client.
*/
package restclient
