// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Request (describes one HTTP
request) and Response (describes the buffered result of sending one),
plus the parser that turns a request document into a Request.

A Request is a stripped-down description of a single HTTP request: a
method, an absolute URL, an ordered header list, and a pre-buffered
string body. Unlike http.Request from net/http, it carries no
server-side or stream-oriented fields, because the client that consumes
it makes exactly one transaction-oriented attempt per request.

Create a request directly:

	req, err := request.New("GET", "https://example.com", "")
	...

or parse one from a request document:

	req, err := request.Parse("GET https://example.com\nAccept: text/html")
	...

The document grammar accepted by Parse is described on the Parse
function.

A Response is the fully-buffered counterpart produced by the client:
status code, ordered header list, and body text. Both types keep their
headers as an ordered list (Headers) rather than a map, so that
rendering preserves the order in which headers were inserted.
*/
package request
