// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package render formats request outcomes as panel text.
//
// Every function in this package is pure: it turns a request and an
// outcome (or the lack of one, for the initial waiting frame) into a
// string, and the caller issues the actual surface write. Rendering
// the same inputs twice produces byte-identical text.
package render

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/james-black/sublime-rest-client/request"
	"github.com/james-black/sublime-rest-client/surface"
	"github.com/james-black/sublime-rest-client/throbber"
)

// errorPrefix opens every failure rendering, so a user can tell a
// failed request apart from a successful one at a glance.
const errorPrefix = "REST Client: Error on request to"

const blockSeparator = "\n\n"

// Success formats a successful response as three blocks separated by
// blank lines: a status line "{method} {url} {status} {phrase}", the
// response headers one per line in the order the response carries
// them, and the raw body text unmodified.
func Success(req *request.Request, resp *request.Response) string {
	headerLines := make([]string, len(resp.Headers))
	for i, h := range resp.Headers {
		headerLines[i] = fmt.Sprintf("%s: %s", h.Name, h.Value)
	}
	return strings.Join([]string{
		fmt.Sprintf("%s %s %d %s", req.Method, req.URL, resp.StatusCode, http.StatusText(resp.StatusCode)),
		strings.Join(headerLines, "\n"),
		resp.Body,
	}, blockSeparator)
}

// Failure formats a failed request as three blocks separated by blank
// lines: a prefixed error line naming the request, the short form of
// the error, and the full diagnostic captured when the failure
// occurred.
func Failure(req *request.Request, err error, diagnostic string) string {
	return strings.Join([]string{
		fmt.Sprintf("%s %s %s", errorPrefix, req.Method, req.URL),
		fmt.Sprintf("%T: %v", err, err),
		diagnostic,
	}, blockSeparator)
}

// Waiting formats the initial frame written before the first progress
// tick: the request line followed by a waiting message containing a
// blank indicator field of the given width. The returned region is the
// character span of the field within the text; progress frames are
// written into exactly that span on every tick.
func Waiting(req *request.Request, width int) (string, surface.Region) {
	field := throbber.Blank(width)
	text := strings.Join([]string{
		fmt.Sprintf("%s %s", req.Method, req.URL),
		fmt.Sprintf("Waiting for response [%s]", field),
	}, blockSeparator)
	// The field ends just before the closing bracket.
	end := utf8.RuneCountInString(text) - 1
	return text, surface.Region{Start: end - len(field), End: end}
}
