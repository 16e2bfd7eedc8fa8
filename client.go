// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/james-black/sublime-rest-client/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Client sends HTTP requests and buffers their responses. Its zero
// value is a valid configuration, using http.DefaultClient as the
// HTTPDoer and no timeout.
//
// Client is lower-level than a Session: it makes exactly one
// synchronous attempt per request and returns the result to its
// caller. The worker package runs a Client call on a background
// goroutine; Client itself never spawns one.
//
// The HTTPDoer is responsible for all details of sending the request
// and receiving the response: connections, TLS, redirects, cookies,
// proxies. On top of it, Client converts a request.Request into an
// http.Request, reads and buffers the entire response body, and
// converts the result into a request.Response with an ordered header
// list. A non-2XX status code is not an error.
//
// Client's HTTPDoer typically has internal state (cached TCP
// connections), so Client values should be reused rather than created
// per request. Client is safe for concurrent use by multiple
// goroutines.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer

	// Timeout limits the time allowed for the whole round trip,
	// including reading the response body. Zero means no timeout.
	//
	// The timeout belongs to the transport: a request that exceeds it
	// fails with a timeout error like any other transport failure,
	// and the caller renders it as one.
	Timeout time.Duration
}

// RoundTrip sends a single HTTP request and returns the fully-buffered
// response.
//
// Any error — building the request, speaking HTTP, reading the body —
// results in a nil response and a non-nil error of type *url.Error.
// If the returned error is nil, the response is non-nil with its body
// fully read (although the body may be empty).
//
// RoundTrip never retries.
func (c *Client) RoundTrip(req *request.Request) (*request.Response, error) {
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	hr, err := buildRequest(ctx, req)
	if err != nil {
		return nil, urlErrorWrap(req, err)
	}

	resp, err := c.doer().Do(hr)
	if err != nil {
		return nil, urlErrorWrap(req, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, urlErrorWrap(req, err)
	}

	return &request.Response{
		StatusCode: resp.StatusCode,
		Headers:    responseHeaders(resp.Header),
		Body:       string(body),
	}, nil
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	type idleCloser interface {
		CloseIdleConnections()
	}
	if ic, ok := c.doer().(idleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func buildRequest(ctx context.Context, req *request.Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	hr, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for _, h := range req.Headers {
		hr.Header.Add(h.Name, h.Value)
	}
	return hr, nil
}

// responseHeaders converts an http.Header map into the ordered list
// carried by request.Response. The order headers arrived on the wire
// is not recoverable from the map, so the list is ordered by sorted
// canonical name, with repeated values kept in received order.
func responseHeaders(h http.Header) request.Headers {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	var headers request.Headers
	for _, name := range names {
		for _, value := range h[name] {
			headers.Add(name, value)
		}
	}
	return headers
}

func urlErrorWrap(req *request.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(req.Method),
		URL: req.URL,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
