// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	urlpkg "net/url"
	"strings"
)

// A Header is a single named header value. Headers with the same name
// may appear more than once in a header list.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered list of headers. Unlike http.Header from
// net/http, it is not a map: it preserves both the insertion order and
// the exact spelling of every header name, which is what the renderer
// needs to reproduce a response faithfully.
type Headers []Header

// Add appends a header to the end of the list.
func (hs *Headers) Add(name, value string) {
	*hs = append(*hs, Header{Name: name, Value: value})
}

// Get returns the value of the first header whose name matches name,
// ignoring case, or the empty string if there is no such header.
func (hs Headers) Get(name string) string {
	for _, h := range hs {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// A Request describes a single HTTP request to be sent by a client.
//
// A Request is immutable by convention once constructed: the worker,
// poller, and renderer all read it concurrently with each other and
// none of them writes to it.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// New interprets an empty string as GET.
	Method string

	// URL is the absolute URL to access, including an http or https
	// scheme.
	URL string

	// Headers contains the request headers to send, in order.
	Headers Headers

	// Body is the pre-buffered request body. An empty body means no
	// request body should be sent, for example on a GET or DELETE
	// request.
	Body string
}

// A Response describes the fully-buffered result of sending a Request.
//
// A Response is produced exactly once by the transport and is read-only
// thereafter. The header list carries whatever order the transport
// assigned; the renderer reproduces that order verbatim.
type Response struct {
	// StatusCode is the numeric HTTP status code, e.g. 200.
	StatusCode int

	// Headers contains the response headers, in the order carried by
	// the transport, with names spelled as received.
	Headers Headers

	// Body is the complete response body as text.
	Body string
}

// New returns a new Request given a method, URL, and optional body.
//
// An empty method means GET. The method must be a valid token per RFC
// 7230 and the URL must be absolute with an http or https scheme;
// otherwise an error is returned.
func New(method, url, body string) (*Request, error) {
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("restclient/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("restclient/request: URL %q is not absolute http or https", url)
	}
	u.Host = removeEmptyPort(u.Host)
	return &Request{
		Method: method,
		URL:    u.String(),
		Body:   body,
	}, nil
}

func validMethod(method string) bool {
	/*
	     Method         = "OPTIONS"                ; Section 9.2
	                    | "GET"                    ; Section 9.3
	                    | "HEAD"                   ; Section 9.4
	                    | "POST"                   ; Section 9.5
	                    | "PUT"                    ; Section 9.6
	                    | "DELETE"                 ; Section 9.7
	                    | "TRACE"                  ; Section 9.8
	                    | "CONNECT"                ; Section 9.9
	                    | extension-method
	   extension-method = token
	     token          = 1*<any CHAR except CTLs or separators>
	*/
	return method != "" && strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !isTokenRune(r)
}

// isTokenRune is lifted verbatim from x/net/http/httpguts/httplex.go
// (but converted to non-exported). It classifies a rune as being valid
// for a token as defined in https://tools.ietf.org/html/rfc7230#section-3.2.6
func isTokenRune(r rune) bool {
	i := int(r)
	return i < len(isTokenTable) && isTokenTable[i]
}

var isTokenTable = [127]bool{
	'!':  true,
	'#':  true,
	'$':  true,
	'%':  true,
	'&':  true,
	'\'': true,
	'*':  true,
	'+':  true,
	'-':  true,
	'.':  true,
	'0':  true,
	'1':  true,
	'2':  true,
	'3':  true,
	'4':  true,
	'5':  true,
	'6':  true,
	'7':  true,
	'8':  true,
	'9':  true,
	'A':  true,
	'B':  true,
	'C':  true,
	'D':  true,
	'E':  true,
	'F':  true,
	'G':  true,
	'H':  true,
	'I':  true,
	'J':  true,
	'K':  true,
	'L':  true,
	'M':  true,
	'N':  true,
	'O':  true,
	'P':  true,
	'Q':  true,
	'R':  true,
	'S':  true,
	'T':  true,
	'U':  true,
	'W':  true,
	'V':  true,
	'X':  true,
	'Y':  true,
	'Z':  true,
	'^':  true,
	'_':  true,
	'`':  true,
	'a':  true,
	'b':  true,
	'c':  true,
	'd':  true,
	'e':  true,
	'f':  true,
	'g':  true,
	'h':  true,
	'i':  true,
	'j':  true,
	'k':  true,
	'l':  true,
	'm':  true,
	'n':  true,
	'o':  true,
	'p':  true,
	'q':  true,
	'r':  true,
	's':  true,
	't':  true,
	'u':  true,
	'v':  true,
	'w':  true,
	'x':  true,
	'y':  true,
	'z':  true,
	'|':  true,
	'~':  true,
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
