// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"regexp"
	"strings"
)

// A ParseError describes a request document that could not be turned
// into a Request. Line is the 1-based line number the error was
// detected on.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("restclient/request: parse error at line %d: %s", e.Line, e.Msg)
}

var variableRef = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Parse parses a request document into a Request.
//
// The document grammar is line-oriented:
//
//	@token = ABC123
//	GET https://example.com/get
//	Authorization: Bearer {{token}}
//
//	{"optional": "body"}
//
// Lines of the form "@name = value" before the request line define
// variables. A "{{name}}" reference anywhere in the request line,
// header values, or body is replaced with the variable's value;
// referencing an undefined variable is a parse error.
//
// The first line that is not blank, not a comment (leading "#" or
// "//"), and not a variable definition is the request line: a method
// followed by a URL, or a bare URL (the method defaults to GET). The
// lines that follow, up to the first blank line, are headers of the
// form "Name: Value", kept in document order. Everything after that
// blank line is the body, verbatim except for variable substitution
// and a trimmed trailing newline.
//
// Any returned error is of type *ParseError.
func Parse(source string) (*Request, error) {
	lines := strings.Split(source, "\n")
	vars := make(map[string]string)
	i := 0

	// Preamble: blank lines, comments, and variable definitions.
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isComment(line) {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			break
		}
		name, value, ok := strings.Cut(line[1:], "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("malformed variable definition %q", line)}
		}
		vars[name] = strings.TrimSpace(value)
	}
	if i == len(lines) {
		return nil, &ParseError{Line: len(lines), Msg: "no request line in document"}
	}

	requestLine, err := substitute(strings.TrimSpace(lines[i]), vars, i+1)
	if err != nil {
		return nil, err
	}
	method, url, ok := strings.Cut(requestLine, " ")
	if !ok {
		method, url = "", requestLine
	}
	req, newErr := New(method, strings.TrimSpace(url), "")
	if newErr != nil {
		return nil, &ParseError{Line: i + 1, Msg: newErr.Error()}
	}
	i++

	// Headers, up to the first blank line.
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("malformed header line %q", line)}
		}
		value, err = substitute(strings.TrimSpace(value), vars, i+1)
		if err != nil {
			return nil, err
		}
		req.Headers.Add(name, value)
	}

	// Body: everything after the blank separator.
	if i < len(lines) {
		body := strings.Join(lines[i+1:], "\n")
		body = strings.TrimLeft(body, "\n")
		body = strings.TrimRight(body, "\n")
		body, err = substitute(body, vars, i+1)
		if err != nil {
			return nil, err
		}
		req.Body = body
	}

	return req, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

func substitute(s string, vars map[string]string, lineNum int) (string, error) {
	var undefined string
	out := variableRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := variableRef.FindStringSubmatch(ref)[1]
		value, ok := vars[name]
		if !ok && undefined == "" {
			undefined = name
		}
		return value
	})
	if undefined != "" {
		return "", &ParseError{Line: lineNum, Msg: fmt.Sprintf("undefined variable %q", undefined)}
	}
	return out, nil
}
