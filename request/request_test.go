// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("DefaultsToGet", func(t *testing.T) {
		req, err := New("", "https://example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "https://example.com", req.URL)
		assert.Empty(t, req.Headers)
		assert.Empty(t, req.Body)
	})
	t.Run("KeepsMethodAndBody", func(t *testing.T) {
		req, err := New("POST", "http://example.com/upload", `{"a":1}`)
		require.NoError(t, err)
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, `{"a":1}`, req.Body)
	})
	t.Run("RemovesEmptyPort", func(t *testing.T) {
		req, err := New("GET", "http://example.com:/x", "")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/x", req.URL)
	})
	t.Run("InvalidMethod", func(t *testing.T) {
		badMethods := []string{"GET IT", "G\x00T", "G(T"}
		for _, method := range badMethods {
			t.Run(method, func(t *testing.T) {
				_, err := New(method, "https://example.com", "")
				assert.Error(t, err)
			})
		}
	})
	t.Run("InvalidURL", func(t *testing.T) {
		badURLs := []string{"", "example.com", "ftp://example.com", "://nope", "http://\x7f"}
		for _, url := range badURLs {
			t.Run(url, func(t *testing.T) {
				_, err := New("GET", url, "")
				assert.Error(t, err)
			})
		}
	})
}

func TestHeaders(t *testing.T) {
	t.Run("OrderPreserved", func(t *testing.T) {
		var hs Headers
		hs.Add("Zebra", "1")
		hs.Add("alpha", "2")
		hs.Add("Zebra", "3")
		require.Len(t, hs, 3)
		assert.Equal(t, Header{Name: "Zebra", Value: "1"}, hs[0])
		assert.Equal(t, Header{Name: "alpha", Value: "2"}, hs[1])
		assert.Equal(t, Header{Name: "Zebra", Value: "3"}, hs[2])
	})
	t.Run("GetIsCaseInsensitive", func(t *testing.T) {
		var hs Headers
		hs.Add("Content-Type", "application/json")
		assert.Equal(t, "application/json", hs.Get("content-type"))
		assert.Equal(t, "application/json", hs.Get("CONTENT-TYPE"))
	})
	t.Run("GetReturnsFirstMatch", func(t *testing.T) {
		var hs Headers
		hs.Add("Set-Cookie", "a=1")
		hs.Add("Set-Cookie", "b=2")
		assert.Equal(t, "a=1", hs.Get("Set-Cookie"))
	})
	t.Run("GetMissing", func(t *testing.T) {
		var hs Headers
		assert.Equal(t, "", hs.Get("Anything"))
	})
}
