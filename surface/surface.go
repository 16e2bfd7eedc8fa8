// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package surface defines the output surface the response panel is
// drawn on: an addressable text buffer supporting replacement of a
// character region, plus the handful of panel controls the renderer
// requires (scratch marking, content type, selection clearing).
//
// The only mutation path into a surface from this module is Apply,
// which bundles every write with the same panel discipline, whether it
// is writing a one-frame progress update into a narrow region or
// replacing the whole panel with a final result.
//
// A Surface is owned by a single-threaded rendering context. Nothing
// in this module writes to a surface from more than one goroutine, and
// implementations are not required to be safe for concurrent use.
package surface

// HTTPResponseContentType is the content type identifier assigned to a
// surface before every write, marking the panel's contents as an HTTP
// response for the host's highlighting machinery.
const HTTPResponseContentType = "source.http-response"

// A Region is a half-open interval [Start, End) of character (rune)
// offsets within a surface.
type Region struct {
	Start int
	End   int
}

// Empty reports whether the region spans no characters.
func (r Region) Empty() bool {
	return r.End <= r.Start
}

// A Surface is an addressable text buffer for rendering responses
// into.
type Surface interface {
	// Replace replaces the text in region r with text. Offsets
	// outside the current extent are clamped to it.
	Replace(r Region, text string)

	// Extent returns the region covering the surface's entire current
	// contents.
	Extent() Region

	// ClearSelection removes any selection or cursor state left on
	// the surface.
	ClearSelection()

	// SetScratch marks the surface as non-persistent scratch content
	// (or unmarks it).
	SetScratch(scratch bool)

	// AssignContentType tags the surface contents with a content type
	// identifier.
	AssignContentType(id string)
}

// Apply issues a single write to a surface using the shared write
// discipline: the surface is marked scratch, tagged with the HTTP
// response content type, the addressed region is replaced, and any
// selection is cleared. A nil region addresses the surface's full
// current extent.
func Apply(s Surface, r *Region, text string) {
	s.SetScratch(true)
	s.AssignContentType(HTTPResponseContentType)
	region := s.Extent()
	if r != nil {
		region = *r
	}
	s.Replace(region, text)
	s.ClearSelection()
}
