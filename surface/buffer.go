// Copyright 2026 The sublime-rest-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package surface

// A Buffer is an in-memory Surface. The terminal UI renders one as the
// response panel, and tests use one to observe exactly what a panel
// would contain.
//
// The zero value is an empty buffer ready for use. A Buffer must be
// confined to a single goroutine (the rendering context).
type Buffer struct {
	content     []rune
	scratch     bool
	contentType string
	selection   *Region
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Replace replaces the text in region r with text. The region is
// clamped to the buffer's current extent before replacing.
func (b *Buffer) Replace(r Region, text string) {
	n := len(b.content)
	if r.Start < 0 {
		r.Start = 0
	}
	if r.Start > n {
		r.Start = n
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	if r.End > n {
		r.End = n
	}
	replacement := []rune(text)
	content := make([]rune, 0, r.Start+len(replacement)+n-r.End)
	content = append(content, b.content[:r.Start]...)
	content = append(content, replacement...)
	content = append(content, b.content[r.End:]...)
	b.content = content
}

// Extent returns the region covering the buffer's entire contents.
func (b *Buffer) Extent() Region {
	return Region{Start: 0, End: len(b.content)}
}

// ClearSelection removes the buffer's selection, if any.
func (b *Buffer) ClearSelection() {
	b.selection = nil
}

// SetScratch marks or unmarks the buffer as scratch content.
func (b *Buffer) SetScratch(scratch bool) {
	b.scratch = scratch
}

// AssignContentType tags the buffer with a content type identifier.
func (b *Buffer) AssignContentType(id string) {
	b.contentType = id
}

// Select sets a selection on the buffer. The host surface this buffer
// stands in for acquires selections from user interaction; tests use
// Select to verify that writes clear them.
func (b *Buffer) Select(r Region) {
	b.selection = &r
}

// Selection returns the current selection, or nil if there is none.
func (b *Buffer) Selection() *Region {
	return b.selection
}

// Scratch reports whether the buffer is marked as scratch content.
func (b *Buffer) Scratch() bool {
	return b.scratch
}

// ContentType returns the buffer's assigned content type identifier.
func (b *Buffer) ContentType() string {
	return b.contentType
}

// String returns the buffer's entire contents as a string.
func (b *Buffer) String() string {
	return string(b.content)
}
