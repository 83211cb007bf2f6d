// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import (
	"unicode/utf8"

	"github.com/dvoyni/funcc/loc"
)

// A Reader scans a source buffer one rune at a time, tracking byte
// position, line and column as it goes. Combinators never read the
// buffer directly; they only move a Reader forward and roll it back
// on failure.
type Reader struct {
	buf     string
	loc     loc.Location
	current rune
	width   int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf string) *Reader {
	r := &Reader{buf: buf, loc: loc.Location{Position: 0, Line: 1, Column: 1}}
	r.peek()
	return r
}

// CurrentChar returns the rune under the cursor, or codepoint 0 with
// width 0 at end of input or on an invalid/incomplete UTF-8 sequence.
func (r *Reader) CurrentChar() rune { return r.current }

// Location returns the Reader's current position.
func (r *Reader) Location() loc.Location { return r.loc }

// Sub returns the substring of the buffer between two Locations.
func (r *Reader) Sub(start, end loc.Location) string {
	return r.buf[start.Position:end.Position]
}

// Move advances the cursor past the current rune.
func (r *Reader) Move() {
	if r.current == '\n' {
		r.loc.Line++
		r.loc.Column = 0
	}
	r.loc.Column++
	r.loc.Position += r.width
	r.peek()
}

// SetLocation rewinds (or fast-forwards) the cursor to loc, which
// must be a Location this Reader previously produced.
func (r *Reader) SetLocation(l loc.Location) {
	r.loc = l
	r.peek()
}

func (r *Reader) peek() {
	if r.loc.Position >= len(r.buf) {
		r.current = 0
		r.width = 0
		return
	}
	c, w := utf8.DecodeRuneInString(r.buf[r.loc.Position:])
	if c == utf8.RuneError && w == 1 {
		// An invalid or incomplete leading byte: report codepoint 0 and
		// a zero width, so Move can't advance past it.
		r.current = 0
		r.width = 0
		return
	}
	r.current = c
	r.width = w
}

// AtEOF reports whether the cursor has run off the end of the buffer.
func (r *Reader) AtEOF() bool { return r.width == 0 }
