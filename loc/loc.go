// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc tracks source positions within a single parsed buffer.
package loc

import "fmt"

// A Location is a position within a source buffer: a byte offset plus
// the 1-based line and column derived from it while scanning.
type Location struct {
	Position int
	Line     int
	Column   int
}

// Less orders Locations by Position.
func (l Location) Less(o Location) bool { return l.Position < o.Position }

// A Range is a half-open span between two Locations.
type Range struct {
	Start Location
	End   Location
}

// GetRange returns itself, so Range can be embedded in a struct
// that must satisfy interface{ GetRange() Range }.
func (r Range) GetRange() Range { return r }

// Union returns the smallest Range containing both r and o.
func (r Range) Union(o Range) Range {
	u := r
	if o.Start.Position < u.Start.Position {
		u.Start = o.Start
	}
	if o.End.Position > u.End.Position {
		u.End = o.End
	}
	return u
}

// At resolves the Range against a file path, producing a printable Loc.
func (r Range) At(path string) Loc {
	return Loc{
		Path: path,
		Line: [2]int{r.Start.Line, r.End.Line},
		Col:  [2]int{r.Start.Column, r.End.Column},
	}
}

// A Loc is a Range resolved against a file path, ready to print.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Loc) String() string {
	switch {
	case l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1]:
		return fmt.Sprintf("%s:%d:%d", l.Path, l.Line[0], l.Col[0])
	default:
		return fmt.Sprintf("%s:%d:%d-%d:%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
	}
}
