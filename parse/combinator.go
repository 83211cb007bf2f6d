// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "github.com/dvoyni/funcc/loc"

// A Combinator consumes input from a Reader and produces a Value. On
// failure it must rewind the Reader to where it started.
type Combinator interface {
	Consume(r *Reader) Value
}

// CombinatorFunc adapts a plain function to the Combinator interface,
// the way http.HandlerFunc adapts a function to http.Handler.
type CombinatorFunc func(r *Reader) Value

func (f CombinatorFunc) Consume(r *Reader) Value { return f(r) }

func rewindWithError(r *Reader, start loc.Location, message string) Value {
	rng := loc.Range{Start: start, End: r.Location()}
	r.SetLocation(start)
	return NewError(rng, message)
}

// ForwardDeclaration lets a grammar rule refer to itself, or to rules
// defined after it, before its real body exists. Call Set once the
// real alternatives are known; Consume returns a nil Value if called
// first.
//
// Recursion through a ForwardDeclaration is capped: a rule that
// recurses into itself without consuming any input would otherwise
// loop forever.
type ForwardDeclaration struct {
	alternatives []Combinator
	depth        int
}

const forwardDeclarationRecursionLimit = 256

// Set installs the real alternatives this ForwardDeclaration stands
// in for. It must be called exactly once, before the grammar is used.
func (f *ForwardDeclaration) Set(alternatives ...Combinator) {
	f.alternatives = alternatives
}

// Consume tries each alternative in order, returning the first match.
func (f *ForwardDeclaration) Consume(r *Reader) Value {
	f.depth++
	defer func() { f.depth-- }()
	if f.depth > forwardDeclarationRecursionLimit {
		here := r.Location()
		return NewError(loc.Range{Start: here, End: here}, "forward declaration recursion limit exceeded")
	}

	var furthest Value
	for _, alt := range f.alternatives {
		result := alt.Consume(r)
		if result.HasValue() {
			return result
		}
		if furthest == nil || rangeLess(furthest.Range(), result.Range()) {
			furthest = result
		}
	}
	return furthest
}
