// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "github.com/dvoyni/funcc/loc"

// Kind tags the concrete shape of a Value.
type Kind int

const (
	KindError Kind = iota
	KindExact
	KindIgnore
	KindWhiteSpace
	KindSingleLineComment
	KindMultiLineComment
	KindEntity
	KindStringLiteral
	KindNumberLiteral
	KindMultiple
	KindSkippedOptional
	KindCustom
)

// A Value is what a Combinator produces: either a parsed result or a
// parse error, always tagged with the Range it came from. Every
// concrete value type embeds base and so gets these methods for free.
type Value interface {
	Kind() Kind
	HasValue() bool
	HasError() bool
	IsSkipped() bool
	Range() loc.Range
}

type base struct {
	kind Kind
	rng  loc.Range
}

func (b base) Kind() Kind        { return b.kind }
func (b base) HasValue() bool    { return b.kind != KindError }
func (b base) HasError() bool    { return b.kind == KindError }
func (b base) IsSkipped() bool   { return b.kind == KindSkippedOptional }
func (b base) Range() loc.Range  { return b.rng }

// An ErrorValue reports why a Combinator failed to match.
type ErrorValue struct {
	base
	Message string
}

// NewError builds an ErrorValue for range r.
func NewError(r loc.Range, message string) *ErrorValue {
	return &ErrorValue{base: base{kind: KindError, rng: r}, Message: message}
}

// A SimpleValue is a matched span with no further structure: the
// consumed text is available through Reader.Sub using its Range.
type SimpleValue struct {
	base
	Text string
}

func newSimple(kind Kind, r loc.Range, text string) *SimpleValue {
	return &SimpleValue{base: base{kind: kind, rng: r}, Text: text}
}

// A NumberLiteralValue carries both possible readings of a scanned
// number literal; the caller decides which it needs.
type NumberLiteralValue struct {
	base
	IsInteger bool
	Integer   int64
	IsFloat   bool
	Float     float64
}

// A MultiValue is the result of a combinator that consumes a sequence
// of sub-results, such as All, Some or Repeat.
type MultiValue struct {
	base
	Values []Value
}

// NewMulti builds a MultiValue from already-matched sub-values.
func NewMulti(r loc.Range, values []Value) *MultiValue {
	return &MultiValue{base: base{kind: KindMultiple, rng: r}, Values: values}
}

// Typed carries a Go value of type T produced by a Map combinator,
// replacing the C++ engine's Value<T> template.
type Typed[T any] struct {
	base
	Payload T
}

// NewTyped wraps v as a Typed Value with the given range.
func NewTyped[T any](r loc.Range, v T) *Typed[T] {
	return &Typed[T]{base: base{kind: KindCustom, rng: r}, Payload: v}
}

// ExtractTyped pulls the T payload out of every element of a
// MultiValue, panicking if an element isn't a *Typed[T]. Combinators
// only call it on MultiValues they know were built from Typed items.
func ExtractTyped[T any](m *MultiValue) []T {
	out := make([]T, 0, len(m.Values))
	for _, v := range m.Values {
		out = append(out, v.(*Typed[T]).Payload)
	}
	return out
}

// rangeLess orders ranges by start position, used by OneOf to keep
// the furthest-advancing error on failure.
func rangeLess(a, b loc.Range) bool { return a.Start.Position < b.Start.Position }
