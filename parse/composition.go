// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "github.com/dvoyni/funcc/loc"

// all matches every token in sequence, failing (and rewinding) as
// soon as one of them fails.
type all struct {
	tokens   []Combinator
	ignoreWS Combinator
	filter   func(Value) bool
}

// FilterIgnored drops Ignore-kind values from an All result; it's the
// default filter used by All.
func FilterIgnored(v Value) bool { return v.Kind() != KindIgnore }

// All returns a Combinator that matches every token in sequence and
// bundles the results into a MultiValue, dropping values filtered out
// by filter (FilterIgnored if filter is nil).
func All(tokens []Combinator, ignoreWS Combinator, filter ...func(Value) bool) Combinator {
	f := FilterIgnored
	if len(filter) > 0 {
		f = filter[0]
	}
	return &all{tokens: tokens, ignoreWS: ignoreWS, filter: f}
}

func (a *all) Consume(r *Reader) Value {
	start := r.Location()

	var results []Value
	for _, tok := range a.tokens {
		result := tok.Consume(r)
		if !result.HasValue() {
			r.SetLocation(start)
			return result
		}
		if a.filter(result) {
			results = append(results, result)
		}
	}
	return NewMulti(loc.Range{Start: start, End: r.Location()}, results)
}

// oneOf tries each token in order, returning the first match. If none
// match, it returns the error that progressed furthest into the
// input, since that's usually the most useful diagnostic.
type oneOf struct {
	tokens   []Combinator
	ignoreWS Combinator
}

// OneOf returns a Combinator that tries tokens in order.
func OneOf(tokens []Combinator, ignoreWS Combinator) Combinator {
	return &oneOf{tokens: tokens, ignoreWS: ignoreWS}
}

func (o *oneOf) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, o.ignoreWS)

	var furthest Value
	for _, tok := range o.tokens {
		result := tok.Consume(r)
		if result.HasValue() {
			return result
		}
		if furthest == nil || rangeLess(furthest.Range(), result.Range()) {
			furthest = result
		}
	}
	r.SetLocation(start)
	return furthest
}

// optional wraps token so that a non-match isn't a failure. If
// alternative is set, it's tried (and its result returned) whenever
// token fails. If dependent is set, it runs right after token
// succeeds, and the whole thing rewinds if dependent then fails.
type optional struct {
	token       Combinator
	dependent   Combinator
	alternative Combinator
}

// Optional returns a Combinator; dependent and alternative may each be
// nil. With both nil it never fails. Otherwise it fails when dependent
// fails after token, or when token and alternative both fail; that
// error is returned as is, not turned into a skipped value.
func Optional(token Combinator, dependent, alternative Combinator) Combinator {
	return &optional{token: token, dependent: dependent, alternative: alternative}
}

func (o *optional) Consume(r *Reader) Value {
	start := r.Location()

	result := o.token.Consume(r)
	if result.HasError() {
		if o.alternative != nil {
			alt := o.alternative.Consume(r)
			if alt.HasError() {
				r.SetLocation(start)
			}
			return alt
		}
		here := r.Location()
		return &SimpleValue{base: base{kind: KindSkippedOptional, rng: loc.Range{Start: here, End: here}}}
	}
	if o.dependent == nil {
		return result
	}
	value := o.dependent.Consume(r)
	if value.HasError() {
		r.SetLocation(start)
	}
	return value
}

// some matches a delimited, possibly-separated sequence of items: an
// optional prefix, then items separated by separator, terminated by
// suffix. It backs list literals, tuple literals, parameter lists,
// and similar bracketed sequences throughout the grammar.
type some struct {
	item                        Combinator
	prefix, suffix              Combinator
	separator                   Combinator
	ignoreWS                    Combinator
	firstItem                   Combinator
	allowEmpty                  bool
	allowSeparatorBeforeSuffix  bool
}

// SomeOption configures a Some combinator beyond its required fields.
type SomeOption func(*some)

// WithFirstItem sets a distinct Combinator for the first item only,
// useful when a leading delimiter (such as "|") is optional only on
// the first item of a sequence.
func WithFirstItem(first Combinator) SomeOption { return func(s *some) { s.firstItem = first } }

// AllowEmpty permits a Some sequence to match zero items.
func AllowEmpty() SomeOption { return func(s *some) { s.allowEmpty = true } }

// AllowSeparatorBeforeSuffix permits a trailing separator immediately
// before the closing suffix.
func AllowSeparatorBeforeSuffix() SomeOption { return func(s *some) { s.allowSeparatorBeforeSuffix = true } }

// Some returns a Combinator matching prefix, then item (separator
// item)*, then suffix.
func Some(item, prefix, suffix, separator, ignoreWS Combinator, opts ...SomeOption) Combinator {
	s := &some{item: item, prefix: prefix, suffix: suffix, separator: separator, ignoreWS: ignoreWS}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *some) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, s.ignoreWS)

	if s.prefix != nil {
		prefix := s.prefix.Consume(r)
		if prefix.HasError() {
			r.SetLocation(start)
			return prefix
		}
	}

	var values []Value
	first := true
	for {
		skipWS(r, s.ignoreWS)

		s.separator.Consume(r)
		var suffix Value
		if s.allowSeparatorBeforeSuffix || !first || s.allowEmpty {
			skipWS(r, s.ignoreWS)
			suffix = s.suffix.Consume(r)
		}
		if suffix != nil && suffix.HasValue() {
			break
		}

		skipWS(r, s.ignoreWS)
		itemToken := s.item
		if first && s.firstItem != nil {
			itemToken = s.firstItem
		}
		item := itemToken.Consume(r)
		if item.HasError() {
			r.SetLocation(start)
			return item
		}
		values = append(values, item)
		first = false
	}

	return NewMulti(loc.Range{Start: start, End: r.Location()}, values)
}

// repeat matches body zero-or-more (or one-or-more) times, stopping
// as soon as condition fails to match at the current position.
// condition is only peeked at: the Reader is rewound before body runs.
type repeat struct {
	condition  Combinator
	body       Combinator
	ignoreWS   Combinator
	allowEmpty bool
}

// Repeat returns a Combinator that runs body while condition keeps
// matching. If allowEmpty is false, it fails when body never runs.
func Repeat(condition, body, ignoreWS Combinator, allowEmpty bool) Combinator {
	return &repeat{condition: condition, body: body, ignoreWS: ignoreWS, allowEmpty: allowEmpty}
}

func (rp *repeat) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, rp.ignoreWS)

	var values []Value
	for {
		itemStart := r.Location()
		skipWS(r, rp.ignoreWS)

		condition := rp.condition.Consume(r)
		r.SetLocation(itemStart)

		if condition.HasError() {
			if !rp.allowEmpty && len(values) == 0 {
				r.SetLocation(start)
				return condition
			}
			break
		}
		skipWS(r, rp.ignoreWS)
		body := rp.body.Consume(r)
		if body.HasError() {
			r.SetLocation(start)
			return body
		}
		values = append(values, body)
	}
	return NewMulti(loc.Range{Start: start, End: r.Location()}, values)
}

// mapToken applies mapper to whatever token matched, letting grammar
// rules turn generic parse results into typed AST values.
type mapToken struct {
	token  Combinator
	mapper func(Value) Value
}

// Map returns a Combinator that transforms a successful match through
// mapper; errors pass through untouched. If mapper itself returns an
// error, the Reader is rewound to where the match started.
func Map(token Combinator, mapper func(Value) Value) Combinator {
	return &mapToken{token: token, mapper: mapper}
}

func (m *mapToken) Consume(r *Reader) Value {
	start := r.Location()
	result := m.token.Consume(r)
	if result.HasError() {
		return result
	}
	mapped := m.mapper(result)
	if mapped.HasError() {
		r.SetLocation(start)
	}
	return mapped
}
