// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import (
	"strconv"
	"unicode"

	"github.com/dvoyni/funcc/loc"
)

func skipWS(r *Reader, ignoreWS Combinator) {
	if ignoreWS != nil {
		ignoreWS.Consume(r)
	}
}

// exact matches a literal string, rewinding and failing if the input
// doesn't hold it verbatim.
type exact struct {
	target   string
	ignoreWS Combinator
}

// Exact returns a Combinator that matches target exactly, skipping
// ignoreWS (which may be nil) first.
func Exact(target string, ignoreWS Combinator) Combinator {
	return &exact{target: target, ignoreWS: ignoreWS}
}

func (e *exact) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, e.ignoreWS)

	for _, want := range e.target {
		if r.CurrentChar() != want || r.AtEOF() {
			return rewindWithError(r, start, "Expected '"+e.target+"'")
		}
		r.Move()
	}
	return newSimple(KindExact, loc.Range{Start: start, End: r.Location()}, e.target)
}

// ignoreAny repeatedly tries every token in order until none of them
// consumes anything, used to build up a single "skip whitespace and
// comments" combinator from its parts.
type ignoreAny struct {
	tokens []Combinator
}

// IgnoreAny returns a Combinator that repeatedly applies tokens until
// none of them match, always succeeding (even consuming nothing).
func IgnoreAny(tokens ...Combinator) Combinator {
	return &ignoreAny{tokens: tokens}
}

func (g *ignoreAny) Consume(r *Reader) Value {
	start := r.Location()
	for consumed := true; consumed; {
		consumed = false
		for _, tok := range g.tokens {
			if tok.Consume(r).HasValue() {
				consumed = true
				break
			}
		}
	}
	return newSimple(KindIgnore, loc.Range{Start: start, End: r.Location()}, r.Sub(start, r.Location()))
}

// whiteSpace matches one or more whitespace runes.
type whiteSpace struct{}

// WhiteSpace returns a Combinator matching a run of whitespace.
func WhiteSpace() Combinator { return &whiteSpace{} }

func (whiteSpace) Consume(r *Reader) Value {
	start := r.Location()
	for !r.AtEOF() && unicode.IsSpace(r.CurrentChar()) {
		r.Move()
	}
	if r.Location().Position > start.Position {
		return newSimple(KindWhiteSpace, loc.Range{Start: start, End: r.Location()}, r.Sub(start, r.Location()))
	}
	return rewindWithError(r, start, "Expected whitespace")
}

// singleLineComment matches prefix followed by everything up to (not
// including) the next newline or end of input.
type singleLineComment struct {
	prefix Combinator
}

// SingleLineComment returns a Combinator matching a "// ..." style comment.
func SingleLineComment(prefix string, ignoreWS Combinator) Combinator {
	return &singleLineComment{prefix: Exact(prefix, ignoreWS)}
}

func (c *singleLineComment) Consume(r *Reader) Value {
	start := r.Location()
	prefix := c.prefix.Consume(r)
	if prefix.HasError() {
		r.SetLocation(start)
		return prefix
	}
	for !r.AtEOF() && r.CurrentChar() != '\n' {
		r.Move()
	}
	return newSimple(KindSingleLineComment, loc.Range{Start: start, End: r.Location()}, r.Sub(start, r.Location()))
}

// multiLineComment matches prefix ... suffix, consuming everything in between.
type multiLineComment struct {
	prefix Combinator
	suffix Combinator
}

// MultiLineComment returns a Combinator matching a "/* ... */" style comment.
func MultiLineComment(prefix, suffix string, ignoreWS Combinator) Combinator {
	return &multiLineComment{prefix: Exact(prefix, ignoreWS), suffix: Exact(suffix, nil)}
}

func (c *multiLineComment) Consume(r *Reader) Value {
	start := r.Location()
	prefix := c.prefix.Consume(r)
	if prefix.HasError() {
		r.SetLocation(start)
		return prefix
	}
	for {
		if c.suffix.Consume(r).HasValue() {
			break
		}
		if r.AtEOF() {
			r.SetLocation(start)
			return NewError(loc.Range{Start: start, End: r.Location()}, "Unterminated comment")
		}
		r.Move()
	}
	return newSimple(KindMultiLineComment, loc.Range{Start: start, End: r.Location()}, r.Sub(start, r.Location()))
}

// Aggregator decides, rune by rune, whether the text accumulated so
// far (acc) plus the next candidate rune keeps an Entity valid, and
// whether the entity is now complete (next does not belong to it).
type Aggregator func(acc string, next rune) (isValid, isComplete bool)

// entity scans runes one at a time under the control of an Aggregator,
// used to build identifiers and similar free-form lexical tokens.
type entity struct {
	aggregate Aggregator
	ignoreWS  Combinator
}

// Entity returns a Combinator driven by aggregate, matching any
// self-delimiting run of runes (identifiers, infix operators, ...).
func Entity(aggregate Aggregator, ignoreWS Combinator) Combinator {
	return &entity{aggregate: aggregate, ignoreWS: ignoreWS}
}

func (e *entity) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, e.ignoreWS)
	textStart := r.Location()

	for {
		acc := r.Sub(textStart, r.Location())
		next := r.CurrentChar()
		if r.AtEOF() {
			next = 0
		}
		isValid, isComplete := e.aggregate(acc, next)
		if isComplete {
			if isValid {
				return newSimple(KindEntity, loc.Range{Start: start, End: r.Location()}, acc)
			}
			return rewindWithError(r, start, "Invalid identifier")
		}
		if r.AtEOF() {
			return rewindWithError(r, start, "Invalid identifier")
		}
		r.Move()
	}
}

// stringLiteral matches prefix, then runs of any character up to an
// unescaped suffix.
type stringLiteral struct {
	prefix Combinator
	suffix Combinator
	escape Combinator
}

// StringLiteral returns a Combinator matching text delimited by
// prefix/suffix, where escape marks the next suffix occurrence as
// literal text rather than the closing delimiter.
func StringLiteral(prefix, suffix, escape string, ignoreWS Combinator) Combinator {
	return &stringLiteral{
		prefix: Exact(prefix, ignoreWS),
		suffix: Exact(suffix, nil),
		escape: Exact(escape, nil),
	}
}

func (s *stringLiteral) Consume(r *Reader) Value {
	start := r.Location()
	result := s.prefix.Consume(r)
	if result.HasError() {
		r.SetLocation(start)
		return result
	}

	textStart := r.Location()
	for {
		escaped := s.escape.Consume(r).HasValue()
		if !escaped && s.suffix.Consume(r).HasValue() {
			break
		}
		if r.AtEOF() {
			r.SetLocation(start)
			return NewError(loc.Range{Start: start, End: r.Location()}, "Unterminated string literal")
		}
		r.Move()
	}
	text := result.(*SimpleValue).Text + r.Sub(textStart, r.Location())
	return newSimple(KindStringLiteral, loc.Range{Start: start, End: r.Location()}, text)
}

// numberLiteral matches an integer or floating-point literal and
// records both readings; callers decide which reading they require.
type numberLiteral struct {
	ignoreWS Combinator
}

// NumberLiteral returns a Combinator matching a decimal number.
func NumberLiteral(ignoreWS Combinator) Combinator {
	return &numberLiteral{ignoreWS: ignoreWS}
}

func (n *numberLiteral) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, n.ignoreWS)

	numStart := r.Location()
	for !r.AtEOF() && isNumberRune(r.CurrentChar()) {
		r.Move()
	}
	text := r.Sub(numStart, r.Location())
	if text == "" {
		return rewindWithError(r, start, "Expected number")
	}

	v := &NumberLiteralValue{base: base{kind: KindNumberLiteral, rng: loc.Range{Start: start, End: r.Location()}}}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		v.IsInteger = true
		v.Integer = i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		v.IsFloat = true
		v.Float = f
	}
	if !v.IsInteger && !v.IsFloat {
		return rewindWithError(r, start, "Expected number")
	}
	return v
}

func isNumberRune(c rune) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

// eof matches only at the end of input.
type eof struct {
	ignoreWS Combinator
}

// Eof returns a Combinator that matches end of input.
func Eof(ignoreWS Combinator) Combinator { return &eof{ignoreWS: ignoreWS} }

func (e *eof) Consume(r *Reader) Value {
	start := r.Location()
	skipWS(r, e.ignoreWS)
	if r.AtEOF() {
		return newSimple(KindWhiteSpace, loc.Range{Start: r.Location(), End: r.Location()}, "")
	}
	return rewindWithError(r, start, "Expected end of file")
}
