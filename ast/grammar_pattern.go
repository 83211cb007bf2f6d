// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"github.com/dvoyni/funcc/loc"
	"github.com/dvoyni/funcc/parse"
)

// PPattern is any pattern expression. Like PExpression, its grammar is
// written as an atom followed by optional postfix suffixes (`| tail`,
// `as name`) rather than putting PPattern as the leftmost token of
// PatternCons/PatternAlias: a pattern can never start with itself, so
// there's nothing to forward-declare at this level. Only the atoms
// that embed sub-patterns inside brackets (DataConstructor, List,
// Tuple) recurse, and they do so after consuming a delimiter first.
var pPatternAtom = &parse.ForwardDeclaration{}

// PPattern is the full pattern grammar: an atom, an optional `| tail`
// suffix, and an optional `as name` suffix, each of which may carry
// its own trailing type annotation.
var PPattern = parse.Map(
	parse.All([]parse.Combinator{
		pPatternAtom,
		parse.Optional(parse.All([]parse.Combinator{parse.Exact(seqCons, PWS), pPatternAtom, parse.Optional(PTypeAnnotation, nil, nil)}, PWS), nil, nil),
		parse.Optional(parse.All([]parse.Combinator{parse.Exact(kwAs, PWS), PIdentifier, parse.Optional(PTypeAnnotation, nil, nil)}, PWS), nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		head := mv.Values[0].(*parse.Typed[Pattern]).Payload

		result := head
		if !mv.Values[1].IsSkipped() {
			consMv := mv.Values[1].(*parse.MultiValue)
			result = &PatternCons{
				Rng:  v.Range(),
				Head: head,
				Tail: consMv.Values[1].(*parse.Typed[Pattern]).Payload,
				Type: optionalType(consMv.Values[2]),
			}
		}
		if !mv.Values[2].IsSkipped() {
			asMv := mv.Values[2].(*parse.MultiValue)
			result = &PatternAlias{
				Rng:    v.Range(),
				Name:   asMv.Values[1].(*parse.Typed[string]).Payload,
				Nested: result,
				Type:   optionalType(asMv.Values[2]),
			}
		}
		return parse.NewTyped[Pattern](v.Range(), result)
	},
)

func optionalType(v parse.Value) Type {
	if v.IsSkipped() {
		return nil
	}
	return v.(*parse.Typed[Type]).Payload
}

// PPatternAny is `_`.
var PPatternAny = parse.Map(parse.Exact(seqPatternAny, PWS), func(v parse.Value) parse.Value {
	return parse.NewTyped[Pattern](v.Range(), &PatternAny{Rng: v.Range()})
})

// PPatternConst is a literal pattern with an optional type annotation.
var PPatternConst = parse.Map(
	parse.All([]parse.Combinator{PConst, parse.Optional(PTypeAnnotation, nil, nil)}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Pattern](v.Range(), &PatternConst{
			Rng:   v.Range(),
			Value: mv.Values[0].(*parse.Typed[Literal]).Payload,
			Type:  optionalType(mv.Values[1]),
		})
	},
)

// PPatternNamed binds an identifier, with an optional type annotation.
var PPatternNamed = parse.Map(
	parse.All([]parse.Combinator{PIdentifier, parse.Optional(PTypeAnnotation, nil, nil)}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Pattern](v.Range(), &PatternNamed{
			Rng:  v.Range(),
			Name: mv.Values[0].(*parse.Typed[string]).Payload,
			Type: optionalType(mv.Values[1]),
		})
	},
)

// PPatternDataConstructor is `QualIdent(P, P, ...)`. The parentheses
// are required; the list inside them may be empty.
var PPatternDataConstructor = parse.Map(
	parse.All([]parse.Combinator{
		PQualifiedIdentifier,
		parse.Some(PPattern,
			parse.Exact(seqFuncOpen, PWS),
			parse.Exact(seqFuncClose, PWS),
			parse.Exact(seqFuncSep, PWS),
			PWS,
			parse.AllowEmpty(),
		),
		parse.Optional(PTypeAnnotation, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Pattern](v.Range(), &PatternDataConstructor{
			Rng:       v.Range(),
			Name:      mv.Values[0].(*parse.Typed[string]).Payload,
			NameRange: mv.Values[0].Range(),
			Values:    parse.ExtractTyped[Pattern](mv.Values[1].(*parse.MultiValue)),
			Type:      optionalType(mv.Values[2]),
		})
	},
)

// PPatternList is `[P, P, ...]`, optionally typed, possibly empty.
var PPatternList = parse.Map(
	parse.All([]parse.Combinator{
		parse.Some(PPattern,
			parse.Exact(seqListOpen, PWS),
			parse.Exact(seqListClose, PWS),
			parse.Exact(seqListSep, PWS),
			PWS,
			parse.AllowEmpty(),
		),
		parse.Optional(PTypeAnnotation, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Pattern](v.Range(), &PatternList{
			Rng:      v.Range(),
			Patterns: parse.ExtractTyped[Pattern](mv.Values[0].(*parse.MultiValue)),
			Type:     optionalType(mv.Values[1]),
		})
	},
)

// PPatternRecord is `{ Ident, Ident, ... }`, optionally typed.
var PPatternRecord = parse.Map(
	parse.All([]parse.Combinator{
		parse.Some(PIdentifier,
			parse.Exact(seqRecordOpen, PWS),
			parse.Exact(seqRecordClose, PWS),
			parse.Exact(seqRecordSep, PWS),
			PWS,
		),
		parse.Optional(PTypeAnnotation, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		items := mv.Values[0].(*parse.MultiValue).Values
		fields := make([]PatternRecordField, 0, len(items))
		for _, item := range items {
			fields = append(fields, PatternRecordField{Range: item.Range(), Name: item.(*parse.Typed[string]).Payload})
		}
		return parse.NewTyped[Pattern](v.Range(), &PatternRecord{
			Rng:    v.Range(),
			Fields: fields,
			Type:   optionalType(mv.Values[1]),
		})
	},
)

// PPatternTuple is `(P, P, ...)`, optionally typed.
var PPatternTuple = parse.Map(
	parse.All([]parse.Combinator{
		parse.Some(PPattern,
			parse.Exact(seqTupleOpen, PWS),
			parse.Exact(seqTupleClose, PWS),
			parse.Exact(seqTupleSep, PWS),
			PWS,
		),
		parse.Optional(PTypeAnnotation, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Pattern](v.Range(), &PatternTuple{
			Rng:   v.Range(),
			Items: parse.ExtractTyped[Pattern](mv.Values[0].(*parse.MultiValue)),
			Type:  optionalType(mv.Values[1]),
		})
	},
)

// FunctionSignature is the shared shape parsed for both top-level
// function declarations and let-bound local functions: a name,
// optional parameter list, and optional return type annotation.
type FunctionSignature struct {
	Range      loc.Range
	Name       string
	NameRange  loc.Range
	Params     []Pattern
	ReturnType Type
}

// PFunctionSignature is `Identifier [(P, P, ...)] [: Type]`.
var PFunctionSignature = parse.Map(
	parse.All([]parse.Combinator{
		PIdentifier,
		parse.Optional(parse.Some(PPattern,
			parse.Exact(seqFuncOpen, PWS),
			parse.Exact(seqFuncClose, PWS),
			parse.Exact(seqFuncSep, PWS),
			PWS,
		), nil, nil),
		parse.Optional(PTypeAnnotation, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		var params []Pattern
		if !mv.Values[1].IsSkipped() {
			params = parse.ExtractTyped[Pattern](mv.Values[1].(*parse.MultiValue))
		}
		return parse.NewTyped(v.Range(), FunctionSignature{
			Range:      v.Range(),
			Name:       mv.Values[0].(*parse.Typed[string]).Payload,
			NameRange:  mv.Values[0].Range(),
			Params:     params,
			ReturnType: optionalType(mv.Values[2]),
		})
	},
)

func init() {
	// PPatternDataConstructor is tried before PPatternNamed: both start
	// with an identifier, but Optional(PTypeAnnotation) never fails, so
	// PPatternNamed would otherwise always win and strand a trailing
	// "(args)" unconsumed. PPatternDataConstructor itself fails cleanly
	// when there's no "(" to open an argument list, falling through to
	// PPatternNamed for bare identifiers.
	pPatternAtom.Set(
		PPatternAny, PPatternConst, PPatternDataConstructor,
		PPatternNamed, PPatternList, PPatternRecord, PPatternTuple,
	)
}
