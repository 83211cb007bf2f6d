// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"github.com/dvoyni/funcc/loc"
	"github.com/dvoyni/funcc/parse"
)

// pExpressionAtom holds every expression form that does not start with
// an expression of its own: constants, names, control forms, and the
// bracketed literals. Access and Apply are not alternatives here —
// each takes an expression as its own leftmost token, so they're
// parsed as postfix suffixes onto an atom instead (see
// PExpressionNoInfix below), the same fix used for PPattern's cons and
// alias suffixes.
var pExpressionAtom = &parse.ForwardDeclaration{}

// pExpression is the recursive entry point every rule that needs "any
// expression" (Apply's args, If's branches, a let's value, ...) binds
// to instead of the concrete infix-chain rule below: binding to a
// bare ForwardDeclaration, rather than to the rule that's built out of
// it, keeps the var initializers acyclic. See pExpressionInfixChain's
// wiring in init().
var pExpression = &parse.ForwardDeclaration{}

// PExpression is any expression.
var PExpression parse.Combinator = pExpression

// PExpressionNoInfix is an atom followed by any number of `.field` and
// `(args)` suffixes, folded left to right into Access and Apply nodes.
var PExpressionNoInfix = parse.Map(
	parse.All([]parse.Combinator{pExpressionAtom, exprSuffixes}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		result := mv.Values[0].(*parse.Typed[Expression]).Payload
		start := result.Range().Start
		for _, sv := range mv.Values[1].(*parse.MultiValue).Values {
			sfx := sv.(*parse.Typed[exprSuffix]).Payload
			rng := loc.Range{Start: start, End: sv.Range().End}
			if sfx.isApply {
				result = &Apply{Rng: rng, Callee: result, Args: sfx.args}
			} else {
				result = &Access{Rng: rng, Record: result, Name: sfx.name, NameRange: sfx.nameRange}
			}
		}
		return parse.NewTyped[Expression](v.Range(), result)
	},
)

// pExpressionInfixChain is the full expression grammar: a postfix
// chain, then any number of `op rhs` suffixes, folded left to right
// into BinOp nodes. It never groups by precedence or associativity:
// that's left to a later pass, same as the teacher's flat
// ExpressionBinOp shape.
//
// TODO: support calling a regular function as an infix operator, e.g.
// `2 \add 3` instead of add(2, 3).
var pExpressionInfixChain = parse.Map(
	parse.All([]parse.Combinator{PExpressionNoInfix, binOpSuffixes}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		result := mv.Values[0].(*parse.Typed[Expression]).Payload
		start := result.Range().Start
		for _, sv := range mv.Values[1].(*parse.MultiValue).Values {
			bv := sv.(*parse.MultiValue)
			op := &InfixVar{Rng: bv.Values[0].Range(), Name: bv.Values[0].(*parse.Typed[string]).Payload}
			right := bv.Values[1].(*parse.Typed[Expression]).Payload
			rng := loc.Range{Start: start, End: sv.Range().End}
			result = &BinOp{Rng: rng, Left: result, Op: op, Right: right}
		}
		return parse.NewTyped[Expression](v.Range(), result)
	},
)

// exprSuffix is the intermediate value produced by an Access or Apply
// suffix before it's folded onto its receiver.
type exprSuffix struct {
	isApply   bool
	name      string
	nameRange loc.Range
	args      []Expression
}

var accessSuffix = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(seqAccessor, PWS), PIdentifier}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped(v.Range(), exprSuffix{
			name:      mv.Values[1].(*parse.Typed[string]).Payload,
			nameRange: mv.Values[1].Range(),
		})
	},
)

var applySuffix = parse.Map(
	parse.Some(PExpression,
		parse.Exact(seqFuncOpen, PWS),
		parse.Exact(seqFuncClose, PWS),
		parse.Exact(seqFuncSep, PWS),
		PWS,
		parse.AllowEmpty(),
	),
	func(v parse.Value) parse.Value {
		return parse.NewTyped(v.Range(), exprSuffix{isApply: true, args: parse.ExtractTyped[Expression](v.(*parse.MultiValue))})
	},
)

var exprSuffixGuard = parse.OneOf([]parse.Combinator{accessSuffix, applySuffix}, PWS)
var exprSuffixes = parse.Repeat(exprSuffixGuard, exprSuffixGuard, PWS, true)

var binOpSuffix = parse.All([]parse.Combinator{PInfixIdentifier, PExpressionNoInfix}, PWS)
var binOpSuffixes = parse.Repeat(binOpSuffix, binOpSuffix, PWS, true)

// PAccessor is a bare `.field`, a partially applied field projection.
var PAccessor = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(seqAccessor, PWS), PIdentifier}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		name := mv.Values[1].(*parse.Typed[string]).Payload
		return parse.NewTyped[Expression](v.Range(), &Accessor{Rng: v.Range(), Name: name})
	},
)

// PVar refers to a possibly-qualified identifier bound in scope. It
// also covers qualified data constructor references: the parser
// doesn't distinguish `Maybe.Just` from any other dotted name, since
// telling constructors from functions requires knowing the module's
// declarations, which is out of the parser's scope.
var PVar = parse.Map(PQualifiedIdentifier, func(v parse.Value) parse.Value {
	return parse.NewTyped[Expression](v.Range(), &Var{Rng: v.Range(), Name: v.(*parse.Typed[string]).Payload})
})

// PExpressionConst wraps a literal value.
var PExpressionConst = parse.Map(PConst, func(v parse.Value) parse.Value {
	return parse.NewTyped[Expression](v.Range(), &Const{Rng: v.Range(), Value: v.(*parse.Typed[Literal]).Payload})
})

// PInfixVar is a wrapped infix identifier in value position, e.g.
// `(+)`.
var PInfixVar = parse.Map(PWrappedInfixIdentifier, func(v parse.Value) parse.Value {
	return parse.NewTyped[Expression](v.Range(), &InfixVar{Rng: v.Range(), Name: v.(*parse.Typed[string]).Payload})
})

// PIf is `if cond then t else e`.
var PIf = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwIf, PWS), PExpression,
		parse.Exact(kwThen, PWS), PExpression,
		parse.Exact(kwElse, PWS), PExpression,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &If{
			Rng:  v.Range(),
			Cond: mv.Values[1].(*parse.Typed[Expression]).Payload,
			Then: mv.Values[3].(*parse.Typed[Expression]).Payload,
			Else: mv.Values[5].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PLambda is `\(P, P, ...) [: T] -> body`.
var PLambda = parse.Map(
	parse.All([]parse.Combinator{
		parse.Some(PPattern,
			parse.Exact(seqLambdaSignature, PWS),
			parse.Exact(seqFuncClose, PWS),
			parse.Exact(seqFuncSep, PWS),
			PWS,
			parse.AllowEmpty(),
		),
		parse.Optional(PTypeAnnotation, nil, nil),
		parse.Exact(seqLambdaBind, PWS),
		PExpression,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &Lambda{
			Rng:        v.Range(),
			Params:     parse.ExtractTyped[Pattern](mv.Values[0].(*parse.MultiValue)),
			ReturnType: optionalType(mv.Values[1]),
			Body:       mv.Values[3].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PLetFunction is `let name(P, P, ...) [: T] = body <nested>`. The
// parameter list's parentheses are mandatory, unlike a top-level
// function's: that's what tells a let-bound function apart from a
// let-bound pattern that happens to start with an identifier.
var PLetFunction = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwLet, PWS),
		PIdentifier,
		parse.Some(PPattern,
			parse.Exact(seqFuncOpen, PWS),
			parse.Exact(seqFuncClose, PWS),
			parse.Exact(seqFuncSep, PWS),
			PWS,
			parse.AllowEmpty(),
		),
		parse.Optional(PTypeAnnotation, nil, nil),
		parse.Exact(seqFunctionBind, PWS),
		PExpression,
		parse.Optional(parse.Exact(kwIn, PWS), nil, nil),
		PExpression,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &LetFunction{
			Rng:    v.Range(),
			Name:   mv.Values[1].(*parse.Typed[string]).Payload,
			Params: parse.ExtractTyped[Pattern](mv.Values[2].(*parse.MultiValue)),
			Type:   optionalType(mv.Values[3]),
			Body:   mv.Values[5].(*parse.Typed[Expression]).Payload,
			Nested: mv.Values[7].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PLetVar is `let P = value [in] <nested>`. The tail may name `in`
// explicitly or chain straight into the next expression, same as
// PLetFunction.
var PLetVar = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwLet, PWS), PPattern, parse.Exact(seqFunctionBind, PWS), PExpression,
		parse.Optional(parse.Exact(kwIn, PWS), nil, nil),
		PExpression,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &LetVar{
			Rng:     v.Range(),
			Pattern: mv.Values[1].(*parse.Typed[Pattern]).Payload,
			Value:   mv.Values[3].(*parse.Typed[Expression]).Payload,
			Body:    mv.Values[5].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PLet tries the function form first: `name(args)` also parses as a
// data constructor pattern, so PLetVar would otherwise take every
// let-bound function.
var PLet = parse.OneOf([]parse.Combinator{PLetFunction, PLetVar}, PWS)

// PList is `[e, e, ...]`, possibly empty.
var PList = parse.Map(
	parse.Some(PExpression,
		parse.Exact(seqListOpen, PWS),
		parse.Exact(seqListClose, PWS),
		parse.Exact(seqListSep, PWS),
		PWS,
		parse.AllowEmpty(),
	),
	func(v parse.Value) parse.Value {
		return parse.NewTyped[Expression](v.Range(), &List{Rng: v.Range(), Items: parse.ExtractTyped[Expression](v.(*parse.MultiValue))})
	},
)

// PNegate is `-inner`. Its operand is a postfix chain, not a full
// PExpression, so `-f(x)` negates the call rather than trying (and
// failing) to apply the negation's result.
var PNegate = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(seqNegate, PWS), PExpressionNoInfix}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &Negate{Rng: v.Range(), Inner: mv.Values[1].(*parse.Typed[Expression]).Payload})
	},
)

var exprRecordField = parse.Map(
	parse.All([]parse.Combinator{PIdentifier, parse.Exact(seqRecordBind, PWS), PExpression}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped(v.Range(), Field{
			Range:     v.Range(),
			Name:      mv.Values[0].(*parse.Typed[string]).Payload,
			NameRange: mv.Values[0].Range(),
			Value:     mv.Values[2].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PRecord is `{ name = value, ... }`.
var PRecord = parse.Map(
	parse.Some(exprRecordField,
		parse.Exact(seqRecordOpen, PWS),
		parse.Exact(seqRecordClose, PWS),
		parse.Exact(seqRecordSep, PWS),
		PWS,
		parse.AllowEmpty(),
	),
	func(v parse.Value) parse.Value {
		return parse.NewTyped[Expression](v.Range(), &Record{Rng: v.Range(), Fields: extractFields(v.(*parse.MultiValue))})
	},
)

// PUpdate is `{ record | name = value, ... }`. It reuses Some's own
// prefix/suffix slots for the `|` and closing `}`, since the
// receiver expression in between has to be captured on its own,
// unlike the delimiters in every other use of Some in this grammar.
// The receiver is parsed with PExpressionNoInfix rather than the full
// PExpression: `|` is also a valid infix operator identifier, so the
// flat BinOp chain would otherwise consume the update's own `|` as an
// operator and strand the rest of the update unparsed.
var PUpdate = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(seqRecordOpen, PWS),
		PExpressionNoInfix,
		parse.Some(exprRecordField,
			parse.Exact(seqRecordUpdate, PWS),
			parse.Exact(seqRecordClose, PWS),
			parse.Exact(seqRecordSep, PWS),
			PWS,
		),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Expression](v.Range(), &Update{
			Rng:    v.Range(),
			Record: mv.Values[1].(*parse.Typed[Expression]).Payload,
			Fields: extractFields(mv.Values[2].(*parse.MultiValue)),
		})
	},
)

func extractFields(mv *parse.MultiValue) []Field {
	fields := make([]Field, 0, len(mv.Values))
	for _, v := range mv.Values {
		fields = append(fields, v.(*parse.Typed[Field]).Payload)
	}
	return fields
}

var selectCase = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(kwCase, PWS), PPattern, parse.Exact(seqCaseBind, PWS), PExpression}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped(v.Range(), SelectCase{
			Range:      v.Range(),
			Pattern:    mv.Values[1].(*parse.Typed[Pattern]).Payload,
			Expression: mv.Values[3].(*parse.Typed[Expression]).Payload,
		})
	},
)

// PSelect is `select subject case p -> e ... end`, at least one case.
var PSelect = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwSelect, PWS), PExpression,
		parse.Repeat(selectCase, selectCase, PWS, false),
		parse.Exact(kwEnd, PWS),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		cv := mv.Values[2].(*parse.MultiValue)
		cases := make([]SelectCase, 0, len(cv.Values))
		for _, c := range cv.Values {
			cases = append(cases, c.(*parse.Typed[SelectCase]).Payload)
		}
		return parse.NewTyped[Expression](v.Range(), &Select{
			Rng:     v.Range(),
			Subject: mv.Values[1].(*parse.Typed[Expression]).Payload,
			Cases:   cases,
		})
	},
)

// PTuple is `(e, e, ...)`. A single-element tuple and a plain
// parenthesized expression share this grammar: there's no distinct
// grouping token, matching the teacher's expression AST, which has no
// node for bare grouping either.
var PTuple = parse.Map(
	parse.Some(PExpression,
		parse.Exact(seqTupleOpen, PWS),
		parse.Exact(seqTupleClose, PWS),
		parse.Exact(seqTupleSep, PWS),
		PWS,
	),
	func(v parse.Value) parse.Value {
		return parse.NewTyped[Expression](v.Range(), &Tuple{Rng: v.Range(), Items: parse.ExtractTyped[Expression](v.(*parse.MultiValue))})
	},
)

func init() {
	pExpression.Set(pExpressionInfixChain)
	pExpressionAtom.Set(
		PExpressionConst, PIf, PLambda, PLet, PList, PNegate,
		PRecord, PUpdate, PSelect, PTuple, PInfixVar, PAccessor, PVar,
	)
}
