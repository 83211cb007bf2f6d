// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"github.com/dvoyni/funcc/loc"
	"github.com/dvoyni/funcc/parse"
)

// PModule is `module Qualified.Identifier`, yielding the identifier
// alone.
var PModule = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(kwModule, PWS), PQualifiedIdentifier}, PWS),
	func(v parse.Value) parse.Value { return v.(*parse.MultiValue).Values[1] },
)

// PImportExposing is either `*`, exposing every name, or a
// parenthesized, comma-separated list of names.
var PImportExposing = parse.OneOf([]parse.Combinator{
	parse.Exact(seqExposingAll, PWS),
	parse.Some(PIdentifier,
		parse.Exact(seqImportListOpen, PWS),
		parse.Exact(seqImportListClose, PWS),
		parse.Exact(seqImportListSep, PWS),
		PWS,
	),
}, PWS)

var pImportAs = parse.All([]parse.Combinator{parse.Exact(kwAs, PWS), PIdentifier}, PWS)
var pImportExposingClause = parse.All([]parse.Combinator{parse.Exact(kwExposing, PWS), PImportExposing}, PWS)

// PImport is `import Qualified.Identifier [as Name] [exposing (...)]`.
var PImport = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwImport, PWS),
		PQualifiedIdentifier,
		parse.Optional(pImportAs, nil, nil),
		parse.Optional(pImportExposingClause, nil, nil),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		imp := &Import{Rng: v.Range(), Module: mv.Values[1].(*parse.Typed[string]).Payload}
		if !mv.Values[2].IsSkipped() {
			asMv := mv.Values[2].(*parse.MultiValue)
			imp.Alias = asMv.Values[1].(*parse.Typed[string]).Payload
		}
		if !mv.Values[3].IsSkipped() {
			exposeMv := mv.Values[3].(*parse.MultiValue)
			expose := exposeMv.Values[1]
			if expose.Kind() == parse.KindExact {
				imp.ExposeAll = true
			} else {
				imp.Expose = parse.ExtractTyped[string](expose.(*parse.MultiValue))
			}
		}
		return parse.NewTyped(v.Range(), imp)
	},
)

// PImports is zero or more import statements.
var PImports = parse.Repeat(parse.Exact(kwImport, PWS), PImport, PWS, true)

// PAlias declares a new name for an existing type, or (with the
// `native` keyword) a type with no definition of its own.
var PAlias = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwAlias, PWS),
		parse.Optional(parse.Exact(kwHidden, PWS), nil, nil),
		parse.Optional(
			parse.Exact(kwNative, PWS),
			parse.All([]parse.Combinator{PIdentifier, parse.Optional(PTypeParameters, nil, nil)}, PWS),
			parse.All([]parse.Combinator{
				PIdentifier, parse.Optional(PTypeParameters, nil, nil),
				parse.Exact(seqAliasBind, PWS), PType,
			}, PWS),
		),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		hidden := !mv.Values[1].IsSkipped()
		inner := mv.Values[2].(*parse.MultiValue)
		name := inner.Values[0].(*parse.Typed[string]).Payload
		nameRange := inner.Values[0].Range()
		var typeParams []string
		if !inner.Values[1].IsSkipped() {
			typeParams = parse.ExtractTyped[string](inner.Values[1].(*parse.MultiValue))
		}
		var typ Type
		if len(inner.Values) >= 4 {
			typ = inner.Values[3].(*parse.Typed[Type]).Payload
		}
		return parse.NewTyped[Declaration](v.Range(), &Alias{
			Rng: v.Range(), Name: name, NameRange: nameRange, Hidden: hidden, TypeParams: typeParams, Type: typ,
		})
	},
)

var pAssociativityKeyword = parse.OneOf([]parse.Combinator{
	parse.Exact(kwLeft, PWS), parse.Exact(kwRight, PWS), parse.Exact(kwNon, PWS),
}, PWS)

// PInfix declares an operator's associativity, precedence, and the
// function it calls, e.g. `infix (+): (left 6) = add`.
var PInfix = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwInfix, PWS),
		parse.Optional(parse.Exact(kwHidden, PWS), nil, nil),
		PWrappedInfixIdentifier,
		parse.Exact(seqInfixTypeDecl, PWS),
		parse.Exact(seqInfixTypeOpen, PWS),
		pAssociativityKeyword,
		parse.NumberLiteral(PWS),
		parse.Exact(seqInfixTypeClose, PWS),
		parse.Exact(seqInfixBind, PWS),
		PIdentifier,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		precedence := mv.Values[6].(*parse.NumberLiteralValue)
		if !precedence.IsInteger {
			return parse.NewError(precedence.Range(), "Expected integer for infix operator precedence")
		}
		assoc := AssocNone
		switch mv.Values[5].(*parse.SimpleValue).Text {
		case kwLeft:
			assoc = AssocLeft
		case kwRight:
			assoc = AssocRight
		}
		return parse.NewTyped[Declaration](v.Range(), &Infix{
			Rng:           v.Range(),
			Name:          mv.Values[2].(*parse.Typed[string]).Payload,
			NameRange:     mv.Values[2].Range(),
			Hidden:        !mv.Values[1].IsSkipped(),
			Associativity: assoc,
			Precedence:    int(precedence.Integer),
			AliasOf:       mv.Values[9].(*parse.Typed[string]).Payload,
		})
	},
)

// PDataConstructorParameter is one parameter of a data constructor, a
// type with an optional leading `name:`. The name and its colon are
// captured together, rather than letting the colon's own Optional
// match stand in for the name: a matched Optional with a dependent
// yields the dependent's result, which here would be the colon token
// rather than the identifier that precedes it.
var PDataConstructorParameter = parse.Map(
	parse.All([]parse.Combinator{
		parse.Optional(parse.All([]parse.Combinator{PIdentifier, parse.Exact(seqTypeAnnotation, PWS)}, PWS), nil, nil),
		PType,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		var name string
		var nameRange loc.Range
		if !mv.Values[0].IsSkipped() {
			named := mv.Values[0].(*parse.MultiValue)
			name = named.Values[0].(*parse.Typed[string]).Payload
			nameRange = named.Values[0].Range()
		}
		return parse.NewTyped(v.Range(), DataConstructorParameter{
			Range: v.Range(), Name: name, NameRange: nameRange, Type: mv.Values[1].(*parse.Typed[Type]).Payload,
		})
	},
)

// PDataConstructorParameters is `(P, P, ...)`, at least one.
var PDataConstructorParameters = parse.Some(
	PDataConstructorParameter,
	parse.Exact(seqFuncOpen, PWS),
	parse.Exact(seqFuncClose, PWS),
	parse.Exact(seqFuncSep, PWS),
	PWS,
)

func extractDataConstructorParameters(mv *parse.MultiValue) []DataConstructorParameter {
	params := make([]DataConstructorParameter, 0, len(mv.Values))
	for _, v := range mv.Values {
		params = append(params, v.(*parse.Typed[DataConstructorParameter]).Payload)
	}
	return params
}

// PDataConstructor is one case of a Data declaration: `[|] [hidden]
// Name [(params)]`. The leading `|` is mandatory on every constructor
// but the first, where it's purely a style choice.
func PDataConstructor(first bool) parse.Combinator {
	var bar parse.Combinator = parse.Exact(seqDataConstructor, PWS)
	if first {
		bar = parse.Optional(parse.Exact(seqDataConstructor, PWS), nil, nil)
	}
	return parse.Map(
		parse.All([]parse.Combinator{
			bar, parse.Optional(parse.Exact(kwHidden, PWS), nil, nil), PIdentifier,
			parse.Optional(PDataConstructorParameters, nil, nil),
		}, PWS),
		func(v parse.Value) parse.Value {
			mv := v.(*parse.MultiValue)
			var params []DataConstructorParameter
			if !mv.Values[3].IsSkipped() {
				params = extractDataConstructorParameters(mv.Values[3].(*parse.MultiValue))
			}
			return parse.NewTyped(v.Range(), DataConstructor{
				Range:     v.Range(),
				Hidden:    !mv.Values[1].IsSkipped(),
				Name:      mv.Values[2].(*parse.Typed[string]).Payload,
				NameRange: mv.Values[2].Range(),
				Params:    params,
			})
		},
	)
}

// PData declares an algebraic data type as one or more constructors.
var PData = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwData, PWS),
		parse.Optional(parse.Exact(kwHidden, PWS), nil, nil),
		PIdentifier,
		parse.Optional(PTypeParameters, nil, nil),
		parse.Exact(seqDataBind, PWS),
		PDataConstructor(true),
		parse.Repeat(parse.Exact(seqDataConstructor, PWS), PDataConstructor(false), PWS, true),
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		var typeParams []string
		if !mv.Values[3].IsSkipped() {
			typeParams = parse.ExtractTyped[string](mv.Values[3].(*parse.MultiValue))
		}
		ctors := []DataConstructor{mv.Values[5].(*parse.Typed[DataConstructor]).Payload}
		for _, c := range mv.Values[6].(*parse.MultiValue).Values {
			ctors = append(ctors, c.(*parse.Typed[DataConstructor]).Payload)
		}
		return parse.NewTyped[Declaration](v.Range(), &Data{
			Rng:          v.Range(),
			Name:         mv.Values[2].(*parse.Typed[string]).Payload,
			NameRange:    mv.Values[2].Range(),
			Hidden:       !mv.Values[1].IsSkipped(),
			TypeParams:   typeParams,
			Constructors: ctors,
		})
	},
)

func patternType(p Pattern) Type {
	switch pp := p.(type) {
	case *PatternAny:
		return pp.Type
	case *PatternNamed:
		return pp.Type
	case *PatternConst:
		return pp.Type
	case *PatternAlias:
		return pp.Type
	case *PatternCons:
		return pp.Type
	case *PatternDataConstructor:
		return pp.Type
	case *PatternList:
		return pp.Type
	case *PatternRecord:
		return pp.Type
	case *PatternTuple:
		return pp.Type
	default:
		return nil
	}
}

// pFunctionNativeDispatch tries a native constant (`name: Type`) before
// a native function (a bare signature).
var pFunctionNativeDispatch = parse.OneOf([]parse.Combinator{
	parse.All([]parse.Combinator{PIdentifier, PTypeAnnotation}, PWS),
	parse.All([]parse.Combinator{PFunctionSignature}, PWS),
}, PWS)

var pFunctionNonNativeDispatch = parse.OneOf([]parse.Combinator{
	parse.All([]parse.Combinator{
		PIdentifier, parse.Optional(PTypeAnnotation, nil, nil), parse.Exact(seqFunctionBind, PWS), PExpression,
	}, PWS),
	parse.All([]parse.Combinator{PFunctionSignature, parse.Exact(seqFunctionBind, PWS), PExpression}, PWS),
}, PWS)

// PFunction declares a top-level function or constant, native or
// otherwise. The four forms land on four distinct element counts (1:
// native function, 2: native constant, 3: function, 4: constant), the
// same arity this grammar's own four-way dispatch is built around.
// `native` requires every parameter and the return value (or the
// constant itself) to carry an explicit type, since there's no body to
// infer one from.
var PFunction = parse.Map(
	parse.All([]parse.Combinator{
		parse.Exact(kwDef, PWS),
		parse.Optional(parse.Exact(kwHidden, PWS), nil, nil),
		parse.Optional(parse.Exact(kwNative, PWS), pFunctionNativeDispatch, pFunctionNonNativeDispatch),
	}, PWS),
	func(v parse.Value) parse.Value {
		top := v.(*parse.MultiValue)
		hidden := !top.Values[1].IsSkipped()
		mv := top.Values[2].(*parse.MultiValue)

		var name string
		var nameRange loc.Range
		var signature FunctionSignature
		var body Expression
		var typ Type

		switch len(mv.Values) {
		case 1: // native function
			signature = mv.Values[0].(*parse.Typed[FunctionSignature]).Payload
			typed := signature.ReturnType != nil
			for _, p := range signature.Params {
				if patternType(p) == nil {
					typed = false
					break
				}
			}
			if !typed {
				return parse.NewError(v.Range(), "Expected type annotation")
			}
		case 2: // native constant
			name = mv.Values[0].(*parse.Typed[string]).Payload
			nameRange = mv.Values[0].Range()
			if mv.Values[1].IsSkipped() {
				return parse.NewError(v.Range(), "Expected type annotation")
			}
			typ = mv.Values[1].(*parse.Typed[Type]).Payload
		case 3: // function
			signature = mv.Values[0].(*parse.Typed[FunctionSignature]).Payload
			body = mv.Values[2].(*parse.Typed[Expression]).Payload
		case 4: // constant
			name = mv.Values[0].(*parse.Typed[string]).Payload
			nameRange = mv.Values[0].Range()
			if !mv.Values[1].IsSkipped() {
				typ = mv.Values[1].(*parse.Typed[Type]).Payload
			}
			body = mv.Values[3].(*parse.Typed[Expression]).Payload
		}

		var params []Pattern
		if name == "" {
			name = signature.Name
			nameRange = signature.NameRange
			params = signature.Params
			paramTypes := make([]Type, len(signature.Params))
			for i, p := range signature.Params {
				paramTypes[i] = patternType(p)
			}
			typ = &FunctionType{Rng: signature.Range, Params: paramTypes, Return: signature.ReturnType}
		}

		return parse.NewTyped[Declaration](v.Range(), &Function{
			Rng: v.Range(), Name: name, NameRange: nameRange, Hidden: hidden,
			Native: body == nil, Params: params, Type: typ, Body: body,
		})
	},
)

// PDeclarations is zero or more top-level declarations, each guarded
// by the keyword that identifies its kind.
var PDeclarations = parse.Repeat(
	parse.OneOf([]parse.Combinator{
		parse.Exact(kwAlias, PWS), parse.Exact(kwInfix, PWS), parse.Exact(kwData, PWS), parse.Exact(kwDef, PWS),
	}, PWS),
	parse.OneOf([]parse.Combinator{PAlias, PInfix, PData, PFunction}, PWS),
	PWS,
	true,
)
