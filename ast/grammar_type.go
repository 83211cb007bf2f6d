// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"unicode"

	"github.com/dvoyni/funcc/parse"
)

// PType is declared as a ForwardDeclaration because its alternatives
// (function/named/variable/record/tuple/unit types) recur into PType
// themselves.
var pType = &parse.ForwardDeclaration{}

// PType is any type expression.
var PType parse.Combinator = pType

// PTypeAnnotation is `: Type`, yielding the Type alone.
var PTypeAnnotation = parse.Map(
	parse.All([]parse.Combinator{parse.Exact(seqTypeAnnotation, PWS), PType}, PWS),
	func(v parse.Value) parse.Value {
		return v.(*parse.MultiValue).Values[1]
	},
)

// PFunctionType is `(T, T, ...) : T`.
var PFunctionType = parse.Map(
	parse.All([]parse.Combinator{
		parse.Some(PType,
			parse.Exact(seqFuncOpen, PWS),
			parse.Exact(seqFuncClose, PWS),
			parse.Exact(seqFuncSep, PWS),
			PWS,
		),
		PTypeAnnotation,
	}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		params := parse.ExtractTyped[Type](mv.Values[0].(*parse.MultiValue))
		ret := mv.Values[1].(*parse.Typed[Type]).Payload
		return parse.NewTyped[Type](v.Range(), &FunctionType{Rng: v.Range(), Params: params, Return: ret})
	},
)

// PTypeArguments matches a bracketed, comma-separated list of type
// arguments applied to a named type: `[T, T, ...]`. Unlike
// PTypeParameters, which declares parameter names, these are full
// type expressions.
var PTypeArguments = parse.Some(
	PType,
	parse.Exact(seqTypeParametersOpen, PWS),
	parse.Exact(seqTypeParametersClose, PWS),
	parse.Exact(seqTypeParametersSep, PWS),
	PWS,
)

// PNamedType is an identifier with optional bracketed type arguments.
var PNamedType = parse.Map(
	parse.All([]parse.Combinator{PIdentifier, parse.Optional(PTypeArguments, nil, nil)}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		name := mv.Values[0].(*parse.Typed[string]).Payload
		var typeArgs []Type
		if !mv.Values[1].IsSkipped() {
			typeArgs = parse.ExtractTyped[Type](mv.Values[1].(*parse.MultiValue))
		}
		return parse.NewTyped[Type](v.Range(), &NamedType{
			Rng:       v.Range(),
			Name:      name,
			NameRange: mv.Values[0].Range(),
			Args:      typeArgs,
		})
	},
)

// PVariableType is a lowercase-initial identifier standing for a type
// variable.
var PVariableType = parse.Map(PIdentifier, func(v parse.Value) parse.Value {
	name := v.(*parse.Typed[string]).Payload
	if len(name) == 0 || !unicode.IsLower([]rune(name)[0]) {
		return parse.NewError(v.Range(), "Expected lowercase identifier for variable type")
	}
	return parse.NewTyped[Type](v.Range(), &VariableType{Rng: v.Range(), Name: name})
})

// PRecordType is `{ name: T, ... }`.
var PRecordType = parse.Map(
	parse.Some(
		parse.All([]parse.Combinator{PIdentifier, PTypeAnnotation}, PWS),
		parse.Exact(seqRecordOpen, PWS),
		parse.Exact(seqRecordClose, PWS),
		parse.Exact(seqRecordSep, PWS),
		PWS,
	),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		fields := make([]RecordTypeField, 0, len(mv.Values))
		for _, item := range mv.Values {
			fmv := item.(*parse.MultiValue)
			fields = append(fields, RecordTypeField{
				Name:      fmv.Values[0].(*parse.Typed[string]).Payload,
				NameRange: fmv.Values[0].Range(),
				Type:      fmv.Values[1].(*parse.Typed[Type]).Payload,
			})
		}
		return parse.NewTyped[Type](v.Range(), &RecordType{Rng: v.Range(), Fields: fields})
	},
)

// PTupleType is `(T, T, ...)`.
var PTupleType = parse.Map(
	parse.Some(PType,
		parse.Exact(seqTupleOpen, PWS),
		parse.Exact(seqTupleClose, PWS),
		parse.Exact(seqTupleSep, PWS),
		PWS,
	),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		return parse.NewTyped[Type](v.Range(), &TupleType{
			Rng:      v.Range(),
			Elements: parse.ExtractTyped[Type](mv),
		})
	},
)

// PUnitType is `()`.
var PUnitType = parse.Map(
	parse.Exact(seqUnitType, PWS),
	func(v parse.Value) parse.Value {
		return parse.NewTyped[Type](v.Range(), &UnitType{Rng: v.Range()})
	},
)

func init() {
	pType.Set(PFunctionType, PVariableType, PNamedType, PRecordType, PTupleType, PUnitType)
}
