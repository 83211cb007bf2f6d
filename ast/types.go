// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/loc"

// A Type is a type expression: Function, Named, Variable, Record,
// Tuple, or Unit.
type Type interface {
	Range() loc.Range
	typeNode()
}

// FunctionType is `(T, T, ...) : T`.
type FunctionType struct {
	Rng    loc.Range
	Params []Type
	Return Type
}

func (n *FunctionType) Range() loc.Range { return n.Rng }
func (*FunctionType) typeNode()          {}

// NamedType is a type identifier with optional type arguments, e.g.
// `List[a]`.
type NamedType struct {
	Rng       loc.Range
	Name      string
	NameRange loc.Range
	Args      []Type
}

func (n *NamedType) Range() loc.Range { return n.Rng }
func (*NamedType) typeNode()          {}

// VariableType is a lowercase-initial type variable, e.g. `a`.
type VariableType struct {
	Rng  loc.Range
	Name string
}

func (n *VariableType) Range() loc.Range { return n.Rng }
func (*VariableType) typeNode()          {}

// A RecordTypeField is one named field of a RecordType.
type RecordTypeField struct {
	Name      string
	NameRange loc.Range
	Type      Type
}

// RecordType is `{ name: T, ... }`.
type RecordType struct {
	Rng    loc.Range
	Fields []RecordTypeField
}

func (n *RecordType) Range() loc.Range { return n.Rng }
func (*RecordType) typeNode()          {}

// TupleType is `(T, T, ...)`.
type TupleType struct {
	Rng      loc.Range
	Elements []Type
}

func (n *TupleType) Range() loc.Range { return n.Rng }
func (*TupleType) typeNode()          {}

// UnitType is `()`.
type UnitType struct {
	Rng loc.Range
}

func (n *UnitType) Range() loc.Range { return n.Rng }
func (*UnitType) typeNode()          {}
