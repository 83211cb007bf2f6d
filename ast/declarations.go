// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/loc"

// A Declaration is a top-level module member: an Alias, Infix, Data
// or Function.
type Declaration interface {
	Range() loc.Range
	declarationNode()
}

// Alias declares a new name for an existing type, or (when Type is
// nil) a native type with no Nar-level definition.
type Alias struct {
	Rng        loc.Range
	Name       string
	NameRange  loc.Range
	Hidden     bool
	TypeParams []string
	Type       Type // nil for a native alias
}

func (n *Alias) Range() loc.Range { return n.Rng }
func (*Alias) declarationNode()   {}

// Associativity is how a chain of the same infix operator groups.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
	AssocNone
)

// Infix declares the associativity and precedence of an operator and
// binds it to the function it calls.
type Infix struct {
	Rng           loc.Range
	Name          string
	NameRange     loc.Range
	Hidden        bool
	Associativity Associativity
	Precedence    int
	AliasOf       string
}

func (n *Infix) Range() loc.Range { return n.Rng }
func (*Infix) declarationNode()   {}

// A DataConstructorParameter is one parameter of a data constructor.
// Name is empty when the parameter is unnamed.
type DataConstructorParameter struct {
	Range     loc.Range
	Name      string
	NameRange loc.Range
	Type      Type
}

// A DataConstructor is one case of a Data declaration.
type DataConstructor struct {
	Range     loc.Range
	Hidden    bool
	Name      string
	NameRange loc.Range
	Params    []DataConstructorParameter
}

// Data declares an algebraic data type as one or more constructors.
type Data struct {
	Rng          loc.Range
	Name         string
	NameRange    loc.Range
	Hidden       bool
	TypeParams   []string
	Constructors []DataConstructor
}

func (n *Data) Range() loc.Range { return n.Rng }
func (*Data) declarationNode()   {}

// Function declares a top-level function or constant. Native
// functions and constants have Body == nil and a required Type;
// every other form requires Body.
type Function struct {
	Rng       loc.Range
	Name      string
	NameRange loc.Range
	Hidden    bool
	Native    bool
	Params    []Pattern
	Type      Type // optional unless Native
	Body      Expression
}

func (n *Function) Range() loc.Range { return n.Rng }
func (*Function) declarationNode()   {}
