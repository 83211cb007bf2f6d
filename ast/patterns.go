// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/loc"

// A Pattern is a pattern expression: Any, Named, Const, Alias, Cons,
// DataConstructor, List, Record, or Tuple. Every Pattern may carry an
// optional type annotation.
type Pattern interface {
	Range() loc.Range
	patternNode()
}

// PatternAny is `_`, matching anything without binding a name.
type PatternAny struct {
	Rng  loc.Range
	Type Type
}

func (n *PatternAny) Range() loc.Range { return n.Rng }
func (*PatternAny) patternNode()       {}

// PatternNamed binds the matched value to an identifier.
type PatternNamed struct {
	Rng  loc.Range
	Name string
	Type Type
}

func (n *PatternNamed) Range() loc.Range { return n.Rng }
func (*PatternNamed) patternNode()       {}

// PatternConst matches a literal value exactly.
type PatternConst struct {
	Rng   loc.Range
	Value Literal
	Type  Type
}

func (n *PatternConst) Range() loc.Range { return n.Rng }
func (*PatternConst) patternNode()       {}

// PatternAlias is `P as name`: the nested pattern must match, and its
// whole matched value is also bound to Name.
type PatternAlias struct {
	Rng    loc.Range
	Name   string
	Nested Pattern
	Type   Type
}

func (n *PatternAlias) Range() loc.Range { return n.Rng }
func (*PatternAlias) patternNode()       {}

// PatternCons is `head | tail`, matching a non-empty list.
type PatternCons struct {
	Rng  loc.Range
	Head Pattern
	Tail Pattern
	Type Type
}

func (n *PatternCons) Range() loc.Range { return n.Rng }
func (*PatternCons) patternNode()       {}

// PatternDataConstructor matches a data constructor application.
type PatternDataConstructor struct {
	Rng       loc.Range
	Name      string
	NameRange loc.Range
	Values    []Pattern
	Type      Type
}

func (n *PatternDataConstructor) Range() loc.Range { return n.Rng }
func (*PatternDataConstructor) patternNode()       {}

// PatternList matches a list of fixed length, one pattern per item.
type PatternList struct {
	Rng      loc.Range
	Patterns []Pattern
	Type     Type
}

func (n *PatternList) Range() loc.Range { return n.Rng }
func (*PatternList) patternNode()       {}

// A PatternRecordField names a record field to bind by its own name.
type PatternRecordField struct {
	Range loc.Range
	Name  string
}

// PatternRecord matches a record, binding the named fields.
type PatternRecord struct {
	Rng    loc.Range
	Fields []PatternRecordField
	Type   Type
}

func (n *PatternRecord) Range() loc.Range { return n.Rng }
func (*PatternRecord) patternNode()       {}

// PatternTuple matches a tuple of fixed arity.
type PatternTuple struct {
	Rng   loc.Range
	Items []Pattern
	Type  Type
}

func (n *PatternTuple) Range() loc.Range { return n.Rng }
func (*PatternTuple) patternNode()       {}
