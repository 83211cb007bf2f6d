// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/loc"

// An Expression is any value-producing expression node.
type Expression interface {
	Range() loc.Range
	expressionNode()
}

// Const wraps a literal value.
type Const struct {
	Rng   loc.Range
	Value Literal
}

func (n *Const) Range() loc.Range { return n.Rng }
func (*Const) expressionNode()    {}

// Var refers to a (possibly qualified) identifier bound in scope.
type Var struct {
	Rng  loc.Range
	Name string
}

func (n *Var) Range() loc.Range { return n.Rng }
func (*Var) expressionNode()    {}

// Accessor is a bare `.field` reference, used as a partially applied
// field projection.
type Accessor struct {
	Rng  loc.Range
	Name string
}

func (n *Accessor) Range() loc.Range { return n.Rng }
func (*Accessor) expressionNode()    {}

// Access is `record.field`.
type Access struct {
	Rng       loc.Range
	Record    Expression
	Name      string
	NameRange loc.Range
}

func (n *Access) Range() loc.Range { return n.Rng }
func (*Access) expressionNode()    {}

// Apply is a function call `callee(args...)`.
type Apply struct {
	Rng    loc.Range
	Callee Expression
	Args   []Expression
}

func (n *Apply) Range() loc.Range { return n.Rng }
func (*Apply) expressionNode()    {}

// InfixVar is a wrapped infix identifier used in value position, e.g.
// `(+)`, or as the operator of a BinOp.
type InfixVar struct {
	Rng  loc.Range
	Name string
}

func (n *InfixVar) Range() loc.Range { return n.Rng }
func (*InfixVar) expressionNode()    {}

// BinOp is `left op right`. The tree is flat: parsing never rebuilds
// precedence, it only records the chain as written.
type BinOp struct {
	Rng   loc.Range
	Left  Expression
	Op    *InfixVar
	Right Expression
}

func (n *BinOp) Range() loc.Range { return n.Rng }
func (*BinOp) expressionNode()    {}

// If is `if cond then t else e`.
type If struct {
	Rng  loc.Range
	Cond Expression
	Then Expression
	Else Expression
}

func (n *If) Range() loc.Range { return n.Rng }
func (*If) expressionNode()    {}

// Lambda is an anonymous function `\(params) : ReturnType -> body`.
// ReturnType is nil when omitted.
type Lambda struct {
	Rng        loc.Range
	Params     []Pattern
	Body       Expression
	ReturnType Type
}

func (n *Lambda) Range() loc.Range { return n.Rng }
func (*Lambda) expressionNode()    {}

// LetVar is `let pattern = value <body>`, binding a pattern for the
// rest of the enclosing let chain.
type LetVar struct {
	Rng     loc.Range
	Pattern Pattern
	Value   Expression
	Body    Expression
}

func (n *LetVar) Range() loc.Range { return n.Rng }
func (*LetVar) expressionNode()    {}

// LetFunction is `let name(params) = body <nested>`, binding a local
// function for the rest of the enclosing let chain.
type LetFunction struct {
	Rng    loc.Range
	Name   string
	Params []Pattern
	Body   Expression
	Type   Type // optional
	Nested Expression
}

func (n *LetFunction) Range() loc.Range { return n.Rng }
func (*LetFunction) expressionNode()    {}

// List is `[item, item, ...]`.
type List struct {
	Rng   loc.Range
	Items []Expression
}

func (n *List) Range() loc.Range { return n.Rng }
func (*List) expressionNode()    {}

// Negate is `-inner`.
type Negate struct {
	Rng   loc.Range
	Inner Expression
}

func (n *Negate) Range() loc.Range { return n.Rng }
func (*Negate) expressionNode()    {}

// A Field is one `name = value` pair inside a Record or Update.
type Field struct {
	Range     loc.Range
	Name      string
	NameRange loc.Range
	Value     Expression
}

// Record is `{ name = value, ... }`.
type Record struct {
	Rng    loc.Range
	Fields []Field
}

func (n *Record) Range() loc.Range { return n.Rng }
func (*Record) expressionNode()    {}

// A SelectCase is one `case pattern -> expression` arm of a Select.
type SelectCase struct {
	Range      loc.Range
	Pattern    Pattern
	Expression Expression
}

// Select is `select subject case p1 -> e1 case p2 -> e2 ... end`.
type Select struct {
	Rng     loc.Range
	Subject Expression
	Cases   []SelectCase
}

func (n *Select) Range() loc.Range { return n.Rng }
func (*Select) expressionNode()    {}

// Tuple is `(item, item, ...)`.
type Tuple struct {
	Rng   loc.Range
	Items []Expression
}

func (n *Tuple) Range() loc.Range { return n.Rng }
func (*Tuple) expressionNode()    {}

// Update is `{ record | name = value, ... }`.
type Update struct {
	Rng    loc.Range
	Record Expression
	Fields []Field
}

func (n *Update) Range() loc.Range { return n.Rng }
func (*Update) expressionNode()    {}
