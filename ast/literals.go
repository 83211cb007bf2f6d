// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/loc"

// A Literal is a constant value: Char, Int, Float, String, or Unit.
type Literal interface {
	Range() loc.Range
	literalNode()
}

type LiteralChar struct {
	Rng   loc.Range
	Value rune
}

func (n *LiteralChar) Range() loc.Range { return n.Rng }
func (*LiteralChar) literalNode()       {}

type LiteralInt struct {
	Rng   loc.Range
	Value int64
}

func (n *LiteralInt) Range() loc.Range { return n.Rng }
func (*LiteralInt) literalNode()       {}

type LiteralFloat struct {
	Rng   loc.Range
	Value float64
}

func (n *LiteralFloat) Range() loc.Range { return n.Rng }
func (*LiteralFloat) literalNode()       {}

type LiteralString struct {
	Rng   loc.Range
	Value string
}

func (n *LiteralString) Range() loc.Range { return n.Rng }
func (*LiteralString) literalNode()       {}

type LiteralUnit struct {
	Rng loc.Range
}

func (n *LiteralUnit) Range() loc.Range { return n.Rng }
func (*LiteralUnit) literalNode()       {}
