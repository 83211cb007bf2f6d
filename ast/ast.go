// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package ast defines the abstract syntax tree produced by parsing a
// module. Every node borrows its identifier text from the source
// buffer that produced it; the buffer must outlive the tree.
package ast

import "github.com/dvoyni/funcc/loc"

// A File is the root of a single parsed module.
type File struct {
	Module       string
	ModuleRange  loc.Range
	Imports      []*Import
	Declarations []Declaration
}

// An Import is a single `import` statement.
type Import struct {
	Rng       loc.Range
	Module    string
	Alias     string // empty if absent
	ExposeAll bool
	Expose    []string
}

func (n *Import) Range() loc.Range { return n.Rng }
