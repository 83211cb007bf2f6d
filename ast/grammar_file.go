// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import "github.com/dvoyni/funcc/parse"

// PFile is an entire source file: a module declaration, its imports,
// and its top-level declarations, followed by end of input.
var PFile = parse.Map(
	parse.All([]parse.Combinator{PModule, PImports, PDeclarations, parse.Eof(PWS)}, PWS),
	func(v parse.Value) parse.Value {
		mv := v.(*parse.MultiValue)
		imports := mv.Values[1].(*parse.MultiValue)
		declarations := mv.Values[2].(*parse.MultiValue)
		return parse.NewTyped(v.Range(), &File{
			Module:       mv.Values[0].(*parse.Typed[string]).Payload,
			ModuleRange:  mv.Values[0].Range(),
			Imports:      parse.ExtractTyped[*Import](imports),
			Declarations: parse.ExtractTyped[Declaration](declarations),
		})
	},
)
