// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"testing"

	"github.com/dvoyni/funcc/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPTypeForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Type
	}{
		{name: "named", src: "Int", want: &NamedType{Name: "Int"}},
		{name: "named with args", src: "List[a]", want: &NamedType{Name: "List", Args: []Type{&VariableType{Name: "a"}}}},
		{name: "variable", src: "a", want: &VariableType{Name: "a"}},
		{name: "unit", src: "()", want: &UnitType{}},
		{name: "tuple", src: "(Int, Float)", want: &TupleType{Elements: []Type{&NamedType{Name: "Int"}, &NamedType{Name: "Float"}}}},
		{name: "record", src: "{x: Int, y: Int}", want: &RecordType{Fields: []RecordTypeField{{Name: "x"}, {Name: "y"}}}},
		{name: "function", src: "(Int, Int): Int", want: &FunctionType{Params: []Type{&NamedType{Name: "Int"}, &NamedType{Name: "Int"}}}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			v := PType.Consume(parse.NewReader(test.src))
			if !v.HasValue() {
				t.Fatalf("Consume(%q) failed: %v", test.src, v)
			}
			got := v.(*parse.Typed[Type]).Payload
			if err := checkTypeShape(got, test.want); err != "" {
				t.Errorf(err)
			}
		})
	}
}

func checkTypeShape(got, want Type) string {
	switch w := want.(type) {
	case *NamedType:
		g, ok := got.(*NamedType)
		if !ok {
			return fmtUnexpected(got, want)
		}
		if g.Name != w.Name || len(g.Args) != len(w.Args) {
			return fmtUnexpected(got, want)
		}
		for i := range w.Args {
			if err := checkTypeShape(g.Args[i], w.Args[i]); err != "" {
				return err
			}
		}
	case *VariableType:
		if g, ok := got.(*VariableType); !ok || g.Name != w.Name {
			return fmtUnexpected(got, want)
		}
	case *UnitType:
		if _, ok := got.(*UnitType); !ok {
			return fmtUnexpected(got, want)
		}
	case *TupleType:
		g, ok := got.(*TupleType)
		if !ok || len(g.Elements) != len(w.Elements) {
			return fmtUnexpected(got, want)
		}
		for i := range w.Elements {
			if err := checkTypeShape(g.Elements[i], w.Elements[i]); err != "" {
				return err
			}
		}
	case *RecordType:
		g, ok := got.(*RecordType)
		if !ok || len(g.Fields) != len(w.Fields) {
			return fmtUnexpected(got, want)
		}
		for i := range w.Fields {
			if g.Fields[i].Name != w.Fields[i].Name {
				return fmtUnexpected(got, want)
			}
		}
	case *FunctionType:
		g, ok := got.(*FunctionType)
		if !ok || len(g.Params) != len(w.Params) {
			return fmtUnexpected(got, want)
		}
		for i := range w.Params {
			if err := checkTypeShape(g.Params[i], w.Params[i]); err != "" {
				return err
			}
		}
	}
	return ""
}

func fmtUnexpected(got, want Type) string {
	return "got " + typeDesc(got) + ", want " + typeDesc(want)
}

func typeDesc(t Type) string {
	switch v := t.(type) {
	case *NamedType:
		return "NamedType(" + v.Name + ")"
	case *VariableType:
		return "VariableType(" + v.Name + ")"
	case *UnitType:
		return "UnitType"
	case *TupleType:
		return "TupleType"
	case *RecordType:
		return "RecordType"
	case *FunctionType:
		return "FunctionType"
	default:
		return "unknown"
	}
}

// TestPNamedTypeArgsStructural guards the type-argument panic directly:
// PTypeArguments must hand PNamedType actual Types, not the identifier
// names PTypeParameters produces for declaration sites.
func TestPNamedTypeArgsStructural(t *testing.T) {
	v := PType.Consume(parse.NewReader("List[a, Int]"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	got := v.(*parse.Typed[Type]).Payload
	want := &NamedType{
		Name: "List",
		Args: []Type{&VariableType{Name: "a"}, &NamedType{Name: "Int"}},
	}
	opts := cmp.Options{
		cmpopts.IgnoreFields(NamedType{}, "Rng", "NameRange"),
		cmpopts.IgnoreFields(VariableType{}, "Rng"),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("NamedType mismatch (-want +got):\n%s", diff)
	}
}

func TestPVariableTypeRejectsUppercase(t *testing.T) {
	v := PVariableType.Consume(parse.NewReader("Foo"))
	if v.HasValue() {
		t.Fatalf("Consume succeeded on uppercase identifier, want error")
	}
}

func TestPTypeAnnotation(t *testing.T) {
	v := PTypeAnnotation.Consume(parse.NewReader(": Int"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	named, ok := v.(*parse.Typed[Type]).Payload.(*NamedType)
	if !ok || named.Name != "Int" {
		t.Errorf("got %#v, want NamedType(Int)", v.(*parse.Typed[Type]).Payload)
	}
}
