// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"testing"

	"github.com/dvoyni/funcc/parse"
)

func TestPModule(t *testing.T) {
	v := PModule.Consume(parse.NewReader("module Main.Sub"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	if got := v.(*parse.Typed[string]).Payload; got != "Main.Sub" {
		t.Errorf("got %q, want %q", got, "Main.Sub")
	}
}

func TestPImport(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		wantModule    string
		wantAlias     string
		wantExposeAll bool
		wantExpose    []string
	}{
		{name: "bare", src: "import List", wantModule: "List"},
		{name: "aliased", src: "import List as L", wantModule: "List", wantAlias: "L"},
		{name: "expose all", src: "import List exposing *", wantModule: "List", wantExposeAll: true},
		{name: "expose list", src: "import List exposing (map, filter)", wantModule: "List", wantExpose: []string{"map", "filter"}},
		{name: "aliased and exposing", src: "import List as L exposing (map)", wantModule: "List", wantAlias: "L", wantExpose: []string{"map"}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			v := PImport.Consume(parse.NewReader(test.src))
			if !v.HasValue() {
				t.Fatalf("Consume(%q) failed: %v", test.src, v)
			}
			imp := v.(*parse.Typed[*Import]).Payload
			if imp.Module != test.wantModule {
				t.Errorf("Module = %q, want %q", imp.Module, test.wantModule)
			}
			if imp.Alias != test.wantAlias {
				t.Errorf("Alias = %q, want %q", imp.Alias, test.wantAlias)
			}
			if imp.ExposeAll != test.wantExposeAll {
				t.Errorf("ExposeAll = %v, want %v", imp.ExposeAll, test.wantExposeAll)
			}
			if len(imp.Expose) != len(test.wantExpose) {
				t.Fatalf("Expose = %v, want %v", imp.Expose, test.wantExpose)
			}
			for i := range test.wantExpose {
				if imp.Expose[i] != test.wantExpose[i] {
					t.Errorf("Expose[%d] = %q, want %q", i, imp.Expose[i], test.wantExpose[i])
				}
			}
		})
	}
}

func TestPImports(t *testing.T) {
	v := PImports.Consume(parse.NewReader("import A import B as Bee"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	imports := parse.ExtractTyped[*Import](v.(*parse.MultiValue))
	if len(imports) != 2 {
		t.Fatalf("len(imports) = %d, want 2", len(imports))
	}
	if imports[0].Module != "A" || imports[1].Module != "B" || imports[1].Alias != "Bee" {
		t.Errorf("imports = %+v, %+v", imports[0], imports[1])
	}
}

func TestPAlias(t *testing.T) {
	tests := []struct {
		name           string
		src            string
		wantName       string
		wantHidden     bool
		wantTypeParams []string
		wantNative     bool
	}{
		{name: "plain", src: "alias Meters = Float", wantName: "Meters"},
		{name: "hidden", src: "alias hidden Meters = Float", wantName: "Meters", wantHidden: true},
		{name: "parametrized", src: "alias Pair[a, b] = (a, b)", wantName: "Pair", wantTypeParams: []string{"a", "b"}},
		{name: "native", src: "alias native Handle", wantName: "Handle", wantNative: true},
		{name: "native with params", src: "alias native Array[a]", wantName: "Array", wantTypeParams: []string{"a"}, wantNative: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			v := PAlias.Consume(parse.NewReader(test.src))
			if !v.HasValue() {
				t.Fatalf("Consume(%q) failed: %v", test.src, v)
			}
			alias := v.(*parse.Typed[Declaration]).Payload.(*Alias)
			if alias.Name != test.wantName {
				t.Errorf("Name = %q, want %q", alias.Name, test.wantName)
			}
			if alias.Hidden != test.wantHidden {
				t.Errorf("Hidden = %v, want %v", alias.Hidden, test.wantHidden)
			}
			if (alias.Type == nil) != test.wantNative {
				t.Errorf("Type == nil is %v, want native=%v", alias.Type == nil, test.wantNative)
			}
			if len(alias.TypeParams) != len(test.wantTypeParams) {
				t.Fatalf("TypeParams = %v, want %v", alias.TypeParams, test.wantTypeParams)
			}
			for i := range test.wantTypeParams {
				if alias.TypeParams[i] != test.wantTypeParams[i] {
					t.Errorf("TypeParams[%d] = %q, want %q", i, alias.TypeParams[i], test.wantTypeParams[i])
				}
			}
		})
	}
}

func TestPInfix(t *testing.T) {
	v := PInfix.Consume(parse.NewReader("infix (+): (left 6) = add"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	infix := v.(*parse.Typed[Declaration]).Payload.(*Infix)
	if infix.Name != "+" {
		t.Errorf("Name = %q, want %q", infix.Name, "+")
	}
	if infix.Associativity != AssocLeft {
		t.Errorf("Associativity = %v, want AssocLeft", infix.Associativity)
	}
	if infix.Precedence != 6 {
		t.Errorf("Precedence = %d, want 6", infix.Precedence)
	}
	if infix.AliasOf != "add" {
		t.Errorf("AliasOf = %q, want %q", infix.AliasOf, "add")
	}
	if infix.Hidden {
		t.Errorf("Hidden = true, want false")
	}
}

func TestPInfixAssociativity(t *testing.T) {
	tests := []struct {
		src  string
		want Associativity
	}{
		{src: "infix (+): (left 6) = add", want: AssocLeft},
		{src: "infix (^): (right 8) = pow", want: AssocRight},
		{src: "infix (==): (non 4) = eq", want: AssocNone},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			v := PInfix.Consume(parse.NewReader(test.src))
			if !v.HasValue() {
				t.Fatalf("Consume(%q) failed: %v", test.src, v)
			}
			infix := v.(*parse.Typed[Declaration]).Payload.(*Infix)
			if infix.Associativity != test.want {
				t.Errorf("Associativity = %v, want %v", infix.Associativity, test.want)
			}
		})
	}
}

func TestPData(t *testing.T) {
	v := PData.Consume(parse.NewReader("type Maybe[a] = None | Some(a)"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	data := v.(*parse.Typed[Declaration]).Payload.(*Data)
	if data.Name != "Maybe" {
		t.Errorf("Name = %q, want %q", data.Name, "Maybe")
	}
	if len(data.TypeParams) != 1 || data.TypeParams[0] != "a" {
		t.Errorf("TypeParams = %v, want [a]", data.TypeParams)
	}
	if len(data.Constructors) != 2 {
		t.Fatalf("len(Constructors) = %d, want 2", len(data.Constructors))
	}
	if data.Constructors[0].Name != "None" || len(data.Constructors[0].Params) != 0 {
		t.Errorf("Constructors[0] = %+v", data.Constructors[0])
	}
	if data.Constructors[1].Name != "Some" || len(data.Constructors[1].Params) != 1 {
		t.Errorf("Constructors[1] = %+v", data.Constructors[1])
	}
}

func TestPDataLeadingBarOptionalOnFirst(t *testing.T) {
	v := PData.Consume(parse.NewReader("type Bool = | True | False"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	data := v.(*parse.Typed[Declaration]).Payload.(*Data)
	if len(data.Constructors) != 2 {
		t.Fatalf("len(Constructors) = %d, want 2", len(data.Constructors))
	}
}

func TestPDataHiddenConstructor(t *testing.T) {
	v := PData.Consume(parse.NewReader("type T = hidden Hide | Show"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	data := v.(*parse.Typed[Declaration]).Payload.(*Data)
	if !data.Constructors[0].Hidden {
		t.Errorf("Constructors[0].Hidden = false, want true")
	}
	if data.Constructors[1].Hidden {
		t.Errorf("Constructors[1].Hidden = true, want false")
	}
}

func TestPFunctionForms(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantName   string
		wantNative bool
		wantParams int
		wantTyped  bool
	}{
		{name: "native function", src: "def native add(a: Int, b: Int): Int", wantName: "add", wantNative: true, wantParams: 2, wantTyped: true},
		{name: "native constant", src: "def native pi: Float", wantName: "pi", wantNative: true, wantTyped: true},
		{name: "function", src: "def add(a, b) = a", wantName: "add", wantParams: 2, wantTyped: true},
		{name: "constant", src: "def one = 1", wantName: "one"},
		{name: "typed constant", src: "def one: Int = 1", wantName: "one", wantTyped: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			v := PFunction.Consume(parse.NewReader(test.src))
			if !v.HasValue() {
				t.Fatalf("Consume(%q) failed: %v", test.src, v)
			}
			fn := v.(*parse.Typed[Declaration]).Payload.(*Function)
			if fn.Name != test.wantName {
				t.Errorf("Name = %q, want %q", fn.Name, test.wantName)
			}
			if fn.Native != test.wantNative {
				t.Errorf("Native = %v, want %v", fn.Native, test.wantNative)
			}
			if len(fn.Params) != test.wantParams {
				t.Errorf("len(Params) = %d, want %d", len(fn.Params), test.wantParams)
			}
			if (fn.Type != nil) != test.wantTyped {
				t.Errorf("Type != nil is %v, want %v", fn.Type != nil, test.wantTyped)
			}
		})
	}
}

func TestPFunctionHidden(t *testing.T) {
	v := PFunction.Consume(parse.NewReader("def hidden one = 1"))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	fn := v.(*parse.Typed[Declaration]).Payload.(*Function)
	if !fn.Hidden {
		t.Errorf("Hidden = false, want true")
	}
}

func TestPFunctionNativeRequiresType(t *testing.T) {
	v := PFunction.Consume(parse.NewReader("def native incomplete(a)"))
	if v.HasValue() {
		t.Fatalf("Consume succeeded on untyped native function, want error")
	}
}

func TestPDeclarations(t *testing.T) {
	src := `alias Meters = Float
infix (+): (left 6) = add
type Bool = True | False
def add(a, b) = a`
	v := PDeclarations.Consume(parse.NewReader(src))
	if !v.HasValue() {
		t.Fatalf("Consume failed: %v", v)
	}
	decls := parse.ExtractTyped[Declaration](v.(*parse.MultiValue))
	if len(decls) != 4 {
		t.Fatalf("len(decls) = %d, want 4", len(decls))
	}
	wantTypes := []Declaration{&Alias{}, &Infix{}, &Data{}, &Function{}}
	for i, want := range wantTypes {
		if got := decls[i]; typeName(got) != typeName(want) {
			t.Errorf("decls[%d] has type %T, want %T", i, got, want)
		}
	}
}

func typeName(d Declaration) string {
	switch d.(type) {
	case *Alias:
		return "Alias"
	case *Infix:
		return "Infix"
	case *Data:
		return "Data"
	case *Function:
		return "Function"
	default:
		return "unknown"
	}
}
