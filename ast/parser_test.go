// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"strings"
	"testing"
)

func TestParseStringFullFile(t *testing.T) {
	src := `module Main

import List exposing (map)

type Bool = True | False

infix (+): (left 6) = add

def add(a, b) = a

def main = if true then 1 else 0
`
	file, err := ParseString("main.pea", src)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if file.Module != "Main" {
		t.Errorf("Module = %q, want %q", file.Module, "Main")
	}
	if len(file.Imports) != 1 || file.Imports[0].Module != "List" {
		t.Fatalf("Imports = %+v", file.Imports)
	}
	if len(file.Declarations) != 4 {
		t.Fatalf("len(Declarations) = %d, want 4", len(file.Declarations))
	}
}

func TestParseStringFromReader(t *testing.T) {
	src := "module Main\n\ndef one = 1\n"
	file, err := Parse("main.pea", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if file.Module != "Main" {
		t.Errorf("Module = %q, want %q", file.Module, "Main")
	}
}

func TestParseStringError(t *testing.T) {
	_, err := ParseString("bad.pea", "not a module")
	if err == nil {
		t.Fatalf("ParseString succeeded on invalid input, want error")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err = %T, want *ParseError", err)
	}
	if !strings.HasPrefix(parseErr.Error(), "bad.pea:") {
		t.Errorf("Error() = %q, want prefix %q", parseErr.Error(), "bad.pea:")
	}
}

func TestParseStringRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseString("bad.pea", "module Main\n\ndef one = 1\ngarbage(")
	if err == nil {
		t.Fatalf("ParseString succeeded despite trailing unparsed input, want error")
	}
}
