// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "testing"

func TestExact(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  bool
		rest  string
	}{
		{name: "match", src: "module foo", want: true, rest: " foo"},
		{name: "mismatch", src: "modulo foo", want: false, rest: "modulo foo"},
		{name: "short input", src: "mod", want: false, rest: "mod"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(test.src)
			v := Exact("module", nil).Consume(r)
			if v.HasValue() != test.want {
				t.Fatalf("HasValue() = %v, want %v", v.HasValue(), test.want)
			}
			rest := test.src[r.Location().Position:]
			if rest != test.rest {
				t.Errorf("remaining = %q, want %q", rest, test.rest)
			}
		})
	}
}

func TestExactSkipsLeadingWhitespace(t *testing.T) {
	r := NewReader("   module")
	v := Exact("module", WhiteSpace())
	result := v.Consume(r)
	if !result.HasValue() {
		t.Fatalf("expected match, got error: %v", result)
	}
	if !r.AtEOF() {
		t.Errorf("expected to consume to EOF, %d bytes remain", len("   module")-r.Location().Position)
	}
}

func TestNumberLiteral(t *testing.T) {
	tests := []struct {
		src       string
		isInteger bool
		integer   int64
		isFloat   bool
		float     float64
	}{
		{src: "42", isInteger: true, integer: 42, isFloat: true, float: 42},
		{src: "3.14", isInteger: false, isFloat: true, float: 3.14},
		{src: "-5", isInteger: true, integer: -5, isFloat: true, float: -5},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			r := NewReader(test.src)
			v := NumberLiteral(nil).Consume(r)
			n, ok := v.(*NumberLiteralValue)
			if !ok {
				t.Fatalf("Consume(%q) = %#v, want *NumberLiteralValue", test.src, v)
			}
			if n.IsInteger != test.isInteger || n.Integer != test.integer {
				t.Errorf("integer reading = (%v, %d), want (%v, %d)", n.IsInteger, n.Integer, test.isInteger, test.integer)
			}
			if n.IsFloat != test.isFloat || n.Float != test.float {
				t.Errorf("float reading = (%v, %v), want (%v, %v)", n.IsFloat, n.Float, test.isFloat, test.float)
			}
		})
	}
}

func TestStringLiteralEscape(t *testing.T) {
	r := NewReader(`"a\"b"`)
	v := StringLiteral(`"`, `"`, `\`, nil).Consume(r)
	s, ok := v.(*SimpleValue)
	if !ok {
		t.Fatalf("Consume = %#v, want *SimpleValue", v)
	}
	if s.Text != `"a\"b"` {
		t.Errorf("Text = %q, want %q", s.Text, `"a\"b"`)
	}
}

func TestStringLiteralUnterminated(t *testing.T) {
	r := NewReader(`"abc`)
	v := StringLiteral(`"`, `"`, `\`, nil).Consume(r)
	if v.HasValue() {
		t.Fatalf("Consume(%q) succeeded, want error", `"abc`)
	}
}

func TestEntityIdentifier(t *testing.T) {
	aggregate := func(acc string, next rune) (isValid, isComplete bool) {
		isLetter := next >= 'a' && next <= 'z'
		if !isLetter {
			return acc != "", true
		}
		return false, false
	}
	r := NewReader("foo+bar")
	v := Entity(aggregate, nil).Consume(r)
	s, ok := v.(*SimpleValue)
	if !ok {
		t.Fatalf("Consume = %#v, want *SimpleValue", v)
	}
	if s.Text != "foo" {
		t.Errorf("Text = %q, want %q", s.Text, "foo")
	}
}

func TestEof(t *testing.T) {
	r := NewReader("  ")
	if v := Eof(WhiteSpace()).Consume(r); !v.HasValue() {
		t.Errorf("Eof failed on all-whitespace input: %v", v)
	}
	r2 := NewReader("x")
	if v := Eof(nil).Consume(r2); v.HasValue() {
		t.Errorf("Eof matched before end of input")
	}
}
