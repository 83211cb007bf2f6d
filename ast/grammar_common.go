// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"strings"

	"github.com/dvoyni/funcc/parse"
)

// Keywords.
const (
	kwModule   = "module"
	kwImport   = "import"
	kwAs       = "as"
	kwExposing = "exposing"
	kwInfix    = "infix"
	kwAlias    = "alias"
	kwData     = "type"
	kwDef      = "def"
	kwHidden   = "hidden"
	kwNative   = "native"
	kwLeft     = "left"
	kwRight    = "right"
	kwNon      = "non"
	kwIf       = "if"
	kwThen     = "then"
	kwElse     = "else"
	kwLet      = "let"
	kwIn       = "in"
	kwSelect   = "select"
	kwCase     = "case"
	kwEnd      = "end"
)

// Punctuation sequences.
const (
	seqComment             = "//"
	seqCommentStart        = "/*"
	seqCommentEnd          = "*/"
	seqExposingAll         = "*"
	seqImportListOpen      = "("
	seqImportListClose     = ")"
	seqImportListSep       = ","
	seqAliasBind           = "="
	seqTypeParametersOpen  = "["
	seqTypeParametersClose = "]"
	seqTypeParametersSep   = ","
	seqUnitType            = "()"
	seqTupleOpen           = "("
	seqTupleClose          = ")"
	seqTupleSep            = ","
	seqListOpen            = "["
	seqListClose           = "]"
	seqListSep             = ","
	seqTypeAnnotation      = ":"
	seqRecordOpen          = "{"
	seqRecordClose         = "}"
	seqRecordSep           = ","
	seqRecordBind          = "="
	seqRecordUpdate        = "|"
	seqFuncOpen            = "("
	seqFuncClose           = ")"
	seqFuncSep             = ","
	seqInfixOpen           = "("
	seqInfixClose          = ")"
	seqInfixTypeDecl       = ":"
	seqInfixTypeOpen       = "("
	seqInfixTypeClose      = ")"
	seqInfixBind           = "="
	seqDataBind            = "="
	seqDataConstructor     = "|"
	seqFunctionBind        = "="
	seqPatternAny          = "_"
	seqCons                = "|"
	seqStringPrefix        = "\""
	seqStringSuffix        = "\""
	seqStringEscape        = "\\"
	seqCharPrefix          = "'"
	seqCharSuffix          = "'"
	seqCharEscape          = "\\"
	seqAccessor            = "."
	seqLambdaSignature     = "\\("
	seqLambdaBind          = "->"
	seqNegate              = "-"
	seqCaseBind            = "->"
)

const (
	smbIdentifierSeparator = '.'
	smbIdentifier          = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_`"
	smbIdentifierNotFirst  = "0123456789_`"
	smbInfixIdentifier     = "!#$%&*+-/:;<=>?^|~`"
)

// PWS is the ambient whitespace/comment eater shared by every rule in
// the grammar.
var PWS = parse.IgnoreAny(
	parse.WhiteSpace(),
	parse.SingleLineComment(seqComment, nil),
	parse.MultiLineComment(seqCommentStart, seqCommentEnd, nil),
)

func asIdentifierValue(v parse.Value) string {
	return v.(*parse.SimpleValue).Text
}

// PQualifiedIdentifier matches dot-separated identifier segments, each
// obeying the same first-character rule as a plain identifier.
var PQualifiedIdentifier = parse.Map(
	parse.Entity(qualifiedIdentifierAggregator, PWS),
	func(v parse.Value) parse.Value {
		return parse.NewTyped(v.Range(), asIdentifierValue(v))
	},
)

func qualifiedIdentifierAggregator(acc string, next rune) (isValid, isComplete bool) {
	isComplete = next != smbIdentifierSeparator && !strings.ContainsRune(smbIdentifier, next)
	if !isComplete {
		return false, false
	}
	if acc == "" {
		return false, true
	}
	isValid = true
	for i := 0; i < len(acc); i++ {
		if i == 0 || acc[i] == smbIdentifierSeparator {
			if i+1 >= len(acc) {
				continue
			}
			if strings.IndexByte(smbIdentifierNotFirst, acc[i+1]) != -1 {
				isValid = false
				break
			}
		}
	}
	return isValid, true
}

// PIdentifier matches a single, unqualified identifier segment.
var PIdentifier = parse.Map(
	parse.Entity(identifierAggregator, PWS),
	func(v parse.Value) parse.Value {
		return parse.NewTyped(v.Range(), asIdentifierValue(v))
	},
)

func identifierAggregator(acc string, next rune) (isValid, isComplete bool) {
	isComplete = !strings.ContainsRune(smbIdentifier, next)
	if !isComplete {
		return false, false
	}
	isValid = acc != "" && strings.IndexByte(smbIdentifierNotFirst, acc[0]) == -1
	return isValid, true
}

// PInfixIdentifier matches a bare run of infix operator characters.
var PInfixIdentifier = parse.Map(
	parse.Entity(infixIdentifierAggregator, PWS),
	func(v parse.Value) parse.Value {
		return parse.NewTyped(v.Range(), asIdentifierValue(v))
	},
)

func infixIdentifierAggregator(acc string, next rune) (isValid, isComplete bool) {
	isComplete = !strings.ContainsRune(smbInfixIdentifier, next)
	if !isComplete {
		return false, false
	}
	isValid = acc != ""
	return isValid, true
}

// PWrappedInfixIdentifier matches `(op)`, yielding the operator text
// without its parentheses.
var PWrappedInfixIdentifier = parse.Map(
	parse.Entity(wrappedInfixIdentifierAggregator, PWS),
	func(v parse.Value) parse.Value {
		acc := asIdentifierValue(v)
		return parse.NewTyped(v.Range(), acc[1:len(acc)-1])
	},
)

func wrappedInfixIdentifierAggregator(acc string, next rune) (isValid, isComplete bool) {
	isComplete = strings.HasSuffix(acc, ")") ||
		(!strings.ContainsRune(smbInfixIdentifier, next) && next != '(' && next != ')')
	if !isComplete {
		return false, false
	}
	isValid = len(acc) >= 2 && strings.HasPrefix(acc, "(") && strings.HasSuffix(acc, ")") &&
		!strings.ContainsRune(acc[1:], '(')
	return isValid, true
}

// PTypeParameters matches a bracketed, comma-separated list of type
// parameter names: `[a, b, ...]`.
var PTypeParameters = parse.Some(
	PIdentifier,
	parse.Exact(seqTypeParametersOpen, PWS),
	parse.Exact(seqTypeParametersClose, PWS),
	parse.Exact(seqTypeParametersSep, PWS),
	PWS,
)

// PConstChar matches a single-quoted character literal.
var PConstChar = parse.Map(
	parse.StringLiteral(seqCharPrefix, seqCharSuffix, seqCharEscape, PWS),
	func(v parse.Value) parse.Value {
		acc := v.(*parse.SimpleValue).Text
		acc = acc[len(seqCharPrefix) : len(acc)-len(seqCharSuffix)]
		runes := []rune(acc)
		if len(runes) != 1 {
			return parse.NewError(v.Range(), "Expected single character")
		}
		return parse.NewTyped[Literal](v.Range(), &LiteralChar{Rng: v.Range(), Value: runes[0]})
	},
)

// PConstInt matches a number literal that also reads as an integer.
var PConstInt = parse.Map(
	parse.NumberLiteral(PWS),
	func(v parse.Value) parse.Value {
		n := v.(*parse.NumberLiteralValue)
		if !n.IsInteger {
			return parse.NewError(v.Range(), "Expected integer")
		}
		return parse.NewTyped[Literal](v.Range(), &LiteralInt{Rng: v.Range(), Value: n.Integer})
	},
)

// PConstFloat matches a number literal that also reads as a float.
var PConstFloat = parse.Map(
	parse.NumberLiteral(PWS),
	func(v parse.Value) parse.Value {
		n := v.(*parse.NumberLiteralValue)
		if !n.IsFloat {
			return parse.NewError(v.Range(), "Expected float")
		}
		return parse.NewTyped[Literal](v.Range(), &LiteralFloat{Rng: v.Range(), Value: n.Float})
	},
)

// PConstString matches a double-quoted string literal.
var PConstString = parse.Map(
	parse.StringLiteral(seqStringPrefix, seqStringSuffix, seqStringEscape, PWS),
	func(v parse.Value) parse.Value {
		acc := v.(*parse.SimpleValue).Text
		acc = acc[len(seqStringPrefix) : len(acc)-len(seqStringSuffix)]
		return parse.NewTyped[Literal](v.Range(), &LiteralString{Rng: v.Range(), Value: acc})
	},
)

// PConstUnit matches the literal `()`.
var PConstUnit = parse.Map(
	parse.Exact(seqUnitType, PWS),
	func(v parse.Value) parse.Value {
		return parse.NewTyped[Literal](v.Range(), &LiteralUnit{Rng: v.Range()})
	},
)

// PConst is any constant literal.
var PConst = parse.OneOf([]parse.Combinator{PConstChar, PConstFloat, PConstInt, PConstString, PConstUnit}, PWS)
