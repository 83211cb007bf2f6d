// Copyright © 2020 The Pea Authors under an MIT-style license.

package ast

import (
	"io"
	"io/ioutil"

	"github.com/dvoyni/funcc/loc"
	"github.com/dvoyni/funcc/parse"
)

// A ParseError reports where parsing failed and why, formatted as
// path:line:col: message (path:line:col-line:col: message when the
// error's range spans more than one position).
type ParseError struct {
	Path    string
	Range   loc.Range
	Message string
}

func (e *ParseError) Error() string {
	return e.Range.At(e.Path).String() + ": " + e.Message
}

// Parse parses a single module from r. path is used only to decorate
// any resulting ParseError; pass "" if the source has no file of its
// own.
func Parse(path string, r io.Reader) (*File, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(path, string(data))
}

// ParseString parses a single module from src.
func ParseString(path, src string) (*File, error) {
	reader := parse.NewReader(src)
	result := PFile.Consume(reader)
	if result.HasError() {
		errVal := result.(*parse.ErrorValue)
		return nil, &ParseError{Path: path, Range: errVal.Range(), Message: errVal.Message}
	}
	return result.(*parse.Typed[*File]).Payload, nil
}
