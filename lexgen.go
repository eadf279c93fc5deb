/*
Package lexgen is a lexical analyzer generator.

It compiles a declarative token-definition language (named character classes
plus regular-expression token patterns) into a deterministic finite automaton,
and ships a small runtime that drives the automaton over any character stream
using maximal munch.

Consists of subpackages:
  - cmd/lexgen: console utility converting a token definition file to a serialized automaton plus a driver program skeleton;
  - langdef: compiles a token definition file to an automaton: scanning, parsing, NFA construction, determinization;
  - machine: defines the serializable automaton document, the sole artifact crossing the generation boundary;
  - lexer: the tokenizing runtime consuming a machine.Dfa;
  - source: defines source files used by langdef.

Typical usage is:

1. Describe the tokens of your language in a definition file: character
classes, token rules, ignore rules.

2. Compile the definition using either the langdef subpackage "on the fly"
or the lexgen utility to persist the automaton as JSON.

3. Create a lexer.Lexer for the compiled automaton and pull tokens from any
character source.
*/
package lexgen

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	DefErrors     = 1   // used by langdef
	RuntimeErrors = 101 // used by lexer
)

// Error is the error type used by lexgen subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// langdef tokens implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
