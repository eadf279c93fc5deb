// Package lexer drives a compiled automaton over a character stream and
// splits it into tokens using maximal munch: each token is the longest
// lexeme matchable at the current position, ties between rules broken by
// declaration order at compile time.
package lexer

import (
	"fmt"
	"io"
	"unicode"

	"github.com/mkarev/lexgen"
	"github.com/mkarev/lexgen/machine"
)

// Error codes used by lexer:
const (
	// NoTokenError is returned when no rule matches a non-empty prefix of the
	// remaining input.
	NoTokenError = lexgen.RuntimeErrors + iota

	// MalformedInputError is returned when the input contains a character
	// outside the automaton alphabet.
	MalformedInputError
)

func noTokenError(name string, c rune, line, col int) *lexgen.Error {
	return lexgen.NewError(NoTokenError, fmt.Sprintf("no token matches %q", c), name, line, col)
}

func malformedInputError(name string, c rune, line, col int) *lexgen.Error {
	return lexgen.NewError(MalformedInputError, fmt.Sprintf("unsupported non-ASCII character %q", c), name, line, col)
}

// Lexer tokenizes one character stream. Characters are buffered as they are
// read, so the stream is consumed exactly once regardless of backtracking.
type Lexer struct {
	dfa    *machine.Dfa
	name   string
	input  io.RuneReader
	buf    []rune
	cursor int
	line   int
	col    int
	srcEof bool
}

// New creates a new Lexer. name labels the input in error messages and may
// be empty.
func New(name string, d *machine.Dfa, input io.RuneReader) *Lexer {
	return &Lexer{dfa: d, name: name, input: input, line: 1, col: 1}
}

// Next returns the next token of the input.
//
// The automaton is run from the current position as far as it has
// transitions, remembering the last accepting state passed; the remembered
// lexeme is the token, and scanning resumes right after it. Entering a state
// that accepts an ignore-rule match discards the characters consumed so far
// and restarts matching from the entry state. Once the input is exhausted,
// and on every call after that, Next returns a token of type EoiTokenType;
// a final partial match with no accepting state passed is treated the same
// way.
//
// Returns nil and an error when the stream fails, when no rule matches
// (NoTokenError), or on a character outside the automaton alphabet
// (MalformedInputError). The position does not advance on error; Skip
// discards the offending character.
func (l *Lexer) Next() (*Token, error) {
	start := l.cursor
	state := l.dfa.Entry
	lastTag := 0
	lastEnd := -1
	pos := start

	for {
		c, has, e := l.charAt(pos)
		if e != nil {
			ee, isLexErr := e.(*lexgen.Error)
			if isLexErr && ee.Code == MalformedInputError && lastEnd >= 0 {
				// The checkpointed lexeme is complete; the bad character
				// is reported once it becomes the next token start.
				break
			}
			return nil, e
		}
		if !has {
			break
		}
		next := l.dfa.Step(state, c)
		if next == machine.NoState {
			break
		}
		state = next
		pos++
		tag, accepting := l.dfa.Tag(state)
		if !accepting {
			continue
		}
		if tag == machine.IgnoreTag {
			l.advance(pos)
			start = l.cursor
			state = l.dfa.Entry
			lastEnd = -1
			continue
		}
		lastTag = tag
		lastEnd = pos
	}

	if lastEnd < 0 {
		if pos >= len(l.buf) && l.srcEof {
			return EoiToken(l.line, l.col), nil
		}
		line, col := l.posAt(pos)
		return nil, noTokenError(l.name, l.buf[pos], line, col)
	}

	text := string(l.buf[start:lastEnd])
	line, col := l.line, l.col
	l.advance(lastEnd)
	return NewToken(lastTag, l.dfa.TagNames[lastTag], text, line, col), nil
}

// Skip discards the character the last error reported so that tokenization
// can resume past it. Returns false when there is no pending character.
func (l *Lexer) Skip() bool {
	if l.cursor >= len(l.buf) {
		return false
	}
	l.advance(l.cursor + 1)
	return true
}

func (l *Lexer) charAt(i int) (c rune, has bool, e error) {
	for len(l.buf) <= i && !l.srcEof {
		c, _, e = l.input.ReadRune()
		if e == io.EOF {
			l.srcEof = true
			break
		}
		if e != nil {
			return 0, false, e
		}
		l.buf = append(l.buf, c)
	}
	if i >= len(l.buf) {
		return 0, false, nil
	}

	c = l.buf[i]
	if c > unicode.MaxASCII {
		line, col := l.posAt(i)
		return 0, false, malformedInputError(l.name, c, line, col)
	}
	return c, true, nil
}

func (l *Lexer) advance(to int) {
	for _, c := range l.buf[l.cursor:to] {
		if c == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.cursor = to
}

func (l *Lexer) posAt(i int) (line, col int) {
	line, col = l.line, l.col
	for _, c := range l.buf[l.cursor:i] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}
