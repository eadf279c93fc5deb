package langdef

import (
	"github.com/mkarev/lexgen"
)

// Error codes used by langdef:
const (
	UnexpectedEofError = lexgen.DefErrors + iota
	UnexpectedTokenError
	InvalidIdentifierError
	UndefinedClassError
	DuplicateDeclarationError
	BadRangeError
	BadCharError
	UnterminatedEscapeError
)

func eofError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, UnexpectedEofError, "unexpected end of input")
}

func unexpectedTokenError(t *token, expected string) *lexgen.Error {
	if t.kind == eoiTok {
		return eofError(t)
	}
	got := t.kind.String()
	if t.kind == charTok || t.kind == identTok {
		got += " " + quote(t.text)
	}
	return lexgen.FormatErrorPos(t, UnexpectedTokenError, "unexpected %s, expecting %s", got, expected)
}

func invalidIdentifierError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, InvalidIdentifierError, "invalid identifier %s", quote(t.text))
}

func undefinedClassError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, UndefinedClassError, "undefined class [%s]", t.text)
}

func duplicateClassError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, DuplicateDeclarationError, "class %s already declared", quote(t.text))
}

func duplicateRuleError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, DuplicateDeclarationError, "token %s already declared", quote(t.text))
}

func badRangeError(t *token, lo, hi rune) *lexgen.Error {
	return lexgen.FormatErrorPos(t, BadRangeError, "invalid range %q-%q: start must not exceed end", lo, hi)
}

func badCharError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, BadCharError, "unsupported non-ASCII character %q", t.char)
}

func unterminatedEscapeError(t *token) *lexgen.Error {
	return lexgen.FormatErrorPos(t, UnterminatedEscapeError, "unterminated escape sequence")
}

func quote(s string) string {
	return "\"" + s + "\""
}
