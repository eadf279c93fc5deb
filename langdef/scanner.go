package langdef

import (
	"unicode/utf8"

	"github.com/mkarev/lexgen/source"
)

// scanMode selects which lexical sublanguage the scanner recognizes.
// The parser switches modes as it enters and leaves pattern and set bodies.
type scanMode int

const (
	// aggregateMode is used between declarations: comments, keywords, identifiers.
	aggregateMode scanMode = iota

	// symbolMode is used inside /.../ pattern bodies and [...] set bodies:
	// every character is significant, escapes are decoded.
	symbolMode
)

var escapeChars = map[rune]rune{
	'n': '\n',
	't': '\t',
	'f': '\f',
	'v': '\v',
	'r': '\r',
}

type scanner struct {
	src     *source.Source
	content []byte
	pos     int
}

func newScanner(src *source.Source) *scanner {
	return &scanner{src: src, content: src.Content()}
}

func (s *scanner) token(kind tokenKind, text string, char rune, pos int) *token {
	return &token{kind: kind, text: text, char: char, src: s.src, pos: pos}
}

// next returns the next definition-file token in the given mode.
// Both modes emit an eoiTok sentinel once the content is exhausted.
func (s *scanner) next(mode scanMode) (*token, error) {
	if mode == symbolMode {
		return s.nextSymbol()
	}
	return s.nextAggregate()
}

func isWordChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (s *scanner) nextAggregate() (*token, error) {
	for s.pos < len(s.content) {
		c := s.content[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++

		case c == '/' && s.pos+1 < len(s.content) && s.content[s.pos+1] == '/':
			for s.pos < len(s.content) && s.content[s.pos] != '\n' {
				s.pos++
			}

		case c == '/':
			s.pos++
			return s.token(slashTok, "/", 0, s.pos-1), nil

		case c == '[':
			start := s.pos
			s.pos++
			if s.pos < len(s.content) && s.content[s.pos] == '^' {
				s.pos++
				return s.token(negSetStartTok, "[^", 0, start), nil
			}
			return s.token(setStartTok, "[", 0, start), nil

		case isWordChar(c):
			start := s.pos
			for s.pos < len(s.content) && isWordChar(s.content[s.pos]) {
				s.pos++
			}
			lexeme := string(s.content[start:s.pos])
			switch lexeme {
			case "class":
				return s.token(classTok, lexeme, 0, start), nil
			case "token":
				return s.token(tokenTok, lexeme, 0, start), nil
			case "ignore":
				return s.token(ignoreTok, lexeme, 0, start), nil
			}
			t := s.token(identTok, lexeme, 0, start)
			if !isIdentStart(lexeme[0]) {
				return nil, invalidIdentifierError(t)
			}
			return t, nil

		default:
			start := s.pos
			r, size := utf8.DecodeRune(s.content[s.pos:])
			s.pos += size
			return s.token(charTok, string(r), r, start), nil
		}
	}

	return s.token(eoiTok, "", 0, s.pos), nil
}

func (s *scanner) nextSymbol() (*token, error) {
	for s.pos < len(s.content) {
		start := s.pos
		r, size := utf8.DecodeRune(s.content[s.pos:])
		s.pos += size

		switch r {
		case '\n', '\r':
			continue

		case '[':
			if s.pos < len(s.content) && s.content[s.pos] == '^' {
				s.pos++
				return s.token(negSetStartTok, "[^", 0, start), nil
			}
			return s.token(setStartTok, "[", 0, start), nil

		case '-':
			if s.pos < len(s.content) && s.content[s.pos] == ']' {
				s.pos++
				return s.token(dashSetEndTok, "-]", 0, start), nil
			}
			return s.token(dashTok, "-", 0, start), nil

		case ']':
			return s.token(setEndTok, "]", 0, start), nil
		case '(':
			return s.token(lParenTok, "(", 0, start), nil
		case ')':
			return s.token(rParenTok, ")", 0, start), nil
		case '/':
			return s.token(slashTok, "/", 0, start), nil
		case '*':
			return s.token(starTok, "*", 0, start), nil
		case '+':
			return s.token(plusTok, "+", 0, start), nil
		case '?':
			return s.token(questionTok, "?", 0, start), nil
		case '|':
			return s.token(pipeTok, "|", 0, start), nil

		case '\\':
			if s.pos >= len(s.content) {
				return nil, unterminatedEscapeError(s.token(charTok, "\\", 0, start))
			}
			e, esize := utf8.DecodeRune(s.content[s.pos:])
			s.pos += esize
			if sub, has := escapeChars[e]; has {
				e = sub
			}
			return s.token(charTok, string(e), e, start), nil

		default:
			return s.token(charTok, string(r), r, start), nil
		}
	}

	return s.token(eoiTok, "", 0, s.pos), nil
}
