package langdef

import (
	"testing"

	"github.com/mkarev/lexgen/internal/test"
	"github.com/mkarev/lexgen/source"
)

func scanAll(t *testing.T, content string, mode scanMode) []*token {
	s := newScanner(source.New("scan", []byte(content)))
	var tokens []*token
	for {
		tok, e := s.next(mode)
		test.Assert(t, e == nil, "unexpected scan error: %v", e)
		tokens = append(tokens, tok)
		if tok.kind == eoiTok {
			return tokens
		}
	}
}

func expectKinds(t *testing.T, tokens []*token, kinds ...tokenKind) {
	test.ExpectInt(t, len(kinds), len(tokens))
	for i, k := range kinds {
		test.Expect(t, tokens[i].kind == k, k.String(), tokens[i].kind.String())
	}
}

func TestScanKeywords(t *testing.T) {
	tokens := scanAll(t, "class token ignore Foo", aggregateMode)
	expectKinds(t, tokens, classTok, tokenTok, ignoreTok, identTok, eoiTok)
	test.ExpectString(t, "Foo", tokens[3].text)
}

func TestScanComments(t *testing.T) {
	tokens := scanAll(t, "// heading\nclass // trailing\nDigit", aggregateMode)
	expectKinds(t, tokens, classTok, identTok, eoiTok)
	test.ExpectString(t, "Digit", tokens[1].text)
}

func TestScanInvalidIdentifier(t *testing.T) {
	s := newScanner(source.New("scan", []byte("9lives")))
	_, e := s.next(aggregateMode)
	test.ExpectErrorCode(t, InvalidIdentifierError, e)
}

func TestScanAggregateOpeners(t *testing.T) {
	tokens := scanAll(t, "[ [^ /", aggregateMode)
	expectKinds(t, tokens, setStartTok, negSetStartTok, slashTok, eoiTok)
}

func TestScanSymbols(t *testing.T) {
	tokens := scanAll(t, "[[^]-]-()/*+?|", symbolMode)
	expectKinds(t, tokens,
		setStartTok, negSetStartTok, setEndTok, dashSetEndTok, dashTok,
		lParenTok, rParenTok, slashTok, starTok, plusTok, questionTok,
		pipeTok, eoiTok)
}

func TestScanEscapes(t *testing.T) {
	tokens := scanAll(t, `\n\t\f\v\r\/\\`, symbolMode)
	chars := []rune{'\n', '\t', '\f', '\v', '\r', '/', '\\'}
	test.ExpectInt(t, len(chars)+1, len(tokens))
	for i, c := range chars {
		test.Expect(t, tokens[i].kind == charTok, charTok.String(), tokens[i].kind.String())
		test.Expect(t, tokens[i].char == c, c, tokens[i].char)
	}
}

func TestScanSymbolSkipsLineBreaks(t *testing.T) {
	tokens := scanAll(t, "a\r\nb", symbolMode)
	expectKinds(t, tokens, charTok, charTok, eoiTok)
	test.Expect(t, tokens[0].char == 'a', 'a', tokens[0].char)
	test.Expect(t, tokens[1].char == 'b', 'b', tokens[1].char)
}

func TestScanSymbolKeepsSpaces(t *testing.T) {
	tokens := scanAll(t, "a b", symbolMode)
	expectKinds(t, tokens, charTok, charTok, charTok, eoiTok)
	test.Expect(t, tokens[1].char == ' ', ' ', tokens[1].char)
}

func TestScanUnterminatedEscape(t *testing.T) {
	s := newScanner(source.New("scan", []byte(`\`)))
	_, e := s.next(symbolMode)
	test.ExpectErrorCode(t, UnterminatedEscapeError, e)
}

func TestScanTokenPosition(t *testing.T) {
	s := newScanner(source.New("scan", []byte("class\n  Digit")))
	tok, e := s.next(aggregateMode)
	test.Assert(t, e == nil, "unexpected scan error: %v", e)
	test.ExpectInt(t, 1, tok.Line())
	test.ExpectInt(t, 1, tok.Col())

	tok, e = s.next(aggregateMode)
	test.Assert(t, e == nil, "unexpected scan error: %v", e)
	test.ExpectString(t, "Digit", tok.text)
	test.ExpectInt(t, 2, tok.Line())
	test.ExpectInt(t, 3, tok.Col())
}
