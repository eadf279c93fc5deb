package langdef

import (
	"testing"

	"github.com/mkarev/lexgen/internal/test"
	"github.com/mkarev/lexgen/source"
)

func parseDef(def string) (*parseResult, error) {
	return newParseContext(source.New("def", []byte(def))).parse()
}

func mustParse(t *testing.T, def string) *parseResult {
	result, e := parseDef(def)
	test.Assert(t, e == nil, "unexpected parse error: %v", e)
	return result
}

func expectClass(t *testing.T, result *parseResult, name, members string) {
	chars, has := result.classes[name]
	test.Assert(t, has, "missing class %q", name)
	test.ExpectString(t, members, string(chars))
}

func TestParseClassRange(t *testing.T) {
	result := mustParse(t, "class Digit [0-9]")
	expectClass(t, result, "Digit", "0123456789")
}

func TestParseClassLiteralsAndDash(t *testing.T) {
	result := mustParse(t, "class Punct [.,-]")
	expectClass(t, result, "Punct", ",-.")
}

func TestParseClassEscapes(t *testing.T) {
	result := mustParse(t, `class Blank [\t\n ]`)
	expectClass(t, result, "Blank", "\t\n ")
}

func TestParseClassUnion(t *testing.T) {
	result := mustParse(t, `
		class Lower [a-c]
		class Upper [A-C]
		class Letter [[Lower][Upper]]
	`)
	expectClass(t, result, "Letter", "ABCabc")
}

func TestParseClassNegated(t *testing.T) {
	result := mustParse(t, "class NotDigit [^0-9]")
	chars := result.classes["NotDigit"]
	test.ExpectInt(t, alphabetSize-10, len(chars))
	for _, c := range chars {
		test.Assert(t, c < '0' || c > '9', "negated class kept %q", c)
	}
}

func TestParseClassErrors(t *testing.T) {
	samples := []struct {
		def  string
		code int
	}{
		{"class Digit [0-9] class Digit [0-9]", DuplicateDeclarationError},
		{"class X [[Nope]]", UndefinedClassError},
		{"class X []", UnexpectedTokenError},
		{"class X [z-a]", BadRangeError},
		{"class X [é]", BadCharError},
		{"class X [a-é]", BadCharError},
		{"class X (a)", UnexpectedTokenError},
		{"class X [a", UnexpectedEofError},
		{"class 9x [a]", InvalidIdentifierError},
	}
	for _, sample := range samples {
		_, e := parseDef(sample.def)
		test.ExpectErrorCode(t, sample.code, e)
	}
}

func TestParsePattern(t *testing.T) {
	result := mustParse(t, "token T /a(b|c)*d?/")
	test.ExpectInt(t, 1, len(result.rules))
	test.ExpectString(t, "a(b|c)*d?", result.rules[0].pattern.pattern())
}

func TestParsePatternClassRef(t *testing.T) {
	result := mustParse(t, "class D [0-9] token Num /[D]+/")
	test.ExpectString(t, "[D]+", result.rules[0].pattern.pattern())
}

func TestParsePatternEscapedMeta(t *testing.T) {
	result := mustParse(t, `token Div /\//`)
	test.ExpectString(t, "/", result.rules[0].pattern.pattern())
}

func TestParseIgnore(t *testing.T) {
	result := mustParse(t, "ignore / /")
	test.ExpectInt(t, 1, len(result.rules))
	test.Assert(t, result.rules[0].ignored, "ignore rule not flagged")
	test.ExpectString(t, "", result.rules[0].name)
}

func TestParseRuleOrder(t *testing.T) {
	result := mustParse(t, "token A /a/ ignore / / token B /b/")
	test.ExpectInt(t, 3, len(result.rules))
	test.ExpectString(t, "A", result.rules[0].name)
	test.Assert(t, result.rules[1].ignored, "second rule not flagged as ignored")
	test.ExpectString(t, "B", result.rules[2].name)
	test.ExpectInt(t, 2, result.rules[2].index)
}

func TestParseCommentBeforePattern(t *testing.T) {
	// // starts a line comment anywhere outside pattern and set bodies,
	// including between a rule name and its pattern
	result := mustParse(t, "token T // pattern follows\n/a/")
	test.ExpectString(t, "a", result.rules[0].pattern.pattern())
}

func TestParsePatternErrors(t *testing.T) {
	samples := []struct {
		def  string
		code int
	}{
		{"token T //", UnexpectedEofError},
		{"token T /|/", UnexpectedTokenError},
		{"token T /a", UnexpectedEofError},
		{"token T /[Nope]/", UndefinedClassError},
		{"token T /(a/", UnexpectedTokenError},
		{"token T /a|/", UnexpectedTokenError},
		{"token T /é/", BadCharError},
		{"token T /a/ token T /b/", DuplicateDeclarationError},
		{"token /a/", UnexpectedTokenError},
		{"foo", UnexpectedTokenError},
	}
	for _, sample := range samples {
		_, e := parseDef(sample.def)
		test.ExpectErrorCode(t, sample.code, e)
	}
}
