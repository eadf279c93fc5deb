package langdef

import (
	"unicode"

	"github.com/mkarev/lexgen/machine"
	"github.com/mkarev/lexgen/source"
)

// alphabetSize is the closed code-unit alphabet: negated sets complement
// against ASCII 0..127.
const alphabetSize = 128

// tokenRule is one token or ignore declaration. index is the declaration
// position among all rules and breaks ties between equally long matches.
type tokenRule struct {
	name    string
	index   int
	ignored bool
	pattern regexNode
}

type parseResult struct {
	classes   map[string][]rune
	classList []string
	rules     []*tokenRule
}

// CompileString compiles a token definition and returns the automaton on success.
// Returns nil and lexgen.Error on error.
func CompileString(name, content string) (*machine.Dfa, error) {
	return Compile(source.New(name, []byte(content)))
}

// CompileBytes compiles a token definition and returns the automaton on success.
// Returns nil and lexgen.Error on error.
func CompileBytes(name string, content []byte) (*machine.Dfa, error) {
	return Compile(source.New(name, content))
}

// Compile compiles a token definition and returns the automaton on success.
// Returns nil and lexgen.Error on error.
func Compile(s *source.Source) (*machine.Dfa, error) {
	c := newParseContext(s)
	result, e := c.parse()
	if e != nil {
		return nil, e
	}

	return determinize(buildNfa(result)), nil
}

type parseContext struct {
	s         *scanner
	result    *parseResult
	ruleIndex map[string]int
	saved     *token
}

func newParseContext(s *source.Source) *parseContext {
	return &parseContext{
		s: newScanner(s),
		result: &parseResult{
			classes: make(map[string][]rune),
		},
		ruleIndex: make(map[string]int),
	}
}

func (c *parseContext) fetch(mode scanMode) (*token, error) {
	if c.saved != nil {
		t := c.saved
		c.saved = nil
		return t, nil
	}
	return c.s.next(mode)
}

func (c *parseContext) put(t *token) {
	if c.saved != nil {
		panic("cannot put " + t.kind.String() + " token: already put " + c.saved.kind.String())
	}
	c.saved = t
}

func (c *parseContext) expectIdent() (*token, error) {
	t, e := c.fetch(aggregateMode)
	if e != nil {
		return nil, e
	}
	if t.kind != identTok {
		return nil, unexpectedTokenError(t, "identifier")
	}
	return t, nil
}

func (c *parseContext) expectSymbol(kind tokenKind) (*token, error) {
	t, e := c.fetch(symbolMode)
	if e != nil {
		return nil, e
	}
	if t.kind != kind {
		return nil, unexpectedTokenError(t, kind.String())
	}
	return t, nil
}

func (c *parseContext) parse() (*parseResult, error) {
	for {
		t, e := c.fetch(aggregateMode)
		if e != nil {
			return nil, e
		}

		switch t.kind {
		case eoiTok:
			return c.result, nil
		case classTok:
			e = c.parseClassDecl()
		case tokenTok:
			e = c.parseTokenDecl()
		case ignoreTok:
			e = c.parseIgnoreDecl()
		default:
			e = unexpectedTokenError(t, "'class', 'token', or 'ignore'")
		}
		if e != nil {
			return nil, e
		}
	}
}

// classDecl := 'class' Id setExpr
func (c *parseContext) parseClassDecl() error {
	name, e := c.expectIdent()
	if e != nil {
		return e
	}
	if _, has := c.result.classes[name.text]; has {
		return duplicateClassError(name)
	}

	opener, e := c.fetch(aggregateMode)
	if e != nil {
		return e
	}
	negated := false
	switch opener.kind {
	case setStartTok:
	case negSetStartTok:
		negated = true
	default:
		return unexpectedTokenError(opener, "'['")
	}

	members, e := c.parseSetBody()
	if e != nil {
		return e
	}
	if negated {
		complement := make(map[rune]bool, alphabetSize-len(members))
		for r := rune(0); r < alphabetSize; r++ {
			if !members[r] {
				complement[r] = true
			}
		}
		members = complement
	}

	c.result.classes[name.text] = sortedRunes(members)
	c.result.classList = append(c.result.classList, name.text)
	return nil
}

// setItem := char | char '-' char | '[' Id ']'
// A dash directly before the closing bracket is a literal member.
func (c *parseContext) parseSetBody() (map[rune]bool, error) {
	members := make(map[rune]bool)
	itemCnt := 0
	for {
		t, e := c.fetch(symbolMode)
		if e != nil {
			return nil, e
		}

		switch t.kind {
		case setEndTok:
			if itemCnt == 0 {
				return nil, unexpectedTokenError(t, "set member")
			}
			return members, nil

		case dashSetEndTok:
			members['-'] = true
			return members, nil

		case setStartTok:
			ref, e := c.expectIdent()
			if e != nil {
				return nil, e
			}
			chars, has := c.result.classes[ref.text]
			if !has {
				return nil, undefinedClassError(ref)
			}
			if _, e = c.expectSymbol(setEndTok); e != nil {
				return nil, e
			}
			for _, r := range chars {
				members[r] = true
			}

		case charTok:
			if t.char > unicode.MaxASCII {
				return nil, badCharError(t)
			}
			next, e := c.fetch(symbolMode)
			if e != nil {
				return nil, e
			}
			if next.kind != dashTok {
				c.put(next)
				members[t.char] = true
				break
			}
			hi, e := c.fetch(symbolMode)
			if e != nil {
				return nil, e
			}
			if hi.kind != charTok {
				return nil, unexpectedTokenError(hi, "range end character")
			}
			if hi.char > unicode.MaxASCII {
				return nil, badCharError(hi)
			}
			if t.char > hi.char {
				return nil, badRangeError(t, t.char, hi.char)
			}
			for r := t.char; r <= hi.char; r++ {
				members[r] = true
			}

		case eoiTok:
			return nil, eofError(t)

		default:
			return nil, unexpectedTokenError(t, "set member or ']'")
		}
		itemCnt++
	}
}

// tokenDecl := 'token' Id '/' regex '/'
func (c *parseContext) parseTokenDecl() error {
	name, e := c.expectIdent()
	if e != nil {
		return e
	}
	if _, has := c.ruleIndex[name.text]; has {
		return duplicateRuleError(name)
	}

	pattern, e := c.parsePatternBody()
	if e != nil {
		return e
	}

	c.ruleIndex[name.text] = len(c.result.rules)
	c.addRule(name.text, false, pattern)
	return nil
}

// ignoreDecl := 'ignore' '/' regex '/'
func (c *parseContext) parseIgnoreDecl() error {
	pattern, e := c.parsePatternBody()
	if e != nil {
		return e
	}

	c.addRule("", true, pattern)
	return nil
}

func (c *parseContext) addRule(name string, ignored bool, pattern regexNode) {
	c.result.rules = append(c.result.rules, &tokenRule{
		name:    name,
		index:   len(c.result.rules),
		ignored: ignored,
		pattern: pattern,
	})
}

func (c *parseContext) parsePatternBody() (regexNode, error) {
	opener, e := c.fetch(aggregateMode)
	if e != nil {
		return nil, e
	}
	if opener.kind != slashTok {
		return nil, unexpectedTokenError(opener, slashTok.String())
	}
	pattern, e := c.parseAlt()
	if e != nil {
		return nil, e
	}
	if _, e = c.expectSymbol(slashTok); e != nil {
		return nil, e
	}
	return pattern, nil
}

// altExpr := concatExpr ('|' concatExpr)*
func (c *parseContext) parseAlt() (regexNode, error) {
	item, e := c.parseConcat()
	if e != nil {
		return nil, e
	}

	items := []regexNode{item}
	for {
		t, e := c.fetch(symbolMode)
		if e != nil {
			return nil, e
		}
		if t.kind != pipeTok {
			c.put(t)
			break
		}
		item, e = c.parseConcat()
		if e != nil {
			return nil, e
		}
		items = append(items, item)
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return altNode{items}, nil
}

// concatExpr := repeatExpr+
func (c *parseContext) parseConcat() (regexNode, error) {
	var items []regexNode
	for {
		t, e := c.fetch(symbolMode)
		if e != nil {
			return nil, e
		}
		c.put(t)

		switch t.kind {
		case charTok, setStartTok, lParenTok:
			item, e := c.parseRepeat()
			if e != nil {
				return nil, e
			}
			items = append(items, item)

		default:
			if len(items) == 0 {
				c.saved = nil
				return nil, unexpectedTokenError(t, "pattern")
			}
			if len(items) == 1 {
				return items[0], nil
			}
			return concatNode{items}, nil
		}
	}
}

// repeatExpr := atom ('*' | '+' | '?')?
func (c *parseContext) parseRepeat() (regexNode, error) {
	atom, e := c.parseAtom()
	if e != nil {
		return nil, e
	}

	t, e := c.fetch(symbolMode)
	if e != nil {
		return nil, e
	}
	switch t.kind {
	case starTok:
		return starNode{atom}, nil
	case plusTok:
		return plusNode{atom}, nil
	case questionTok:
		return optNode{atom}, nil
	default:
		c.put(t)
		return atom, nil
	}
}

// atom := char | '[' Id ']' | '(' regex ')'
func (c *parseContext) parseAtom() (regexNode, error) {
	t, e := c.fetch(symbolMode)
	if e != nil {
		return nil, e
	}

	switch t.kind {
	case charTok:
		if t.char > unicode.MaxASCII {
			return nil, badCharError(t)
		}
		return literalNode{t.char}, nil

	case setStartTok:
		ref, e := c.expectIdent()
		if e != nil {
			return nil, e
		}
		if _, has := c.result.classes[ref.text]; !has {
			return nil, undefinedClassError(ref)
		}
		if _, e = c.expectSymbol(setEndTok); e != nil {
			return nil, e
		}
		return classRefNode{ref.text}, nil

	case lParenTok:
		node, e := c.parseAlt()
		if e != nil {
			return nil, e
		}
		if _, e = c.expectSymbol(rParenTok); e != nil {
			return nil, e
		}
		return node, nil

	default:
		return nil, unexpectedTokenError(t, "character, class reference, or '('")
	}
}
