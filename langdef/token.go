package langdef

import (
	"github.com/mkarev/lexgen/source"
)

type tokenKind int

const (
	eoiTok tokenKind = iota

	// aggregate mode
	classTok
	tokenTok
	ignoreTok
	identTok

	// symbol mode
	setStartTok    // [
	negSetStartTok // [^
	setEndTok      // ]
	dashSetEndTok  // -]
	lParenTok
	rParenTok
	slashTok
	starTok
	plusTok
	questionTok
	dashTok
	pipeTok
	charTok
)

var kindNames = map[tokenKind]string{
	eoiTok:         "end of input",
	classTok:       "'class'",
	tokenTok:       "'token'",
	ignoreTok:      "'ignore'",
	identTok:       "identifier",
	setStartTok:    "'['",
	negSetStartTok: "'[^'",
	setEndTok:      "']'",
	dashSetEndTok:  "'-]'",
	lParenTok:      "'('",
	rParenTok:      "')'",
	slashTok:       "'/'",
	starTok:        "'*'",
	plusTok:        "'+'",
	questionTok:    "'?'",
	dashTok:        "'-'",
	pipeTok:        "'|'",
	charTok:        "character",
}

func (k tokenKind) String() string {
	return kindNames[k]
}

// token is one lexical element of a definition file. char holds the decoded
// character for charTok (escapes already applied).
type token struct {
	kind tokenKind
	text string
	char rune
	src  *source.Source
	pos  int
}

func (t *token) SourceName() string {
	if t.src == nil {
		return ""
	}
	return t.src.Name()
}

func (t *token) Line() int {
	if t.src == nil {
		return 0
	}
	line, _ := t.src.LineCol(t.pos)
	return line
}

func (t *token) Col() int {
	if t.src == nil {
		return 0
	}
	_, col := t.src.LineCol(t.pos)
	return col
}
