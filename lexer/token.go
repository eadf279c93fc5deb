package lexer

const (
	// EoiTokenType is the type of the end-of-input token.
	EoiTokenType = -2

	// EoiTokenName is the type name of the end-of-input token.
	EoiTokenName = "-end-of-input-"
)

// Token is a lexeme recognized by a Lexer.
type Token struct {
	typ      int
	typeName string
	text     string
	line     int
	col      int
}

// NewToken creates a new token.
func NewToken(typ int, typeName, text string, line, col int) *Token {
	return &Token{typ, typeName, text, line, col}
}

// EoiToken creates a new end-of-input token at the given position.
func EoiToken(line, col int) *Token {
	return &Token{EoiTokenType, EoiTokenName, "", line, col}
}

// Type returns token type: the tag of the rule that matched the lexeme,
// or EoiTokenType.
func (t *Token) Type() int {
	return t.typ
}

// TypeName returns the declared name of the matching rule, or EoiTokenName.
func (t *Token) TypeName() string {
	return t.typeName
}

// Text returns the matched lexeme, empty for the end-of-input token.
func (t *Token) Text() string {
	return t.text
}

// Line returns the line the lexeme starts on, counting from 1.
func (t *Token) Line() int {
	return t.line
}

// Col returns the column (in characters) the lexeme starts at, counting from 1.
func (t *Token) Col() int {
	return t.col
}

func (t *Token) String() string {
	if t.typ == EoiTokenType {
		return EoiTokenName
	}
	return t.typeName + " " + "\"" + t.text + "\""
}
