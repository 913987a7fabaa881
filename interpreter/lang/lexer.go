package lang

var punctuation = map[byte]TokenType{
	'=': Assign,
	'+': Plus,
	'*': Asterisk,
	';': Semicolon,
}

// Lexer splits source into tokens. Once the input is exhausted,
// Next keeps returning an EOF token.
type Lexer struct {
	src string
	pos int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token.
// Identifiers are runs of lowercase ASCII letters, numbers are runs of digits.
func (l *Lexer) Next() Token {
	for l.pos < len(l.src) && isWhitespace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == len(l.src) {
		return Token{Type: EOF}
	}

	c := l.src[l.pos]
	if typ, ok := punctuation[c]; ok {
		l.pos++
		return Token{Type: typ, Literal: string(c)}
	}
	switch {
	case isLetter(c):
		lit := l.read(isLetter)
		if lit == "let" {
			return Token{Type: Let, Literal: lit}
		}
		return Token{Type: Ident, Literal: lit}
	case isDigit(c):
		return Token{Type: Number, Literal: l.read(isDigit)}
	default:
		l.pos++
		return Token{Type: Illegal, Literal: string(c)}
	}
}

func (l *Lexer) read(accept func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.src) && accept(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos]
}

func isLetter(c byte) bool     { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool      { return '0' <= c && c <= '9' }
func isWhitespace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
