package lang

import "fmt"

type TokenType int

const (
	EOF TokenType = iota
	Illegal
	Let
	Ident
	Assign
	Number
	Plus
	Asterisk
	Semicolon
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Illegal:
		return "ILLEGAL"
	case Let:
		return "LET"
	case Ident:
		return "IDENT"
	case Assign:
		return "ASSIGN"
	case Number:
		return "NUMBER"
	case Plus:
		return "PLUS"
	case Asterisk:
		return "ASTERISK"
	case Semicolon:
		return "SEMICOLON"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

type Token struct {
	Type    TokenType
	Literal string
}

func (t Token) String() string { return fmt.Sprintf("%v %q", t.Type, t.Literal) }
