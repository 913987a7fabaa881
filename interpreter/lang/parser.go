package lang

import "fmt"

type Parser struct {
	lexer *Lexer
	token Token
}

func NewParser(l *Lexer) *Parser {
	p := &Parser{lexer: l}
	p.next()
	return p
}

func (p *Parser) next() {
	p.token = p.lexer.Next()
}

// Parse reads statements until EOF. Empty statements (stray semicolons) are skipped.
func (p *Parser) Parse() (*Program, error) {
	program := &Program{}
	for p.token.Type != EOF {
		switch p.token.Type {
		case Semicolon:
			p.next()
		case Let:
			s, err := p.parseLetStatement()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, s)
		default:
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, ExpressionStatement{Value: value})
		}
	}
	return program, nil
}

func (p *Parser) parseLetStatement() (Statement, error) {
	p.next()
	if p.token.Type != Ident {
		return nil, fmt.Errorf("expected identifier, got %v", p.token)
	}
	name := p.token.Literal
	p.next()
	if p.token.Type != Assign {
		return nil, fmt.Errorf(`expected "=", got %v`, p.token)
	}
	p.next()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return LetStatement{Name: name, Value: value}, nil
}

func (p *Parser) parseExpression() (Expression, error) {
	left := p.token
	if left.Type != Number && left.Type != Ident {
		return nil, fmt.Errorf("expected number or identifier, got %v", left)
	}
	p.next()
	switch op := p.token; op.Type {
	case Semicolon, EOF:
		return Atom{Token: left}, nil
	case Plus, Asterisk:
		p.next()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return Infix{Left: Atom{Token: left}, Operator: op, Right: right}, nil
	default:
		return nil, fmt.Errorf("expected operator, got %v", op)
	}
}
