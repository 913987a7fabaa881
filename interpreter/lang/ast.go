package lang

type Program struct {
	Statements []Statement
}

// Statement is a LetStatement or an ExpressionStatement.
type Statement interface {
	statementNode()
}

type LetStatement struct {
	Name  string
	Value Expression
}

type ExpressionStatement struct {
	Value Expression
}

func (LetStatement) statementNode()        {}
func (ExpressionStatement) statementNode() {}

// Expression is an Atom or an Infix.
type Expression interface {
	expressionNode()
}

// Atom is a single number or identifier.
type Atom struct {
	Token Token
}

// Infix is Left Operator Right. Right is parsed first-to-last, so
// "3 + 4 * 5" is 3 + (4 * 5) and "3 * 4 + 5" is 3 * (4 + 5).
type Infix struct {
	Left     Expression
	Operator Token
	Right    Expression
}

func (Atom) expressionNode()  {}
func (Infix) expressionNode() {}
