package lang

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluate returns the value of a single-statement program.
// For a let statement, that is the value bound to the name.
func Evaluate(program *Program) (int, error) {
	if len(program.Statements) != 1 {
		return 0, errors.New("unable to evaluate programs with multiple statements")
	}
	switch s := program.Statements[0].(type) {
	case LetStatement:
		return evaluate(s.Value)
	case ExpressionStatement:
		return evaluate(s.Value)
	default:
		return 0, fmt.Errorf("unexpected statement %T", s)
	}
}

func evaluate(e Expression) (int, error) {
	switch e := e.(type) {
	case Atom:
		if e.Token.Type != Number {
			return 0, fmt.Errorf("expected number, got %v", e.Token)
		}
		return strconv.Atoi(e.Token.Literal)
	case Infix:
		left, err := evaluate(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := evaluate(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Operator.Type {
		case Plus:
			return left + right, nil
		case Asterisk:
			return left * right, nil
		default:
			return 0, fmt.Errorf("expected operator, got %v", e.Operator)
		}
	default:
		return 0, fmt.Errorf("unexpected expression %T", e)
	}
}
