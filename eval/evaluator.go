// Package eval is the tree-walking evaluator: given a statement or
// expression and an environment, it produces a side effect, a value, or a
// RuntimeError, per spec.md §4.3. It is the only component permitted to
// mutate an Environment.
package eval

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/env"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/value"
)

// RuntimeError is a typed evaluation failure carrying the source line of
// the expression that produced it.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// Evaluator executes statements against an Environment and writes PrintStmt
// output to Writer.
type Evaluator struct {
	Writer io.Writer
}

func NewEvaluator(w io.Writer) *Evaluator {
	return &Evaluator{Writer: w}
}

// Exec runs one statement, mutating scope as its rules require.
func (ev *Evaluator) Exec(stmt parser.Stmt, scope *env.Environment) error {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		_, err := ev.Eval(s.Expr, scope)
		return err

	case *parser.PrintStmt:
		v, err := ev.Eval(s.Expr, scope)
		if err != nil {
			return err
		}
		fmt.Fprintln(ev.Writer, v.String())
		return nil

	case *parser.VarDecl:
		v, err := ev.Eval(s.Initializer, scope)
		if err != nil {
			return err
		}
		scope.Define(s.Name, v)
		return nil

	case *parser.Block:
		child := env.NewChild(scope)
		for _, inner := range s.Statements {
			if err := ev.Exec(inner, child); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// Eval evaluates one expression, returning its value or the first
// RuntimeError encountered while evaluating it or its children.
func (ev *Evaluator) Eval(expr parser.Expr, scope *env.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return e.Value, nil

	case *parser.Identifier:
		v, ok := scope.Get(e.Name)
		if !ok {
			return nil, runtimeErrorf(e.LineNo, "Undefined variable '%s'.", e.Name)
		}
		return v, nil

	case *parser.Assignment:
		v, err := ev.Eval(e.RHS, scope)
		if err != nil {
			return nil, err
		}
		if !scope.Assign(e.Name, v) {
			return nil, runtimeErrorf(e.LineNo, "Undefined variable '%s'.", e.Name)
		}
		return v, nil

	case *parser.Group:
		return ev.Eval(e.Inner, scope)

	case *parser.Unary:
		return ev.evalUnary(e, scope)

	case *parser.Binary:
		return ev.evalBinary(e, scope)
	}
	return nil, nil
}

func (ev *Evaluator) evalUnary(e *parser.Unary, scope *env.Environment) (value.Value, error) {
	operand, err := ev.Eval(e.Operand, scope)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErrorf(e.LineNo, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return value.Boolean(!operand.Truthy()), nil
	}
	return nil, nil
}

func (ev *Evaluator) evalBinary(e *parser.Binary, scope *env.Environment) (value.Value, error) {
	left, err := ev.Eval(e.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(e.Right, scope)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.LineNo, "Operands must be two numbers or two strings.")

	case lexer.MINUS:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case lexer.STAR:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case lexer.SLASH:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		// IEEE-754 division: zero divisors yield +Inf/-Inf/NaN, never an
		// evaluation error.
		return ln / rn, nil

	case lexer.LESS:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln < rn), nil

	case lexer.LESS_EQUAL:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln <= rn), nil

	case lexer.GREATER:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln > rn), nil

	case lexer.GREATER_EQUAL:
		ln, rn, err := numberOperands(left, right, e.LineNo)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln >= rn), nil

	case lexer.EQUAL_EQUAL:
		return value.Boolean(left.Equals(right)), nil

	case lexer.BANG_EQUAL:
		return value.Boolean(!left.Equals(right)), nil
	}
	return nil, nil
}

// numberOperands requires both operands to be value.Number, reporting
// OperandsMustBeNumbers at line otherwise.
func numberOperands(left, right value.Value, line int) (value.Number, value.Number, error) {
	ln, ok := left.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	rn, ok := right.(value.Number)
	if !ok {
		return 0, 0, runtimeErrorf(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}
