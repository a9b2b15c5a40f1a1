package lambda

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStepLimit is returned when an evaluator runs past its MaxSteps budget.
var ErrStepLimit = errors.New("step limit exceeded")

// UnboundVariableError reports a variable with no binding in scope.
// Scope lists the names that were visible, innermost first.
type UnboundVariableError struct {
	Name  string
	Scope []string
}

func (e *UnboundVariableError) Error() string {
	if len(e.Scope) == 0 {
		return fmt.Sprintf("unbound variable: %s", e.Name)
	}
	return fmt.Sprintf("unbound variable: %s (in scope: %s)", e.Name, strings.Join(e.Scope, ", "))
}

// UnsupportedExpressionError reports a term that is not a Var, Abs or App.
type UnsupportedExpressionError struct {
	Term Term
}

func (e *UnsupportedExpressionError) Error() string {
	return fmt.Sprintf("unsupported expression: %#v", e.Term)
}

// NotCallableError reports an application whose operator is not a procedure.
type NotCallableError struct {
	Value Value
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("not callable: %v", e.Value)
}

// DecodeError reports a term that does not have the Church shape a decoder expects.
type DecodeError struct {
	Kind  string // "int" or "bool"
	Value Value
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("decode %s: unexpected result %v", e.Kind, e.Value)
}

func (e *DecodeError) Unwrap() error { return e.Err }
