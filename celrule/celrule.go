package celrule

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/conformd/conform"
)

// ErrInvalidExpr is returned when a predicate expression does not compile
// or does not produce a boolean.
var ErrInvalidExpr = errors.New("invalid predicate expression")

// New compiles a CEL expression into a validator. The expression sees the
// candidate under the name "value" and must evaluate to a bool:
//
//	v, err := celrule.New(`value >= 1 && value <= 65535`)
//
// Compilation problems surface from New; once compiled, the validator
// follows the engine contract and reports every mismatch, including
// evaluation errors, as failure data.
func New(expr string) (conform.Validator, error) {
	env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidExpr, expr, iss.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %s evaluates to %s, want bool", ErrInvalidExpr, expr, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidExpr, expr, err)
	}

	return func(value any, at conform.Path) *conform.Failure {
		out, _, err := prg.Eval(map[string]any{"value": value})
		if err != nil {
			return conform.Failf(at, "expected value to satisfy %s, evaluation failed: %v", expr, err)
		}
		if ok, isBool := out.Value().(bool); !isBool || !ok {
			return conform.Failf(at, "expected value to satisfy %s, received %s", expr, conform.Render(value))
		}
		return nil
	}, nil
}

// MustNew is New that panics on a compile error, for expressions fixed at
// program start.
func MustNew(expr string) conform.Validator {
	v, err := New(expr)
	if err != nil {
		panic(err)
	}
	return v
}
