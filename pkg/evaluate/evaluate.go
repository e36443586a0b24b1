package evaluate

import (
	"errors"
	"fmt"
	"math"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

var (
	ErrDivisionByZero = errors.New("evaluate: division by zero")
)

// UndefinedError reports a Print of a name with no stored expression.
type UndefinedError struct {
	Name types.Identifier
}

func (err *UndefinedError) Error() string {
	return fmt.Sprintf("evaluate: expression '%s' not found", err.Name)
}

// simplify folds constants, applies the fixed algebraic identities, and
// resolves names bound in the expression table. It never mutates its
// argument; partially simplified nodes are rebuilt.
//
// A name bound to an expression mentioning itself recurses without a depth
// guard; the recursion is bounded only by the call stack.
func (ses *Session) simplify(e form.Expr) (form.Expr, error) {
	switch e := e.(type) {
	case form.Number:
		return e, nil
	case form.Symbol:
		if val, ok := ses.exprs.Get(types.Identifier(e)); ok {
			return ses.simplify(val)
		}
		return e, nil
	case *form.BinaryExpr:
		return ses.simplifyBinary(e)
	case *form.UnaryExpr:
		operand, err := ses.simplify(e.Expr)
		if err != nil {
			return nil, err
		}
		if n, ok := operand.(form.Number); ok {
			return form.Number(-n), nil
		}
		return &form.UnaryExpr{Op: e.Op, Expr: operand}, nil
	case *form.Call:
		return ses.simplifyCall(e)
	}

	panic(fmt.Sprintf("evaluate: unexpected expr: %#v", e))
}

func (ses *Session) simplifyBinary(be *form.BinaryExpr) (form.Expr, error) {
	left, err := ses.simplify(be.Left)
	if err != nil {
		return nil, err
	}
	right, err := ses.simplify(be.Right)
	if err != nil {
		return nil, err
	}

	if l, ok := left.(form.Number); ok {
		if r, ok := right.(form.Number); ok {
			return foldBinary(be.Op, float64(l), float64(r))
		}
	}

	switch be.Op {
	case form.AddOp:
		// x + 0 = x, 0 + x = x
		if right.Equal(form.Number(0)) {
			return left, nil
		}
		if left.Equal(form.Number(0)) {
			return right, nil
		}
	case form.MulOp:
		// x * 0 = 0, 0 * x = 0
		if right.Equal(form.Number(0)) || left.Equal(form.Number(0)) {
			return form.Number(0), nil
		}
		// x * 1 = x, 1 * x = x
		if right.Equal(form.Number(1)) {
			return left, nil
		}
		if left.Equal(form.Number(1)) {
			return right, nil
		}
	case form.PowOp:
		// x ^ 0 = 1
		if right.Equal(form.Number(0)) {
			return form.Number(1), nil
		}
		// x ^ 1 = x
		if right.Equal(form.Number(1)) {
			return left, nil
		}
	}

	return &form.BinaryExpr{Op: be.Op, Left: left, Right: right}, nil
}

func foldBinary(op form.Op, l, r float64) (form.Expr, error) {
	var n float64
	switch op {
	case form.AddOp:
		n = l + r
	case form.SubOp:
		n = l - r
	case form.MulOp:
		n = l * r
	case form.DivOp:
		if r == 0.0 {
			return nil, ErrDivisionByZero
		}
		n = l / r
	case form.PowOp:
		// NaN from an invalid domain, such as a negative base with a
		// fractional exponent, propagates untouched.
		n = math.Pow(l, r)
	default:
		panic(fmt.Sprintf("evaluate: unexpected binary op: %d", op))
	}
	return form.Number(n), nil
}

func (ses *Session) simplifyCall(c *form.Call) (form.Expr, error) {
	args := make([]form.Expr, len(c.Args))
	for idx, arg := range c.Args {
		simplified, err := ses.simplify(arg)
		if err != nil {
			return nil, err
		}
		args[idx] = simplified
	}

	if len(args) == 1 {
		if n, ok := args[0].(form.Number); ok {
			switch c.Name {
			case types.SIN:
				return form.Number(math.Sin(float64(n))), nil
			case types.COS:
				return form.Number(math.Cos(float64(n))), nil
			case types.EXP:
				return form.Number(math.Exp(float64(n))), nil
			case types.LOG:
				// natural logarithm
				return form.Number(math.Log(float64(n))), nil
			}
		}
	}

	return &form.Call{Name: c.Name, Args: args}, nil
}
