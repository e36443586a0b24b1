package form_test

import (
	"math"
	"testing"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n float64
		s string
	}{
		{0, "0"},
		{3, "3"},
		{-7, "-7"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
		{0.1, "0.1"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
	}

	for _, c := range cases {
		if s := form.FormatNumber(c.n); s != c.s {
			t.Errorf("FormatNumber(%v) got %s want %s", c.n, s, c.s)
		}
	}
}

func TestExprString(t *testing.T) {
	x := form.Symbol(types.ID("x"))
	y := form.Symbol(types.ID("y"))

	cases := []struct {
		e form.Expr
		s string
	}{
		{form.Number(2), "2"},
		{x, "x"},
		{&form.BinaryExpr{Op: form.AddOp, Left: x, Right: form.Number(1)}, "(x + 1)"},
		{
			&form.BinaryExpr{
				Op:    form.MulOp,
				Left:  &form.BinaryExpr{Op: form.SubOp, Left: x, Right: y},
				Right: &form.BinaryExpr{Op: form.PowOp, Left: y, Right: form.Number(2)},
			},
			"((x - y) * (y ^ 2))",
		},
		{&form.UnaryExpr{Op: form.NegOp, Expr: x}, "(-x)"},
		{&form.Call{Name: types.ID("f")}, "f()"},
		{
			&form.Call{
				Name: types.SIN,
				Args: []form.Expr{&form.BinaryExpr{Op: form.DivOp, Left: x, Right: y}},
			},
			"sin((x / y))",
		},
		{&form.Call{Name: types.ID("g"), Args: []form.Expr{x, y}}, "g(x, y)"},
	}

	for _, c := range cases {
		if s := c.e.String(); s != c.s {
			t.Errorf("String() got %s want %s", s, c.s)
		}
	}
}

func TestExprEqual(t *testing.T) {
	x := form.Symbol(types.ID("x"))
	y := form.Symbol(types.ID("y"))
	sum := &form.BinaryExpr{Op: form.AddOp, Left: x, Right: form.Number(1)}

	cases := []struct {
		e1, e2 form.Expr
		eq     bool
	}{
		{form.Number(2), form.Number(2), true},
		{form.Number(2), form.Number(2.5), false},
		{form.Number(2), x, false},
		{x, x, true},
		{x, y, false},
		{sum, &form.BinaryExpr{Op: form.AddOp, Left: x, Right: form.Number(1)}, true},
		{sum, &form.BinaryExpr{Op: form.SubOp, Left: x, Right: form.Number(1)}, false},
		{sum, &form.BinaryExpr{Op: form.AddOp, Left: y, Right: form.Number(1)}, false},
		{
			&form.UnaryExpr{Op: form.NegOp, Expr: x},
			&form.UnaryExpr{Op: form.NegOp, Expr: x},
			true,
		},
		{&form.UnaryExpr{Op: form.NegOp, Expr: x}, x, false},
		{
			&form.Call{Name: types.ID("f"), Args: []form.Expr{x}},
			&form.Call{Name: types.ID("f"), Args: []form.Expr{x}},
			true,
		},
		{
			&form.Call{Name: types.ID("f"), Args: []form.Expr{x}},
			&form.Call{Name: types.ID("f"), Args: []form.Expr{x, y}},
			false,
		},
		{
			&form.Call{Name: types.ID("f"), Args: []form.Expr{x}},
			&form.Call{Name: types.ID("g"), Args: []form.Expr{x}},
			false,
		},
	}

	for _, c := range cases {
		if eq := c.e1.Equal(c.e2); eq != c.eq {
			t.Errorf("%s.Equal(%s) got %v want %v", c.e1, c.e2, eq, c.eq)
		}
	}
}

func TestStmtString(t *testing.T) {
	x := form.Symbol(types.ID("x"))

	cases := []struct {
		stmt form.Stmt
		s    string
	}{
		{
			&form.SymbolsDecl{Names: []types.Identifier{types.ID("x"), types.ID("y")}},
			"Symbols x, y",
		},
		{
			&form.ExpressionDecl{Name: types.ID("e"), Expr: form.Number(2)},
			"Expression e = 2",
		},
		{
			&form.LocalDecl{Name: types.ID("tmp"), Expr: x},
			"Local tmp = x",
		},
		{
			&form.IdRule{Pattern: x, Replacement: form.Number(2)},
			"id x = 2",
		},
		{&form.Print{Name: types.ID("e")}, "Print e"},
		{&form.Sort{}, ".sort"},
		{&form.EvalExpr{Expr: x}, "x"},
	}

	for _, c := range cases {
		if s := c.stmt.String(); s != c.s {
			t.Errorf("String() got %s want %s", s, c.s)
		}
	}
}
