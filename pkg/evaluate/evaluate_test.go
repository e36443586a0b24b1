package evaluate

import (
	"strings"
	"testing"

	"github.com/yfyang86/form-repl/pkg/parser"
	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

func mustExpr(t *testing.T, src string) form.Expr {
	t.Helper()

	p := parser.NewParser(strings.NewReader(src), "")
	e, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr(%q) failed with %s", src, err)
	}
	return e
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		src  string
		s    string
		fail bool
	}{
		{src: "2 + 3", s: "5"},
		{src: "2 * 3 - 12 / 4", s: "3"},
		{src: "2 ^ 3 ^ 2", s: "512"},
		{src: "-(2 + 3)", s: "-5"},
		{src: "--2", s: "2"},
		{src: "2.5 * 4", s: "10"},

		// Division by a zero literal fails; division by an unresolved symbol
		// does not, even when that symbol could only ever be zero.
		{src: "1 / 0", fail: true},
		{src: "1 / (2 - 2)", fail: true},
		{src: "x / 0", s: "(x / 0)"},

		// An invalid power domain yields NaN, not an error.
		{src: "(0 - 2) ^ 0.5", s: "NaN"},

		// Identities on unresolved symbols.
		{src: "x + 0", s: "x"},
		{src: "0 + x", s: "x"},
		{src: "x * 0", s: "0"},
		{src: "0 * x", s: "0"},
		{src: "x * 1", s: "x"},
		{src: "1 * x", s: "x"},
		{src: "x ^ 0", s: "1"},
		{src: "x ^ 1", s: "x"},
		{src: "(x + 0) * (1 * y)", s: "(x * y)"},
		{src: "x - 0", s: "(x - 0)"},

		// Builtin functions fold a single literal argument.
		{src: "sin(0)", s: "0"},
		{src: "cos(0)", s: "1"},
		{src: "exp(0)", s: "1"},
		{src: "log(1)", s: "0"},
		{src: "cos(0) + exp(0)", s: "2"},
		{src: "sin(x)", s: "sin(x)"},
		{src: "log(x + 1)", s: "log((x + 1))"},
		{src: "f(2)", s: "f(2)"},
		{src: "g(1, 2)", s: "g(1, 2)"},
		{src: "sin(1 / 0)", fail: true},
	}

	for _, c := range cases {
		ses := NewSession(nil)
		e, err := ses.simplify(mustExpr(t, c.src))
		if c.fail {
			if err == nil {
				t.Errorf("simplify(%s) did not fail", c.src)
			}
		} else if err != nil {
			t.Errorf("simplify(%s) failed with %s", c.src, err)
		} else if e.String() != c.s {
			t.Errorf("simplify(%s) got %s want %s", c.src, e, c.s)
		}
	}
}

func TestSimplifyDivisionByZero(t *testing.T) {
	ses := NewSession(nil)
	_, err := ses.simplify(mustExpr(t, "(2 + 3) / (1 - 1)"))
	if err != ErrDivisionByZero {
		t.Errorf("simplify got %v want %v", err, ErrDivisionByZero)
	}
}

func TestSimplifyResolvesNames(t *testing.T) {
	ses := NewSession(nil)
	ses.exprs.Set(types.ID("e"), form.Number(5))
	ses.exprs.Set(types.ID("half"), mustExpr(t, "x / 2"))

	cases := []struct {
		src string
		s   string
	}{
		{"e", "5"},
		{"e + 1", "6"},
		{"e * e", "25"},
		{"half", "(x / 2)"},
		{"y + 1", "(y + 1)"},
	}

	for _, c := range cases {
		e, err := ses.simplify(mustExpr(t, c.src))
		if err != nil {
			t.Errorf("simplify(%s) failed with %s", c.src, err)
		} else if e.String() != c.s {
			t.Errorf("simplify(%s) got %s want %s", c.src, e, c.s)
		}
	}
}
