package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yfyang86/form-repl/pkg/types"
)

// Expr is an immutable expression tree; every node exclusively owns its
// children. Rewriting always builds new nodes.
type Expr interface {
	String() string
	Equal(e Expr) bool
	isExpr()
}

type Op int

const (
	AddOp Op = iota
	SubOp
	MulOp
	DivOp
	PowOp
	NegOp
)

var (
	opNames = []string{
		AddOp: "+",
		SubOp: "-",
		MulOp: "*",
		DivOp: "/",
		PowOp: "^",
		NegOp: "-",
	}
)

func (op Op) String() string {
	return opNames[op]
}

type Number float64

type Symbol types.Identifier

type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Op   Op
	Expr Expr
}

type Call struct {
	Name types.Identifier
	Args []Expr
}

// FormatNumber renders integral values without a fractional part and
// everything else in shortest round trip form.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < (1<<63) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func (n Number) String() string {
	return FormatNumber(float64(n))
}

func (_ Number) isExpr() {}

func (n Number) Equal(e Expr) bool {
	n2, ok := e.(Number)
	return ok && n == n2
}

func (s Symbol) String() string {
	return types.Identifier(s).String()
}

func (_ Symbol) isExpr() {}

func (s Symbol) Equal(e Expr) bool {
	s2, ok := e.(Symbol)
	return ok && s == s2
}

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left, opNames[be.Op], be.Right)
}

func (_ *BinaryExpr) isExpr() {}

func (be *BinaryExpr) Equal(e Expr) bool {
	be2, ok := e.(*BinaryExpr)
	return ok && be.Op == be2.Op && be.Left.Equal(be2.Left) && be.Right.Equal(be2.Right)
}

func (ue *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", opNames[ue.Op], ue.Expr)
}

func (_ *UnaryExpr) isExpr() {}

func (ue *UnaryExpr) Equal(e Expr) bool {
	ue2, ok := e.(*UnaryExpr)
	return ok && ue.Op == ue2.Op && ue.Expr.Equal(ue2.Expr)
}

func (c *Call) String() string {
	var buf strings.Builder
	buf.WriteString(c.Name.String())
	buf.WriteRune('(')
	for idx, arg := range c.Args {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteRune(')')
	return buf.String()
}

func (_ *Call) isExpr() {}

func (c *Call) Equal(e Expr) bool {
	c2, ok := e.(*Call)
	if !ok || c.Name != c2.Name || len(c.Args) != len(c2.Args) {
		return false
	}
	for idx, arg := range c.Args {
		if !arg.Equal(c2.Args[idx]) {
			return false
		}
	}
	return true
}
