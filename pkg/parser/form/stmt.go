package form

import (
	"fmt"
	"strings"

	"github.com/yfyang86/form-repl/pkg/types"
)

type Stmt interface {
	String() string
}

type SymbolsDecl struct {
	Names []types.Identifier
}

func (stmt *SymbolsDecl) String() string {
	var buf strings.Builder
	buf.WriteString("Symbols ")
	for idx, nam := range stmt.Names {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(nam.String())
	}
	return buf.String()
}

type ExpressionDecl struct {
	Name types.Identifier
	Expr Expr
}

func (stmt *ExpressionDecl) String() string {
	return fmt.Sprintf("Expression %s = %s", stmt.Name, stmt.Expr)
}

type LocalDecl struct {
	Name types.Identifier
	Expr Expr
}

func (stmt *LocalDecl) String() string {
	return fmt.Sprintf("Local %s = %s", stmt.Name, stmt.Expr)
}

type IdRule struct {
	Pattern     Expr
	Replacement Expr
}

func (stmt *IdRule) String() string {
	return fmt.Sprintf("id %s = %s", stmt.Pattern, stmt.Replacement)
}

type Print struct {
	Name types.Identifier
}

func (stmt *Print) String() string {
	return fmt.Sprintf("Print %s", stmt.Name)
}

type Sort struct{}

func (_ *Sort) String() string {
	return ".sort"
}

type EvalExpr struct {
	Expr Expr
}

func (stmt *EvalExpr) String() string {
	return stmt.Expr.String()
}
