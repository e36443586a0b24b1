package evaluate

import (
	"fmt"
	"io"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/storage"
	"github.com/yfyang86/form-repl/pkg/types"
)

type rule struct {
	pattern     form.Expr
	replacement form.Expr
}

// Session owns the three tables for one interactive session: declared
// symbols, named expressions, and rewrite rules in declaration order. It is
// single threaded; statements are never evaluated concurrently. Tables are
// mutated only as the side effect of a fully successful statement, so a
// failed statement leaves the session unchanged.
type Session struct {
	symbols map[types.Identifier]form.Expr
	exprs   *storage.Table
	rules   []rule
	trace   io.Writer
}

// NewSession returns an empty session. trace receives a line per statement
// and per rule application; nil disables tracing. The trace writer is the
// host's verbose toggle, passed in explicitly rather than read from process
// state.
func NewSession(trace io.Writer) *Session {
	return &Session{
		symbols: map[types.Identifier]form.Expr{},
		exprs:   storage.NewTable(),
		trace:   trace,
	}
}

func (ses *Session) tracef(format string, args ...interface{}) {
	if ses.trace != nil {
		fmt.Fprintf(ses.trace, format+"\n", args...)
	}
}

// Evaluate executes one statement against the session tables and returns
// its display text.
func (ses *Session) Evaluate(stmt form.Stmt) (string, error) {
	ses.tracef("evaluate: %s", stmt)

	switch stmt := stmt.(type) {
	case *form.SymbolsDecl:
		for _, nam := range stmt.Names {
			ses.symbols[nam] = form.Symbol(nam)
		}
		return "Symbols declared", nil
	case *form.ExpressionDecl:
		return ses.declare(stmt.Name, stmt.Expr)
	case *form.LocalDecl:
		// Local is evaluated exactly like Expression.
		return ses.declare(stmt.Name, stmt.Expr)
	case *form.IdRule:
		ses.rules = append(ses.rules, rule{stmt.Pattern, stmt.Replacement})
		return fmt.Sprintf("Rule added: %s -> %s", stmt.Pattern, stmt.Replacement), nil
	case *form.Print:
		e, ok := ses.exprs.Get(stmt.Name)
		if !ok {
			return "", &UndefinedError{Name: stmt.Name}
		}
		return fmt.Sprintf("%s = %s", stmt.Name, e), nil
	case *form.Sort:
		err := ses.sortExpressions()
		if err != nil {
			return "", err
		}
		return "Sorted and rules applied", nil
	case *form.EvalExpr:
		e, err := ses.simplify(stmt.Expr)
		if err != nil {
			return "", err
		}
		return e.String(), nil
	}

	panic(fmt.Sprintf("evaluate: unexpected stmt: %#v", stmt))
}

func (ses *Session) declare(nam types.Identifier, e form.Expr) (string, error) {
	simplified, err := ses.simplify(e)
	if err != nil {
		return "", err
	}
	ses.exprs.Set(nam, simplified)
	return fmt.Sprintf("%s = %s", nam, simplified), nil
}

// sortExpressions rewrites every stored expression. The results accumulate
// in a fresh table which replaces the old one only once every entry has
// been rewritten, so a failure leaves the session untouched.
func (ses *Session) sortExpressions() error {
	updated := storage.NewTable()
	var serr error
	ses.exprs.Walk(func(nam types.Identifier, e form.Expr) bool {
		var rewritten form.Expr
		rewritten, serr = ses.applyRules(e)
		if serr != nil {
			return false
		}
		updated.Set(nam, rewritten)
		return true
	})
	if serr != nil {
		return serr
	}

	ses.exprs = updated
	return nil
}
