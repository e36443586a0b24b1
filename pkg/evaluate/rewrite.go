package evaluate

import (
	"math"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/types"
)

const (
	// maxRewrites caps the top level rewrite loop; a rule pair that swaps an
	// expression back and forth terminates here instead of looping forever.
	// The cap does not depend on the number of rules.
	maxRewrites = 100

	// matchTolerance is the absolute tolerance for number leaves in
	// patterns.
	matchTolerance = 1e-10
)

// applyRules rewrites one expression to a fixed point. Rules are tried in
// declaration order against the whole expression, restarting from the first
// rule after every application; once no rule matches at the top level (or
// maxRewrites is reached) the children get one bottom up rewrite pass. The
// result is simplified before being returned.
func (ses *Session) applyRules(e form.Expr) (form.Expr, error) {
	result := e
	changed := true
	iterations := 0

	for changed && iterations < maxRewrites {
		changed = false
		iterations += 1

		for _, rl := range ses.rules {
			if bindings, ok := matchPattern(result, rl.pattern); ok {
				ses.tracef("rewrite: %s -> %s on %s", rl.pattern, rl.replacement, result)
				result = substitute(rl.replacement, bindings)
				changed = true
				break
			}
		}

		if !changed {
			switch r := result.(type) {
			case *form.BinaryExpr:
				result = &form.BinaryExpr{
					Op:    r.Op,
					Left:  ses.rewriteSubterms(r.Left),
					Right: ses.rewriteSubterms(r.Right),
				}
			case *form.UnaryExpr:
				result = &form.UnaryExpr{Op: r.Op, Expr: ses.rewriteSubterms(r.Expr)}
			case *form.Call:
				args := make([]form.Expr, len(r.Args))
				for idx, arg := range r.Args {
					args[idx] = ses.rewriteSubterms(arg)
				}
				result = &form.Call{Name: r.Name, Args: args}
			}
			break
		}
	}

	return ses.simplify(result)
}

// rewriteSubterms rewrites an expression bottom up: children first, then
// one match attempt at this level with the rewritten children in place.
func (ses *Session) rewriteSubterms(e form.Expr) form.Expr {
	result := e
	switch e := e.(type) {
	case *form.BinaryExpr:
		result = &form.BinaryExpr{
			Op:    e.Op,
			Left:  ses.rewriteSubterms(e.Left),
			Right: ses.rewriteSubterms(e.Right),
		}
	case *form.UnaryExpr:
		result = &form.UnaryExpr{Op: e.Op, Expr: ses.rewriteSubterms(e.Expr)}
	case *form.Call:
		args := make([]form.Expr, len(e.Args))
		for idx, arg := range e.Args {
			args[idx] = ses.rewriteSubterms(arg)
		}
		result = &form.Call{Name: e.Name, Args: args}
	}

	for _, rl := range ses.rules {
		if bindings, ok := matchPattern(result, rl.pattern); ok {
			ses.tracef("rewrite: %s -> %s on %s", rl.pattern, rl.replacement, result)
			return substitute(rl.replacement, bindings)
		}
	}

	return result
}

// matchPattern compares an expression against a pattern structurally.
// Symbol leaves match on name equality only; the binding map is merged and
// checked for conflicts but stays empty in practice, since patterns have no
// free variables. Unary expressions and calls are never match targets; they
// are only rewritten through their children.
func matchPattern(e, pattern form.Expr) (map[types.Identifier]form.Expr, bool) {
	switch pattern := pattern.(type) {
	case form.Symbol:
		if s, ok := e.(form.Symbol); ok && s == pattern {
			return map[types.Identifier]form.Expr{}, true
		}
	case form.Number:
		if n, ok := e.(form.Number); ok &&
			math.Abs(float64(n)-float64(pattern)) < matchTolerance {

			return map[types.Identifier]form.Expr{}, true
		}
	case *form.BinaryExpr:
		be, ok := e.(*form.BinaryExpr)
		if !ok || be.Op != pattern.Op {
			break
		}
		leftBindings, ok := matchPattern(be.Left, pattern.Left)
		if !ok {
			break
		}
		rightBindings, ok := matchPattern(be.Right, pattern.Right)
		if !ok {
			break
		}

		for nam, val := range rightBindings {
			if existing, ok := leftBindings[nam]; ok && !existing.Equal(val) {
				return nil, false
			}
			leftBindings[nam] = val
		}
		return leftBindings, true
	}

	return nil, false
}

func substitute(e form.Expr, bindings map[types.Identifier]form.Expr) form.Expr {
	switch e := e.(type) {
	case form.Symbol:
		if val, ok := bindings[types.Identifier(e)]; ok {
			return val
		}
		return e
	case *form.BinaryExpr:
		return &form.BinaryExpr{
			Op:    e.Op,
			Left:  substitute(e.Left, bindings),
			Right: substitute(e.Right, bindings),
		}
	case *form.UnaryExpr:
		return &form.UnaryExpr{Op: e.Op, Expr: substitute(e.Expr, bindings)}
	case *form.Call:
		args := make([]form.Expr, len(e.Args))
		for idx, arg := range e.Args {
			args[idx] = substitute(arg, bindings)
		}
		return &form.Call{Name: e.Name, Args: args}
	}

	return e
}
