package parser

import (
	"fmt"
	"io"
	"runtime"

	"github.com/yfyang86/form-repl/pkg/parser/form"
	"github.com/yfyang86/form-repl/pkg/parser/scanner"
	"github.com/yfyang86/form-repl/pkg/parser/token"
	"github.com/yfyang86/form-repl/pkg/types"
)

const lookBackAmount = 3

type Parser struct {
	scanner   scanner.Scanner
	lookBack  [lookBackAmount]scanner.ScanCtx
	sctx      *scanner.ScanCtx // = &lookBack[current]
	current   uint
	unscanned uint
	failed    bool
}

func NewParser(rr io.RuneReader, fn string) *Parser {
	var p Parser
	p.scanner.Init(rr, fn)
	p.sctx = &p.lookBack[0]
	return &p
}

// Parse returns the next statement, or io.EOF at the end of the input. A
// parse failure aborts only the current statement; the next call discards
// the remainder of that statement's tokens before parsing again.
func (p *Parser) Parse() (stmt form.Stmt, err error) {
	if p.failed {
		for {
			t := p.scan()
			if t == token.EOF {
				return nil, io.EOF
			} else if t == token.EndOfStatement || t == token.Newline {
				break
			}
		}
		p.failed = false
	}

	for {
		t := p.scan()
		if t == token.EOF {
			return nil, io.EOF
		} else if t != token.Newline {
			p.unscan()
			break
		}
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
			stmt = nil
			p.failed = (p.sctx.Token != token.EndOfStatement &&
				p.sctx.Token != token.Newline && p.sctx.Token != token.EOF)
		}
	}()

	stmt = p.parseStmt()
	return
}

func (p *Parser) error(msg string) {
	panic(fmt.Errorf("parser: %s: %s", p.sctx.Position, msg))
}

func (p *Parser) scan() rune {
	p.current = (p.current + 1) % lookBackAmount
	p.sctx = &p.lookBack[p.current]

	if p.unscanned > 0 {
		p.unscanned -= 1
	} else {
		p.scanner.Scan(p.sctx)
	}
	return p.sctx.Token
}

func (p *Parser) unscan() {
	p.unscanned += 1
	if p.unscanned > lookBackAmount {
		panic("parser: too much lookback")
	}
	if p.current == 0 {
		p.current = lookBackAmount - 1
	} else {
		p.current -= 1
	}
	p.sctx = &p.lookBack[p.current]
}

func (p *Parser) got() string {
	switch p.sctx.Token {
	case token.EOF:
		return "end of input"
	case token.EndOfStatement:
		return "end of statement (;)"
	case token.Newline:
		return "end of line"
	case token.Identifier:
		return fmt.Sprintf("identifier %s", p.sctx.Identifier)
	case token.Reserved:
		return fmt.Sprintf("keyword %s", p.sctx.Identifier)
	case token.Number:
		return fmt.Sprintf("number %s", form.FormatNumber(p.sctx.Number))
	case token.Sort:
		return ".sort"
	}

	return token.Format(p.sctx.Token)
}

func (p *Parser) expectIdentifier(msg string) types.Identifier {
	t := p.scan()
	if t != token.Identifier {
		p.error(fmt.Sprintf("%s, got %s", msg, p.got()))
	}
	return p.sctx.Identifier
}

func (p *Parser) expectToken(r rune) {
	t := p.scan()
	if t != r {
		p.error(fmt.Sprintf("expected %s, got %s", token.Format(r), p.got()))
	}
}

func (p *Parser) maybeToken(mr rune) bool {
	if p.scan() == mr {
		return true
	}
	p.unscan()
	return false
}

func (p *Parser) parseStmt() form.Stmt {
	switch p.scan() {
	case token.Sort:
		p.maybeToken(token.EndOfStatement)
		return &form.Sort{}
	case token.Reserved:
		switch p.sctx.Identifier {
		case types.SYMBOLS:
			return p.parseSymbolsDecl()
		case types.EXPRESSION:
			nam, e := p.parseNamedDecl("Expression")
			return &form.ExpressionDecl{Name: nam, Expr: e}
		case types.LOCAL:
			nam, e := p.parseNamedDecl("Local")
			return &form.LocalDecl{Name: nam, Expr: e}
		case types.ID_RULE:
			return p.parseIdRule()
		case types.PRINT:
			return p.parsePrint()
		}
		panic(fmt.Sprintf("parser: unexpected keyword %s", p.sctx.Identifier))
	}

	// Anything not led by a keyword evaluates as a bare expression.
	p.unscan()
	e := p.parseExpr()
	p.maybeToken(token.EndOfStatement)
	return &form.EvalExpr{Expr: e}
}

func (p *Parser) parseSymbolsDecl() form.Stmt {
	// Symbols name [',' ...] [';']
	var stmt form.SymbolsDecl
	for {
		stmt.Names = append(stmt.Names, p.expectIdentifier("expected a symbol name"))
		if !p.maybeToken(token.Comma) {
			break
		}
	}
	p.maybeToken(token.EndOfStatement)
	return &stmt
}

func (p *Parser) parseNamedDecl(kw string) (types.Identifier, form.Expr) {
	// (Expression | Local) name '=' expr [';']
	nam := p.expectIdentifier(fmt.Sprintf("expected an identifier after %s", kw))
	p.expectToken(token.Equal)
	e := p.parseExpr()
	p.maybeToken(token.EndOfStatement)
	return nam, e
}

func (p *Parser) parseIdRule() form.Stmt {
	// id pattern '=' replacement [';']
	pat := p.parseExpr()
	p.expectToken(token.Equal)
	rep := p.parseExpr()
	p.maybeToken(token.EndOfStatement)
	return &form.IdRule{Pattern: pat, Replacement: rep}
}

func (p *Parser) parsePrint() form.Stmt {
	// Print name [';']
	nam := p.expectIdentifier("expected an identifier after Print")
	p.maybeToken(token.EndOfStatement)
	return &form.Print{Name: nam}
}

func (p *Parser) ParseExpr() (e form.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
			e = nil
		}
	}()

	e = p.parseExpr()
	return
}

/*
expr = additive
additive = multiplicative [('+' | '-') multiplicative ...]
multiplicative = power [('*' | '/') power ...]
power = unary ['^' power]
unary = '-' unary | primary
primary = number
    | name
    | name '(' [expr [',' ...]] ')'
    | '(' expr ')'
*/

func (p *Parser) parseExpr() form.Expr {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() form.Expr {
	e := p.parseMultiplicative()
	for {
		var op form.Op
		switch p.scan() {
		case token.Plus:
			op = form.AddOp
		case token.Minus:
			op = form.SubOp
		default:
			p.unscan()
			return e
		}
		e = &form.BinaryExpr{Op: op, Left: e, Right: p.parseMultiplicative()}
	}
}

func (p *Parser) parseMultiplicative() form.Expr {
	e := p.parsePower()
	for {
		var op form.Op
		switch p.scan() {
		case token.Star:
			op = form.MulOp
		case token.Slash:
			op = form.DivOp
		default:
			p.unscan()
			return e
		}
		e = &form.BinaryExpr{Op: op, Left: e, Right: p.parsePower()}
	}
}

func (p *Parser) parsePower() form.Expr {
	e := p.parseUnary()
	if p.maybeToken(token.Caret) {
		// right associative
		e = &form.BinaryExpr{Op: form.PowOp, Left: e, Right: p.parsePower()}
	}
	return e
}

func (p *Parser) parseUnary() form.Expr {
	if p.maybeToken(token.Minus) {
		return &form.UnaryExpr{Op: form.NegOp, Expr: p.parseUnary()}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() form.Expr {
	switch p.scan() {
	case token.Number:
		return form.Number(p.sctx.Number)
	case token.Identifier:
		nam := p.sctx.Identifier
		if !p.maybeToken(token.LParen) {
			return form.Symbol(nam)
		}

		// name ( expr [,...] )
		c := form.Call{Name: nam}
		if !p.maybeToken(token.RParen) {
			for {
				c.Args = append(c.Args, p.parseExpr())
				if !p.maybeToken(token.Comma) {
					break
				}
			}
			p.expectToken(token.RParen)
		}
		return &c
	case token.LParen:
		e := p.parseExpr()
		p.expectToken(token.RParen)
		return e
	}

	p.error(fmt.Sprintf("expected an expression, got %s", p.got()))
	return nil
}
