// Package parser builds the syntax tree from a token sequence by
// recursive descent with one token of lookahead. Recovery is lenient
// by design: closing keywords are optional, an unrecognized statement
// skips exactly one token, and a token that fits no expression form
// becomes an opaque leaf. Malformed input therefore degrades into a
// partial tree instead of an error; do not tighten these paths, the
// accepted-input set is part of the language's contract.
package parser

import (
	"fmt"

	"github.com/agenthands/pseudoc/pkg/compiler/ast"
	"github.com/agenthands/pseudoc/pkg/compiler/lexer"
)

// chainOps are the operators that extend an expression. Left
// associative, single precedence level: a + b > c parses as
// (a + b) > c. Multiplication and division are lexed but never chain;
// they terminate the expression instead.
var chainOps = map[string]bool{
	"+": true, "-": true,
	">": true, "<": true,
	"<=": true, ">=": true,
	"==": true, "!=": true,
}

type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse builds the program tree for a token sequence. The tree is
// always single-rooted and structurally well-formed; the only error
// Parse can return is a syntax error wrapping an internal failure
// during tree construction.
func Parse(tokens []lexer.Token) (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			prog = nil
			err = fmt.Errorf("syntax error: %v", r)
		}
	}()

	p := &Parser{tokens: tokens}
	return p.parseProgram(), nil
}

// peek returns the current token without advancing. Past the end it
// returns an unknown-kind sentinel so callers never have to bounds
// check.
func (p *Parser) peek() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Kind: lexer.KindUnknown}
}

func (p *Parser) consume() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) match(text string) bool {
	return p.peek().Text == text
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	if p.match("Algoritmo") {
		prog.Algorithm = p.parseAlgorithm()
	}
	return prog
}

func (p *Parser) parseAlgorithm() *ast.Algorithm {
	p.consume() // Algoritmo
	name := p.consume()

	alg := &ast.Algorithm{Name: name.Text}
	for !p.match("FinAlgoritmo") && !p.atEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			alg.Body.Stmts = append(alg.Body.Stmts, stmt)
		}
	}

	if p.match("FinAlgoritmo") {
		p.consume()
	}

	return alg
}

// parseStatement dispatches on the leading keyword. Anything
// unrecognized costs exactly one token and contributes no node.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.match("Escribir"):
		return p.parseWrite()
	case p.match("Leer"):
		return p.parseRead()
	case p.match("Si"):
		return p.parseIf()
	case p.match("Para"):
		return p.parseFor()
	case p.match("Mientras"):
		return p.parseWhile()
	case p.peek().Kind == lexer.KindIdentifier:
		return p.parseAssign()
	}

	p.consume()
	return nil
}

func (p *Parser) parseWrite() *ast.Write {
	p.consume() // Escribir
	return &ast.Write{Value: p.parseExpr()}
}

func (p *Parser) parseRead() *ast.Read {
	p.consume() // Leer
	return &ast.Read{Name: p.consume().Text}
}

func (p *Parser) parseIf() *ast.If {
	p.consume() // Si
	stmt := &ast.If{Cond: p.parseExpr()}

	if p.match("Entonces") {
		p.consume()
	}

	for !p.match("Sino") && !p.match("FinSi") && !p.atEnd() {
		if s := p.parseStatement(); s != nil {
			stmt.Then.Stmts = append(stmt.Then.Stmts, s)
		}
	}

	if p.match("Sino") {
		p.consume()
		stmt.Else = &ast.Block{}
		for !p.match("FinSi") && !p.atEnd() {
			if s := p.parseStatement(); s != nil {
				stmt.Else.Stmts = append(stmt.Else.Stmts, s)
			}
		}
	}

	if p.match("FinSi") {
		p.consume()
	}

	return stmt
}

func (p *Parser) parseFor() *ast.For {
	p.consume() // Para
	name := p.consume()
	p.consume() // the arrow, "<-" or "=", taken on faith

	stmt := &ast.For{Var: name.Text, From: p.parseExpr()}

	if p.match("Hasta") {
		p.consume()
		stmt.To = p.parseExpr()
	}

	for !p.match("FinPara") && !p.atEnd() {
		if s := p.parseStatement(); s != nil {
			stmt.Body.Stmts = append(stmt.Body.Stmts, s)
		}
	}

	if p.match("FinPara") {
		p.consume()
	}

	return stmt
}

func (p *Parser) parseWhile() *ast.While {
	p.consume() // Mientras
	stmt := &ast.While{Cond: p.parseExpr()}

	for !p.match("FinMientras") && !p.atEnd() {
		if s := p.parseStatement(); s != nil {
			stmt.Body.Stmts = append(stmt.Body.Stmts, s)
		}
	}

	if p.match("FinMientras") {
		p.consume()
	}

	return stmt
}

func (p *Parser) parseAssign() *ast.Assign {
	name := p.consume()
	p.consume() // the arrow, "<-" or "=", taken on faith
	return &ast.Assign{Name: name.Text, Value: p.parseExpr()}
}

func (p *Parser) parseExpr() ast.Expr {
	left := p.parseTerm()

	for !p.atEnd() && chainOps[p.peek().Text] {
		op := p.consume()
		right := p.parseTerm()
		left = &ast.BinaryOp{Op: op.Text, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parseTerm() ast.Expr {
	tok := p.consume()

	switch tok.Kind {
	case lexer.KindNumber:
		return &ast.Number{Text: tok.Text}
	case lexer.KindString:
		return &ast.String{Text: tok.Text}
	case lexer.KindIdentifier:
		return &ast.Ident{Name: tok.Text}
	}

	return &ast.Opaque{Text: tok.Text}
}
