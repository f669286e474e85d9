// Package emitter produces C++ source from the syntax tree by a
// single syntax-directed traversal. Emission is total: a missing
// expression slot emits nothing for that slot, so even the partial
// trees the parser builds from malformed input come out as complete,
// compilable-looking text.
package emitter

import (
	"fmt"
	"strings"

	"github.com/agenthands/pseudoc/pkg/compiler/ast"
)

// indentUnit is the only formatting rule: four spaces per nesting
// level, prefixed to every statement line.
const indentUnit = "    "

// Emitter accumulates output text while tracking indentation and the
// set of variables already declared. State is scoped to one Emit call;
// use a fresh Emitter per program.
type Emitter struct {
	buf      strings.Builder
	indent   int
	declared map[string]struct{}
}

func New() *Emitter {
	return &Emitter{declared: make(map[string]struct{})}
}

// Emit renders the whole program.
func (e *Emitter) Emit(prog *ast.Program) string {
	e.buf.WriteString("#include <iostream>\n")
	e.buf.WriteString("#include <string>\n")
	e.buf.WriteString("using namespace std;\n\n")

	if prog != nil && prog.Algorithm != nil {
		e.emitAlgorithm(prog.Algorithm)
	}

	return e.buf.String()
}

func (e *Emitter) emitAlgorithm(a *ast.Algorithm) {
	e.buf.WriteString("int main() {\n")
	e.indent++
	e.emitBlock(a.Body)
	e.buf.WriteString(e.pad() + "return 0;\n")
	e.indent--
	e.buf.WriteString("}\n")
}

func (e *Emitter) emitBlock(b ast.Block) {
	for _, stmt := range b.Stmts {
		e.emitStmt(stmt)
	}
}

func (e *Emitter) emitStmt(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.Write:
		e.buf.WriteString(e.pad() + "cout << ")
		e.emitExpr(n.Value)
		e.buf.WriteString(" << endl;\n")

	case *ast.Read:
		fmt.Fprintf(&e.buf, "%scin >> %s;\n", e.pad(), n.Name)

	case *ast.If:
		e.buf.WriteString(e.pad() + "if (")
		e.emitExpr(n.Cond)
		e.buf.WriteString(") {\n")
		e.indent++
		e.emitBlock(n.Then)
		e.indent--
		e.buf.WriteString(e.pad() + "}")
		if n.Else != nil {
			e.buf.WriteString(" else {\n")
			e.indent++
			e.emitBlock(*n.Else)
			e.indent--
			e.buf.WriteString(e.pad() + "}")
		}
		e.buf.WriteString("\n")

	case *ast.For:
		// Counting loop, inclusive upper bound, step of 1. The loop
		// variable is declared in the header and deliberately kept out
		// of the declared set: its scope ends with the loop.
		fmt.Fprintf(&e.buf, "%sfor (int %s = ", e.pad(), n.Var)
		e.emitExpr(n.From)
		fmt.Fprintf(&e.buf, "; %s <= ", n.Var)
		e.emitExpr(n.To)
		fmt.Fprintf(&e.buf, "; %s++) {\n", n.Var)
		e.indent++
		e.emitBlock(n.Body)
		e.indent--
		e.buf.WriteString(e.pad() + "}\n")

	case *ast.While:
		e.buf.WriteString(e.pad() + "while (")
		e.emitExpr(n.Cond)
		e.buf.WriteString(") {\n")
		e.indent++
		e.emitBlock(n.Body)
		e.indent--
		e.buf.WriteString(e.pad() + "}\n")

	case *ast.Assign:
		// First assignment declares with a fixed integer type, later
		// assignments rebind.
		if _, ok := e.declared[n.Name]; !ok {
			e.declared[n.Name] = struct{}{}
			fmt.Fprintf(&e.buf, "%sint %s = ", e.pad(), n.Name)
		} else {
			fmt.Fprintf(&e.buf, "%s%s = ", e.pad(), n.Name)
		}
		e.emitExpr(n.Value)
		e.buf.WriteString(";\n")
	}
}

func (e *Emitter) emitExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case nil:
		// Missing slot: emit nothing.

	case *ast.Number:
		e.buf.WriteString(n.Text)

	case *ast.String:
		e.buf.WriteString(`"` + n.Text + `"`)

	case *ast.Ident:
		e.buf.WriteString(n.Name)

	case *ast.Opaque:
		e.buf.WriteString(n.Text)

	case *ast.BinaryOp:
		// No parenthesization: the parser's flat left-to-right
		// chaining already fixed the grouping.
		e.emitExpr(n.Left)
		e.buf.WriteString(" " + n.Op + " ")
		e.emitExpr(n.Right)
	}
}

func (e *Emitter) pad() string {
	return strings.Repeat(indentUnit, e.indent)
}
