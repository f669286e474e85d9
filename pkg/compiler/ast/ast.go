// Package ast defines the syntax tree produced by the parser. The
// node set is closed: each form carries exactly the payload its
// emission needs, so an invalid kind/arity combination cannot be
// represented. Required blocks are value-typed and therefore always
// present, possibly empty; If.Else and For.To are the only optional
// slots.
package ast

// Statement is a standalone unit of execution.
type Statement interface {
	stmtNode()
}

// Expr is an expression that yields a value.
type Expr interface {
	exprNode()
}

// Program is the root node. A source file holds at most one
// algorithm; Algorithm is nil when the source opens with anything
// else.
type Program struct {
	Algorithm *Algorithm
}

// Algorithm: Algoritmo NAME ... FinAlgoritmo
type Algorithm struct {
	Name string
	Body Block
}

// Block holds the statements of one control-flow branch in execution
// order.
type Block struct {
	Stmts []Statement
}

// Write: Escribir EXPR
type Write struct {
	Value Expr
}

func (*Write) stmtNode() {}

// Read: Leer IDENT
type Read struct {
	Name string
}

func (*Read) stmtNode() {}

// If: Si EXPR Entonces ... Sino ... FinSi
type If struct {
	Cond Expr
	Then Block
	Else *Block
}

func (*If) stmtNode() {}

// For: Para VAR <- EXPR Hasta EXPR ... FinPara. The upper bound is
// inclusive and the step is always 1. To is nil when the Hasta clause
// is missing from the source.
type For struct {
	Var  string
	From Expr
	To   Expr
	Body Block
}

func (*For) stmtNode() {}

// While: Mientras EXPR ... FinMientras
type While struct {
	Cond Expr
	Body Block
}

func (*While) stmtNode() {}

// Assign: VAR <- EXPR
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) stmtNode() {}

// Number is an unsigned integer literal.
type Number struct {
	Text string
}

func (*Number) exprNode() {}

// String is a string literal, stored without quotes.
type String struct {
	Text string
}

func (*String) exprNode() {}

// Ident is a variable reference.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// Opaque absorbs a token that fits no expression form. Its raw text
// is carried through to the output untouched rather than raising an
// error.
type Opaque struct {
	Text string
}

func (*Opaque) exprNode() {}

// BinaryOp is a two-operand operation. Expressions chain strictly
// left to right with a single precedence level, so a nested BinaryOp
// always appears on the left.
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryOp) exprNode() {}
