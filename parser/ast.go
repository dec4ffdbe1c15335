package parser

import (
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/value"
)

// Expr is the sealed sum type of expression nodes: Literal, Unary, Binary,
// Group, Identifier, Assignment. Each non-leaf owns its children exclusively.
type Expr interface {
	exprNode()
	Line() int
}

// Stmt is the sealed sum type of statement nodes: ExprStmt, PrintStmt,
// VarDecl, Block.
type Stmt interface {
	stmtNode()
}

// Literal holds a value already known at parse time: a number, string,
// boolean, or nil.
type Literal struct {
	LineNo int
	Value  value.Value
}

func (*Literal) exprNode() {}
func (l *Literal) Line() int { return l.LineNo }

// Unary is a prefix operator applied to a single operand: `-x` or `!x`.
type Unary struct {
	LineNo   int
	Operator lexer.Token
	Operand  Expr
}

func (*Unary) exprNode() {}
func (u *Unary) Line() int { return u.LineNo }

// Binary is an infix operator applied to two operands.
type Binary struct {
	LineNo   int
	Operator lexer.Token
	Left     Expr
	Right    Expr
}

func (*Binary) exprNode() {}
func (b *Binary) Line() int { return b.LineNo }

// Group wraps exactly one parenthesized expression. This is the corrected
// shape: grouping is syntactically unary, so Group never holds a list.
type Group struct {
	LineNo int
	Inner  Expr
}

func (*Group) exprNode() {}
func (g *Group) Line() int { return g.LineNo }

// Identifier is a bare name reference, resolved against the environment at
// evaluation time.
type Identifier struct {
	LineNo int
	Name   string
}

func (*Identifier) exprNode() {}
func (i *Identifier) Line() int { return i.LineNo }

// Assignment evaluates RHS and assigns it to an existing binding named Name.
type Assignment struct {
	LineNo int
	Name   string
	RHS    Expr
}

func (*Assignment) exprNode() {}
func (a *Assignment) Line() int { return a.LineNo }

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// PrintStmt evaluates Expr and prints its canonical string form.
type PrintStmt struct {
	LineNo int
	Expr   Expr
}

func (*PrintStmt) stmtNode() {}

// VarDecl binds Name to the evaluated Initializer (nil literal when absent)
// in the current scope.
type VarDecl struct {
	LineNo      int
	Name        string
	Initializer Expr
}

func (*VarDecl) stmtNode() {}

// Block executes Statements in a fresh child scope, popped on exit.
type Block struct {
	Statements []Stmt
}

func (*Block) stmtNode() {}
