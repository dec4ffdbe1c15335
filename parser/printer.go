package parser

import "strings"

// Print renders an expression in prefix notation with explicit grouping,
// exactly as spec.md §6 requires: literals in canonical form, identifiers
// by name, `(group INNER)`, `(OP OPERAND)` for unary, `(OP LEFT RIGHT)` for
// binary.
func Print(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(n.Value.String())
	case *Identifier:
		b.WriteString(n.Name)
	case *Group:
		b.WriteString("(group ")
		writeExpr(b, n.Inner)
		b.WriteString(")")
	case *Unary:
		b.WriteString("(")
		b.WriteString(n.Operator.Lexeme)
		b.WriteString(" ")
		writeExpr(b, n.Operand)
		b.WriteString(")")
	case *Binary:
		b.WriteString("(")
		b.WriteString(n.Operator.Lexeme)
		b.WriteString(" ")
		writeExpr(b, n.Left)
		b.WriteString(" ")
		writeExpr(b, n.Right)
		b.WriteString(")")
	case *Assignment:
		b.WriteString("(= ")
		b.WriteString(n.Name)
		b.WriteString(" ")
		writeExpr(b, n.RHS)
		b.WriteString(")")
	}
}

// PrintStatement renders a single top-level statement as one line of prefix
// notation. ExprStmt prints as its bare expression; the other statement
// kinds get a small wrapper so that every statement produces exactly one
// line, matching the `parse` subcommand's "one expression per line" output.
func PrintStatement(s Stmt) string {
	var b strings.Builder
	switch n := s.(type) {
	case *ExprStmt:
		writeExpr(&b, n.Expr)
	case *PrintStmt:
		b.WriteString("(print ")
		writeExpr(&b, n.Expr)
		b.WriteString(")")
	case *VarDecl:
		b.WriteString("(var ")
		b.WriteString(n.Name)
		b.WriteString(" ")
		writeExpr(&b, n.Initializer)
		b.WriteString(")")
	case *Block:
		b.WriteString("(block")
		for _, stmt := range n.Statements {
			b.WriteString(" ")
			b.WriteString(PrintStatement(stmt))
		}
		b.WriteString(")")
	}
	return b.String()
}
