package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOneExprStmt(t *testing.T, src string) Stmt {
	t.Helper()
	p := NewParser(src)
	stmts := p.Parse()
	require.Nil(t, p.ParserError())
	require.Nil(t, p.LexError())
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestParse_PrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	stmt := parseOneExprStmt(t, "1 + 2 * 3;")
	es := stmt.(*ExprStmt)
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", Print(es.Expr))
}

func TestParse_GroupingDumpsWithSingleChild(t *testing.T) {
	stmt := parseOneExprStmt(t, "(1 + 2) * 3;")
	es := stmt.(*ExprStmt)
	assert.Equal(t, "(* (group (+ 1.0 2.0)) 3.0)", Print(es.Expr))

	group, ok := es.Expr.(*Binary).Left.(*Group)
	require.True(t, ok)
	assert.NotNil(t, group.Inner)
}

func TestParse_BangEqualityExample(t *testing.T) {
	stmt := parseOneExprStmt(t, "!true == false;")
	es := stmt.(*ExprStmt)
	assert.Equal(t, "(== (! true) false)", Print(es.Expr))
}

func TestParse_LessBindsWithAdditionNotComparison(t *testing.T) {
	// spec's precedence table puts `<` at the same level as `+`/`-` (5),
	// while `<=`/`>`/`>=`/`==`/`!=` sit lower at 2 — so `1 < 2 == true`
	// groups as `(== (< 1 2) true)`, not a flat chain.
	stmt := parseOneExprStmt(t, "1 < 2 == true;")
	es := stmt.(*ExprStmt)
	assert.Equal(t, "(== (< 1.0 2.0) true)", Print(es.Expr))
}

func TestParse_VarDeclWithoutInitializerDefaultsToNil(t *testing.T) {
	p := NewParser("var a;")
	stmts := p.Parse()
	require.Nil(t, p.ParserError())
	require.Len(t, stmts, 1)
	decl := stmts[0].(*VarDecl)
	assert.Equal(t, "a", decl.Name)
	lit, ok := decl.Initializer.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "nil", lit.Value.String())
}

func TestParse_BlockScopesNestedDeclarations(t *testing.T) {
	p := NewParser("{ var a = 1; print a; }")
	stmts := p.Parse()
	require.Nil(t, p.ParserError())
	require.Len(t, stmts, 1)
	block := stmts[0].(*Block)
	assert.Len(t, block.Statements, 2)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmt := parseOneExprStmt(t, "a = b = 3;")
	es := stmt.(*ExprStmt)
	assign := es.Expr.(*Assignment)
	assert.Equal(t, "a", assign.Name)
	inner, ok := assign.RHS.(*Assignment)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name)
}

func TestParse_UnmatchedParensHalts(t *testing.T) {
	p := NewParser("(1 + 2;")
	p.Parse()
	require.NotNil(t, p.ParserError())
	assert.Equal(t, "Unmatched parens", p.ParserError().Message)
}

func TestParse_ExpectExpressionOnMissingPrimary(t *testing.T) {
	p := NewParser("1 + ;")
	p.Parse()
	require.NotNil(t, p.ParserError())
	assert.Contains(t, p.ParserError().Message, "Expect expression")
}

func TestParse_LexErrorIsPromoted(t *testing.T) {
	p := NewParser("@;")
	p.Parse()
	require.NotNil(t, p.LexError())
	assert.Equal(t, "Unexpected character: @", p.LexError().Message)
}

func TestParse_StopsAfterFirstError(t *testing.T) {
	p := NewParser("1 + ; 2 + 3;")
	stmts := p.Parse()
	require.NotNil(t, p.ParserError())
	assert.Empty(t, stmts)
}

func TestParser_NextStatementPullsOneAtATime(t *testing.T) {
	p := NewParser("var a = 1; print a; a = 2;")

	stmt1, ok := p.NextStatement()
	require.True(t, ok)
	_, isVarDecl := stmt1.(*VarDecl)
	assert.True(t, isVarDecl)

	stmt2, ok := p.NextStatement()
	require.True(t, ok)
	_, isPrintStmt := stmt2.(*PrintStmt)
	assert.True(t, isPrintStmt)

	stmt3, ok := p.NextStatement()
	require.True(t, ok)
	_, isExprStmt := stmt3.(*ExprStmt)
	assert.True(t, isExprStmt)

	_, ok = p.NextStatement()
	assert.False(t, ok)
	assert.Nil(t, p.ParserError())
	assert.Nil(t, p.LexError())
}

func TestParser_NextStatementStopsAtFirstError(t *testing.T) {
	p := NewParser("1 + ; 2 + 3;")

	_, ok := p.NextStatement()
	assert.False(t, ok)
	require.NotNil(t, p.ParserError())

	// once an error is recorded, further pulls keep reporting false rather
	// than attempting to resynchronize and continue.
	_, ok = p.NextStatement()
	assert.False(t, ok)
}
