package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/value"
)

// ParseError is the first parse failure encountered. The parser records at
// most one and halts statement production at that point.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// precedence maps each binary operator token to its climbing priority.
// Unlike the usual uniform ladder, this table groups `<` with `+`/`-` at 5
// while `<=`/`>`/`>=` sit with `==`/`!=` at 2 — that asymmetry is the
// language's actual precedence table, not an oversight.
var precedence = map[lexer.TokenType]int{
	lexer.STAR:  10,
	lexer.SLASH: 10,

	lexer.PLUS:  5,
	lexer.MINUS: 5,
	lexer.LESS:  5,

	lexer.LESS_EQUAL:    2,
	lexer.GREATER:       2,
	lexer.GREATER_EQUAL: 2,
	lexer.EQUAL_EQUAL:   2,
	lexer.BANG_EQUAL:    2,
}

// Parser is a two-token-lookahead recursive-descent parser built directly
// over a Lexer. It owns the token buffer and exposes a pull-based iterator
// over statements via NextStatement; Parse is a convenience wrapper that
// drains that iterator to exhaustion, stopping at the first error.
type Parser struct {
	lex     *lexer.Lexer
	current lexer.Token
	next    lexer.Token
	err     *ParseError
}

func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.current = p.lex.NextToken()
	p.next = p.lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.current = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) setError(line int, msg string) {
	if p.err == nil {
		p.err = &ParseError{Line: line, Message: msg}
	}
}

// ParserError returns the first parse error recorded, or nil.
func (p *Parser) ParserError() *ParseError {
	return p.err
}

// LexError returns the first lexical error the underlying lexer recorded,
// promoted here per spec's "errors produced by the lexer are promoted into
// the parser's result" rule.
func (p *Parser) LexError() *lexer.LexError {
	return p.lex.Err()
}

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.current.Type != t {
		p.setError(p.current.Line, "Unexpected token")
		return false
	}
	p.advance()
	return true
}

// NextStatement pulls exactly one top-level statement from the token
// buffer, advancing the parser's position by that much and no further. It
// reports false once the stream is exhausted or a parse error has been
// recorded, at which point the caller should stop calling it and consult
// ParserError/LexError.
func (p *Parser) NextStatement() (Stmt, bool) {
	if p.current.Type == lexer.EOF || p.err != nil {
		return nil, false
	}
	stmt := p.parseDeclaration()
	if p.err != nil {
		return nil, false
	}
	return stmt, true
}

// Parse drains NextStatement to exhaustion, returning every top-level
// statement produced before the first error (if any).
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for {
		stmt, ok := p.NextStatement()
		if !ok {
			break
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (p *Parser) parseDeclaration() Stmt {
	if p.current.Type == lexer.VAR {
		return p.parseVarDecl()
	}
	return p.parseStatement()
}

func (p *Parser) parseVarDecl() Stmt {
	line := p.current.Line
	p.advance() // consume 'var'

	if p.current.Type != lexer.IDENTIFIER {
		p.setError(p.current.Line, "Unexpected token")
		return nil
	}
	name := p.current.Lexeme
	p.advance()

	var initializer Expr = &Literal{LineNo: line, Value: value.Nil{}}
	if p.current.Type == lexer.EQUAL {
		p.advance()
		initializer = p.parseExpression()
		if p.err != nil {
			return nil
		}
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}
	return &VarDecl{LineNo: line, Name: name, Initializer: initializer}
}

func (p *Parser) parseStatement() Stmt {
	switch p.current.Type {
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parsePrintStmt() Stmt {
	line := p.current.Line
	p.advance() // consume 'print'
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		return nil
	}
	return &PrintStmt{LineNo: line, Expr: expr}
}

func (p *Parser) parseBlock() Stmt {
	p.advance() // consume '{'
	var stmts []Stmt
	for p.current.Type != lexer.RIGHT_BRACE && p.current.Type != lexer.EOF && p.err == nil {
		stmt := p.parseDeclaration()
		if p.err != nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}
	if !p.expect(lexer.RIGHT_BRACE) {
		return nil
	}
	return &Block{Statements: stmts}
}

func (p *Parser) parseExprStmt() Stmt {
	expr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		return nil
	}
	return &ExprStmt{Expr: expr}
}

func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

// parseAssignment implements `assignment ::= IDENT "=" assignment | equality`
// directly: the left side is parsed through the climbing table, and only
// reinterpreted as an assignment target if it is a bare identifier.
func (p *Parser) parseAssignment() Expr {
	expr := p.parsePrecedence(0)
	if p.err != nil {
		return nil
	}
	if p.current.Type != lexer.EQUAL {
		return expr
	}

	eqLine := p.current.Line
	id, ok := expr.(*Identifier)
	if !ok {
		p.setError(eqLine, "Unexpected token")
		return nil
	}
	p.advance() // consume '='
	rhs := p.parseAssignment()
	if p.err != nil {
		return nil
	}
	return &Assignment{LineNo: eqLine, Name: id.Name, RHS: rhs}
}

// parsePrecedence is the Pratt climbing loop: it keeps folding binary
// operators into the left operand as long as the peeked operator's
// precedence strictly exceeds minPrec.
func (p *Parser) parsePrecedence(minPrec int) Expr {
	left := p.parseUnary()
	if p.err != nil {
		return nil
	}
	for {
		prec, isOperator := precedence[p.current.Type]
		if !isOperator || prec <= minPrec {
			break
		}
		op := p.current
		p.advance()
		right := p.parsePrecedence(prec)
		if p.err != nil {
			return nil
		}
		left = &Binary{LineNo: op.Line, Operator: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.current.Type == lexer.BANG || p.current.Type == lexer.MINUS {
		op := p.current
		p.advance()
		operand := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return &Unary{LineNo: op.Line, Operator: op, Operand: operand}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() Expr {
	tok := p.current
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		f, _ := strconv.ParseFloat(tok.Literal, 64)
		return &Literal{LineNo: tok.Line, Value: value.Number(f)}
	case lexer.STRING:
		p.advance()
		return &Literal{LineNo: tok.Line, Value: value.String(tok.Literal)}
	case lexer.TRUE:
		p.advance()
		return &Literal{LineNo: tok.Line, Value: value.Boolean(true)}
	case lexer.FALSE:
		p.advance()
		return &Literal{LineNo: tok.Line, Value: value.Boolean(false)}
	case lexer.NIL:
		p.advance()
		return &Literal{LineNo: tok.Line, Value: value.Nil{}}
	case lexer.IDENTIFIER:
		p.advance()
		return &Identifier{LineNo: tok.Line, Name: tok.Lexeme}
	case lexer.LEFT_PAREN:
		p.advance()
		inner := p.parseExpression()
		if p.err != nil {
			return nil
		}
		if p.current.Type != lexer.RIGHT_PAREN {
			p.setError(tok.Line, "Unmatched parens")
			return nil
		}
		p.advance()
		return &Group{LineNo: tok.Line, Inner: inner}
	default:
		msg := "Expect expression"
		if tok.Lexeme != "" {
			msg = fmt.Sprintf("Expect expression: %s", tok.Lexeme)
		}
		p.setError(tok.Line, msg)
		return nil
	}
}
