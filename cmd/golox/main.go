// Command golox is the CLI front end for the interpreter: it reads one
// source file and, depending on the requested subcommand, prints its token
// stream, its parsed AST, the value of each top-level expression, or runs
// it for its side effects.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/env"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
)

const (
	exUsage   = 64 // bad invocation: missing subcommand, missing file, unreadable file
	exDataErr = 65 // lexical or parse error
	exSwErr   = 70 // runtime error
)

var errColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 3 {
		usage()
		return exUsage
	}

	command := args[1]
	filename := args[2]

	source, err := os.ReadFile(filename)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Failed to read %s: %v\n", filename, err)
		return exUsage
	}
	src := string(source)

	switch command {
	case "tokenize":
		return runTokenize(src)
	case "parse":
		return runParse(src)
	case "evaluate":
		return runEvaluate(src)
	case "run":
		return runProgram(src)
	default:
		usage()
		return exUsage
	}
}

func usage() {
	errColor.Fprintln(os.Stderr, "Usage: golox <tokenize|parse|evaluate|run> <file>")
}

func runTokenize(source string) int {
	lex := lexer.NewLexer(source)
	for {
		tok := lex.NextToken()
		fmt.Println(tok.String())
		if tok.Type == lexer.EOF {
			break
		}
	}
	if lexErr := lex.Err(); lexErr != nil {
		errColor.Fprintln(os.Stderr, lexErr.Error())
		return exDataErr
	}
	return 0
}

func runParse(source string) int {
	p := parser.NewParser(source)
	for {
		stmt, ok := p.NextStatement()
		if !ok {
			break
		}
		fmt.Println(parser.PrintStatement(stmt))
	}
	if !reportParseErrors(p) {
		return exDataErr
	}
	return 0
}

func runEvaluate(source string) int {
	p := parser.NewParser(source)
	ev := eval.NewEvaluator(os.Stdout)
	scope := env.NewGlobal()
	for {
		stmt, ok := p.NextStatement()
		if !ok {
			break
		}
		// evaluate mode prints the value of each top-level expression
		// statement; other statement kinds still run for their effects
		// (a var declaration feeding a later expression, for instance).
		exprStmt, isExprStmt := stmt.(*parser.ExprStmt)
		if !isExprStmt {
			if err := ev.Exec(stmt, scope); err != nil {
				errColor.Fprintln(os.Stderr, err.Error())
				return exSwErr
			}
			continue
		}
		v, err := ev.Eval(exprStmt.Expr, scope)
		if err != nil {
			errColor.Fprintln(os.Stderr, err.Error())
			return exSwErr
		}
		fmt.Println(v.String())
	}
	if !reportParseErrors(p) {
		return exDataErr
	}
	return 0
}

func runProgram(source string) int {
	p := parser.NewParser(source)
	ev := eval.NewEvaluator(os.Stdout)
	scope := env.NewGlobal()
	for {
		stmt, ok := p.NextStatement()
		if !ok {
			break
		}
		if err := ev.Exec(stmt, scope); err != nil {
			errColor.Fprintln(os.Stderr, err.Error())
			return exSwErr
		}
	}
	if !reportParseErrors(p) {
		return exDataErr
	}
	return 0
}

// reportParseErrors prints any lexical and/or parse error the parser
// recorded and reports whether parsing was clean.
func reportParseErrors(p *parser.Parser) bool {
	ok := true
	if lexErr := p.LexError(); lexErr != nil {
		errColor.Fprintln(os.Stderr, lexErr.Error())
		ok = false
	}
	if parseErr := p.ParserError(); parseErr != nil {
		errColor.Fprintln(os.Stderr, parseErr.Error())
		ok = false
	}
	return ok
}
