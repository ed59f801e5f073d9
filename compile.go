package main

import (
	"fmt"
	"io"
)

// Result holds whatever the completed phases of one compilation
// produced. On error the later fields stay zero: a syntax error leaves
// Tokens populated but Table and TAC nil.
type Result struct {
	Tokens []Token
	Table  *SymbolTable
	TAC    []string
}

// Compile runs the four phases over one source program. Every call uses
// freshly constructed lexer, parser, symbol table, and temp counter, so
// independent compilations can run concurrently without locking.
func Compile(src string) (*Result, error) {
	res := &Result{}

	tokens, err := NewLexer([]byte(src)).Tokenize()
	if err != nil {
		return res, err
	}
	res.Tokens = tokens

	prog, err := NewParser(tokens).ParseProgram()
	if err != nil {
		return res, err
	}

	table, err := Analyze(prog)
	if err != nil {
		return res, err
	}
	res.Table = table

	res.TAC = NewTACGenerator().Generate(prog)
	return res, nil
}

// parseSource tokenizes and parses one program without validating it.
func parseSource(src string) (*ASTNode, error) {
	tokens, err := NewLexer([]byte(src)).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// WriteReport compiles src and writes each report section to w as its
// phase completes, so a failure in a later phase still leaves every
// earlier section in the output. The returned error is the first (and
// only) compile diagnostic.
func WriteReport(w io.Writer, src string) error {
	tokens, err := NewLexer([]byte(src)).Tokenize()
	if err != nil {
		return err
	}
	fmt.Fprint(w, FormatTokens(tokens))

	prog, err := NewParser(tokens).ParseProgram()
	if err != nil {
		return err
	}

	table, err := Analyze(prog)
	if err != nil {
		return err
	}
	fmt.Fprint(w, FormatSymbolTable(table))

	tac := NewTACGenerator().Generate(prog)
	fmt.Fprint(w, FormatTAC(tac))
	return nil
}
