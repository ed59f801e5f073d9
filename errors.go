package main

import "fmt"

// ErrorKind names the phase that rejected the program.
type ErrorKind string

const (
	LexicalError  ErrorKind = "Lexical error"
	SyntaxError   ErrorKind = "Syntax error"
	SemanticError ErrorKind = "Semantic error"
)

// CompileError is the single diagnostic a failed compilation produces.
// At most one is ever reported per compilation; the first error in any
// phase aborts the whole run.
type CompileError struct {
	Kind    ErrorKind
	Line    int
	Col     int
	Lexeme  string
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s at %d:%d near '%s': %s", e.Kind, e.Line, e.Col, e.Lexeme, e.Message)
}

func semanticErr(tok Token, message string) *CompileError {
	return &CompileError{
		Kind:    SemanticError,
		Line:    tok.Line,
		Col:     tok.Col,
		Lexeme:  tok.Lexeme,
		Message: message,
	}
}
