package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func analyzeString(t *testing.T, input string) (*SymbolTable, error) {
	t.Helper()
	prog, err := parseSource(input)
	be.Err(t, err, nil)
	return Analyze(prog)
}

func expectSemanticError(t *testing.T, input, message string) *CompileError {
	t.Helper()
	_, err := analyzeString(t, input)
	be.True(t, err != nil)

	cerr, ok := err.(*CompileError)
	be.True(t, ok)
	be.Equal(t, cerr.Kind, SemanticError)
	be.Equal(t, cerr.Message, message)
	return cerr
}

func TestAnalyzeValidProgram(t *testing.T) {
	table, err := analyzeString(t, "int a;\nint b;\na = 5;\nb = a + 1;\nprint b;")
	be.Err(t, err, nil)
	be.Equal(t, table.Names(), []string{"a", "b"})
}

func TestAnalyzeEmptyProgram(t *testing.T) {
	table, err := analyzeString(t, "")
	be.Err(t, err, nil)
	be.Equal(t, table.Len(), 0)
}

func TestDuplicateDeclaration(t *testing.T) {
	cerr := expectSemanticError(t, "int a;\nint a;", "duplicate declaration of 'a'.")
	be.Equal(t, cerr.Line, 2)
	be.Equal(t, cerr.Col, 5)
	be.Equal(t, cerr.Lexeme, "a")
}

func TestDuplicateDeclarationAnywhere(t *testing.T) {
	// Intervening statements do not reset declaredness.
	expectSemanticError(t, "int a;\na = 1;\nprint a;\nint b;\nint a;", "duplicate declaration of 'a'.")
}

func TestAssignmentToUndeclared(t *testing.T) {
	cerr := expectSemanticError(t, "b = 1;", "assignment to undeclared variable 'b'.")
	be.Equal(t, cerr.Line, 1)
	be.Equal(t, cerr.Col, 1)
}

func TestAssignmentBeforeDeclaration(t *testing.T) {
	// Declaration later in the file does not help: the pass is a single
	// forward walk in source order.
	expectSemanticError(t, "a = 1;\nint a;", "assignment to undeclared variable 'a'.")
}

func TestUseBeforeDeclaration(t *testing.T) {
	cerr := expectSemanticError(t, "int a;\nprint x;", "variable 'x' used before declaration.")
	be.Equal(t, cerr.Line, 2)
	be.Equal(t, cerr.Col, 7)
}

func TestUseBeforeDeclarationInAssignmentRHS(t *testing.T) {
	expectSemanticError(t, "int a;\na = b + 1;", "variable 'b' used before declaration.")
}

func TestUseBeforeDeclarationDeepInExpression(t *testing.T) {
	expectSemanticError(t, "int a;\na = 1 + 2 * (3 - -missing);", "variable 'missing' used before declaration.")
}

func TestUndeclaredUseIsSemanticNotSyntactic(t *testing.T) {
	_, err := analyzeString(t, "print nope;")
	be.True(t, err != nil)
	cerr := err.(*CompileError)
	be.Equal(t, cerr.Kind, SemanticError)
}

func TestAnalysisHaltsAtFirstError(t *testing.T) {
	// Both statements are invalid; only the first is reported.
	cerr := expectSemanticError(t, "a = 1;\nb = 2;", "assignment to undeclared variable 'a'.")
	be.Equal(t, cerr.Line, 1)
}

func TestNumberLiteralsAlwaysValid(t *testing.T) {
	table, err := analyzeString(t, "print 1 + 2 * -3;")
	be.Err(t, err, nil)
	be.Equal(t, table.Len(), 0)
}

func TestDeclarationVisibleImmediately(t *testing.T) {
	table, err := analyzeString(t, "int a;\na = 1;\nint b;\nb = a;")
	be.Err(t, err, nil)
	be.Equal(t, table.Names(), []string{"a", "b"})
}

func TestAnalyzeDoesNotMutateAST(t *testing.T) {
	prog, err := parseSource("int a;\na = 1 + 2;\nprint a;")
	be.Err(t, err, nil)

	before := ToSExpr(prog)
	_, err = Analyze(prog)
	be.Err(t, err, nil)
	be.Equal(t, ToSExpr(prog), before)
}
