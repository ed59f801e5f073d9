package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestFormatTokens(t *testing.T) {
	lexer := NewLexer([]byte("int a;"))
	tokens, err := lexer.Tokenize()
	be.Err(t, err, nil)

	want := "TOKENS:\n" +
		"int        KEYWORD\n" +
		"a          IDENTIFIER\n" +
		";          SYMBOL\n" +
		"\n"
	be.Equal(t, FormatTokens(tokens), want)
}

func TestFormatTokensOmitsEOF(t *testing.T) {
	lexer := NewLexer([]byte(""))
	tokens, err := lexer.Tokenize()
	be.Err(t, err, nil)
	be.Equal(t, FormatTokens(tokens), "TOKENS:\n\n")
}

func TestFormatTokensLongLexeme(t *testing.T) {
	// Lexemes wider than the field still get a single separating space.
	lexer := NewLexer([]byte("averylongname;"))
	tokens, err := lexer.Tokenize()
	be.Err(t, err, nil)

	want := "TOKENS:\n" +
		"averylongname IDENTIFIER\n" +
		";          SYMBOL\n" +
		"\n"
	be.Equal(t, FormatTokens(tokens), want)
}

func TestFormatSymbolTable(t *testing.T) {
	table := NewSymbolTable()
	table.Declare("a")
	table.Declare("counter")

	want := "SYMBOL TABLE:\n" +
		"Name      Type\n" +
		"a         int\n" +
		"counter   int\n" +
		"\n"
	be.Equal(t, FormatSymbolTable(table), want)
}

func TestFormatSymbolTableEmpty(t *testing.T) {
	want := "SYMBOL TABLE:\n" +
		"Name      Type\n" +
		"\n"
	be.Equal(t, FormatSymbolTable(NewSymbolTable()), want)
}

func TestFormatTAC(t *testing.T) {
	code := []string{"a = 5", "t1 = a + 1", "print t1"}
	want := "INTERMEDIATE CODE (TAC):\n" +
		"a = 5\n" +
		"t1 = a + 1\n" +
		"print t1\n" +
		"\n"
	be.Equal(t, FormatTAC(code), want)
}

func TestFormatTACEmpty(t *testing.T) {
	be.Equal(t, FormatTAC(nil), "INTERMEDIATE CODE (TAC):\n\n")
}
