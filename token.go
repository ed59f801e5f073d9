package main

// TokenType is the type of token (keyword, identifier, literal, etc.).
type TokenType string

// Definition of token types
const (
	// Keywords
	KW_INT   = "int"
	KW_PRINT = "print"

	// Identifiers + literals
	IDENT  = "IDENT"  // a, foo, _bar
	NUMBER = "NUMBER" // 12345

	// Operators
	PLUS   = "+"
	MINUS  = "-"
	STAR   = "*"
	SLASH  = "/"
	ASSIGN = "="

	// Punctuation
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"

	// End of input
	EOF = "EOF"
)

// Token is one lexical unit with its literal text and 1-based source
// position. Tokens are immutable once produced.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// Category returns the report category name for the token.
func (t Token) Category() string {
	switch t.Type {
	case KW_INT, KW_PRINT:
		return "KEYWORD"
	case IDENT:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case PLUS, MINUS, STAR, SLASH, ASSIGN:
		return "OPERATOR"
	case SEMICOLON, LPAREN, RPAREN:
		return "SYMBOL"
	case EOF:
		return "EOF"
	default:
		panic("unknown token type: " + string(t.Type))
	}
}
