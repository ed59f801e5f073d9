package main

import (
	"fmt"
	"strings"
)

// Section headers are a compatibility contract: the hosting shell slices
// the raw output on these exact strings. Do not reword them.
const (
	TokensHeader  = "TOKENS:"
	SymbolsHeader = "SYMBOL TABLE:"
	TACHeader     = "INTERMEDIATE CODE (TAC):"
)

// reportFieldWidth is the minimum field width lexemes and symbol names
// are left-justified to.
const reportFieldWidth = 10

// FormatTokens renders the TOKENS section. The end-of-input token is
// omitted from the listing.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	b.WriteString(TokensHeader + "\n")
	for _, tok := range tokens {
		if tok.Type == EOF {
			break
		}
		fmt.Fprintf(&b, "%-*s %s\n", reportFieldWidth, tok.Lexeme, tok.Category())
	}
	b.WriteString("\n")
	return b.String()
}

// FormatSymbolTable renders the SYMBOL TABLE section, one row per
// declared variable in first-declaration order.
func FormatSymbolTable(table *SymbolTable) string {
	var b strings.Builder
	b.WriteString(SymbolsHeader + "\n")
	fmt.Fprintf(&b, "%-*s%s\n", reportFieldWidth, "Name", "Type")
	for _, name := range table.Names() {
		fmt.Fprintf(&b, "%-*s%s\n", reportFieldWidth, name, "int")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatTAC renders the INTERMEDIATE CODE (TAC) section, one
// instruction per line in emission order.
func FormatTAC(code []string) string {
	var b strings.Builder
	b.WriteString(TACHeader + "\n")
	for _, line := range code {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
