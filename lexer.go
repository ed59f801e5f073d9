package main

import "fmt"

// Lexer scans one source buffer into a flat token sequence. A Lexer is
// single-use: construct a new one for each compilation.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(k int) byte {
	if l.pos+k >= len(l.src) {
		return 0
	}
	return l.src[l.pos+k]
}

func (l *Lexer) advance() byte {
	c := l.peek()
	if c == 0 {
		return 0
	}
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for isSpace(l.peek()) {
			l.advance()
		}
		if l.peek() == '/' && l.peekAt(1) == '/' {
			for l.peek() != '\n' && l.peek() != 0 {
				l.advance()
			}
			continue
		}
		return
	}
}

// Tokenize scans the whole buffer and returns the token sequence,
// terminated by an EOF token. The first unrecognized character aborts
// the scan with a LexicalError; no tokens are returned in that case.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		l.skipWhitespaceAndComments()
		line, col := l.line, l.col
		c := l.peek()

		if c == 0 {
			tokens = append(tokens, Token{Type: EOF, Lexeme: "EOF", Line: line, Col: col})
			return tokens, nil
		}

		if isLetter(c) {
			start := l.pos
			for isLetter(l.peek()) || isDigit(l.peek()) {
				l.advance()
			}
			lexeme := string(l.src[start:l.pos])
			typ := TokenType(IDENT)
			if lexeme == "int" {
				typ = KW_INT
			} else if lexeme == "print" {
				typ = KW_PRINT
			}
			tokens = append(tokens, Token{Type: typ, Lexeme: lexeme, Line: line, Col: col})
			continue
		}

		if isDigit(c) {
			start := l.pos
			for isDigit(l.peek()) {
				l.advance()
			}
			tokens = append(tokens, Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Col: col})
			continue
		}

		var typ TokenType
		switch c {
		case '+':
			typ = PLUS
		case '-':
			typ = MINUS
		case '*':
			typ = STAR
		case '/':
			typ = SLASH
		case '=':
			typ = ASSIGN
		case ';':
			typ = SEMICOLON
		case '(':
			typ = LPAREN
		case ')':
			typ = RPAREN
		default:
			return nil, &CompileError{
				Kind:    LexicalError,
				Line:    line,
				Col:     col,
				Lexeme:  string(c),
				Message: fmt.Sprintf("unexpected character '%c'.", c),
			}
		}
		l.advance()
		tokens = append(tokens, Token{Type: typ, Lexeme: string(c), Line: line, Col: col})
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
