// Package mdtest extracts compiler test cases from Markdown documents.
// A test case is a "### Test: <name>" heading followed by one fenced
// input block and one or more fenced assertion blocks.
package mdtest

import (
	"fmt"
	"strings"
	"unicode"
)

// NodeType represents the type of a parsed s-expression Node
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeInteger
	NodeList
)

// Node is one s-expression datum. AST assertions are parsed into Nodes
// so that expected and actual trees compare by structure, not by
// incidental whitespace.
type Node struct {
	Type  NodeType
	Text  string  // NodeSymbol, NodeString, NodeInteger
	Items []*Node // NodeList
}

// String renders the canonical single-line form of the datum.
func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", escaped)
	case NodeInteger:
		return n.Text
	case NodeList:
		var parts []string
		for _, item := range n.Items {
			parts = append(parts, item.String())
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

// IsAtom checks if the node is an atomic value
func (n *Node) IsAtom() bool {
	return n.Type != NodeList
}

type sexprParser struct {
	lexer        *sexprLexer
	currentToken sexprToken
}

// ParseSexpr parses the entire input and returns the top-level datum.
func ParseSexpr(input string) (*Node, error) {
	p := &sexprParser{lexer: newSexprLexer(input)}
	p.nextToken()

	result, err := p.parseDatum()
	if len(p.lexer.errors) > 0 {
		return nil, fmt.Errorf("%s", p.lexer.errors[0])
	}
	if err != nil {
		return nil, err
	}

	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("expected EOF but got %s", p.currentToken.Type)
	}

	return result, nil
}

func (p *sexprParser) nextToken() {
	p.currentToken = p.lexer.nextToken()
}

func (p *sexprParser) parseDatum() (*Node, error) {
	switch p.currentToken.Type {
	case tokenSymbol:
		node := &Node{Type: NodeSymbol, Text: p.currentToken.Value}
		p.nextToken()
		return node, nil
	case tokenString:
		node := &Node{Type: NodeString, Text: p.currentToken.Value}
		p.nextToken()
		return node, nil
	case tokenInteger:
		node := &Node{Type: NodeInteger, Text: p.currentToken.Value}
		p.nextToken()
		return node, nil
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("unexpected token: %s", p.currentToken.Type)
	}
}

func (p *sexprParser) parseList() (*Node, error) {
	var items []*Node
	p.nextToken() // consume '('

	for p.currentToken.Type != tokenRParen && p.currentToken.Type != tokenEOF {
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if p.currentToken.Type != tokenRParen {
		return nil, fmt.Errorf("expected ')' but got %s", p.currentToken.Type)
	}
	p.nextToken() // consume ')'

	return &Node{Type: NodeList, Items: items}, nil
}

type sexprTokenType int

const (
	tokenEOF sexprTokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenLParen
	tokenRParen
)

func (t sexprTokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type sexprToken struct {
	Type  sexprTokenType
	Value string
}

type sexprLexer struct {
	input    string
	position int
	current  rune
	errors   []string
}

func newSexprLexer(input string) *sexprLexer {
	l := &sexprLexer{input: input}
	l.readChar()
	return l
}

func (l *sexprLexer) readChar() {
	if l.position >= len(l.input) {
		l.current = 0
	} else {
		l.current = rune(l.input[l.position])
	}
	l.position++
}

func (l *sexprLexer) peekChar() rune {
	if l.position >= len(l.input) {
		return 0
	}
	return rune(l.input[l.position])
}

func (l *sexprLexer) skipWhitespace() {
	for unicode.IsSpace(l.current) {
		l.readChar()
	}
}

func (l *sexprLexer) skipComment() {
	for l.current != '\n' && l.current != '\r' && l.current != 0 {
		l.readChar()
	}
}

func (l *sexprLexer) readSymbol() string {
	start := l.position - 1
	for isSymbolChar(l.current) {
		l.readChar()
	}
	return l.input[start : l.position-1]
}

func (l *sexprLexer) readString() (string, error) {
	var result string
	l.readChar() // skip opening quote

	for l.current != '"' && l.current != 0 {
		if l.current == '\\' {
			l.readChar()
			switch l.current {
			case '"':
				result += "\""
			case '\\':
				result += "\\"
			default:
				return "", fmt.Errorf("invalid escape sequence: \\%c", l.current)
			}
		} else {
			result += string(l.current)
		}
		l.readChar()
	}

	if l.current != '"' {
		return "", fmt.Errorf("unterminated string")
	}
	l.readChar() // skip closing quote

	return result, nil
}

func (l *sexprLexer) readInteger() string {
	start := l.position - 1
	if l.current == '-' {
		l.readChar()
	}
	for unicode.IsDigit(l.current) {
		l.readChar()
	}
	return l.input[start : l.position-1]
}

func (l *sexprLexer) nextToken() sexprToken {
	for {
		l.skipWhitespace()

		switch l.current {
		case 0:
			return sexprToken{Type: tokenEOF}
		case ';':
			l.skipComment()
			continue
		case '(':
			l.readChar()
			return sexprToken{Type: tokenLParen, Value: "("}
		case ')':
			l.readChar()
			return sexprToken{Type: tokenRParen, Value: ")"}
		case '"':
			str, err := l.readString()
			if err != nil {
				l.errors = append(l.errors, err.Error())
				return sexprToken{Type: tokenEOF}
			}
			return sexprToken{Type: tokenString, Value: str}
		default:
			if unicode.IsLetter(l.current) {
				return sexprToken{Type: tokenSymbol, Value: l.readSymbol()}
			}
			if unicode.IsDigit(l.current) || (l.current == '-' && unicode.IsDigit(l.peekChar())) {
				return sexprToken{Type: tokenInteger, Value: l.readInteger()}
			}
			if isSymbolChar(l.current) {
				// Bare operator symbols like + or *
				return sexprToken{Type: tokenSymbol, Value: l.readSymbol()}
			}
			l.errors = append(l.errors, fmt.Sprintf("unexpected character '%c'", l.current))
			return sexprToken{Type: tokenEOF}
		}
	}
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '-' || r == '_' || r == '+' || r == '*' || r == '/' || r == '='
}
