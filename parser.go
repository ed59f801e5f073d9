package main

// Parser consumes a token sequence and builds the AST directly, with no
// intermediate parse tree. Recursive descent; one diagnostic per failed
// parse, no resynchronization.
//
// Grammar:
//
//	Program     := (Declaration | Statement)* EOF
//	Declaration := 'int' IDENT ';'
//	Statement   := Assignment ';' | Print ';'
//	Assignment  := IDENT '=' Expression
//	Print       := 'print' Expression
//	Expression  := Term (('+'|'-') Term)*
//	Term        := Unary (('*'|'/') Unary)*
//	Unary       := ('+'|'-') Unary | Primary
//	Primary     := NUMBER | IDENT | '(' Expression ')'
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *Parser) at(tt TokenType) bool {
	return p.cur().Type == tt
}

func (p *Parser) syntaxErr(message string) *CompileError {
	tok := p.cur()
	return &CompileError{
		Kind:    SyntaxError,
		Line:    tok.Line,
		Col:     tok.Col,
		Lexeme:  tok.Lexeme,
		Message: message,
	}
}

// expect consumes the current token, failing if it is not of the
// expected type.
func (p *Parser) expect(tt TokenType, msgIfFail string) (Token, error) {
	if !p.at(tt) {
		return Token{}, p.syntaxErr(msgIfFail)
	}
	tok := p.cur()
	p.pos++
	return tok, nil
}

// ParseProgram parses statements until EOF. Declarations and statements
// may be freely interleaved; ordering rules are the semantic analyzer's
// concern.
func (p *Parser) ParseProgram() (*ASTNode, error) {
	prog := &ASTNode{Kind: NodeProgram}
	for !p.at(EOF) {
		var stmt *ASTNode
		var err error
		switch {
		case p.at(KW_INT):
			stmt, err = p.parseDecl()
		case p.at(IDENT):
			stmt, err = p.parseAssign()
		case p.at(KW_PRINT):
			stmt, err = p.parsePrint()
		default:
			return nil, p.syntaxErr("expected 'int' declaration or a statement (assignment/print).")
		}
		if err != nil {
			return nil, err
		}
		prog.Children = append(prog.Children, stmt)
	}
	return prog, nil
}

// ParseExpression parses a single expression and returns its AST node.
func (p *Parser) ParseExpression() (*ASTNode, error) {
	return p.parseExpr()
}

func (p *Parser) parseDecl() (*ASTNode, error) {
	if _, err := p.expect(KW_INT, "expected 'int'."); err != nil {
		return nil, err
	}
	id, err := p.expect(IDENT, "expected identifier after 'int'.")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "expected ';' after declaration."); err != nil {
		return nil, err
	}
	return &ASTNode{Kind: NodeDecl, Tok: id}, nil
}

func (p *Parser) parseAssign() (*ASTNode, error) {
	id, err := p.expect(IDENT, "expected identifier.")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN, "expected '=' in assignment."); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "expected ';' after assignment."); err != nil {
		return nil, err
	}
	return &ASTNode{Kind: NodeAssign, Tok: id, Children: []*ASTNode{rhs}}, nil
}

func (p *Parser) parsePrint() (*ASTNode, error) {
	kw, err := p.expect(KW_PRINT, "expected 'print'.")
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, "expected ';' after print."); err != nil {
		return nil, err
	}
	return &ASTNode{Kind: NodePrint, Tok: kw, Children: []*ASTNode{expr}}, nil
}

// parseExpr handles binary '+' and '-', left-associative.
func (p *Parser) parseExpr() (*ASTNode, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(PLUS) || p.at(MINUS) {
		op := p.cur()
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ASTNode{
			Kind:     NodeBinary,
			Tok:      op,
			Op:       op.Lexeme,
			Children: []*ASTNode{left, right},
		}
	}
	return left, nil
}

// parseTerm handles binary '*' and '/', left-associative.
func (p *Parser) parseTerm() (*ASTNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.at(STAR) || p.at(SLASH) {
		op := p.cur()
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ASTNode{
			Kind:     NodeBinary,
			Tok:      op,
			Op:       op.Lexeme,
			Children: []*ASTNode{left, right},
		}
	}
	return left, nil
}

// parseUnary handles prefix '+' and '-'. Recursion depth is bounded only
// by the call stack.
func (p *Parser) parseUnary() (*ASTNode, error) {
	if p.at(PLUS) || p.at(MINUS) {
		op := p.cur()
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ASTNode{
			Kind:     NodeUnary,
			Tok:      op,
			Op:       op.Lexeme,
			Children: []*ASTNode{rhs},
		}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles primary expressions (literals, identifiers,
// parentheses).
func (p *Parser) parsePrimary() (*ASTNode, error) {
	switch p.cur().Type {
	case NUMBER:
		tok := p.cur()
		p.pos++
		return &ASTNode{Kind: NodeNumber, Tok: tok}, nil

	case IDENT:
		tok := p.cur()
		p.pos++
		return &ASTNode{Kind: NodeIdent, Tok: tok}, nil

	case LPAREN:
		p.pos++
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "expected ')' to close '('."); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxErr("expected NUMBER, IDENTIFIER, or '(' expression ')'.")
	}
}
