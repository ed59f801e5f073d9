package main

import "fmt"

// Analyze walks the program's statements in source order, building the
// symbol table and enforcing declare-before-use in one flat scope.
// Analysis halts at the first error; on success every name the TAC
// generator will encounter is guaranteed declared.
func Analyze(prog *ASTNode) (*SymbolTable, error) {
	table := NewSymbolTable()

	for _, stmt := range prog.Children {
		switch stmt.Kind {
		case NodeDecl:
			name := stmt.Tok.Lexeme
			if !table.Declare(name) {
				return nil, semanticErr(stmt.Tok, fmt.Sprintf("duplicate declaration of '%s'.", name))
			}

		case NodeAssign:
			name := stmt.Tok.Lexeme
			if _, ok := table.Lookup(name); !ok {
				return nil, semanticErr(stmt.Tok, fmt.Sprintf("assignment to undeclared variable '%s'.", name))
			}
			if err := checkExpr(stmt.Children[0], table); err != nil {
				return nil, err
			}

		case NodePrint:
			if err := checkExpr(stmt.Children[0], table); err != nil {
				return nil, err
			}

		default:
			panic("unknown statement kind in semantic analysis: " + string(stmt.Kind))
		}
	}

	return table, nil
}

// checkExpr validates every variable reference in an expression against
// the table. Number literals are always valid; operators impose no
// further constraint since the language has one type.
func checkExpr(expr *ASTNode, table *SymbolTable) error {
	switch expr.Kind {
	case NodeNumber:
		return nil

	case NodeIdent:
		name := expr.Tok.Lexeme
		if _, ok := table.Lookup(name); !ok {
			return semanticErr(expr.Tok, fmt.Sprintf("variable '%s' used before declaration.", name))
		}
		return nil

	case NodeUnary:
		return checkExpr(expr.Children[0], table)

	case NodeBinary:
		if err := checkExpr(expr.Children[0], table); err != nil {
			return err
		}
		return checkExpr(expr.Children[1], table)

	default:
		panic("unknown expression kind in semantic analysis: " + string(expr.Kind))
	}
}
