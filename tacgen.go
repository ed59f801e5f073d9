package main

import "strconv"

// TACGenerator lowers a semantically valid program into a linear
// sequence of three-address instructions. It performs no re-validation;
// an unknown node kind reaching it is a pipeline defect and panics.
type TACGenerator struct {
	code        []string
	tempCounter int
}

func NewTACGenerator() *TACGenerator {
	return &TACGenerator{}
}

// newTemp allocates the next temporary name. Numbering starts at t1 and
// is monotonic within one generation.
func (g *TACGenerator) newTemp() string {
	g.tempCounter++
	return "t" + strconv.Itoa(g.tempCounter)
}

// Generate emits TAC for the whole program in statement order and
// returns the instruction list. The temporary counter resets at the
// start of every generation.
func (g *TACGenerator) Generate(prog *ASTNode) []string {
	g.code = nil
	g.tempCounter = 0

	for _, stmt := range prog.Children {
		switch stmt.Kind {
		case NodeDecl:
			// Declarations emit nothing.

		case NodeAssign:
			rhs := g.genExpr(stmt.Children[0])
			g.code = append(g.code, stmt.Tok.Lexeme+" = "+rhs)

		case NodePrint:
			operand := g.genExpr(stmt.Children[0])
			g.code = append(g.code, "print "+operand)

		default:
			panic("unknown statement kind in TAC generation: " + string(stmt.Kind))
		}
	}

	return g.code
}

// genExpr lowers an expression and returns the operand naming its
// result: a literal, an identifier, or a temporary. Left operands are
// lowered before right operands, so emission order matches evaluation
// order.
func (g *TACGenerator) genExpr(expr *ASTNode) string {
	switch expr.Kind {
	case NodeNumber, NodeIdent:
		// Constants and variables are propagated verbatim.
		return expr.Tok.Lexeme

	case NodeUnary:
		operand := g.genExpr(expr.Children[0])
		if expr.Op == "-" {
			// Canonical form for negation: t = 0 - r
			temp := g.newTemp()
			g.code = append(g.code, temp+" = 0 - "+operand)
			return temp
		}
		// Unary plus forwards its operand unchanged.
		return operand

	case NodeBinary:
		left := g.genExpr(expr.Children[0])
		right := g.genExpr(expr.Children[1])
		temp := g.newTemp()
		g.code = append(g.code, temp+" = "+left+" "+expr.Op+" "+right)
		return temp

	default:
		panic("unknown expression kind in TAC generation: " + string(expr.Kind))
	}
}
