package main

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	// Statements
	NodeProgram NodeKind = "NodeProgram"
	NodeDecl    NodeKind = "NodeDecl"
	NodeAssign  NodeKind = "NodeAssign"
	NodePrint   NodeKind = "NodePrint"

	// Expressions
	NodeNumber NodeKind = "NodeNumber"
	NodeIdent  NodeKind = "NodeIdent"
	NodeUnary  NodeKind = "NodeUnary"
	NodeBinary NodeKind = "NodeBinary"
)

// ASTNode represents a node in the Abstract Syntax Tree. Each node
// exclusively owns its children; the tree is never mutated after the
// parser builds it.
type ASTNode struct {
	Kind NodeKind
	// Defining token: the identifier for NodeDecl/NodeAssign/NodeIdent,
	// the literal for NodeNumber, the operator for NodeUnary/NodeBinary,
	// the 'print' keyword for NodePrint. Carries the source position
	// later phases report errors against.
	Tok Token
	// NodeUnary, NodeBinary:
	Op string
	// NodeProgram: statements. NodeAssign, NodePrint, NodeUnary: one
	// child. NodeBinary: left then right.
	Children []*ASTNode
}

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	switch node.Kind {
	case NodeProgram:
		result := "(program"
		for _, child := range node.Children {
			result += " " + ToSExpr(child)
		}
		result += ")"
		return result
	case NodeDecl:
		return "(decl \"" + node.Tok.Lexeme + "\")"
	case NodeAssign:
		return "(assign \"" + node.Tok.Lexeme + "\" " + ToSExpr(node.Children[0]) + ")"
	case NodePrint:
		return "(print " + ToSExpr(node.Children[0]) + ")"
	case NodeNumber:
		return "(number " + node.Tok.Lexeme + ")"
	case NodeIdent:
		return "(ident \"" + node.Tok.Lexeme + "\")"
	case NodeUnary:
		return "(unary \"" + node.Op + "\" " + ToSExpr(node.Children[0]) + ")"
	case NodeBinary:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(binary \"" + node.Op + "\" " + left + " " + right + ")"
	default:
		panic("unknown AST node kind: " + string(node.Kind))
	}
}
