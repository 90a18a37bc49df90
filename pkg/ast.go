package declc

import "fmt"

// Node is one of *Program, *Declaration, *LiteralExpr or *BinaryExpr. The set
// is closed: the marker methods are unexported.
type Node interface {
	node()
}

// Stmt is a top level statement: a *Declaration or an assignment, which is a
// *BinaryExpr with the BinaryAssign operation.
type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

type Program struct {
	Statements []Stmt
}

type Variable struct {
	Name string
	Loc  *Location
}

type Declaration struct {
	Vars []Variable
	Loc  *Location
}

type LiteralType int

const (
	LiteralIdentifier LiteralType = iota
	LiteralNumber
)

func (t LiteralType) String() string {
	switch t {
	case LiteralIdentifier:
		return "identifier"
	case LiteralNumber:
		return "number"
	default:
		return fmt.Sprintf("LiteralType(%d)", int(t))
	}
}

// LiteralExpr keeps the source text; numbers are not converted.
type LiteralExpr struct {
	Typ   LiteralType
	Value string
	Loc   *Location
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
	BinaryAssign         BinaryOp = "="
)

// BinaryExpr operands are nil where parsing of that operand failed.
type BinaryExpr struct {
	Operation BinaryOp
	Left      Expr
	Right     Expr
	Loc       *Location
}

func (*Program) node()     {}
func (*Declaration) node() {}
func (*LiteralExpr) node() {}
func (*BinaryExpr) node()  {}

func (*Declaration) stmtNode() {}
func (*BinaryExpr) stmtNode()  {}

func (*LiteralExpr) exprNode() {}
func (*BinaryExpr) exprNode()  {}

// Visitor receives one call per node kind from Walk.
type Visitor interface {
	VisitProgram(*Program)
	VisitDeclaration(*Declaration)
	VisitLiteral(*LiteralExpr)
	VisitBinaryExpr(*BinaryExpr)
}

// Walk dispatches n to the matching Visitor method. Children are not visited;
// each Visit method decides whether and in which order to descend. n must not
// be nil.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case *Program:
		v.VisitProgram(n)
	case *Declaration:
		v.VisitDeclaration(n)
	case *LiteralExpr:
		v.VisitLiteral(n)
	case *BinaryExpr:
		v.VisitBinaryExpr(n)
	default:
		panic(fmt.Sprintf("declc: unexpected node %T", n))
	}
}

// IsAssignment reports whether s is an assignment statement.
func IsAssignment(s Stmt) bool {
	e, ok := s.(*BinaryExpr)
	return ok && e.Operation == BinaryAssign
}
