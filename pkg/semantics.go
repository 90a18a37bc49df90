package declc

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Scope is the program wide set of declared names. There is a single scope;
// the language has no blocks.
type Scope struct {
	names *treeset.Set
}

func NewScope() *Scope {
	return &Scope{
		names: treeset.NewWithStringComparator(),
	}
}

// Insert adds name and reports whether it was not already present.
func (s *Scope) Insert(name string) bool {
	if s.names.Contains(name) {
		return false
	}

	s.names.Add(name)
	return true
}

func (s *Scope) Contains(name string) bool {
	return s.names.Contains(name)
}

// Names returns the declared names in sorted order.
func (s *Scope) Names() []string {
	names := make([]string, 0, s.names.Size())
	for _, v := range s.names.Values() {
		names = append(names, v.(string))
	}

	return names
}

func (s *Scope) Len() int {
	return s.names.Size()
}

// Checker walks a Program once, in statement order, and reports names that are
// declared twice or used before their declaration. It also reports every
// operand the parser could not build.
type Checker struct {
	diag   *Diagnostics
	scope  *Scope
	errors []CompileError
}

func NewChecker(diag *Diagnostics) *Checker {
	if diag == nil {
		diag = NewDiagnostics(nil)
	}

	return &Checker{
		diag:  diag,
		scope: NewScope(),
	}
}

// Check reports whether any error was found. Every call starts from an empty
// scope, so checking the same program twice gives the same errors.
func (c *Checker) Check(prog *Program) bool {
	c.scope = NewScope()
	c.errors = nil

	if prog != nil {
		Walk(c, prog)
	}

	return len(c.errors) != 0
}

// Scope returns the names declared during the last Check.
func (c *Checker) Scope() *Scope {
	return c.scope
}

// Errors returns the errors found by the last Check.
func (c *Checker) Errors() []CompileError {
	return c.errors
}

func (c *Checker) report(err CompileError) {
	c.errors = append(c.errors, err)
	c.diag.Report(err)
}

func (c *Checker) VisitProgram(prog *Program) {
	for _, stmt := range prog.Statements {
		Walk(c, stmt)
	}
}

func (c *Checker) VisitDeclaration(decl *Declaration) {
	for _, v := range decl.Vars {
		if !c.scope.Insert(v.Name) {
			c.report(&RedeclaredError{Loc: v.Loc, Name: v.Name})
		}
	}
}

func (c *Checker) VisitLiteral(lit *LiteralExpr) {
	if lit.Typ != LiteralIdentifier {
		return
	}

	if !c.scope.Contains(lit.Value) {
		c.report(&UndefinedError{Loc: lit.Loc, Name: lit.Value})
	}
}

func (c *Checker) VisitBinaryExpr(e *BinaryExpr) {
	c.operand(e, e.Left, OperandLeft)
	c.operand(e, e.Right, OperandRight)
}

func (c *Checker) operand(parent *BinaryExpr, operand Expr, side OperandSide) {
	if operand == nil {
		c.report(&MissingOperandError{
			Loc:  parent.Loc,
			Op:   parent.Operation,
			Side: side,
		})

		return
	}

	Walk(c, operand)
}
