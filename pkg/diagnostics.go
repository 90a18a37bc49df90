package declc

import (
	"fmt"
	"io"
)

type CompileError interface {
	fmt.Stringer
	Location() *Location
}

type SyntaxLevel int

const (
	// SyntaxStatement errors stop the parser; the rest of the input is dropped.
	SyntaxStatement SyntaxLevel = iota
	// SyntaxFactor errors are recovered inside the enclosing expression.
	SyntaxFactor
)

type SyntaxError struct {
	Loc   *Location
	Level SyntaxLevel
	Token Token
	Msg   string
}

func (e *SyntaxError) Location() *Location {
	return e.Loc
}

func (e *SyntaxError) String() string {
	return fmt.Sprintf("%s syntax error: %s, unexpected %s", e.Loc, e.Msg, describe(e.Token))
}

type RedeclaredError struct {
	Loc  *Location
	Name string
}

func (e *RedeclaredError) Location() *Location {
	return e.Loc
}

func (e *RedeclaredError) String() string {
	return fmt.Sprintf("%s variable %s already declared", e.Loc, e.Name)
}

type UndefinedError struct {
	Loc  *Location
	Name string
}

func (e *UndefinedError) Location() *Location {
	return e.Loc
}

func (e *UndefinedError) String() string {
	return fmt.Sprintf("%s variable %s not declared", e.Loc, e.Name)
}

type OperandSide string

const (
	OperandLeft  OperandSide = "left"
	OperandRight OperandSide = "right"
)

// MissingOperandError marks an operand the parser could not build.
type MissingOperandError struct {
	Loc  *Location
	Op   BinaryOp
	Side OperandSide
}

func (e *MissingOperandError) Location() *Location {
	return e.Loc
}

func (e *MissingOperandError) String() string {
	return fmt.Sprintf("%s missing %s operand of '%s'", e.Loc, e.Side, e.Op)
}

func describe(t Token) string {
	switch t.Typ {
	case TokenEOF:
		return "end of input"
	case TokenUnknown:
		return fmt.Sprintf("character '%s'", t.Value)
	default:
		return fmt.Sprintf("'%s'", t.Value)
	}
}

// Diagnostics collects the errors of one pipeline stage. When out is set each
// error is also written to it as a single line the moment it is reported.
type Diagnostics struct {
	out    io.Writer
	errors []CompileError
}

func NewDiagnostics(out io.Writer) *Diagnostics {
	return &Diagnostics{out: out}
}

func (d *Diagnostics) Report(err CompileError) {
	d.errors = append(d.errors, err)

	if d.out != nil {
		fmt.Fprintln(d.out, err.String())
	}
}

func (d *Diagnostics) Errors() []CompileError {
	return d.errors
}

func (d *Diagnostics) Len() int {
	return len(d.errors)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) != 0
}

// Lines returns the String form of every collected error, in report order.
func (d *Diagnostics) Lines() []string {
	lines := make([]string, 0, len(d.errors))
	for _, err := range d.errors {
		lines = append(lines, err.String())
	}

	return lines
}
