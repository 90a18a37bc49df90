package declc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const missingOperand = "<missing>"

// Format renders n as source text with every binary operation parenthesised,
// so the shape of the tree is visible: a = ((1 - 2) - 3);
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)

	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		for i, stmt := range n.Statements {
			if i != 0 {
				b.WriteString("\n")
			}

			format(b, stmt)
		}
	case *Declaration:
		b.WriteString("type int ")
		for i, v := range n.Vars {
			if i != 0 {
				b.WriteString(", ")
			}

			b.WriteString(v.Name)
		}
		b.WriteString(";")
	case *LiteralExpr:
		b.WriteString(n.Value)
	case *BinaryExpr:
		if IsAssignment(n) {
			formatOperand(b, n.Left)
			b.WriteString(" = ")
			formatOperand(b, n.Right)
			b.WriteString(";")

			return
		}

		b.WriteString("(")
		formatOperand(b, n.Left)
		fmt.Fprintf(b, " %s ", n.Operation)
		formatOperand(b, n.Right)
		b.WriteString(")")
	}
}

func formatOperand(b *strings.Builder, e Expr) {
	if e == nil {
		b.WriteString(missingOperand)
		return
	}

	format(b, e)
}

type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpYAML DumpFormat = "yaml"
	DumpJSON DumpFormat = "json"
)

func ParseDumpFormat(s string) (DumpFormat, error) {
	switch f := DumpFormat(strings.ToLower(s)); f {
	case DumpText, DumpYAML, DumpJSON:
		return f, nil
	default:
		return "", errors.Errorf("unknown dump format %q", s)
	}
}

// Dump serialises n in the given format. YAML and JSON share one tree shape.
func Dump(n Node, f DumpFormat) ([]byte, error) {
	switch f {
	case DumpText:
		return []byte(Format(n) + "\n"), nil
	case DumpYAML:
		out, err := yaml.Marshal(toTree(n))
		return out, errors.Wrap(err, "yaml dump")
	case DumpJSON:
		out, err := json.MarshalIndent(toTree(n), "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "json dump")
		}

		return append(out, '\n'), nil
	default:
		return nil, errors.Errorf("unknown dump format %q", f)
	}
}

type treeNode struct {
	Kind       string      `yaml:"kind" json:"kind"`
	Loc        string      `yaml:"loc,omitempty" json:"loc,omitempty"`
	Op         string      `yaml:"op,omitempty" json:"op,omitempty"`
	Value      string      `yaml:"value,omitempty" json:"value,omitempty"`
	Names      []string    `yaml:"names,omitempty" json:"names,omitempty"`
	Left       *treeNode   `yaml:"left,omitempty" json:"left,omitempty"`
	Right      *treeNode   `yaml:"right,omitempty" json:"right,omitempty"`
	Statements []*treeNode `yaml:"statements,omitempty" json:"statements,omitempty"`
}

func toTree(n Node) *treeNode {
	switch n := n.(type) {
	case *Program:
		t := &treeNode{Kind: "program"}
		for _, stmt := range n.Statements {
			t.Statements = append(t.Statements, toTree(stmt))
		}

		return t
	case *Declaration:
		t := &treeNode{Kind: "declaration", Loc: locString(n.Loc)}
		for _, v := range n.Vars {
			t.Names = append(t.Names, v.Name)
		}

		return t
	case *LiteralExpr:
		return &treeNode{Kind: n.Typ.String(), Loc: locString(n.Loc), Value: n.Value}
	case *BinaryExpr:
		kind := "binary"
		if IsAssignment(n) {
			kind = "assignment"
		}

		return &treeNode{
			Kind:  kind,
			Loc:   locString(n.Loc),
			Op:    string(n.Operation),
			Left:  operandTree(n.Left),
			Right: operandTree(n.Right),
		}
	default:
		return &treeNode{Kind: "unknown"}
	}
}

func operandTree(e Expr) *treeNode {
	if e == nil {
		return &treeNode{Kind: "missing"}
	}

	return toTree(e)
}

func locString(l *Location) string {
	if l == nil {
		return ""
	}

	return l.String()
}
