package main

import (
	"github.com/charmbracelet/lipgloss"

	declc "go.declc.dev/pkg"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	syntax  lipgloss.Style
	decl    lipgloss.Style
	operand lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}

	return styles{
		syntax:  lipgloss.NewStyle().Foreground(colorError).Bold(true),
		decl:    lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		operand: lipgloss.NewStyle().Foreground(colorWarning),
		ok:      lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		fail:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) diagnostic(err declc.CompileError) string {
	switch err.(type) {
	case *declc.SyntaxError:
		return s.syntax.Render("syntax") + " " + err.String()
	case *declc.RedeclaredError, *declc.UndefinedError:
		return s.decl.Render("decl") + " " + err.String()
	case *declc.MissingOperandError:
		return s.operand.Render("operand") + " " + err.String()
	default:
		return err.String()
	}
}
