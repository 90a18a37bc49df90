package main

import (
	"fmt"

	"github.com/spf13/cobra"

	declc "go.declc.dev/pkg"
)

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a source file",
		Long: `Print the syntax tree of a source file. After a syntax error the tree
holds the statements parsed before it and the exit status is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.DumpFormat
			}

			f, err := declc.ParseDumpFormat(format)
			if err != nil {
				return err
			}

			return a.parse(args[0], f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml or json (default from config)")

	return cmd
}

func (a *app) parse(file string, format declc.DumpFormat) error {
	lexer, err := declc.NewLexerFromFile(file)
	if err != nil {
		return err
	}

	diag := declc.NewDiagnostics(nil)
	parser := declc.NewParser(lexer, diag)
	prog := parser.Parse()

	a.logger.Debug("parsed", "file", file, "statements", len(prog.Statements))

	out, err := declc.Dump(prog, format)
	if err != nil {
		return err
	}

	if _, err := a.stdout.Write(out); err != nil {
		return err
	}

	for _, e := range diag.Errors() {
		fmt.Fprintln(a.stderr, a.styles.diagnostic(e))
	}

	if parser.HasErrors() {
		return errFailed
	}

	return nil
}
