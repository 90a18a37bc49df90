package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	declc "go.declc.dev/pkg"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexer, err := declc.NewLexerFromFile(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, tok := range lexer.Tokens() {
				fmt.Fprintf(w, "%d:%d\t%s\t%s\n", tok.Loc.Line, tok.Loc.Column, tok.Typ, tok.Value)
			}

			return w.Flush()
		},
	}
}
