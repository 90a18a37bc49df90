package main

import (
	"fmt"

	"github.com/spf13/cobra"

	declc "go.declc.dev/pkg"
)

func newCheckCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse and check source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return a.watch(cmd.Context(), args)
			}

			return a.checkFiles(args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again whenever a file changes")

	return cmd
}

// checkFiles checks every file even after a failure and returns errFailed if
// any of them has errors.
func (a *app) checkFiles(files []string) error {
	failed := false
	for _, file := range files {
		res, err := a.compiler().Compile(file)
		if err != nil {
			return err
		}

		a.report(res)
		failed = failed || !res.OK()
	}

	if failed {
		return errFailed
	}

	return nil
}

func (a *app) report(res *declc.Result) {
	for _, err := range res.Errors {
		fmt.Fprintln(a.stderr, a.styles.diagnostic(err))
	}

	if res.OK() {
		fmt.Fprintf(a.stdout, "%s %s %s\n", a.styles.ok.Render("ok"), res.Filename,
			a.styles.muted.Render(fmt.Sprintf("(%d declared)", res.Scope.Len())))
		return
	}

	fmt.Fprintf(a.stdout, "%s %s %s\n", a.styles.fail.Render("FAIL"), res.Filename,
		a.styles.muted.Render(fmt.Sprintf("(%d errors)", len(res.Errors))))
}
