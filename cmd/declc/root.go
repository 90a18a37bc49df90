package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.declc.dev/internal/config"
	"go.declc.dev/internal/logger"
	declc "go.declc.dev/pkg"
)

// errFailed is returned when a source has errors. They have been printed
// already, so main only sets the exit status.
var errFailed = errors.New("source has errors")

type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg    config.Config
	logger *slog.Logger
	styles styles
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "declc",
		Short: "Parse and check declare-before-use programs",
		Long: `declc parses programs made of integer declarations and assignments
and checks that every variable is declared once, before it is used.

  type int a, b;
  a = 1;
  b = (a + 2) * 3;`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+" if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newCheckCmd(a),
		newParseCmd(a),
		newTokensCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.LogLevel = "debug"
	}

	if a.noColor {
		cfg.Color = false
	}

	a.cfg = cfg
	a.stdout = cmd.OutOrStdout()
	a.stderr = cmd.ErrOrStderr()
	a.styles = newStyles(cfg.Color)

	a.logger, err = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: a.stderr,
	})

	return err
}

func (a *app) compiler() *declc.Compiler {
	return declc.NewCompiler(declc.Options{Logger: a.logger})
}
