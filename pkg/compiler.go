package declc

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go.declc.dev/internal/logger"
)

type Options struct {
	// Output receives one line per diagnostic as it is found. Nil discards them;
	// they are still returned in the Result.
	Output io.Writer
	Logger *slog.Logger
}

type Compiler struct {
	out    io.Writer
	logger *slog.Logger
}

func NewCompiler(opts Options) *Compiler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Compiler{
		out:    opts.Output,
		logger: log,
	}
}

// Result of parsing and checking one source. Program is never nil; after a
// syntax error it holds the statements parsed before it.
type Result struct {
	Filename    string
	Program     *Program
	Errors      []CompileError
	SyntaxOK    bool
	SemanticsOK bool
	Scope       *Scope
}

func (r *Result) OK() bool {
	return r.SyntaxOK && r.SemanticsOK
}

// Compile only returns an error when the file cannot be read; problems in the
// source itself are in the Result.
func (c *Compiler) Compile(filename string) (*Result, error) {
	lexer, err := NewLexerFromFile(filename)
	if err != nil {
		return nil, err
	}

	return c.compile(filename, lexer), nil
}

func (c *Compiler) CompileFromReader(name string, reader io.Reader) *Result {
	return c.compile(name, NewNamedLexer(name, reader))
}

func (c *Compiler) compile(name string, tokenizer Tokenizer) *Result {
	logger := c.logger.With("run", uuid.NewString(), "file", name)
	start := time.Now()

	diag := NewDiagnostics(c.out)

	parser := NewParser(tokenizer, diag)
	prog := parser.Parse()
	logger.Debug("parsed", "statements", len(prog.Statements), "syntax_errors", diag.Len())

	// The partial tree is still checked so absent operands and undeclared
	// names are reported together with the syntax errors
	checker := NewChecker(diag)
	semanticErr := checker.Check(prog)
	logger.Debug("checked", "declared", checker.Scope().Len(), "semantic_errors", len(checker.Errors()))

	res := &Result{
		Filename:    name,
		Program:     prog,
		Errors:      diag.Errors(),
		SyntaxOK:    !parser.HasErrors(),
		SemanticsOK: !semanticErr,
		Scope:       checker.Scope(),
	}

	logger.Info("compiled", "ok", res.OK(), "errors", len(res.Errors), "elapsed", time.Since(start))

	return res
}
