package declc

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"go.declc.dev/internal/test"
)

type programCase struct {
	Name        string   `yaml:"name"`
	Source      string   `yaml:"source"`
	SyntaxOK    bool     `yaml:"syntax_ok"`
	SemanticsOK bool     `yaml:"semantics_ok"`
	Scope       []string `yaml:"scope"`
	Statements  *int     `yaml:"statements"`
	Errors      []string `yaml:"errors"`
}

func loadProgramCases(t *testing.T) []programCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "programs.yaml"))
	require.NoError(t, err)

	var cases []programCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func TestCompilePrograms(t *testing.T) {
	for _, c := range loadProgramCases(t) {
		t.Run(c.Name, func(t *testing.T) {
			var out bytes.Buffer
			res := NewCompiler(Options{Output: &out}).CompileFromReader("", strings.NewReader(c.Source))

			assert.Equal(t, c.SyntaxOK, res.SyntaxOK)
			assert.Equal(t, c.SemanticsOK, res.SemanticsOK)
			assert.Equal(t, c.SyntaxOK && c.SemanticsOK, res.OK())
			assert.Equal(t, c.Scope, res.Scope.Names())

			if c.Statements != nil {
				assert.Len(t, res.Program.Statements, *c.Statements)
			}

			var lines []string
			for _, err := range res.Errors {
				lines = append(lines, err.String())
			}
			assert.Equal(t, c.Errors, lines)

			expectOut := ""
			if len(c.Errors) != 0 {
				expectOut = strings.Join(c.Errors, "\n") + "\n"
			}
			assert.Equal(t, expectOut, out.String())
		})
	}
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.decl")
	require.NoError(t, os.WriteFile(path, []byte("type int a;\nb = a;\n"), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := NewCompiler(Options{Logger: logger}).Compile(path)
	require.NoError(t, err)

	assert.False(t, res.OK())
	if assert.Len(t, res.Errors, 1) {
		assert.Equal(t, path+":2:1 variable b not declared", res.Errors[0].String())
	}

	assert.Contains(t, logs.String(), `"msg":"parsed"`)
	assert.Contains(t, logs.String(), `"msg":"checked"`)
	assert.Contains(t, logs.String(), `"run":`)

	_, err = NewCompiler(Options{}).Compile(filepath.Join(t.TempDir(), "missing.decl"))
	assert.Error(t, err)
}

func BenchmarkCompile1000(b *testing.B) {
	src := test.GetValidProgram(1000)
	c := NewCompiler(Options{})

	for n := 0; n < b.N; n++ {
		if res := c.CompileFromReader("bench", strings.NewReader(src)); !res.OK() {
			b.Fatal("unexpected errors")
		}
	}
}
