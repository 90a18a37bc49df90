package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.declc.dev/internal/config"
	"go.declc.dev/internal/logger"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.decl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckCommand(t *testing.T) {
	ok := writeSource(t, "type int a, b;\na = 1;\nb = a * 2;\n")
	stdout, stderr, err := run("check", ok)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok "+ok)
	assert.Contains(t, stdout, "(2 declared)")
	assert.Empty(t, stderr)

	bad := writeSource(t, "x = 1;\ntype int x, x;\n")
	stdout, stderr, err = run("check", ok, bad)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, stdout, "ok "+ok)
	assert.Contains(t, stdout, "FAIL "+bad)
	assert.Contains(t, stderr, "variable x not declared")
	assert.Contains(t, stderr, "variable x already declared")
}

func TestCheckMissingFile(t *testing.T) {
	_, _, err := run("check", filepath.Join(t.TempDir(), "missing.decl"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "type int a;\na = 1 - 2 - 3;\n")

	stdout, _, err := run("parse", path)
	require.NoError(t, err)
	assert.Equal(t, "type int a;\na = ((1 - 2) - 3);\n", stdout)

	stdout, _, err = run("parse", "--format", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "kind: assignment")
	assert.Contains(t, stdout, "kind: declaration")

	_, _, err = run("parse", "--format", "xml", path)
	assert.Error(t, err)
}

func TestParseCommandSyntaxError(t *testing.T) {
	path := writeSource(t, "type int a;\ntype a;\na = 1;\n")

	stdout, stderr, err := run("parse", path)
	assert.ErrorIs(t, err, errFailed)
	assert.Equal(t, "type int a;\n", stdout)
	assert.Contains(t, stderr, "expected 'int' after 'type'")
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "type int a;")

	stdout, _, err := run("tokens", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Type")
	assert.Contains(t, stdout, "Int")
	assert.Contains(t, stdout, "Identifier")
	assert.Contains(t, stdout, "Semicolon")
}

// syncBuffer is written by the watch loop while the test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestCheckWatch(t *testing.T) {
	path := writeSource(t, "type int a;\na = 1;\n")

	cfg := config.Default()
	cfg.Color = false
	cfg.WatchDebounce = "20ms"

	var stdout, stderr syncBuffer
	a := &app{
		cfg:    cfg,
		logger: logger.Discard(),
		styles: newStyles(false),
		stdout: &stdout,
		stderr: &stderr,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, []string{path})
	}()

	// The first check runs after the watcher is registered
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "ok "+path)
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("a = 1;\ntype int a;\n"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "FAIL "+path)
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, stderr.String(), "variable a not declared")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
