package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "declc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
color = false
dump_format = "yaml"
log_level = "debug"
watch_debounce = "1s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Color)
	assert.Equal(t, "yaml", cfg.DumpFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat) // default kept
	assert.Equal(t, time.Second, cfg.Debounce())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown key", `colour = true`},
		{"bad dump format", `dump_format = "xml"`},
		{"bad level", `log_level = "loud"`},
		{"bad log format", `log_format = "csv"`},
		{"bad debounce", `watch_debounce = "soon"`},
		{"negative debounce", `watch_debounce = "-1s"`},
		{"not toml", `color = `},
	}

	for _, c := range cases {
		_, err := Load(writeConfig(t, c.content))
		assert.Error(t, err, c.name)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
