// Package config loads the declc command line configuration from a TOML file.
//
// Every field is optional; values missing from the file keep their defaults
// and command line flags override both.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"go.declc.dev/internal/logger"
	declc "go.declc.dev/pkg"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "declc.toml"

type Config struct {
	Color         bool   `toml:"color"`
	DumpFormat    string `toml:"dump_format"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	WatchDebounce string `toml:"watch_debounce"`
}

func Default() Config {
	return Config{
		Color:         true,
		DumpFormat:    string(declc.DumpText),
		LogLevel:      "warn",
		LogFormat:     "text",
		WatchDebounce: "200ms",
	}
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// is allowed not to exist; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return cfg, errors.Wrapf(err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return cfg, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, errors.Wrapf(cfg.Validate(), "config %s", path)
}

func (c Config) Validate() error {
	if _, err := declc.ParseDumpFormat(c.DumpFormat); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}

	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil {
		return errors.Wrap(err, "watch_debounce")
	}

	if d < 0 {
		return errors.Errorf("watch_debounce must not be negative, got %s", d)
	}

	return nil
}

// Debounce is the parsed WatchDebounce; call Validate first.
func (c Config) Debounce() time.Duration {
	d, _ := time.ParseDuration(c.WatchDebounce)
	return d
}
