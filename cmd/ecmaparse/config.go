package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectConfig is the shape of ecmaparse.toml, the project-level default
// config. The parse command applies its max_diagnostics and recover keys
// when the matching flag was not set on the command line; the dialect key is
// decoded but not applied.
type projectConfig struct {
	Parse parseConfig `toml:"parse"`
}

type parseConfig struct {
	Dialect        string `toml:"dialect"` // "js" | "ts" | "jsx" | "tsx"
	Recover        *bool  `toml:"recover"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// findProjectConfig walks upward from startDir looking for ecmaparse.toml.
func findProjectConfig(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, "ecmaparse.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolveProjectConfig looks up ecmaparse.toml starting at dir and returns
// its parse section, or the zero value if none is found. A missing or
// unreadable directory is not an error — the CLI simply falls back to its
// flag defaults.
func resolveProjectConfig(dir string) parseConfig {
	path, ok, err := findProjectConfig(dir)
	if err != nil || !ok {
		return parseConfig{}
	}
	cfg, err := loadProjectConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ecmaparse: %v\n", err)
		return parseConfig{}
	}
	return cfg.Parse
}
