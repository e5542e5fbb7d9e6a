// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cargoconfig reads the parts of a user's Cargo configuration
// that cargo-kubos cares about: per-target linker overrides.
//
// Every lookup in this package is best-effort. A missing environment
// variable, file, table or key simply means there is nothing configured.
package cargoconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kubos/cargo-kubos/internal/envutil"
)

// configNames are the file names Cargo reads from its home directory,
// in order of precedence.
var configNames = []string{"config", "config.toml"}

// Config is a parsed Cargo configuration document.
type Config struct {
	doc map[string]any
}

// Parse parses a TOML Cargo configuration document.
func Parse(data []byte) (*Config, error) {
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &Config{doc: doc}, nil
}

// Load reads and parses the Cargo configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Linker returns the value of target.<triplet>.linker.
// It reports false if any table along the way is missing or the value
// is not a string.
func (c *Config) Linker(triplet string) (string, bool) {
	if c == nil {
		return "", false
	}
	targets, ok := table(c.doc, "target")
	if !ok {
		return "", false
	}
	target, ok := table(targets, triplet)
	if !ok {
		return "", false
	}
	linker, ok := target["linker"].(string)
	return linker, ok
}

func table(m map[string]any, key string) (map[string]any, bool) {
	t, ok := m[key].(map[string]any)
	return t, ok
}

// Home returns the Cargo home directory according to env:
// $CARGO_HOME, or $HOME/.cargo if CARGO_HOME is unset or empty.
func Home(env []string) (string, bool) {
	if dir := envutil.Get(env, "CARGO_HOME"); dir != "" {
		return dir, true
	}
	if home := envutil.Get(env, "HOME"); home != "" {
		return filepath.Join(home, ".cargo"), true
	}
	return "", false
}

// LoadHome loads the first configuration file that can be read from the
// Cargo home directory named by env. A file that is read but does not
// parse is an error; later names are not tried.
func LoadHome(env []string) (*Config, error) {
	dir, ok := Home(env)
	if !ok {
		return nil, errors.New("neither CARGO_HOME nor HOME is set")
	}
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		c, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("no readable Cargo config in %s", dir)
}

// Linker returns the linker configured for triplet in the Cargo home
// directory named by env. Any failure along the way is reported as
// "no linker configured".
func Linker(env []string, triplet string) (string, bool) {
	c, err := LoadHome(env)
	if err != nil {
		return "", false
	}
	return c.Linker(triplet)
}
