package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "scratch.toml"

// config is the optional scratch.toml read by the command; flags given on the
// command line take precedence over it.
type config struct {
	REPL  replConfig  `toml:"repl"`
	Trace traceConfig `toml:"trace"`
	Load  loadConfig  `toml:"load"`

	// Path is where the config was read from, empty if no file was found.
	Path string `toml:"-"`
}

type replConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history-file"`
}

type traceConfig struct {
	Level string `toml:"level"`
}

type loadConfig struct {
	Prelude *bool    `toml:"prelude"`
	Files   []string `toml:"files"`
}

func defaultConfig() config {
	return config{
		REPL:  replConfig{Prompt: "scratch> "},
		Trace: traceConfig{Level: "Error"},
	}
}

func (cfg config) prelude() bool {
	return cfg.Load.Prelude == nil || *cfg.Load.Prelude
}

// readConfig overlays the named file onto the defaults. A missing file is
// only an error when required is set.
func readConfig(path string, required bool) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}
