package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration in priority order:
// 1. Defaults
// 2. The explicit config file, if given (it must exist)
// 3. Otherwise the first project config file found in dir
//
// Command-line flags are applied on top by the caller.
func Load(dir, explicit string) (*Config, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		path = findProjectConfigFile(dir)
		if path == "" {
			return cfg, nil
		}
	}

	if err := loadConfigFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// findProjectConfigFile returns the first project config file present in dir.
func findProjectConfigFile(dir string) string {
	for _, name := range ProjectFiles() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// loadConfigFile decodes path into cfg, choosing the format by extension.
// Keys absent from the file keep their current values; unknown keys are
// rejected.
func loadConfigFile(cfg *Config, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadYAML(cfg, path)
	case ".toml":
		return loadTOML(cfg, path)
	default:
		return fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}
