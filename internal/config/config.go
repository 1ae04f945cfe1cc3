// Package config handles configuration loading and defaults.
package config

import "github.com/abatilo/tasktracker/internal/logging"

// Default values.
const (
	DefaultFile   = "tasks.json"
	DefaultPrompt = "> "
	DefaultBanner = true
)

// ProjectFiles are the config file names looked up in the working
// directory, in priority order.
func ProjectFiles() []string {
	return []string{".tasktracker.yaml", ".tasktracker.yml", ".tasktracker.toml"}
}

// Config holds the full configuration for tasktracker.
type Config struct {
	// File is the task file, relative to the working directory unless absolute.
	File string `yaml:"file" toml:"file"`

	// Prompt is printed before each command is read.
	Prompt string `yaml:"prompt" toml:"prompt"`

	// LogLevel sets diagnostic logging (panic, fatal, error, warn, info, debug, trace).
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Banner prints the welcome banner and help at startup.
	Banner bool `yaml:"banner" toml:"banner"`

	// Source is the config file that was loaded, empty when only defaults apply.
	Source string `yaml:"-" toml:"-"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		File:     DefaultFile,
		Prompt:   DefaultPrompt,
		LogLevel: logging.DefaultLevel,
		Banner:   DefaultBanner,
	}
}
