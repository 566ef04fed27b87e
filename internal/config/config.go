package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Execution settings
	Timeout time.Duration
	EnvFile string

	// Output settings
	FailureOutputLines int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	NameFilter  string
	FailFast    bool
	Timeout     time.Duration
	EnvFile     string
	Interactive bool
	Verbose     bool
	NoColor     bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Timeout:            DefaultTimeout,
		EnvFile:            DefaultEnvFile,
		FailureOutputLines: DefaultFailureOutputLines,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Apply(flags)
	return cfg
}

// Apply stores flags and applies their overrides
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.EnvFile != "" {
		c.EnvFile = flags.EnvFile
	}
}

// ChildEnv returns the environment for a test binary: the current
// environment followed by the variables from the env file. A missing default
// env file is not an error; a missing file named by --env-file is.
func (c *Config) ChildEnv() ([]string, error) {
	env := os.Environ()
	if c.EnvFile == "" {
		return env, nil
	}

	vars, err := godotenv.Read(c.EnvFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && c.Flags.EnvFile == "" {
			return env, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", c.EnvFile, err)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	return env, nil
}

// UseColor reports whether console output should be colored
func (c *Config) UseColor() bool {
	return !c.Flags.NoColor
}
