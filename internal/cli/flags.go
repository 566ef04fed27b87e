package cli

import (
	"time"

	"expect/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NameFilter:  f.NameFilter,
		FailFast:    f.FailFast,
		Timeout:     f.Timeout,
		EnvFile:     f.EnvFile,
		Interactive: f.Interactive,
		Verbose:     f.Verbose,
		NoColor:     f.NoColor,
	}
}
