package config

import "time"

const (
	// DefaultEnvFile is read for child environment variables when present
	DefaultEnvFile = ".env.test"
	// DefaultTimeout bounds a single test binary's run
	DefaultTimeout = 2 * time.Minute
	// DefaultFailureOutputLines is how many output lines a crashed binary shows in the summary
	DefaultFailureOutputLines = 20
)
