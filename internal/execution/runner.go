package execution

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"expect/internal/config"
	"expect/internal/domain"
)

// BinaryRunner runs one test binary
type BinaryRunner interface {
	Run(ctx context.Context, path string) domain.BinaryResult
}

// Runner executes a single test binary as a child process
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the binary at path without arguments and waits for it
func (r *Runner) Run(ctx context.Context, path string) domain.BinaryResult {
	result := domain.BinaryResult{Path: path, ExitCode: -1}

	env, err := r.config.ChildEnv()
	if err != nil {
		result.Error = err
		return result
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, commandPath(path))
	cmd.Env = env

	start := time.Now()
	output, err := cmd.CombinedOutput()
	result.Duration = time.Since(start)
	result.Output = string(output)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Success = true
		result.ExitCode = 0
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Error = fmt.Errorf("%s timed out after %s", path, r.config.Timeout)
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Error = err
	default:
		result.Error = fmt.Errorf("failed to start %s: %w", path, err)
	}

	return result
}

// commandPath keeps a bare name like "parser_test" relative to the working
// directory instead of letting exec search $PATH for it.
func commandPath(path string) string {
	if filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		return path
	}
	return "." + string(filepath.Separator) + path
}
