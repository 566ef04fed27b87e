package execution

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"expect/internal/config"
	"expect/internal/domain"
)

// Sequence runs test binaries one after another in the given order
type Sequence struct {
	config   *config.Config
	runner   BinaryRunner
	progress Progress
	logger   *zap.Logger
}

var _ Executor = (*Sequence)(nil)

// NewSequence creates a new Sequence
func NewSequence(cfg *config.Config, runner BinaryRunner, logger *zap.Logger) *Sequence {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequence{
		config: cfg,
		runner: runner,
		logger: logger,
	}
}

// SetProgress sets the progress display updated around each binary
func (s *Sequence) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs every binary, or with fail-fast stops after the first failure.
// A cancelled context stops the sequence before the next binary starts.
func (s *Sequence) Execute(ctx context.Context, paths []string) ([]domain.BinaryResult, time.Duration, error) {
	if len(paths) == 0 {
		return nil, 0, ErrNoBinaries
	}

	results := make([]domain.BinaryResult, 0, len(paths))
	startTime := time.Now()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), err
		}

		s.logger.Debug("running test binary", zap.String("path", path))
		if s.progress != nil {
			s.progress.Running(filepath.Base(path))
		}
		result := s.runner.Run(ctx, path)
		results = append(results, result)
		s.logger.Debug("test binary finished",
			zap.String("binary", result.Name()),
			zap.Int("exit_code", result.ExitCode),
			zap.Duration("duration", result.Duration),
			zap.Error(result.Error),
		)

		if s.progress != nil {
			s.progress.Record(result.Success)
		}

		if !result.Success && s.config.Flags.FailFast {
			s.logger.Debug("fail-fast: stopping after first failure", zap.String("path", path))
			break
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	return results, time.Since(startTime), nil
}

// SetLogger replaces the logger that receives per-binary diagnostics
func (s *Sequence) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}
