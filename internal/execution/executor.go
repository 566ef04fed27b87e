package execution

import (
	"context"
	"errors"
	"time"

	"expect/internal/domain"
)

// ErrNoBinaries is returned when there is nothing to run
var ErrNoBinaries = errors.New("no test binaries to run")

// Progress receives a notice before and after each binary runs
type Progress interface {
	Running(name string)
	Record(success bool)
	Finish()
}

// Executor executes test binaries and returns results
type Executor interface {
	SetProgress(progress Progress)
	Execute(ctx context.Context, paths []string) ([]domain.BinaryResult, time.Duration, error)
}
