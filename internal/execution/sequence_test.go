package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expect/internal/config"
	"expect/internal/domain"
)

// fakeRunner fails the binaries listed in failing and records call order
type fakeRunner struct {
	failing map[string]bool
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, path string) domain.BinaryResult {
	f.calls = append(f.calls, path)
	if f.failing[path] {
		return domain.BinaryResult{Path: path, ExitCode: 1, Error: errors.New("exit status 1")}
	}
	return domain.BinaryResult{Path: path, Success: true}
}

func TestSequence_Execute(t *testing.T) {
	paths := []string{"a", "b", "c"}

	tests := []struct {
		name          string
		failFast      bool
		failing       map[string]bool
		expectedCalls []string
	}{
		{
			name:          "all pass",
			expectedCalls: paths,
		},
		{
			name:          "failure without fail-fast runs everything",
			failing:       map[string]bool{"a": true},
			expectedCalls: paths,
		},
		{
			name:          "fail-fast stops after first failure",
			failFast:      true,
			failing:       map[string]bool{"b": true, "c": true},
			expectedCalls: []string{"a", "b"},
		},
		{
			name:          "fail-fast with no failures",
			failFast:      true,
			expectedCalls: paths,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Load(config.Flags{FailFast: tt.failFast})
			runner := &fakeRunner{failing: tt.failing}
			seq := NewSequence(cfg, runner, nil)

			results, _, err := seq.Execute(context.Background(), paths)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCalls, runner.calls)
			require.Len(t, results, len(tt.expectedCalls))
			for i, r := range results {
				assert.Equal(t, tt.expectedCalls[i], r.Path)
				assert.Equal(t, !tt.failing[r.Path], r.Success)
			}
		})
	}
}

// recordingProgress keeps every progress notice in order
type recordingProgress struct {
	events []string
}

func (p *recordingProgress) Running(name string) { p.events = append(p.events, "running "+name) }

func (p *recordingProgress) Record(success bool) {
	if success {
		p.events = append(p.events, "passed")
	} else {
		p.events = append(p.events, "failed")
	}
}

func (p *recordingProgress) Finish() { p.events = append(p.events, "finish") }

func TestSequence_Progress(t *testing.T) {
	cfg := config.Load(config.Flags{FailFast: true})
	runner := &fakeRunner{failing: map[string]bool{"bin/b": true}}
	progress := &recordingProgress{}

	seq := NewSequence(cfg, runner, nil)
	seq.SetProgress(progress)
	_, _, err := seq.Execute(context.Background(), []string{"bin/a", "bin/b", "bin/c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"running a", "passed", "running b", "failed", "finish"}, progress.events)
}

func TestSequence_NoBinaries(t *testing.T) {
	seq := NewSequence(config.New(), &fakeRunner{}, nil)
	_, _, err := seq.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoBinaries)
}

func TestSequence_CancelledContext(t *testing.T) {
	runner := &fakeRunner{}
	seq := NewSequence(config.New(), runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, _, err := seq.Execute(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Empty(t, runner.calls)
}
