package sweeper

import (
	"context"
)

// Sweeper runs a wallet job in the background: chain scanning, deposit callbacks,
// collection, render and registry reloads
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper,Job=MockJob
type Sweeper interface {
	// Start blocks until ctx is canceled, Stop is called or the job fails permanently
	Start(ctx context.Context) error

	// Stop waits for the current run to finish
	Stop(ctx context.Context) error

	// Name identifies the job in logs and metrics
	Name() string
}

// Job is one unit of periodic work. A run must finish before the next one starts.
type Job interface {
	RunOnce(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// RunOnce calls f(ctx)
func (f JobFunc) RunOnce(ctx context.Context) error {
	return f(ctx)
}
