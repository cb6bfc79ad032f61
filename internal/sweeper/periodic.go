package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
)

// periodic runs a job to completion, sleeps for the interval and repeats
type periodic struct {
	name     string
	interval time.Duration
	job      Job
	clock    adapter.Clock
	metrics  *metrics.Metrics
	cycle    uint64
	failed   atomic.Bool

	// mu guards running and the channels of the current run
	mu        sync.Mutex
	running   bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPeriodic creates a sweeper running job every interval.
// A job returning domain.ErrConfigMissing halts the sweeper.
func NewPeriodic(name string, interval time.Duration, job Job, clock adapter.Clock, m *metrics.Metrics) Sweeper {
	return &periodic{
		name:     name,
		interval: interval,
		job:      job,
		clock:    clock,
		metrics:  m,
	}
}

// Name returns the sweeper's name
func (p *periodic) Name() string {
	return p.name
}

// Start runs the job loop until the context is canceled, Stop is called or the job fails permanently
func (p *periodic) Start(ctx context.Context) error {
	if p.failed.Load() {
		return fmt.Errorf("%s has failed", p.name)
	}
	stop, stopped, err := p.begin()
	if err != nil {
		return err
	}
	defer p.finish(stopped)

	logger.InfoCtx(ctx, "Starting periodic job",
		zap.String("job", p.name),
		zap.Duration("interval", p.interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Periodic job stopping due to context cancellation",
				zap.String("job", p.name), zap.Error(ctx.Err()))
			return nil
		case <-stop:
			logger.InfoCtx(ctx, "Periodic job stop requested", zap.String("job", p.name))
			return nil
		default:
			if err := p.runCycle(ctx); err != nil {
				p.failed.Store(true)
				return err
			}
			if !p.sleep(ctx, stop, p.interval) {
				return nil
			}
		}
	}
}

// begin marks the sweeper running and opens fresh channels for this run
func (p *periodic) begin() (stop, stopped chan struct{}, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil, nil, fmt.Errorf("%s already running", p.name)
	}
	p.running = true
	p.stopChan = make(chan struct{})
	p.stoppedCh = make(chan struct{})
	return p.stopChan, p.stoppedCh, nil
}

func (p *periodic) finish(stopped chan struct{}) {
	p.mu.Lock()
	p.running = false
	p.stopChan = nil
	p.mu.Unlock()
	close(stopped)
}

// runCycle runs the job once. Only a permanent failure is returned.
func (p *periodic) runCycle(ctx context.Context) error {
	p.cycle++
	jobCtx := logger.WithJob(ctx, logger.JobInfo{Name: p.name, Cycle: p.cycle})

	startTime := p.clock.Now()
	err := p.job.RunOnce(jobCtx)
	duration := p.clock.Since(startTime)

	result := "success"
	if err != nil {
		result = "error"
	}
	if p.metrics != nil {
		p.metrics.JobDuration.WithLabelValues(p.name, result).Observe(duration.Seconds())
	}

	switch {
	case err == nil:
		logger.DebugCtx(jobCtx, "Periodic job completed",
			zap.String("job", p.name), zap.Duration("duration", duration))
		return nil
	case errors.Is(err, domain.ErrConfigMissing):
		logger.ErrorCtx(jobCtx, fmt.Errorf("%s halted: %w", p.name, err))
		return fmt.Errorf("%s halted: %w", p.name, err)
	case errors.Is(err, context.Canceled):
		return nil
	default:
		logger.ErrorCtx(jobCtx, err, zap.String("job", p.name), zap.Duration("duration", duration))
		return nil
	}
}

// Stop gracefully stops the sweeper with timeout support
func (p *periodic) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	if p.stopChan != nil {
		close(p.stopChan)
		p.stopChan = nil
	}
	stopped := p.stoppedCh
	p.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping periodic job", zap.String("job", p.name))

	select {
	case <-stopped:
		logger.InfoCtx(ctx, "Periodic job stopped gracefully", zap.String("job", p.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Periodic job stop interrupted by context timeout", zap.String("job", p.name))
		return ctx.Err()
	}
}

// sleep returns false when interrupted by the context or a stop request
func (p *periodic) sleep(ctx context.Context, stop <-chan struct{}, duration time.Duration) bool {
	select {
	case <-p.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-stop:
		return false
	}
}
