package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
)

const defaultInterval = 5 * time.Minute

// Periodic runs a [Task] every interval on its own goroutine.
type Periodic struct {
	name       string
	interval   time.Duration
	maxBackoff time.Duration
	immediate  bool
	task       Task
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a [Periodic] worker.
type Option func(*Periodic)

// WithBackoff doubles the wait after every consecutive failure, up to max.
// A successful run restores the base interval.
func WithBackoff(max time.Duration) Option {
	return func(p *Periodic) {
		p.maxBackoff = max
	}
}

// WithImmediateRun runs the task once as soon as the worker starts.
func WithImmediateRun() Option {
	return func(p *Periodic) {
		p.immediate = true
	}
}

// NewPeriodic creates a worker that is idle until Start is called. If
// interval is zero or negative it defaults to 5 minutes.
func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger, opts ...Option) *Periodic {
	if interval <= 0 {
		interval = defaultInterval
	}

	p := &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log.WithComponent(name),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start implements [Worker]. Any previously running loop is stopped first.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go p.loop(jobCtx)
}

// Stop implements [Worker].
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Periodic) loop(ctx context.Context) {
	defer p.wg.Done()

	failures := 0
	if p.immediate {
		failures = p.run(ctx, failures)
	}

	timer := time.NewTimer(p.delay(failures))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			failures = p.run(ctx, failures)
			timer.Reset(p.delay(failures))
		}
	}
}

func (p *Periodic) run(ctx context.Context, failures int) int {
	if err := p.task(ctx); err != nil {
		if ctx.Err() == nil {
			p.logger.Warn().Err(err).Int("consecutive_failures", failures+1).Msg("periodic task failed")
		}
		return failures + 1
	}

	return 0
}

// delay returns the wait before the next run after the given number of
// consecutive failures.
func (p *Periodic) delay(failures int) time.Duration {
	if p.maxBackoff <= 0 || failures == 0 {
		return p.interval
	}

	d := p.interval
	for range failures {
		d *= 2
		if d >= p.maxBackoff {
			return p.maxBackoff
		}
	}

	return d
}
