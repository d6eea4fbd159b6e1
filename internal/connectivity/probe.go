package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/cadet-sync/internal/logger"
)

// Pinger performs one reachability check. A nil error means the backend
// answered.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeSource is a [Source] that pings the backend every interval while at
// least one subscriber is registered.
type ProbeSource struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	subs   map[int]func(bool)
	nextID int
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewProbeSource(pinger Pinger, interval, timeout time.Duration, log *logger.Logger) *ProbeSource {
	return &ProbeSource{
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		logger:   log.WithComponent("probe"),
		subs:     make(map[int]func(bool)),
	}
}

// Current pings once with the probe timeout.
func (p *ProbeSource) Current(ctx context.Context) (bool, error) {
	return p.probe(ctx), nil
}

func (p *ProbeSource) Subscribe(fn func(online bool)) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.subs[id] = fn

	if p.cancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		p.wg.Add(1)
		go p.loop(ctx)
	}

	return func() { p.unsubscribe(id) }, nil
}

func (p *ProbeSource) unsubscribe(id int) {
	p.mu.Lock()
	delete(p.subs, id)
	var cancel context.CancelFunc
	if len(p.subs) == 0 && p.cancel != nil {
		cancel = p.cancel
		p.cancel = nil
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.wg.Wait()
	}
}

func (p *ProbeSource) loop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			online := p.probe(ctx)
			if ctx.Err() != nil {
				return
			}
			p.publish(online)
		}
	}
}

func (p *ProbeSource) publish(online bool) {
	p.mu.Lock()
	subs := make([]func(bool), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

func (p *ProbeSource) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.pinger.Ping(ctx); err != nil {
		p.logger.Debug().Err(err).Msg("backend unreachable")
		return false
	}
	return true
}
