package connectivity

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/cadet-sync/internal/logger"
)

// Listener is invoked with the new state on every edge.
type Listener func(online bool)

// ListenerID identifies a registered [Listener] for removal.
type ListenerID uint64

type registration struct {
	id ListenerID
	fn Listener
}

// Monitor owns the process-wide connection state. It reports online until
// Init runs and whenever the Source fails or panics.
type Monitor struct {
	source Source
	logger *logger.Logger

	initMu      sync.Mutex
	initialized bool

	mu          sync.RWMutex
	online      bool
	unsubscribe func()

	listenersMu sync.Mutex
	listeners   []registration
	nextID      ListenerID

	// deliverMu serialises state changes together with their notifications
	// so listeners observe edges in the order they happened.
	deliverMu sync.Mutex
}

func NewMonitor(source Source, log *logger.Logger) *Monitor {
	return &Monitor{
		source: source,
		logger: log.WithComponent("connectivity"),
		online: true,
	}
}

// Init reads the current state from the Source and subscribes to it. Calling
// Init again is a no-op.
func (m *Monitor) Init(ctx context.Context) {
	m.initMu.Lock()
	defer m.initMu.Unlock()

	if m.initialized {
		return
	}
	m.initialized = true

	online, err := safeCurrent(ctx, m.source)
	if err != nil {
		m.logger.Warn().Err(err).Msg("connectivity source failed, assuming online")
		online = true
	}
	m.mu.Lock()
	m.online = online
	m.mu.Unlock()

	unsubscribe, err := safeSubscribe(m.source, m.handle)
	if err != nil {
		m.logger.Warn().Err(err).Msg("connectivity subscription failed, state will not change")
		return
	}
	m.mu.Lock()
	m.unsubscribe = unsubscribe
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Msg("connectivity monitor initialized")
}

// Status returns the last known state. It never blocks on the network.
func (m *Monitor) Status() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// AddListener registers fn for every future edge.
func (m *Monitor) AddListener(fn Listener) ListenerID {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	m.nextID++
	m.listeners = append(m.listeners, registration{id: m.nextID, fn: fn})
	return m.nextID
}

// RemoveListener unregisters a listener. Unknown ids are ignored.
func (m *Monitor) RemoveListener(id ListenerID) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	for i, r := range m.listeners {
		if r.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// Close unsubscribes from the Source. The last state stays readable.
func (m *Monitor) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// handle receives raw observations from the Source and turns them into edges.
func (m *Monitor) handle(online bool) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Msg("connectivity changed")

	m.listenersMu.Lock()
	listeners := make([]registration, len(m.listeners))
	copy(listeners, m.listeners)
	m.listenersMu.Unlock()

	for _, r := range listeners {
		m.notify(r, online)
	}
}

func (m *Monitor) notify(r registration, online bool) {
	defer func() {
		if p := recover(); p != nil {
			m.logger.Error().Interface("panic", p).Uint64("listener", uint64(r.id)).Msg("connectivity listener panicked")
		}
	}()
	r.fn(online)
}

func safeCurrent(ctx context.Context, s Source) (online bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("source panicked: %v", p)
		}
	}()
	return s.Current(ctx)
}

func safeSubscribe(s Source, fn func(bool)) (unsubscribe func(), err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("source panicked: %v", p)
		}
	}()
	return s.Subscribe(fn)
}
