package connectivity

import (
	"context"
	"sync"
)

// ManualSource is a [Source] whose state is set by code.
type ManualSource struct {
	mu     sync.Mutex
	online bool
	subs   map[int]func(bool)
	nextID int
}

func NewManualSource(online bool) *ManualSource {
	return &ManualSource{online: online, subs: make(map[int]func(bool))}
}

func (s *ManualSource) Current(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online, nil
}

func (s *ManualSource) Subscribe(fn func(online bool)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}, nil
}

// Set records online and synchronously forwards it to every subscriber.
func (s *ManualSource) Set(online bool) {
	s.mu.Lock()
	s.online = online
	subs := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(online)
	}
}

// Subscribers returns the number of active subscriptions.
func (s *ManualSource) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
