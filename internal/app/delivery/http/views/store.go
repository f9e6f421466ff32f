package views

import "sync"

// Store holds the state of one view and notifies subscribers after every
// update. Once disposed, updates are dropped so that completions arriving
// after the view is gone cannot touch its state.
type Store[S any] struct {
	mu          sync.Mutex
	state       S
	subscribers []*subscriber[S]
	disposed    bool
}

type subscriber[S any] struct {
	notify func(state S)
}

func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

func (s *Store[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to the state and reports whether it was applied.
func (s *Store[S]) Update(fn func(state *S)) bool {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return false
	}
	fn(&s.state)
	state := s.state
	subscribers := make([]*subscriber[S], len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub.notify(state)
	}
	return true
}

func (s *Store[S]) Subscribe(fn func(state S)) (unsubscribe func()) {
	sub := &subscriber[S]{notify: fn}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, registered := range s.subscribers {
			if registered == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store[S]) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.subscribers = nil
}

func (s *Store[S]) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
