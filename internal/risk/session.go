package risk

import (
	"fmt"
	"sync"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

// SessionState is the lifecycle of one route-query session.
type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateLoading     SessionState = "loading"
	StateSucceeded   SessionState = "succeeded"
	StateFailed      SessionState = "failed"
	StateUnavailable SessionState = "unavailable"
)

// Session tracks a route query through
// Idle -> Loading -> {Succeeded | Failed | Unavailable}. A new query resets
// Succeeded or Failed back through Loading; Unavailable also clears on the
// next query attempt. Safe for concurrent readers.
type Session struct {
	mu     sync.RWMutex
	state  SessionState
	routes []domain.ScoredRoute
	err    error
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Routes returns the scored routes of the last successful query, nil in every
// other state.
func (s *Session) Routes() []domain.ScoredRoute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateSucceeded {
		return nil
	}
	return s.routes
}

func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateFailed {
		return nil
	}
	return s.err
}

// Begin starts a new query. Legal from any state except Loading: a session
// already in flight must finish first.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		return fmt.Errorf("route query already in flight")
	}
	s.state = StateLoading
	s.routes = nil
	s.err = nil
	return nil
}

// Succeed resolves the in-flight query. Candidates are banded here; a fully
// degenerate candidate list lands in Unavailable instead of Succeeded.
func (s *Session) Succeed(routes []domain.RouteCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return fmt.Errorf("succeed from %s: no query in flight", s.state)
	}
	if RoutingUnavailable(routes) {
		s.state = StateUnavailable
		return nil
	}
	s.state = StateSucceeded
	s.routes = Score(routes)
	return nil
}

// Fail resolves the in-flight query with an error.
func (s *Session) Fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return fmt.Errorf("fail from %s: no query in flight", s.state)
	}
	s.state = StateFailed
	s.err = err
	return nil
}
