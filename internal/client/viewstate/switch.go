// Package viewstate tracks which screen the client should show.
//
//	Anonymous ──Begin──▶ Authenticating ──Succeed──▶ Authenticated
//	    ▲                      │                          │
//	    └────────Fail──────────┘                          │
//	    └──────────────────────Logout─────────────────────┘
//
// Fail returns to the state held before Begin, so a failed re-login by an
// authenticated user keeps the user authenticated with the old credential.
package viewstate

import (
	"errors"
	"sync"
)

type State string

const (
	Anonymous      State = "anonymous"
	Authenticating State = "authenticating"
	Authenticated  State = "authenticated"
)

// ErrBusy is returned by Begin while a submission is already in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Switch is safe for concurrent use.
type Switch struct {
	mu    sync.RWMutex
	state State
	prior State
}

// New derives the initial state from whether a credential is already held.
func New(hasCredential bool) *Switch {
	s := &Switch{state: Anonymous}
	if hasCredential {
		s.state = Authenticated
	}
	return s
}

func (s *Switch) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Busy reports whether a submission is in flight.
func (s *Switch) Busy() bool {
	return s.State() == Authenticating
}

func (s *Switch) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticating {
		return ErrBusy
	}
	s.prior = s.state
	s.state = Authenticating
	return nil
}

func (s *Switch) Succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticating {
		s.state = Authenticated
	}
}

func (s *Switch) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticating {
		s.state = s.prior
	}
}

func (s *Switch) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
	s.prior = Anonymous
}
