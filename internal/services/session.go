// Package services contains the application services of the NovaBiz client:
// the shared session holder, the user directory, authentication, tasks, and
// the community feed. Every service persists its whole collection snapshot
// through the store on each mutation.
package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/novabiz/internal/logging"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
)

// Session is the single shared holder of the currently authenticated user.
// It is injected into every view at construction, so a login, logout, or
// profile save is visible everywhere immediately; no restart is required.
//
// The persisted value under the sessionUser key is a full denormalized copy
// of the User taken at login time. It is refreshed only on login and on
// profile save, so the directory record and the session copy can diverge
// between those points.
type Session struct {
	store store.Store
	log   logging.Logger

	mu      sync.RWMutex
	current *models.User
}

func NewSession(st store.Store, log logging.Logger) *Session {
	return &Session{store: st, log: log}
}

// Load primes the in-memory copy from the store. A corrupt stored value is
// treated as "no session": the damage is logged and ignored.
func (s *Session) Load(ctx context.Context) error {
	data, err := s.store.Get(ctx, store.KeySessionUser)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(data) == 0 {
		s.current = nil
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "stored session is corrupt, discarding", "error", err)
		s.current = nil
		return nil
	}
	s.current = &u
	return nil
}

// Current returns a copy of the authenticated user, or nil when anonymous.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Set persists u as the session user and updates the in-memory copy.
func (s *Session) Set(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.KeySessionUser, data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *u
	s.current = &copied
	return nil
}

// Clear removes the persisted session and forgets the in-memory copy.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeySessionUser); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
