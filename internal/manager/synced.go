package manager

import (
	"sync"

	"github.com/campuskit/accessctl/types"
)

var _ types.AccessManager = (*syncedManager)(nil)

// syncedManager makes the given manager safe in concurrent usages.
// The core assumes a single caller; sharing a manager across goroutines
// requires this wrapper.
type syncedManager struct {
	sync.RWMutex
	m types.AccessManager
}

// NewSynced makes the given manager safe in concurrent usages
func NewSynced(m types.AccessManager) types.AccessManager {
	return &syncedManager{m: m}
}

// GrantAccess adds an explicit override for person at facility
func (s *syncedManager) GrantAccess(p types.Person, f types.Facility) {
	s.Lock()
	defer s.Unlock()

	s.m.GrantAccess(p, f)
}

// RevokeAccess removes the override for person at facility if present
func (s *syncedManager) RevokeAccess(p types.Person, f types.Facility) {
	s.Lock()
	defer s.Unlock()

	s.m.RevokeAccess(p, f)
}

// RequestAccess tells if person may enter facility
func (s *syncedManager) RequestAccess(p types.Person, f types.Facility) bool {
	s.RLock()
	defer s.RUnlock()

	return s.m.RequestAccess(p, f)
}

// Grants lists the overrides currently in effect
func (s *syncedManager) Grants() []types.Grant {
	s.RLock()
	defer s.RUnlock()

	return s.m.Grants()
}
