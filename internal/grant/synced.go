package grant

import (
	"sync"

	"github.com/campuskit/accessctl/types"
)

var _ types.GrantStore = (*syncedStore)(nil)

// syncedStore makes the given GrantStore safe in concurrent usages
type syncedStore struct {
	s types.GrantStore
	sync.RWMutex
}

// NewSynced makes the given GrantStore safe in concurrent usages
func NewSynced(s types.GrantStore) types.GrantStore {
	if s == nil {
		s = NewStore()
	}
	return &syncedStore{s: s}
}

func (s *syncedStore) Insert(g types.Grant) bool {
	s.Lock()
	defer s.Unlock()
	return s.s.Insert(g)
}

func (s *syncedStore) Remove(g types.Grant) bool {
	s.Lock()
	defer s.Unlock()
	return s.s.Remove(g)
}

func (s *syncedStore) Has(g types.Grant) bool {
	s.RLock()
	defer s.RUnlock()
	return s.s.Has(g)
}

func (s *syncedStore) List() []types.Grant {
	s.RLock()
	defer s.RUnlock()
	return s.s.List()
}
