// Package grant holds the in-memory implementations of the grant override store.
package grant

import "github.com/campuskit/accessctl/types"

var _ types.GrantStore = (*store)(nil)

// store knows only direct person-facility pairs
type store struct {
	pairs map[types.Grant]struct{}
}

// NewStore creates an in-memory GrantStore
func NewStore() types.GrantStore {
	return &store{pairs: make(map[types.Grant]struct{})}
}

func (s *store) Insert(g types.Grant) bool {
	if _, ok := s.pairs[g]; ok {
		return false
	}
	s.pairs[g] = struct{}{}
	return true
}

func (s *store) Remove(g types.Grant) bool {
	if _, ok := s.pairs[g]; !ok {
		return false
	}
	delete(s.pairs, g)
	return true
}

func (s *store) Has(g types.Grant) bool {
	_, ok := s.pairs[g]
	return ok
}

func (s *store) List() []types.Grant {
	out := make([]types.Grant, 0, len(s.pairs))
	for g := range s.pairs {
		out = append(out, g)
	}
	return out
}
