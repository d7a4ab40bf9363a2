package accessctl

import "github.com/campuskit/accessctl/types"

// DefaultPolicy allows access when the person's level satisfies the
// facility's required level
func DefaultPolicy() types.AccessPolicy {
	return types.PolicyFunc(func(p types.Person, f types.Facility) bool {
		return p.AccessLevel().Satisfies(f.RequiredLevel())
	})
}

// SuperUser allows the person with the given id to enter any facility,
// regardless of levels
func SuperUser(personID string) types.AccessPolicy {
	return types.PolicyFunc(func(p types.Person, _ types.Facility) bool {
		return p.ID() == personID
	})
}

// AnyOf allows access when any of the given policies does
func AnyOf(policies ...types.AccessPolicy) types.AccessPolicy {
	return types.PolicyFunc(func(p types.Person, f types.Facility) bool {
		for _, policy := range policies {
			if policy.CanAccess(p, f) {
				return true
			}
		}

		return false
	})
}
