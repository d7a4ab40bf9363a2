package types

// AccessPolicy decides the base allow/deny verdict for a person at a facility.
// Implementations must be pure: deterministic, no state, no side effects.
// The manager composes the verdict with its explicit grant overrides, so
// alternate policies can be substituted without touching the manager.
type AccessPolicy interface {
	CanAccess(Person, Facility) bool
}

// PolicyFunc adapts a plain function to an AccessPolicy
type PolicyFunc func(Person, Facility) bool

func (f PolicyFunc) CanAccess(p Person, fac Facility) bool { return f(p, fac) }
