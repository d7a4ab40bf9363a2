package types

// Grant is an explicit exception permitting a person at a facility regardless
// of the policy verdict. It references identities only: holding a Grant keeps
// no Person or Facility value alive.
type Grant struct {
	PersonID   string
	FacilityID string
}

// GrantStore keeps the explicit grant overrides as a duplicate-free pair set.
// The set is additive only: there is no deny entry, and removing a pair
// merely returns the decision to the policy verdict.
type GrantStore interface {
	// Insert adds a pair, it reports false if the pair was already present
	Insert(Grant) bool

	// Remove deletes a pair, it reports false if the pair was absent
	Remove(Grant) bool

	// Has tells if a pair is present
	Has(Grant) bool

	// List all pairs in the store
	List() []Grant
}

// AuditLogger records human-readable audit lines.
// Each call is one complete, immediately visible line.
type AuditLogger interface {
	Log(message string)
}

// AccessManager is the top level interface for end use.
// It decides access requests with knowledge of one policy and a set of
// explicit grant overrides, and audits every operation.
//
// Overrides are additive only: a grant can widen what the policy allows,
// never narrow it, and a revoke only removes a prior grant. Revoking a pair
// the policy already permits changes nothing observable in RequestAccess.
type AccessManager interface {
	// GrantAccess adds an explicit override for person at facility.
	// Granting an existing pair is a no-op observable only through the audit line.
	GrantAccess(Person, Facility)

	// RevokeAccess removes the override if present, silently does nothing otherwise
	RevokeAccess(Person, Facility)

	// RequestAccess reports whether person may enter facility:
	// the policy verdict OR-ed with override presence. It never mutates state.
	RequestAccess(Person, Facility) bool

	// Grants lists the overrides currently in effect, in no particular order
	Grants() []Grant
}
