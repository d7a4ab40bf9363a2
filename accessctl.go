// Package accessctl decides whether persons may enter campus facilities.
//
// A single comparison rule between a person's access level and a facility's
// required level drives the base verdict; explicit grant overrides widen it,
// and every grant, revoke, and request lands on the audit stream.
package accessctl

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/campuskit/accessctl/audit"
	"github.com/campuskit/accessctl/internal/grant"
	"github.com/campuskit/accessctl/internal/manager"
	"github.com/campuskit/accessctl/types"
)

// New creates an AccessManager, safe for concurrent callers
func New(opts ...ManagerOption) types.AccessManager {
	cfg := &ManagerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log.GetSink() == nil {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}
	if cfg.policy == nil {
		cfg.policy = DefaultPolicy()
	}
	if cfg.audit == nil {
		cfg.audit = audit.NewConsole()
	}
	if cfg.grants == nil {
		cfg.grants = grant.NewStore()
	}

	m := manager.New(cfg.policy, cfg.audit, cfg.grants, cfg.log.WithName("manager"))

	return manager.NewSynced(m)
}

// WithPolicy substitutes the base access policy, DefaultPolicy if not set
func WithPolicy(p types.AccessPolicy) ManagerOption {
	return func(cfg *ManagerConfig) {
		cfg.policy = p
	}
}

// WithAuditLogger sets the audit sink, a stdout console sink if not set
func WithAuditLogger(l types.AuditLogger) ManagerOption {
	return func(cfg *ManagerConfig) {
		cfg.audit = l
	}
}

// WithGrantStore sets the override store, an in-memory store if not set
func WithGrantStore(s types.GrantStore) ManagerOption {
	return func(cfg *ManagerConfig) {
		cfg.grants = s
	}
}

// WithLogger sets the diagnostics logger for manager components
func WithLogger(l logr.Logger) ManagerOption {
	return func(cfg *ManagerConfig) {
		cfg.log = l
	}
}

// ManagerConfig works together with ManagerOption to control the initialization of a manager
type ManagerConfig struct {
	policy types.AccessPolicy
	audit  types.AuditLogger
	grants types.GrantStore
	log    logr.Logger
}

// ManagerOption controls how to init a manager
type ManagerOption func(*ManagerConfig)
