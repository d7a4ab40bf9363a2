package audit

import (
	"github.com/go-logr/logr"

	"github.com/campuskit/accessctl/types"
)

var _ types.AuditLogger = (*Logr)(nil)

// Logr forwards audit lines to a structured logr sink, for callers that want
// audit events inside their component logs instead of a separate stream
type Logr struct {
	log logr.Logger
}

// NewLogr creates an audit sink on top of the given logger
func NewLogr(l logr.Logger) *Logr {
	return &Logr{log: l.WithName("audit")}
}

func (l *Logr) Log(message string) {
	l.log.Info(message)
}
