// Package audit provides sinks for the human-readable access audit stream.
package audit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/campuskit/accessctl/types"
)

const timeLayout = "2006-01-02 15:04:05"

var _ types.AuditLogger = (*Console)(nil)

// Console writes audit lines to an output stream as "[timestamp] message".
// Each call is one complete, unbuffered write; timestamps are non-decreasing
// within a run.
type Console struct {
	out io.Writer
	now func() time.Time
}

// NewConsole creates a Console writing to standard output
func NewConsole() *Console {
	return NewConsoleTo(os.Stdout)
}

// NewConsoleTo creates a Console writing to the given stream
func NewConsoleTo(out io.Writer) *Console {
	return &Console{out: out, now: time.Now}
}

func (c *Console) Log(message string) {
	fmt.Fprintf(c.out, "[%s] %s\n", c.now().Format(timeLayout), message)
}
