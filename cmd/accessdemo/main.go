// Command accessdemo wires one policy, one console audit sink, and one
// manager, then walks a fixed sequence of grant, revoke, and request calls.
package main

import (
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/kelseyhightower/envconfig"

	"github.com/campuskit/accessctl"
	"github.com/campuskit/accessctl/audit"
	"github.com/campuskit/accessctl/types"
)

type config struct {
	// Verbosity raises diagnostics output, 4 shows per-operation logs
	Verbosity int `default:"0"`
}

func main() {
	var cfg config
	if e := envconfig.Process("accessdemo", &cfg); e != nil {
		log.Fatal(e)
	}
	stdr.SetVerbosity(cfg.Verbosity)

	m := accessctl.New(
		accessctl.WithLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags))),
		accessctl.WithAuditLogger(audit.NewConsole()),
	)

	student := types.NewStudent("Ada Lovelace", "S-1815", "Mathematics")
	lecturer := types.NewLecturer("Grace Hopper", "Computer Science")
	staff := types.NewStaff("Annie Easley", "Facilities Director")

	building := types.NewBuilding("Science Hall")
	lab := types.NewLaboratory("Robotics Laboratory")

	m.RequestAccess(student, building)
	m.RequestAccess(student, lab)

	m.GrantAccess(student, lab)
	m.RequestAccess(student, lab)

	m.RequestAccess(lecturer, lab)
	m.RequestAccess(staff, lab)

	m.RevokeAccess(student, lab)
	m.RequestAccess(student, lab)
}
