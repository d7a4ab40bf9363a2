package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Person is anyone who may request access to a facility.
// Person is not expecting custom implementations: the variant set is closed,
// and each variant fixes the access level it reports.
type Person interface {
	// ID is generated at construction and stable for the value's lifetime
	ID() string
	Name() string
	// Role is an informational tag, see Role
	Role() Role
	AccessLevel() AccessLevel
	// Describe renders a human-readable projection for audit lines,
	// never used for identity or equality
	Describe() string

	person() string
}

// identity carries the fields shared by all person variants
type identity struct {
	id   string
	name string
}

func newIdentity(name string) identity {
	return identity{id: uuid.NewString(), name: name}
}

func (i identity) ID() string { return i.id }

func (i identity) Name() string { return i.name }

func (i identity) person() string { return i.id }

// Student holds basic clearance
type Student struct {
	identity
	number string
	major  string
}

var _ Person = (*Student)(nil)

// NewStudent creates a Student with a fresh id
func NewStudent(name, number, major string) *Student {
	return &Student{identity: newIdentity(name), number: number, major: major}
}

func (s *Student) Role() Role { return RoleStudent }

func (s *Student) AccessLevel() AccessLevel { return LevelBasic }

// StudentNumber is the campus registration number, distinct from ID
func (s *Student) StudentNumber() string { return s.number }

func (s *Student) Major() string { return s.major }

func (s *Student) Describe() string {
	return fmt.Sprintf("Student %s, major=%s", s.name, s.major)
}

// Lecturer holds advanced clearance
type Lecturer struct {
	identity
	department string
}

var _ Person = (*Lecturer)(nil)

// NewLecturer creates a Lecturer with a fresh id
func NewLecturer(name, department string) *Lecturer {
	return &Lecturer{identity: newIdentity(name), department: department}
}

func (l *Lecturer) Role() Role { return RoleLecturer }

func (l *Lecturer) AccessLevel() AccessLevel { return LevelAdvanced }

func (l *Lecturer) Department() string { return l.department }

func (l *Lecturer) Describe() string {
	return fmt.Sprintf("Lecturer %s, dept=%s", l.name, l.department)
}

// Staff holds full clearance
type Staff struct {
	identity
	position string
}

var _ Person = (*Staff)(nil)

// NewStaff creates a Staff member with a fresh id
func NewStaff(name, position string) *Staff {
	return &Staff{identity: newIdentity(name), position: position}
}

func (s *Staff) Role() Role { return RoleStaff }

func (s *Staff) AccessLevel() AccessLevel { return LevelFull }

func (s *Staff) Position() string { return s.position }

func (s *Staff) Describe() string {
	return fmt.Sprintf("Staff %s, position=%s", s.name, s.position)
}
