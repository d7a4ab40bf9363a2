package types

import "fmt"

// Role is an informational tag on a Person.
// It is never read when deciding access: the access level comes from the
// concrete person variant, even though the two are 1:1 today.
type Role uint8

const (
	RoleStudent Role = iota
	RoleLecturer
	RoleStaff
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleLecturer:
		return "lecturer"
	case RoleStaff:
		return "staff"
	}
	return "unknown"
}

// ParseRole parses a serialized Role
func ParseRole(s string) (Role, error) {
	switch s {
	case "student":
		return RoleStudent, nil
	case "lecturer":
		return RoleLecturer, nil
	case "staff":
		return RoleStaff, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}
