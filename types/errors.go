package types

import "errors"

// exported errors
var (
	ErrInvalidLevel = errors.New("invalid access level, it should be one of basic, advanced, and full")
	ErrInvalidRole  = errors.New("invalid role, it should be one of student, lecturer, and staff")
)
