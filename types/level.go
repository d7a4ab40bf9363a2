package types

import "fmt"

// AccessLevel is a clearance rank a person holds, and the minimum rank a facility demands.
// Levels form a total order: a higher level satisfies every requirement a lower one does.
type AccessLevel uint8

// clearance ranks, lowest first
const (
	LevelBasic AccessLevel = iota
	LevelAdvanced
	LevelFull
)

// Satisfies tells if clearance l meets the requirement need
func (l AccessLevel) Satisfies(need AccessLevel) bool {
	return l >= need
}

func (l AccessLevel) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelAdvanced:
		return "advanced"
	case LevelFull:
		return "full"
	}
	return "unknown"
}

// ParseAccessLevel parses a serialized AccessLevel
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch s {
	case "basic":
		return LevelBasic, nil
	case "advanced":
		return LevelAdvanced, nil
	case "full":
		return LevelFull, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
