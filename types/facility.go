package types

import "github.com/google/uuid"

// Facility is a place persons request access to.
// Variants differ only in the level they demand: they compose the shared base
// instead of forming a type hierarchy, and may shadow Info for custom rendering.
type Facility interface {
	// ID is generated at construction and stable for the value's lifetime
	ID() string
	Name() string
	RequiredLevel() AccessLevel
	// Info renders a human-readable projection of the facility
	Info() string
}

// facility is the base every variant embeds
type facility struct {
	id       string
	name     string
	required AccessLevel
}

func newFacility(name string, required AccessLevel) facility {
	return facility{id: uuid.NewString(), name: name, required: required}
}

func (f facility) ID() string { return f.id }

func (f facility) Name() string { return f.name }

func (f facility) RequiredLevel() AccessLevel { return f.required }

func (f facility) Info() string { return "Facility: " + f.name }

// Building demands basic clearance
type Building struct{ facility }

var _ Facility = (*Building)(nil)

// NewBuilding creates a Building with a fresh id
func NewBuilding(name string) *Building {
	return &Building{facility: newFacility(name, LevelBasic)}
}

// Room demands basic clearance
type Room struct{ facility }

var _ Facility = (*Room)(nil)

// NewRoom creates a Room with a fresh id
func NewRoom(name string) *Room {
	return &Room{facility: newFacility(name, LevelBasic)}
}

// Laboratory demands advanced clearance
type Laboratory struct{ facility }

var _ Facility = (*Laboratory)(nil)

// NewLaboratory creates a Laboratory with a fresh id
func NewLaboratory(name string) *Laboratory {
	return &Laboratory{facility: newFacility(name, LevelAdvanced)}
}
