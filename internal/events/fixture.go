package events

import (
	"github.com/google/uuid"
)

// Fixture event types
const (
	TypeFixtureInspected              Type = "fixture_inspected"
	TypeFixtureOpened                 Type = "fixture_opened"
	TypeFixtureContentsRevealed       Type = "fixture_contents_revealed"
	TypeFixtureHiddenCompartmentFound Type = "fixture_hidden_compartment_found"
)

// FixtureInspected records that the player searched a fixture
type FixtureInspected struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

// FixtureOpened opens a closed fixture
type FixtureOpened struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

// FixtureContentsRevealed marks a fixture's contents as known
type FixtureContentsRevealed struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

// FixtureHiddenCompartmentFound marks a fixture's hidden compartment as known
type FixtureHiddenCompartmentFound struct {
	FixtureID uuid.UUID `json:"fixture_id"`
}

func (FixtureInspected) Type() Type              { return TypeFixtureInspected }
func (FixtureOpened) Type() Type                 { return TypeFixtureOpened }
func (FixtureContentsRevealed) Type() Type       { return TypeFixtureContentsRevealed }
func (FixtureHiddenCompartmentFound) Type() Type { return TypeFixtureHiddenCompartmentFound }

func (FixtureInspected) event()              {}
func (FixtureOpened) event()                 {}
func (FixtureContentsRevealed) event()       {}
func (FixtureHiddenCompartmentFound) event() {}
