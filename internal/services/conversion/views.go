package conversion

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// GameView is the player's view of a game
type GameView struct {
	Player       *PlayerView `json:"player"`
	Room         *RoomView   `json:"room"`
	DangerLevel  int         `json:"danger_level"`
	RoomsVisited int         `json:"rooms_visited"`
}

// PlayerView is everything about the player
type PlayerView struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Species      entities.Species      `json:"species"`
	LifeModifier entities.LifeModifier `json:"life_modifier,omitempty"`
	Health       int                   `json:"health"`
	MaxHealth    int                   `json:"max_health"`
	Gold         int                   `json:"gold"`
	Kills        int                   `json:"kills"`
	Dead         bool                  `json:"dead"`
	Poison       *entities.Poison      `json:"poison,omitempty"`
	Auras        []entities.AuraKind   `json:"auras,omitempty"`
	Spells       []SpellView           `json:"spells,omitempty"`
	Items        []ItemView            `json:"items,omitempty"`
}

// SpellView is a remembered spell
type SpellView struct {
	ID    uuid.UUID      `json:"id"`
	Spell entities.Spell `json:"spell"`
	Uses  int            `json:"uses"`
}

// ItemView is an item as the player sees it
type ItemView struct {
	ID         uuid.UUID         `json:"id"`
	Kind       entities.ItemKind `json:"kind"`
	Name       string            `json:"name"`
	Value      int               `json:"value"`
	Location   entities.Location `json:"location,omitempty"`
	AtTheReady bool              `json:"at_the_ready,omitempty"`
}

// RoomView is the room the player stands in
type RoomView struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Exits      []ExitView    `json:"exits"`
	Fixtures   []FixtureView `json:"fixtures"`
	Npcs       []NpcView     `json:"npcs"`
	LooseItems []ItemView    `json:"loose_items,omitempty"`
}

// ExitView is a way out of the room
type ExitView struct {
	ID   uuid.UUID         `json:"id"`
	Kind entities.ExitKind `json:"kind"`
	// Explored is set once the far side has been generated
	Explored bool `json:"explored"`
}

// NpcView is an npc gated by what the player has learned about it
type NpcView struct {
	ID           uuid.UUID             `json:"id"`
	Species      entities.Species      `json:"species"`
	LifeModifier entities.LifeModifier `json:"life_modifier,omitempty"`
	Position     string                `json:"position,omitempty"`
	Dead         bool                  `json:"dead"`

	// Name is empty until discovered
	Name string `json:"name,omitempty"`
	// Health and MaxHealth are nil until discovered
	Health    *int `json:"health,omitempty"`
	MaxHealth *int `json:"max_health,omitempty"`
	// Items is nil until the inventory is discovered
	Items []ItemView `json:"items,omitempty"`
}

// FixtureView is a fixture gated by what the player has learned about it
type FixtureView struct {
	ID          uuid.UUID            `json:"id"`
	Kind        entities.FixtureKind `json:"kind"`
	Name        string               `json:"name"`
	Position    string               `json:"position,omitempty"`
	CanBeOpened bool                 `json:"can_be_opened"`
	Open        bool                 `json:"open"`

	// Items is nil until the contents are revealed and visible
	Items []ItemView `json:"items,omitempty"`
	// HiddenItems is nil until the compartment is found
	HiddenItems []ItemView `json:"hidden_items,omitempty"`
}
