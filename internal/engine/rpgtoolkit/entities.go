package rpgtoolkit

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// PlayerEntity wraps entities.PlayerCharacter to implement core.Entity interface
type PlayerEntity struct {
	*entities.PlayerCharacter
}

// GetID returns the player's ID
func (p *PlayerEntity) GetID() string {
	return p.ID.String()
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return "player"
}

// NpcEntity identifies an npc an event was aimed at
type NpcEntity struct {
	ID uuid.UUID
}

// GetID returns the npc's ID
func (n *NpcEntity) GetID() string {
	return n.ID.String()
}

// GetType returns the entity type for rpg-toolkit
func (n *NpcEntity) GetType() string {
	return "npc"
}

// wrapPlayer converts a player to a PlayerEntity
func wrapPlayer(player *entities.PlayerCharacter) *PlayerEntity {
	return &PlayerEntity{PlayerCharacter: player}
}
