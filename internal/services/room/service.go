// Package room provides the generator that builds rooms as the player explores.
package room

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=roommock github.com/KirkDiggler/rpg-dungeon/internal/services/room Service

// Service builds new rooms. Generation always succeeds.
type Service interface {
	GenerateRoom(input *GenerateRoomInput) *GenerateRoomOutput
}

// GenerateRoomInput contains room generation parameters
type GenerateRoomInput struct {
	// EntranceExitID is the exit the player is coming through. The generated
	// room includes it unless it is uuid.Nil, as for the starting room.
	EntranceExitID uuid.UUID `json:"entrance_exit_id"`
	// DangerLevel scales how many and how strong the npcs are
	DangerLevel int `json:"danger_level"`
}

// GenerateRoomOutput contains the generated room
type GenerateRoomOutput struct {
	Room entities.Room `json:"room"`
}
