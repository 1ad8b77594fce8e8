package events

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// World event types
const (
	TypeRoomGenerated            Type = "room_generated"
	TypeRoomExited               Type = "room_exited"
	TypeRoomFirstSeen            Type = "room_first_seen"
	TypeGameDangerLevelIncreased Type = "game_danger_level_increased"
)

// RoomGenerated adds a freshly generated room to the world
type RoomGenerated struct {
	Room entities.Room `json:"room"`
}

// RoomExited moves the player through an exit
type RoomExited struct {
	ExitID     uuid.UUID `json:"exit_id"`
	FromRoomID uuid.UUID `json:"from_room_id"`
	ToRoomID   uuid.UUID `json:"to_room_id"`
}

// RoomFirstSeen marks a room as visited
type RoomFirstSeen struct {
	RoomID uuid.UUID `json:"room_id"`
}

// GameDangerLevelIncreased raises the danger level
type GameDangerLevelIncreased struct {
	Amount int `json:"amount"`
}

func (RoomGenerated) Type() Type            { return TypeRoomGenerated }
func (RoomExited) Type() Type               { return TypeRoomExited }
func (RoomFirstSeen) Type() Type            { return TypeRoomFirstSeen }
func (GameDangerLevelIncreased) Type() Type { return TypeGameDangerLevelIncreased }

func (RoomGenerated) event()            {}
func (RoomExited) event()               {}
func (RoomFirstSeen) event()            {}
func (GameDangerLevelIncreased) event() {}
