package engine

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
)

// exit walks through an exit, asking for a new room when the far side has
// never been generated
func (e *engine) exit(a actions.Exit, s *entities.GameState) ([]events.Event, error) {
	exitID, err := parseID(a.ExitID)
	if err != nil {
		return nil, err
	}
	current := s.CurrentRoom()
	if !current.HasExit(exitID) {
		return nil, errors.ExitNotFound(a.ExitID)
	}

	var out []events.Event
	to, known := s.World.Exits[exitID].FarSide(current.ID)
	if !known {
		generated := e.rooms.GenerateRoom(&room.GenerateRoomInput{
			EntranceExitID: exitID,
			DangerLevel:    s.DangerLevel,
		}).Room
		if generated.ID == uuid.Nil {
			return nil, errors.Internal("room generator returned a room without an id")
		}
		out = append(out, events.RoomGenerated{Room: generated})
		to = generated.ID
	}

	out = append(out, events.RoomExited{ExitID: exitID, FromRoomID: current.ID, ToRoomID: to})
	if !s.Visited(to) {
		out = append(out, events.RoomFirstSeen{RoomID: to})
	}
	return out, nil
}
