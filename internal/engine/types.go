package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// HandleActionInput is the action and the state it applies to. The input
// values are never modified.
type HandleActionInput struct {
	Action actions.Action
	State  entities.GameState
	Player entities.PlayerCharacter
}

// HandleActionOutput is every event produced, in order, and the state
// after all of them were applied
type HandleActionOutput struct {
	Events []events.Event
	State  entities.GameState
	Player entities.PlayerCharacter
}
