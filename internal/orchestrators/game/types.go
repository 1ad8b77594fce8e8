package game

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
)

// StartGameInput defines the request for starting a game
type StartGameInput struct {
	PlayerName string
	// Species defaults to human when empty
	Species string
}

// StartGameOutput defines the response for starting a game
type StartGameOutput struct {
	GameID string
	View   *conversion.GameView
}

// PerformActionInput defines the request for performing an action
type PerformActionInput struct {
	GameID string
	Action actions.Action
}

// PerformActionOutput defines the response for performing an action
type PerformActionOutput struct {
	// Events are the facts the action produced, in order
	Events []events.Event
	// FirstSequence is the log sequence of Events[0]; zero when no events
	FirstSequence int64
	View          *conversion.GameView
}

// GetGameInput defines the request for getting a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput defines the response for getting a game
type GetGameOutput struct {
	View     *conversion.GameView
	Sequence int64
}

// ListEventsInput defines the request for reading a game's event log
type ListEventsInput struct {
	GameID        string
	AfterSequence int64
	Limit         int
}

// ListEventsOutput defines the response for reading a game's event log
type ListEventsOutput struct {
	Records []eventlog.Record
}

// EndGameInput defines the request for ending a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput is empty on success
type EndGameOutput struct{}
