package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
)

// StartGameRequest starts a game for a new player
type StartGameRequest struct {
	PlayerName string `json:"player_name"`
	Species    string `json:"species,omitempty"`
}

// StartGameResponse names the new game
type StartGameResponse struct {
	GameID string               `json:"game_id"`
	Game   *conversion.GameView `json:"game"`
}

// PerformActionRequest carries one player action
type PerformActionRequest struct {
	GameID string           `json:"game_id"`
	Action actions.Envelope `json:"action"`
}

// PerformActionResponse carries the events the action produced
type PerformActionResponse struct {
	Events        []events.Envelope    `json:"events"`
	FirstSequence int64                `json:"first_sequence,omitempty"`
	Game          *conversion.GameView `json:"game"`
}

// GetGameRequest names a game
type GetGameRequest struct {
	GameID string `json:"game_id"`
}

// GetGameResponse is the player's view of a game
type GetGameResponse struct {
	Game     *conversion.GameView `json:"game"`
	Sequence int64                `json:"sequence"`
}

// ListEventsRequest pages through a game's journal
type ListEventsRequest struct {
	GameID        string `json:"game_id"`
	AfterSequence int64  `json:"after_sequence,omitempty"`
	Limit         int32  `json:"limit,omitempty"`
}

// ListEventsResponse is a page of journaled events
type ListEventsResponse struct {
	Events []RecordedEvent `json:"events"`
}

// RecordedEvent is an event with its place in the journal
type RecordedEvent struct {
	Sequence   int64           `json:"sequence"`
	RecordedAt time.Time       `json:"recorded_at"`
	Event      events.Envelope `json:"event"`
}

// EndGameRequest names the game to end
type EndGameRequest struct {
	GameID string `json:"game_id"`
}

// EndGameResponse is empty
type EndGameResponse struct{}
