// Package engine turns player actions into events and folds them into the
// next game state. Handlers and passes only read state; the reducer is the
// only writer.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-dungeon/internal/engine Engine

import (
	"context"
)

// Engine resolves one action at a time
type Engine interface {
	// HandleAction runs the reactive, primary, global effects and death
	// phases in order, reducing after each one. It fails before any phase
	// runs when the player is already dead.
	HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error)
}
