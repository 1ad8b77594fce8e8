package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/engine/reducer"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
)

// Config holds the collaborators of the engine
type Config struct {
	// Roller is the only source of randomness. A seeded roller makes every
	// action reproducible.
	Roller dice.Roller
	// RoomGenerator builds the far side of unexplored exits
	RoomGenerator room.Service
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.RoomGenerator == nil {
		vb.RequiredField("RoomGenerator")
	}
	return vb.Build()
}

type engine struct {
	roller dice.Roller
	rooms  room.Service
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{
		roller: cfg.Roller,
		rooms:  cfg.RoomGenerator,
	}, nil
}

// HandleAction runs one action through every phase. A failing phase
// discards everything; the caller's state is never touched.
func (e *engine) HandleAction(_ context.Context, input *HandleActionInput) (*HandleActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}
	if input.Player.IsDead() {
		return nil, errors.PlayerIsDead(input.Player.ID.String())
	}

	p := &pipeline{state: input.State, player: input.Player}

	reactive, err := e.react(input.Action, &p.state, &p.player)
	if err != nil {
		return nil, errors.Wrapf(err, "reaction to %s failed", input.Action.Kind())
	}
	p.commit(reactive)

	// A player killed by the reaction never gets to act.
	if !p.player.IsDead() {
		primary, err := e.handle(input.Action, &p.state, &p.player)
		if err != nil {
			return nil, err
		}
		p.commit(primary)
	}

	p.commit(globalEffects(&p.state, &p.player))
	p.commit(deathConsequences(&p.state, &p.player))

	return &HandleActionOutput{
		Events: p.log,
		State:  p.state,
		Player: p.player,
	}, nil
}

// pipeline threads state through the phases, reducing after each one
type pipeline struct {
	state  entities.GameState
	player entities.PlayerCharacter
	log    []events.Event
}

func (p *pipeline) commit(evts []events.Event) {
	p.log = append(p.log, evts...)
	p.state, p.player = reducer.Reduce(evts, p.state, p.player)
}
