// Package rpgtoolkit bridges committed dungeon events onto an rpg-toolkit
// event bus so other toolkit modules can subscribe to them.
package rpgtoolkit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	dungeonevents "github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// Toolkit event types are the dungeon event type under this prefix
const typePrefix = "dungeon."

// Context keys set on every published event
const (
	ContextKeyGameID  = "game_id"
	ContextKeyPayload = "payload"
)

// Adapter publishes dungeon events on an rpg-toolkit bus
type Adapter struct {
	eventBus events.EventBus
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit event adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{eventBus: cfg.EventBus}, nil
}

// ToolkitType is the bus event type a dungeon event is published under
func ToolkitType(t dungeonevents.Type) string {
	return typePrefix + string(t)
}

// PublishInput is the batch of events produced by one action
type PublishInput struct {
	GameID string
	Player *entities.PlayerCharacter
	Events []dungeonevents.Event
}

// Publish sends each event in order. The player is the source; an event
// naming an npc targets it. Publishing stops at the first bus error.
func (a *Adapter) Publish(ctx context.Context, input *PublishInput) error {
	if input == nil || input.Player == nil {
		return errors.InvalidArgument("player is required")
	}

	source := wrapPlayer(input.Player)
	for i, e := range input.Events {
		env, err := dungeonevents.Encode(e)
		if err != nil {
			return errors.Wrapf(err, "failed to encode event %d", i)
		}

		var target core.Entity
		if npcID := npcOf(env.Payload); npcID != uuid.Nil {
			target = &NpcEntity{ID: npcID}
		}

		ge := events.NewGameEvent(ToolkitType(env.Type), source, target)
		ge.Context().Set(ContextKeyGameID, input.GameID)
		ge.Context().Set(ContextKeyPayload, env.Payload)

		if err := a.eventBus.Publish(ctx, ge); err != nil {
			return errors.Wrapf(err, "failed to publish %s", env.Type)
		}
	}
	return nil
}

// npcOf reads the npc an encoded event refers to, if any
func npcOf(payload json.RawMessage) uuid.UUID {
	var ref struct {
		NpcID uuid.UUID `json:"npc_id"`
	}
	if err := json.Unmarshal(payload, &ref); err != nil {
		return uuid.Nil
	}
	return ref.NpcID
}
