// Package events defines the closed set of facts that change a game.
// Every event carries plain identifiers and values only, so a log of
// events can be stored, replayed or sent anywhere.
package events

import (
	"encoding/json"
	"reflect"
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Type tags an event
type Type string

// Event is one immutable fact
type Event interface {
	Type() Type
	event()
}

var registry = map[Type]func() Event{}

func register(factories ...func() Event) {
	for _, f := range factories {
		registry[f().Type()] = f
	}
}

func init() {
	register(
		func() Event { return &RoomGenerated{} },
		func() Event { return &RoomExited{} },
		func() Event { return &RoomFirstSeen{} },
		func() Event { return &GameDangerLevelIncreased{} },

		func() Event { return &FixtureInspected{} },
		func() Event { return &FixtureOpened{} },
		func() Event { return &FixtureContentsRevealed{} },
		func() Event { return &FixtureHiddenCompartmentFound{} },

		func() Event { return &PlayerHitNpc{} },
		func() Event { return &PlayerMissedNpc{} },
		func() Event { return &PlayerBeatNpcCorpse{} },
		func() Event { return &PlayerKilledNpc{} },
		func() Event { return &PlayerMaxHealthChanged{} },
		func() Event { return &PlayerHealed{} },
		func() Event { return &PlayerHitBySpell{} },
		func() Event { return &PlayerPoisoned{} },
		func() Event { return &PlayerPoisonCured{} },
		func() Event { return &PlayerPoisonDamaged{} },
		func() Event { return &PlayerPoisonDurationChanged{} },
		func() Event { return &PlayerAuraGained{} },
		func() Event { return &PlayerAuraDissipated{} },
		func() Event { return &PlayerShieldAbsorbedDamage{} },
		func() Event { return &PlayerResurrected{} },
		func() Event { return &PlayerDied{} },
		func() Event { return &PlayerInventoryScattered{} },
		func() Event { return &PlayerSpellUsed{} },
		func() Event { return &PlayerSpellForgotten{} },
		func() Event { return &PlayerSpellLearned{} },
		func() Event { return &PlayerCastSpellOnNpc{} },
		func() Event { return &PlayerCastSpellOnPlayer{} },
		func() Event { return &PlayerItemMoved{} },
		func() Event { return &PlayerItemUsed{} },
		func() Event { return &PlayerItemRemoved{} },
		func() Event { return &PlayerItemDestroyed{} },
		func() Event { return &PlayerSoldItem{} },
		func() Event { return &PlayerThrewItem{} },
		func() Event { return &PlayerLootedItemFromNpc{} },
		func() Event { return &PlayerLootedItemFromFixture{} },
		func() Event { return &PlayerPickedUpItem{} },

		func() Event { return &NpcHitPlayer{} },
		func() Event { return &NpcMissedPlayer{} },
		func() Event { return &NpcKilledPlayer{} },
		func() Event { return &NpcWeaponReadied{} },
		func() Event { return &NpcWeaponDestroyed{} },
		func() Event { return &NpcHitBySpell{} },
		func() Event { return &NpcHitByRetribution{} },
		func() Event { return &NpcHealed{} },
		func() Event { return &NpcPoisoned{} },
		func() Event { return &NpcPoisonDamaged{} },
		func() Event { return &NpcPoisonDurationChanged{} },
		func() Event { return &NpcInspected{} },
		func() Event { return &NpcNameDiscovered{} },
		func() Event { return &NpcHealthDiscovered{} },
		func() Event { return &NpcInventoryDiscovered{} },
		func() Event { return &NpcDestroyedPlayerWeapon{} },
		func() Event { return &NpcPoisonedPlayer{} },
	)
}

// Types lists every registered event type in sorted order
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// All returns a zero value of every event kind, sorted by type
func All() []Event {
	types := Types()
	out := make([]Event, 0, len(types))
	for _, t := range types {
		out = append(out, deref(registry[t]()))
	}
	return out
}

// Envelope is the wire form of an event
type Envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode wraps an event in its envelope
func Encode(e Event) (Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, errors.Wrapf(err, "failed to marshal %s event", e.Type())
	}
	return Envelope{Type: e.Type(), Payload: payload}, nil
}

// Decode rebuilds an event from its envelope
func Decode(env Envelope) (Event, error) {
	factory, ok := registry[env.Type]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown event type %q", env.Type)
	}
	ptr := factory()
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, ptr); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s event", env.Type)
		}
	}
	return deref(ptr), nil
}

// Marshal encodes an event with its type tag
func Marshal(e Event) ([]byte, error) {
	env, err := Encode(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Unmarshal decodes an enveloped event
func Unmarshal(data []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.InvalidArgumentf("malformed event: %v", err)
	}
	return Decode(env)
}

// deref turns the pointer a factory returns into the value form handlers emit
func deref(ptr Event) Event {
	return reflect.ValueOf(ptr).Elem().Interface().(Event)
}
