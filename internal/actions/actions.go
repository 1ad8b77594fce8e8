// Package actions defines the closed set of commands a player can issue.
// Identifiers travel as canonical uuid strings and are parsed by the engine.
package actions

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Kind tags an action payload
type Kind string

// Action kinds
const (
	KindAttack            Kind = "attack"
	KindExit              Kind = "exit"
	KindLootNpc           Kind = "loot_npc"
	KindLootFixture       Kind = "loot_fixture"
	KindPickUpItem        Kind = "pick_up_item"
	KindInspectNpc        Kind = "inspect_npc"
	KindInspectFixture    Kind = "inspect_fixture"
	KindCastSpellOnNpc    Kind = "cast_spell_on_npc"
	KindCastSpellOnPlayer Kind = "cast_spell_on_player"
	KindMoveItem          Kind = "move_item"
	KindOpenFixture       Kind = "open_fixture"
	KindSell              Kind = "sell"
	KindThrow             Kind = "throw"
	KindUseItem           Kind = "use_item"
)

// Action is a player command
type Action interface {
	Kind() Kind
	action()
}

// Attack strikes an npc with whatever the player holds
type Attack struct {
	NpcID string `json:"npc_id"`
}

// Exit leaves the current room through an exit
type Exit struct {
	ExitID string `json:"exit_id"`
}

// LootNpc takes an item from an npc
type LootNpc struct {
	NpcID  string `json:"npc_id"`
	ItemID string `json:"item_id"`
}

// LootFixture takes an item from a fixture
type LootFixture struct {
	FixtureID string `json:"fixture_id"`
	ItemID    string `json:"item_id"`
}

// PickUpItem takes an item lying loose in the room
type PickUpItem struct {
	ItemID string `json:"item_id"`
}

// InspectNpc studies an npc
type InspectNpc struct {
	NpcID string `json:"npc_id"`
}

// InspectFixture searches a fixture
type InspectFixture struct {
	FixtureID string `json:"fixture_id"`
}

// CastSpellOnNpc casts a learned spell at an npc
type CastSpellOnNpc struct {
	SpellID string `json:"spell_id"`
	NpcID   string `json:"npc_id"`
}

// CastSpellOnPlayer casts a learned spell at the player
type CastSpellOnPlayer struct {
	SpellID string `json:"spell_id"`
}

// MoveItem puts a carried item in a hand, on the body or in the pack
type MoveItem struct {
	ItemID   string `json:"item_id"`
	Location string `json:"location"`
}

// OpenFixture opens a closed fixture
type OpenFixture struct {
	FixtureID string `json:"fixture_id"`
}

// Sell trades a carried item for gold
type Sell struct {
	ItemID string `json:"item_id"`
}

// Throw hurls a carried item at an npc
type Throw struct {
	ItemID string `json:"item_id"`
	NpcID  string `json:"npc_id"`
}

// UseItem consumes a potion, antidote or scroll
type UseItem struct {
	ItemID string `json:"item_id"`
}

func (Attack) Kind() Kind            { return KindAttack }
func (Exit) Kind() Kind              { return KindExit }
func (LootNpc) Kind() Kind           { return KindLootNpc }
func (LootFixture) Kind() Kind       { return KindLootFixture }
func (PickUpItem) Kind() Kind        { return KindPickUpItem }
func (InspectNpc) Kind() Kind        { return KindInspectNpc }
func (InspectFixture) Kind() Kind    { return KindInspectFixture }
func (CastSpellOnNpc) Kind() Kind    { return KindCastSpellOnNpc }
func (CastSpellOnPlayer) Kind() Kind { return KindCastSpellOnPlayer }
func (MoveItem) Kind() Kind          { return KindMoveItem }
func (OpenFixture) Kind() Kind       { return KindOpenFixture }
func (Sell) Kind() Kind              { return KindSell }
func (Throw) Kind() Kind             { return KindThrow }
func (UseItem) Kind() Kind           { return KindUseItem }

func (Attack) action()            {}
func (Exit) action()              {}
func (LootNpc) action()           {}
func (LootFixture) action()       {}
func (PickUpItem) action()        {}
func (InspectNpc) action()        {}
func (InspectFixture) action()    {}
func (CastSpellOnNpc) action()    {}
func (CastSpellOnPlayer) action() {}
func (MoveItem) action()          {}
func (OpenFixture) action()       {}
func (Sell) action()              {}
func (Throw) action()             {}
func (UseItem) action()           {}

var factories = map[Kind]func() Action{
	KindAttack:            func() Action { return &Attack{} },
	KindExit:              func() Action { return &Exit{} },
	KindLootNpc:           func() Action { return &LootNpc{} },
	KindLootFixture:       func() Action { return &LootFixture{} },
	KindPickUpItem:        func() Action { return &PickUpItem{} },
	KindInspectNpc:        func() Action { return &InspectNpc{} },
	KindInspectFixture:    func() Action { return &InspectFixture{} },
	KindCastSpellOnNpc:    func() Action { return &CastSpellOnNpc{} },
	KindCastSpellOnPlayer: func() Action { return &CastSpellOnPlayer{} },
	KindMoveItem:          func() Action { return &MoveItem{} },
	KindOpenFixture:       func() Action { return &OpenFixture{} },
	KindSell:              func() Action { return &Sell{} },
	KindThrow:             func() Action { return &Throw{} },
	KindUseItem:           func() Action { return &UseItem{} },
}

// Envelope is the wire form of an action
type Envelope struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Marshal encodes an action with its kind tag
func Marshal(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal action payload")
	}
	return json.Marshal(Envelope{Kind: a.Kind(), Payload: payload})
}

// Unmarshal decodes an enveloped action
func Unmarshal(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.InvalidArgumentf("malformed action: %v", err)
	}
	return Decode(env.Kind, env.Payload)
}

// Decode builds an action of the given kind from its payload
func Decode(kind Kind, payload []byte) (Action, error) {
	factory, ok := factories[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown action kind %q", kind)
	}
	ptr := factory()
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, ptr); err != nil {
			return nil, errors.InvalidArgumentf("malformed %s payload: %v", kind, err)
		}
	}
	return deref(ptr), nil
}

func deref(a Action) Action {
	switch v := a.(type) {
	case *Attack:
		return *v
	case *Exit:
		return *v
	case *LootNpc:
		return *v
	case *LootFixture:
		return *v
	case *PickUpItem:
		return *v
	case *InspectNpc:
		return *v
	case *InspectFixture:
		return *v
	case *CastSpellOnNpc:
		return *v
	case *CastSpellOnPlayer:
		return *v
	case *MoveItem:
		return *v
	case *OpenFixture:
		return *v
	case *Sell:
		return *v
	case *Throw:
		return *v
	case *UseItem:
		return *v
	}
	return a
}
