package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// react lets an npc answer the action before it resolves. Actions aimed at
// a living npc provoke that npc; actions taken in the presence of npcs
// provoke the first living one in the room.
func (e *engine) react(a actions.Action, s *entities.GameState, p *entities.PlayerCharacter) ([]events.Event, error) {
	npc := reactingNpc(a, s.CurrentRoom())
	if npc == nil {
		return nil, nil
	}
	return e.npcStrike(npc, p)
}

func reactingNpc(a actions.Action, room *entities.Room) *entities.NonPlayerCharacter {
	switch act := a.(type) {
	case actions.Attack:
		return targetedNpc(room, act.NpcID)
	case actions.CastSpellOnNpc:
		return targetedNpc(room, act.NpcID)
	case actions.InspectNpc:
		return targetedNpc(room, act.NpcID)
	case actions.Throw:
		return targetedNpc(room, act.NpcID)
	case actions.InspectFixture, actions.LootFixture, actions.OpenFixture, actions.LootNpc, actions.PickUpItem:
		if pos, ok := room.FirstLivingNpc(); ok {
			return &pos.NPC
		}
	}
	return nil
}

// targetedNpc is the living npc an action names. Bad or unknown ids are
// left for the primary handler to report.
func targetedNpc(room *entities.Room, raw string) *entities.NonPlayerCharacter {
	id, err := parseID(raw)
	if err != nil {
		return nil
	}
	pos, ok := room.FindNpc(id)
	if !ok || pos.NPC.IsDead() {
		return nil
	}
	return &pos.NPC
}
