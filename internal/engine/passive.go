package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// globalEffects ticks poison on the player and every living npc in the
// current room. Removing a spent poison is left to the reducer.
func globalEffects(s *entities.GameState, p *entities.PlayerCharacter) []events.Event {
	var out []events.Event
	if poison := p.Character.Effects.Poison; p.Character.Effects.IsPoisoned() {
		out = append(out,
			events.PlayerPoisonDamaged{Damage: poison.Damage},
			events.PlayerPoisonDurationChanged{Duration: poison.Duration - 1})
	}
	for _, pos := range s.CurrentRoom().Npcs {
		npc := pos.NPC
		if npc.IsDead() || !npc.Character.Effects.IsPoisoned() {
			continue
		}
		poison := npc.Character.Effects.Poison
		out = append(out,
			events.NpcPoisonDamaged{NpcID: npc.ID, Damage: poison.Damage},
			events.NpcPoisonDurationChanged{NpcID: npc.ID, Duration: poison.Duration - 1})
	}
	return out
}

// deathConsequences records a dead player's end and scatters their belongings
func deathConsequences(s *entities.GameState, p *entities.PlayerCharacter) []events.Event {
	if !p.IsDead() {
		return nil
	}
	return []events.Event{
		events.PlayerDied{
			Name:      p.Name,
			Character: p.Character.Clone(),
			Gold:      p.Gold,
			Kills:     p.Kills,
		},
		events.PlayerInventoryScattered{RoomID: s.CurrentRoomID},
	}
}
