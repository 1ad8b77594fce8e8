package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

func (e *engine) attack(a actions.Attack, s *entities.GameState, p *entities.PlayerCharacter) ([]events.Event, error) {
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}
	return e.playerStrike(p, npc, p.Character.Attack(), p.Character.WeaponEffects())
}

// thrownAttack is the blow of an item that was not made to be thrown
var thrownAttack = entities.Attack{Dice: 1, Modifier: -1}

// throw lands the item among the room's loose items whatever the outcome
func (e *engine) throw(a actions.Throw, s *entities.GameState, p *entities.PlayerCharacter) ([]events.Event, error) {
	ci, err := findCarried(p, a.ItemID)
	if err != nil {
		return nil, err
	}
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}

	attack := thrownAttack
	var effects []entities.WeaponEffect
	if ci.Item.IsWeapon() {
		attack = *ci.Item.Attack
		if ci.Item.Effect != "" {
			effects = append(effects, ci.Item.Effect)
		}
	}

	strike, err := e.playerStrike(p, npc, attack, effects)
	if err != nil {
		return nil, err
	}
	out := []events.Event{events.PlayerThrewItem{ItemID: ci.Item.ID, NpcID: npc.ID}}
	return append(out, strike...), nil
}
