package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// castSpellOnNpc emits the cast, the spent use, the spell's effect and,
// when the last use is gone, the forgetting, in that order
func (e *engine) castSpellOnNpc(a actions.CastSpellOnNpc, s *entities.GameState, p *entities.PlayerCharacter) ([]events.Event, error) {
	learned, err := findSpell(p, a.SpellID)
	if err != nil {
		return nil, err
	}
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}

	effects, err := e.spellOnNpc(learned.Spell, npc)
	if err != nil {
		return nil, err
	}

	out := []events.Event{
		events.PlayerCastSpellOnNpc{SpellID: learned.ID, Spell: learned.Spell, NpcID: npc.ID},
		events.PlayerSpellUsed{SpellID: learned.ID},
	}
	out = append(out, effects...)
	return append(out, forgetIfSpent(learned)...), nil
}

func (e *engine) castSpellOnPlayer(a actions.CastSpellOnPlayer, p *entities.PlayerCharacter) ([]events.Event, error) {
	learned, err := findSpell(p, a.SpellID)
	if err != nil {
		return nil, err
	}

	effects, err := e.spellOnPlayer(learned.Spell, p)
	if err != nil {
		return nil, err
	}

	out := []events.Event{
		events.PlayerCastSpellOnPlayer{SpellID: learned.ID, Spell: learned.Spell},
		events.PlayerSpellUsed{SpellID: learned.ID},
	}
	out = append(out, effects...)
	return append(out, forgetIfSpent(learned)...), nil
}

func forgetIfSpent(learned entities.LearnedSpell) []events.Event {
	if learned.Uses-1 > 0 {
		return nil
	}
	return []events.Event{events.PlayerSpellForgotten{SpellID: learned.ID}}
}

// spellOnNpc resolves a spell against an npc. Spells ignore defense and
// cannot be dodged. Auras only bind to the player.
func (e *engine) spellOnNpc(spell entities.Spell, npc *entities.NonPlayerCharacter) ([]events.Event, error) {
	switch spell.Category() {
	case entities.SpellCategoryDamage:
		if npc.IsDead() {
			return []events.Event{events.PlayerBeatNpcCorpse{NpcID: npc.ID}}, nil
		}
		damage, err := e.rollAttack(spell.Power())
		if err != nil {
			return nil, err
		}
		out := []events.Event{events.NpcHitBySpell{NpcID: npc.ID, Spell: spell, Damage: damage}}
		if damage >= npc.Character.Stats.Health {
			out = append(out, killEvents(npc.ID)...)
		}
		return out, nil

	case entities.SpellCategoryHeal:
		if npc.IsDead() {
			return nil, nil
		}
		amount, err := e.rollAttack(spell.Power())
		if err != nil {
			return nil, err
		}
		return []events.Event{events.NpcHealed{NpcID: npc.ID, Amount: amount}}, nil

	case entities.SpellCategoryPoison:
		if npc.IsDead() || npc.Character.LifeModifier.PoisonImmune() {
			return nil, nil
		}
		return []events.Event{events.NpcPoisoned{NpcID: npc.ID, Poison: venom(npc.Character.Effects)}}, nil

	case entities.SpellCategoryDestruction:
		var out []events.Event
		for _, ci := range npc.Character.Inventory.ReadiedWeapons() {
			out = append(out, events.NpcWeaponDestroyed{NpcID: npc.ID, ItemID: ci.Item.ID})
		}
		return out, nil
	}
	return nil, nil
}

func (e *engine) spellOnPlayer(spell entities.Spell, p *entities.PlayerCharacter) ([]events.Event, error) {
	switch spell.Category() {
	case entities.SpellCategoryDamage:
		damage, err := e.rollAttack(spell.Power())
		if err != nil {
			return nil, err
		}
		return []events.Event{events.PlayerHitBySpell{Spell: spell, Damage: damage}}, nil

	case entities.SpellCategoryHeal:
		amount, err := e.rollAttack(spell.Power())
		if err != nil {
			return nil, err
		}
		return []events.Event{events.PlayerHealed{Amount: amount}}, nil

	case entities.SpellCategoryAura:
		return []events.Event{events.PlayerAuraGained{Aura: spell.Aura()}}, nil

	case entities.SpellCategoryPoison:
		if p.Character.LifeModifier.PoisonImmune() {
			return nil, nil
		}
		return []events.Event{events.PlayerPoisoned{Poison: venom(p.Character.Effects)}}, nil

	case entities.SpellCategoryDestruction:
		var out []events.Event
		for _, ci := range p.Character.Inventory.ReadiedWeapons() {
			out = append(out, events.PlayerItemDestroyed{ItemID: ci.Item.ID})
		}
		return out, nil
	}
	return nil, nil
}

// venom applies a fresh dose or escalates the poison already running
func venom(current entities.Effects) entities.Poison {
	if current.IsPoisoned() {
		return current.Poison.Escalate()
	}
	return entities.VenomDose
}
