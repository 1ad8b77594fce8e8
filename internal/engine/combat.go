package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

const (
	dieSize = 6
	// playerDodgeChance applies to every player on top of species and life modifier
	playerDodgeChance = 5
	acidChance        = 25
)

// ToxicDose is the poison a toxic weapon leaves behind
var ToxicDose = entities.Poison{Damage: 1, Duration: 3}

func (e *engine) rollDice(count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	rolls, err := e.roller.RollN(count, dieSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll dice")
	}
	total := 0
	for _, r := range rolls {
		total += r
	}
	return total, nil
}

func (e *engine) rollAttack(a entities.Attack) (int, error) {
	total, err := e.rollDice(a.Dice)
	if err != nil {
		return 0, err
	}
	return max(0, total+a.Modifier), nil
}

func (e *engine) rollDefense(d entities.Defense) (int, error) {
	total, err := e.rollDice(d.Dice)
	if err != nil {
		return 0, err
	}
	return max(0, total+d.Modifier), nil
}

// percent rolls d100 against a chance. A chance of zero never rolls.
func (e *engine) percent(chance int) (bool, error) {
	if chance <= 0 {
		return false, nil
	}
	r, err := e.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll percentile")
	}
	return r <= chance, nil
}

// pick returns an index in [0, n). A single option never rolls.
func (e *engine) pick(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	r, err := e.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll pick")
	}
	return r - 1, nil
}

func killEvents(npcID uuid.UUID) []events.Event {
	return []events.Event{
		events.PlayerKilledNpc{NpcID: npcID},
		events.GameDangerLevelIncreased{Amount: 1},
		events.PlayerMaxHealthChanged{Delta: 1},
	}
}

// playerStrike resolves a blow by the player against an npc. Weapon effects
// only apply when the blow was not lethal.
func (e *engine) playerStrike(
	player *entities.PlayerCharacter,
	npc *entities.NonPlayerCharacter,
	attack entities.Attack,
	effects []entities.WeaponEffect,
) ([]events.Event, error) {
	if npc.IsDead() {
		return []events.Event{events.PlayerBeatNpcCorpse{NpcID: npc.ID}}, nil
	}

	dodged, err := e.percent(npc.Character.DodgeChance())
	if err != nil {
		return nil, err
	}
	if dodged {
		return []events.Event{events.PlayerMissedNpc{NpcID: npc.ID}}, nil
	}

	damage, err := e.resolveDamage(attack, npc.Character.Defense())
	if err != nil {
		return nil, err
	}

	out := []events.Event{events.PlayerHitNpc{NpcID: npc.ID, Damage: damage, AttackerID: player.ID}}
	if damage >= npc.Character.Stats.Health {
		return append(out, killEvents(npc.ID)...), nil
	}

	destroyable := npc.Character.Inventory.ReadiedWeapons()
	for _, effect := range effects {
		switch effect {
		case entities.WeaponEffectToxic:
			if !npc.Character.LifeModifier.PoisonImmune() {
				out = append(out, events.NpcPoisoned{NpcID: npc.ID, Poison: ToxicDose})
			}
		case entities.WeaponEffectAcidic:
			var itemID uuid.UUID
			destroyable, itemID, err = e.corrode(destroyable)
			if err != nil {
				return nil, err
			}
			if itemID != uuid.Nil {
				out = append(out, events.NpcWeaponDestroyed{NpcID: npc.ID, ItemID: itemID})
			}
		}
	}
	return out, nil
}

// npcStrike resolves an npc's turn against the player: readying weapons
// when its hands are empty, otherwise a blow shaped by the player's auras.
func (e *engine) npcStrike(npc *entities.NonPlayerCharacter, player *entities.PlayerCharacter) ([]events.Event, error) {
	if npc.IsDead() || player.IsDead() {
		return nil, nil
	}

	inv := npc.Character.Inventory
	if len(inv.ReadiedWeapons()) == 0 {
		if readied := readyWeapons(npc.ID, inv); len(readied) > 0 {
			return readied, nil
		}
	}

	dodged, err := e.percent(playerDodgeChance + player.Character.DodgeChance())
	if err != nil {
		return nil, err
	}
	if dodged {
		return []events.Event{events.NpcMissedPlayer{NpcID: npc.ID}}, nil
	}

	damage, err := e.resolveDamage(npc.Character.Attack(), player.Character.Defense())
	if err != nil {
		return nil, err
	}

	var out []events.Event
	effects := player.Character.Effects
	if effects.Shield != nil && damage > 0 {
		absorbed := min(damage, effects.Shield.Resistance)
		damage -= absorbed
		out = append(out,
			events.PlayerShieldAbsorbedDamage{NpcID: npc.ID, Absorbed: absorbed},
			events.PlayerAuraDissipated{Kind: entities.AuraShield})
	}

	out = append(out, events.NpcHitPlayer{NpcID: npc.ID, Damage: damage})
	if damage >= player.Character.Stats.Health {
		if effects.Resurrection != nil {
			return append(out,
				events.PlayerResurrected{NpcID: npc.ID},
				events.PlayerAuraDissipated{Kind: entities.AuraResurrection}), nil
		}
		return append(out, events.NpcKilledPlayer{NpcID: npc.ID}), nil
	}

	if effects.Retribution != nil && damage > 0 {
		var back int
		if effects.Retribution.Attack != nil {
			if back, err = e.rollAttack(*effects.Retribution.Attack); err != nil {
				return nil, err
			}
		}
		out = append(out,
			events.NpcHitByRetribution{NpcID: npc.ID, Damage: back},
			events.PlayerAuraDissipated{Kind: entities.AuraRetribution})
		if back >= npc.Character.Stats.Health {
			return append(out, killEvents(npc.ID)...), nil
		}
	}

	destroyable := player.Character.Inventory.ReadiedWeapons()
	for _, effect := range npc.Character.WeaponEffects() {
		switch effect {
		case entities.WeaponEffectToxic:
			if !player.Character.LifeModifier.PoisonImmune() {
				out = append(out, events.NpcPoisonedPlayer{NpcID: npc.ID, Poison: ToxicDose})
			}
		case entities.WeaponEffectAcidic:
			var itemID uuid.UUID
			destroyable, itemID, err = e.corrode(destroyable)
			if err != nil {
				return nil, err
			}
			if itemID != uuid.Nil {
				out = append(out, events.NpcDestroyedPlayerWeapon{NpcID: npc.ID, ItemID: itemID})
			}
		}
	}
	return out, nil
}

func (e *engine) resolveDamage(attack entities.Attack, defense entities.Defense) (int, error) {
	atk, err := e.rollAttack(attack)
	if err != nil {
		return 0, err
	}
	def, err := e.rollDefense(defense)
	if err != nil {
		return 0, err
	}
	return defense.Kind.Reduce(atk, def), nil
}

// corrode rolls the acid chance and picks one of the candidate weapons.
// The chosen weapon is dropped from the returned candidates.
func (e *engine) corrode(candidates []entities.CharacterItem) ([]entities.CharacterItem, uuid.UUID, error) {
	hit, err := e.percent(acidChance)
	if err != nil || !hit || len(candidates) == 0 {
		return candidates, uuid.Nil, err
	}
	idx, err := e.pick(len(candidates))
	if err != nil {
		return candidates, uuid.Nil, err
	}
	id := candidates[idx].Item.ID
	rest := make([]entities.CharacterItem, 0, len(candidates)-1)
	rest = append(rest, candidates[:idx]...)
	rest = append(rest, candidates[idx+1:]...)
	return rest, id, nil
}

// readyWeapons moves the weakest packed weapons into empty hands
func readyWeapons(npcID uuid.UUID, inv entities.Inventory) []events.Event {
	slots := entities.MaxReadiedWeapons - len(inv.ReadiedWeapons())
	if slots <= 0 {
		return nil
	}
	packed := inv.PackedWeapons()
	sort.SliceStable(packed, func(i, j int) bool {
		return packed[i].Item.Attack.Max() < packed[j].Item.Attack.Max()
	})
	var out []events.Event
	for _, ci := range packed {
		if len(out) == slots {
			break
		}
		out = append(out, events.NpcWeaponReadied{NpcID: npcID, ItemID: ci.Item.ID})
	}
	return out
}
