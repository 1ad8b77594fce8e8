// Package reducer folds events into game state. It is the only code that
// writes to a GameState or PlayerCharacter.
package reducer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// Reduce applies events in order to copies of state and player. The inputs
// are left untouched. Events naming entities that no longer exist change
// nothing.
func Reduce(evts []events.Event, state entities.GameState, player entities.PlayerCharacter) (entities.GameState, entities.PlayerCharacter) {
	s := state.Clone()
	p := player.Clone()
	for _, e := range evts {
		Apply(e, &s, &p)
	}
	return s, p
}

// Apply applies one event in place
func Apply(e events.Event, s *entities.GameState, p *entities.PlayerCharacter) {
	switch ev := e.(type) {
	// world
	case events.RoomGenerated:
		if _, exists := s.World.Room(ev.Room.ID); !exists {
			s.World.AddRoom(ev.Room.Clone())
		}
	case events.RoomExited:
		ends := s.World.Exits[ev.ExitID]
		if ends.RoomA == uuid.Nil {
			ends.RoomA = ev.FromRoomID
		}
		if ends.RoomB == uuid.Nil && ends.RoomA != ev.ToRoomID {
			ends.RoomB = ev.ToRoomID
		}
		if s.World.Exits == nil {
			s.World.Exits = make(map[uuid.UUID]entities.ExitEnds)
		}
		s.World.Exits[ev.ExitID] = ends
		if _, ok := s.World.Room(ev.ToRoomID); ok {
			s.CurrentRoomID = ev.ToRoomID
		}
	case events.RoomFirstSeen:
		if s.VisitedRooms == nil {
			s.VisitedRooms = make(map[uuid.UUID]bool)
		}
		s.VisitedRooms[ev.RoomID] = true
	case events.GameDangerLevelIncreased:
		s.DangerLevel += ev.Amount

	// fixtures
	case events.FixtureInspected:
	case events.FixtureOpened:
		if f := fixture(s, ev.FixtureID); f != nil {
			f.Open = true
		}
	case events.FixtureContentsRevealed:
		s.LearnFixture(ev.FixtureID, entities.FixtureKnowledge{ContentsKnown: true})
	case events.FixtureHiddenCompartmentFound:
		s.LearnFixture(ev.FixtureID, entities.FixtureKnowledge{HiddenCompartmentKnown: true})

	// player combat and health
	case events.PlayerHitNpc:
		if pos := npc(s, ev.NpcID); pos != nil {
			pos.NPC.Character.Damage(ev.Damage)
		}
	case events.PlayerMissedNpc:
	case events.PlayerBeatNpcCorpse:
	case events.PlayerKilledNpc:
		if pos := npc(s, ev.NpcID); pos != nil {
			pos.NPC.Character.Stats.Health = 0
			pos.Position = ""
		}
		p.Kills++
	case events.PlayerMaxHealthChanged:
		p.Character.ChangeMaxHealth(ev.Delta)
	case events.PlayerHealed:
		p.Character.Heal(ev.Amount)
	case events.PlayerHitBySpell:
		p.Character.Damage(ev.Damage)
	case events.PlayerPoisoned:
		p.Character.Effects.Poison = poison(ev.Poison)
	case events.PlayerPoisonCured:
		p.Character.Effects.Poison = nil
	case events.PlayerPoisonDamaged:
		p.Character.Damage(ev.Damage)
	case events.PlayerPoisonDurationChanged:
		p.Character.Effects.Poison = withDuration(p.Character.Effects.Poison, ev.Duration)
	case events.PlayerAuraGained:
		p.Character.Effects.SetAura(ev.Aura)
	case events.PlayerAuraDissipated:
		p.Character.Effects.ClearAura(ev.Kind)
	case events.PlayerShieldAbsorbedDamage:
	case events.PlayerResurrected:
		p.Character.Stats.Health = p.Character.Stats.MaxHealth
	case events.PlayerDied:
	case events.PlayerInventoryScattered:
		if room, ok := s.World.Room(ev.RoomID); ok {
			room.LooseItems = append(room.LooseItems, p.Character.Inventory.Items()...)
			p.Character.Inventory = entities.Inventory{}
		}

	// player spells
	case events.PlayerSpellUsed:
		p.Character.Spells.Use(ev.SpellID)
	case events.PlayerSpellForgotten:
		p.Character.Spells.Forget(ev.SpellID)
	case events.PlayerSpellLearned:
		p.Character.Spells.Learn(ev.Spell)
	case events.PlayerCastSpellOnNpc:
	case events.PlayerCastSpellOnPlayer:

	// player items
	case events.PlayerItemMoved:
		if ci, ok := p.Character.Inventory.Take(ev.ItemID); ok {
			p.Character.Inventory.Put(ci.Item, ev.Location)
		}
	case events.PlayerItemUsed:
	case events.PlayerItemRemoved:
		p.Character.Inventory.Take(ev.ItemID)
	case events.PlayerItemDestroyed:
		p.Character.Inventory.Take(ev.ItemID)
	case events.PlayerSoldItem:
		if _, ok := p.Character.Inventory.Take(ev.ItemID); ok {
			p.Gold += ev.Price
		}
	case events.PlayerThrewItem:
		if ci, ok := p.Character.Inventory.Take(ev.ItemID); ok {
			room := s.CurrentRoom()
			room.LooseItems = append(room.LooseItems, ci.Item)
		}
	case events.PlayerLootedItemFromNpc:
		if pos := npc(s, ev.NpcID); pos != nil {
			if ci, ok := pos.NPC.Character.Inventory.Take(ev.ItemID); ok {
				p.Character.Inventory.Put(ci.Item, entities.LocationPack)
			}
		}
	case events.PlayerLootedItemFromFixture:
		if f := fixture(s, ev.FixtureID); f != nil {
			if item, ok := f.TakeItem(ev.ItemID); ok {
				p.Character.Inventory.Put(item, entities.LocationPack)
			}
		}
	case events.PlayerPickedUpItem:
		room := s.CurrentRoom()
		var (
			item entities.Item
			ok   bool
		)
		if room.LooseItems, item, ok = entities.RemoveItem(room.LooseItems, ev.ItemID); ok {
			p.Character.Inventory.Put(item, entities.LocationPack)
		}

	// npcs
	case events.NpcHitPlayer:
		p.Character.Damage(ev.Damage)
	case events.NpcMissedPlayer:
	case events.NpcKilledPlayer:
		p.Character.Stats.Health = 0
	case events.NpcWeaponReadied:
		if pos := npc(s, ev.NpcID); pos != nil {
			if ci, ok := pos.NPC.Character.Inventory.Take(ev.ItemID); ok {
				pos.NPC.Character.Inventory.Put(ci.Item, entities.LocationHand)
			}
		}
	case events.NpcWeaponDestroyed:
		if pos := npc(s, ev.NpcID); pos != nil {
			pos.NPC.Character.Inventory.Take(ev.ItemID)
		}
	case events.NpcHitBySpell:
		damageNpc(s, ev.NpcID, ev.Damage)
	case events.NpcHitByRetribution:
		damageNpc(s, ev.NpcID, ev.Damage)
	case events.NpcHealed:
		if pos := npc(s, ev.NpcID); pos != nil && !pos.NPC.IsDead() {
			pos.NPC.Character.Heal(ev.Amount)
		}
	case events.NpcPoisoned:
		if pos := npc(s, ev.NpcID); pos != nil {
			pos.NPC.Character.Effects.Poison = poison(ev.Poison)
		}
	case events.NpcPoisonDamaged:
		damageNpc(s, ev.NpcID, ev.Damage)
	case events.NpcPoisonDurationChanged:
		if pos := npc(s, ev.NpcID); pos != nil {
			pos.NPC.Character.Effects.Poison = withDuration(pos.NPC.Character.Effects.Poison, ev.Duration)
		}
	case events.NpcInspected:
	case events.NpcNameDiscovered:
		s.LearnNpc(ev.NpcID, entities.NpcKnowledge{NameKnown: true})
	case events.NpcHealthDiscovered:
		s.LearnNpc(ev.NpcID, entities.NpcKnowledge{HealthKnown: true})
	case events.NpcInventoryDiscovered:
		s.LearnNpc(ev.NpcID, entities.NpcKnowledge{InventoryKnown: true})
	case events.NpcDestroyedPlayerWeapon:
		p.Character.Inventory.Take(ev.ItemID)
	case events.NpcPoisonedPlayer:
		p.Character.Effects.Poison = poison(ev.Poison)

	default:
		panic(fmt.Sprintf("reducer: no rule for event %T", e))
	}
}

// npc finds an npc anywhere in the world, current room first
func npc(s *entities.GameState, id uuid.UUID) *entities.NpcPosition {
	if room, ok := s.World.Room(s.CurrentRoomID); ok {
		if pos, ok := room.FindNpc(id); ok {
			return pos
		}
	}
	for i := range s.World.Rooms {
		if pos, ok := s.World.Rooms[i].FindNpc(id); ok {
			return pos
		}
	}
	return nil
}

func fixture(s *entities.GameState, id uuid.UUID) *entities.Fixture {
	for i := range s.World.Rooms {
		if pos, ok := s.World.Rooms[i].FindFixture(id); ok {
			return &pos.Fixture
		}
	}
	return nil
}

// damageNpc hurts an npc and clears its position when the damage kills it
func damageNpc(s *entities.GameState, id uuid.UUID, amount int) {
	pos := npc(s, id)
	if pos == nil {
		return
	}
	pos.NPC.Character.Damage(amount)
	if pos.NPC.IsDead() {
		pos.Position = ""
	}
}

func poison(p entities.Poison) *entities.Poison {
	if p.Duration <= 0 {
		return nil
	}
	return &p
}

func withDuration(current *entities.Poison, duration int) *entities.Poison {
	if current == nil || duration <= 0 {
		return nil
	}
	next := *current
	next.Duration = duration
	return &next
}
