package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine/reducer"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
	roommock "github.com/KirkDiggler/rpg-dungeon/internal/services/room/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

func learn(p *entities.PlayerCharacter, spell entities.Spell, uses int) entities.LearnedSpell {
	learned := entities.LearnedSpell{ID: uuid.New(), Spell: spell, Uses: uses}
	p.Character.Spells.Learn(learned)
	return learned
}

func TestCastSpellOnNpc(t *testing.T) {
	t.Run("last use is forgotten after the effect", func(t *testing.T) {
		npc := testutils.CreateTestNpc(entities.SpeciesOrc, 20)
		state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
		player := testutils.CreateTestPlayer()
		missile := learn(&player, entities.SpellMagicMissile, 1)

		e, _ := newTestEngine(t, 3, 4)
		out, err := e.handle(actions.CastSpellOnNpc{SpellID: missile.ID.String(), NpcID: npc.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Equal(t, []events.Event{
			events.PlayerCastSpellOnNpc{SpellID: missile.ID, Spell: entities.SpellMagicMissile, NpcID: npc.ID},
			events.PlayerSpellUsed{SpellID: missile.ID},
			events.NpcHitBySpell{NpcID: npc.ID, Spell: entities.SpellMagicMissile, Damage: 7},
			events.PlayerSpellForgotten{SpellID: missile.ID},
		}, out)

		_, after := reducer.Reduce(out, state, player)
		_, ok := after.Character.Spells.Find(missile.ID)
		assert.False(t, ok)
	})

	t.Run("lethal spell keeps remaining uses", func(t *testing.T) {
		npc := testutils.CreateTestNpc(entities.SpeciesGoblin, 5)
		state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
		player := testutils.CreateTestPlayer()
		fireball := learn(&player, entities.SpellFireball, 3)

		e, _ := newTestEngine(t, 2, 2, 2, 2)
		out, err := e.handle(actions.CastSpellOnNpc{SpellID: fireball.ID.String(), NpcID: npc.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Equal(t, []events.Event{
			events.PlayerCastSpellOnNpc{SpellID: fireball.ID, Spell: entities.SpellFireball, NpcID: npc.ID},
			events.PlayerSpellUsed{SpellID: fireball.ID},
			events.NpcHitBySpell{NpcID: npc.ID, Spell: entities.SpellFireball, Damage: 8},
			events.PlayerKilledNpc{NpcID: npc.ID},
			events.GameDangerLevelIncreased{Amount: 1},
			events.PlayerMaxHealthChanged{Delta: 1},
		}, out)

		_, after := reducer.Reduce(out, state, player)
		learned, ok := after.Character.Spells.Find(fireball.ID)
		require.True(t, ok)
		assert.Equal(t, 2, learned.Uses)
	})

	t.Run("venom escalates a running poison", func(t *testing.T) {
		npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
		npc.Character.Effects.Poison = &entities.Poison{Damage: 2, Duration: 1}
		state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
		player := testutils.CreateTestPlayer()
		venomSpell := learn(&player, entities.SpellVenom, 2)

		e, _ := newTestEngine(t)
		out, err := e.handle(actions.CastSpellOnNpc{SpellID: venomSpell.ID.String(), NpcID: npc.ID.String()}, &state, &player)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, events.NpcPoisoned{NpcID: npc.ID, Poison: entities.Poison{Damage: 3, Duration: 3}}, out[2])
	})

	t.Run("disintegrate destroys every readied weapon", func(t *testing.T) {
		npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
		left := testutils.CreateTestWeapon("Hatchet", entities.Attack{Dice: 1}, entities.WeaponEffectSharp)
		right := testutils.CreateTestWeapon("Cleaver", entities.Attack{Dice: 1}, entities.WeaponEffectSharp)
		npc.Character.Inventory.Put(left, entities.LocationHand)
		npc.Character.Inventory.Put(right, entities.LocationHand)
		state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
		player := testutils.CreateTestPlayer()
		spell := learn(&player, entities.SpellDisintegrate, 1)

		e, _ := newTestEngine(t)
		out, err := e.handle(actions.CastSpellOnNpc{SpellID: spell.ID.String(), NpcID: npc.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Contains(t, out, events.NpcWeaponDestroyed{NpcID: npc.ID, ItemID: left.ID})
		assert.Contains(t, out, events.NpcWeaponDestroyed{NpcID: npc.ID, ItemID: right.ID})
	})

	t.Run("unknown spell", func(t *testing.T) {
		npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
		state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
		player := testutils.CreateTestPlayer()

		e, _ := newTestEngine(t)
		_, err := e.handle(actions.CastSpellOnNpc{SpellID: uuid.NewString(), NpcID: npc.ID.String()}, &state, &player)
		assert.True(t, errors.IsKind(err, errors.KindSpellNotFound))
	})

	t.Run("unknown npc", func(t *testing.T) {
		state := testutils.CreateTestState(testutils.CreateTestRoom())
		player := testutils.CreateTestPlayer()
		spell := learn(&player, entities.SpellMagicMissile, 1)

		e, _ := newTestEngine(t)
		_, err := e.handle(actions.CastSpellOnNpc{SpellID: spell.ID.String(), NpcID: uuid.NewString()}, &state, &player)
		assert.True(t, errors.IsKind(err, errors.KindNpcNotFound))
	})
}

func TestCastSpellOnPlayer(t *testing.T) {
	state := testutils.CreateTestState(testutils.CreateTestRoom())

	t.Run("aura", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		shield := learn(&player, entities.SpellShield, 2)

		e, _ := newTestEngine(t)
		out, err := e.handle(actions.CastSpellOnPlayer{SpellID: shield.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Equal(t, []events.Event{
			events.PlayerCastSpellOnPlayer{SpellID: shield.ID, Spell: entities.SpellShield},
			events.PlayerSpellUsed{SpellID: shield.ID},
			events.PlayerAuraGained{Aura: entities.SpellShield.Aura()},
		}, out)

		_, after := reducer.Reduce(out, state, player)
		require.NotNil(t, after.Character.Effects.Shield)
		assert.Equal(t, 6, after.Character.Effects.Shield.Resistance)
	})

	t.Run("fresh venom", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		spell := learn(&player, entities.SpellVenom, 1)

		e, _ := newTestEngine(t)
		out, err := e.handle(actions.CastSpellOnPlayer{SpellID: spell.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Contains(t, out, events.PlayerPoisoned{Poison: entities.VenomDose})
	})

	t.Run("heal", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		player.Character.Stats.Health = 3
		spell := learn(&player, entities.SpellHeal, 1)

		e, _ := newTestEngine(t, 1, 2, 3)
		out, err := e.handle(actions.CastSpellOnPlayer{SpellID: spell.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Contains(t, out, events.PlayerHealed{Amount: 6})

		_, after := reducer.Reduce(out, state, player)
		assert.Equal(t, 9, after.Character.Stats.Health)
	})

	t.Run("malformed id", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		e, _ := newTestEngine(t)
		_, err := e.handle(actions.CastSpellOnPlayer{SpellID: "x"}, &state, &player)
		assert.True(t, errors.IsKind(err, errors.KindInvalidID))
	})
}

func TestUseItem(t *testing.T) {
	state := testutils.CreateTestState(testutils.CreateTestRoom())

	t.Run("potion heals with its own dice", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		player.Character.Stats.Health = 4
		potion := testutils.CreateTestItem(entities.ItemKindPotion, 10)
		potion.Heal = &entities.Attack{Dice: 1, Modifier: 2}
		player.Character.Inventory.Put(potion, entities.LocationPack)

		e, _ := newTestEngine(t, 3)
		out, err := e.handle(actions.UseItem{ItemID: potion.ID.String()}, &state, &player)
		require.NoError(t, err)
		assert.Equal(t, []events.Event{
			events.PlayerItemUsed{ItemID: potion.ID},
			events.PlayerHealed{Amount: 5},
			events.PlayerItemRemoved{ItemID: potion.ID},
		}, out)

		_, after := reducer.Reduce(out, state, player)
		assert.Equal(t, 9, after.Character.Stats.Health)
		assert.Zero(t, after.Character.Inventory.Len())
	})

	t.Run("scroll teaches its spell", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		scroll := testutils.CreateTestItem(entities.ItemKindScroll, 15)
		scroll.Spell = entities.SpellFireball
		scroll.SpellUses = 2
		player.Character.Inventory.Put(scroll, entities.LocationPack)

		e, _ := newTestEngine(t)
		out, err := e.handle(actions.UseItem{ItemID: scroll.ID.String()}, &state, &player)
		require.NoError(t, err)

		_, after := reducer.Reduce(out, state, player)
		learned, ok := after.Character.Spells.Find(scroll.ID)
		require.True(t, ok)
		assert.Equal(t, entities.SpellFireball, learned.Spell)
		assert.Equal(t, 2, learned.Uses)
	})

	t.Run("weapons are not directly usable", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		sword := testutils.CreateTestWeapon("Sword", entities.Attack{Dice: 1}, entities.WeaponEffectSharp)
		player.Character.Inventory.Put(sword, entities.LocationHand)

		e, _ := newTestEngine(t)
		_, err := e.handle(actions.UseItem{ItemID: sword.ID.String()}, &state, &player)
		assert.True(t, errors.IsKind(err, errors.KindItemNotDirectlyUsable))
	})

	t.Run("missing item", func(t *testing.T) {
		player := testutils.CreateTestPlayer()
		e, _ := newTestEngine(t)
		_, err := e.handle(actions.UseItem{ItemID: uuid.NewString()}, &state, &player)
		assert.True(t, errors.IsKind(err, errors.KindItemNotFound))
	})
}

func TestMoveAndSell(t *testing.T) {
	state := testutils.CreateTestState(testutils.CreateTestRoom())
	player := testutils.CreateTestPlayer()
	armor := testutils.CreateTestItem(entities.ItemKindArmor, 20)
	armor.Defense = &entities.Defense{Dice: 1, Modifier: 1}
	player.Character.Inventory.Put(armor, entities.LocationPack)

	e, _ := newTestEngine(t)
	out, err := e.handle(actions.MoveItem{ItemID: armor.ID.String(), Location: string(entities.LocationBody)}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{events.PlayerItemMoved{ItemID: armor.ID, Location: entities.LocationBody, AtTheReady: true}}, out)

	_, moved := reducer.Reduce(out, state, player)
	assert.Equal(t, 2, moved.Character.Defense().Dice)

	_, err = e.handle(actions.MoveItem{ItemID: armor.ID.String(), Location: "saddlebag"}, &state, &player)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Empty(t, errors.GetKind(err), "a malformed request is not a game failure")

	out, err = e.handle(actions.Sell{ItemID: armor.ID.String()}, &state, &moved)
	require.NoError(t, err)
	_, sold := reducer.Reduce(out, state, moved)
	assert.Equal(t, 20, sold.Gold)
	assert.Zero(t, sold.Character.Inventory.Len())

	t.Run("only weapons count against readied weapons", func(t *testing.T) {
		holder := testutils.CreateTestPlayer()
		dagger := testutils.CreateTestWeapon("Dagger", entities.Attack{Dice: 1}, entities.WeaponEffectSharp)
		potion := testutils.CreateTestItem(entities.ItemKindPotion, 3)
		sword := testutils.CreateTestWeapon("Sword", entities.Attack{Dice: 1, Modifier: 2}, entities.WeaponEffectSharp)
		axe := testutils.CreateTestWeapon("Axe", entities.Attack{Dice: 1, Modifier: 1}, entities.WeaponEffectSharp)
		holder.Character.Inventory.Put(dagger, entities.LocationHand)
		holder.Character.Inventory.Put(potion, entities.LocationHand)
		holder.Character.Inventory.Put(sword, entities.LocationPack)
		holder.Character.Inventory.Put(axe, entities.LocationPack)

		out, err := e.handle(actions.MoveItem{ItemID: sword.ID.String(), Location: string(entities.LocationHand)}, &state, &holder)
		require.NoError(t, err)
		assert.Equal(t, []events.Event{events.PlayerItemMoved{ItemID: sword.ID, Location: entities.LocationHand, AtTheReady: true}}, out)

		_, readied := reducer.Reduce(out, state, holder)
		assert.Len(t, readied.Character.Inventory.ReadiedWeapons(), 2)

		_, err = e.handle(actions.MoveItem{ItemID: axe.ID.String(), Location: string(entities.LocationHand)}, &state, &readied)
		assert.True(t, errors.IsKind(err, errors.KindTooManyWeaponsEquipped))

		out, err = e.handle(actions.MoveItem{ItemID: potion.ID.String(), Location: string(entities.LocationPack)}, &state, &readied)
		require.NoError(t, err)
		_, stowed := reducer.Reduce(out, state, readied)
		out, err = e.handle(actions.MoveItem{ItemID: potion.ID.String(), Location: string(entities.LocationHand)}, &state, &stowed)
		require.NoError(t, err, "a potion can join two readied weapons")
		assert.Len(t, out, 1)
	})
}

func TestFixtures(t *testing.T) {
	visible := testutils.CreateTestItem(entities.ItemKindTreasure, 30)
	hidden := testutils.CreateTestItem(entities.ItemKindTreasure, 50)
	chest := testutils.CreateTestFixture(true, visible)
	chest.HiddenCompartment = &entities.HiddenCompartment{Items: []entities.Item{hidden}}
	room := testutils.CreateTestRoom()
	room.Fixtures = []entities.FixturePosition{{Fixture: chest, Position: "under the window"}}
	state := testutils.CreateTestState(room)
	player := testutils.CreateTestPlayer()
	e, _ := newTestEngine(t)

	_, err := e.handle(actions.LootFixture{FixtureID: chest.ID.String(), ItemID: visible.ID.String()}, &state, &player)
	assert.True(t, errors.IsKind(err, errors.KindItemNotFound), "closed chest hides its contents")

	out, err := e.handle(actions.InspectFixture{FixtureID: chest.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{
		events.FixtureInspected{FixtureID: chest.ID},
		events.FixtureHiddenCompartmentFound{FixtureID: chest.ID},
	}, out)
	state, player = reducer.Reduce(out, state, player)

	out, err = e.handle(actions.LootFixture{FixtureID: chest.ID.String(), ItemID: hidden.ID.String()}, &state, &player)
	require.NoError(t, err)
	state, player = reducer.Reduce(out, state, player)
	_, ok := player.Character.Inventory.Find(hidden.ID)
	assert.True(t, ok)

	out, err = e.handle(actions.OpenFixture{FixtureID: chest.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{
		events.FixtureOpened{FixtureID: chest.ID},
		events.FixtureContentsRevealed{FixtureID: chest.ID},
	}, out)
	state, player = reducer.Reduce(out, state, player)

	out, err = e.handle(actions.OpenFixture{FixtureID: chest.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = e.handle(actions.LootFixture{FixtureID: chest.ID.String(), ItemID: visible.ID.String()}, &state, &player)
	require.NoError(t, err)
	_, player = reducer.Reduce(out, state, player)
	assert.Equal(t, 2, player.Character.Inventory.Len())

	_, err = e.handle(actions.OpenFixture{FixtureID: uuid.NewString()}, &state, &player)
	assert.True(t, errors.IsKind(err, errors.KindFixtureNotFound))
}

func TestInspectNpcOnlyReportsNewKnowledge(t *testing.T) {
	npc := testutils.CreateTestNpc(entities.SpeciesElf, 10)
	state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
	state.LearnNpc(npc.ID, entities.NpcKnowledge{NameKnown: true})
	player := testutils.CreateTestPlayer()

	e, _ := newTestEngine(t)
	out, err := e.handle(actions.InspectNpc{NpcID: npc.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{
		events.NpcInspected{NpcID: npc.ID},
		events.NpcHealthDiscovered{NpcID: npc.ID},
		events.NpcInventoryDiscovered{NpcID: npc.ID},
	}, out)

	state, player = reducer.Reduce(out, state, player)
	out, err = e.handle(actions.InspectNpc{NpcID: npc.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{events.NpcInspected{NpcID: npc.ID}}, out)
}

func TestThrowAndPickUp(t *testing.T) {
	npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
	state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
	player := testutils.CreateTestPlayer()
	rock := testutils.CreateTestItem(entities.ItemKindTreasure, 1)
	player.Character.Inventory.Put(rock, entities.LocationPack)

	// 1d6-1 rolls 4, defense rolls 1
	e, _ := newTestEngine(t, 4, 1)
	out, err := e.handle(actions.Throw{ItemID: rock.ID.String(), NpcID: npc.ID.String()}, &state, &player)
	require.NoError(t, err)
	assert.Equal(t, []events.Event{
		events.PlayerThrewItem{ItemID: rock.ID, NpcID: npc.ID},
		events.PlayerHitNpc{NpcID: npc.ID, Damage: 2, AttackerID: player.ID},
	}, out)

	state, player = reducer.Reduce(out, state, player)
	assert.Zero(t, player.Character.Inventory.Len())
	_, ok := entities.FindItem(state.CurrentRoom().LooseItems, rock.ID)
	require.True(t, ok)

	out, err = e.handle(actions.PickUpItem{ItemID: rock.ID.String()}, &state, &player)
	require.NoError(t, err)
	state, player = reducer.Reduce(out, state, player)
	assert.Empty(t, state.CurrentRoom().LooseItems)
	assert.Equal(t, 1, player.Character.Inventory.Len())
}

func TestLootNpc(t *testing.T) {
	npc := testutils.CreateTestNpc(entities.SpeciesOrc, 0)
	gem := testutils.CreateTestItem(entities.ItemKindTreasure, 40)
	npc.Character.Inventory.Put(gem, entities.LocationPack)
	state := testutils.CreateTestState(testutils.CreateTestRoom(npc))
	player := testutils.CreateTestPlayer()

	e, _ := newTestEngine(t)
	_, err := e.handle(actions.LootNpc{NpcID: npc.ID.String(), ItemID: uuid.NewString()}, &state, &player)
	assert.True(t, errors.IsKind(err, errors.KindItemNotFound))

	out, err := e.handle(actions.LootNpc{NpcID: npc.ID.String(), ItemID: gem.ID.String()}, &state, &player)
	require.NoError(t, err)
	state, player = reducer.Reduce(out, state, player)
	_, ok := player.Character.Inventory.Find(gem.ID)
	assert.True(t, ok)
	pos, _ := state.CurrentRoom().FindNpc(npc.ID)
	assert.Zero(t, pos.NPC.Character.Inventory.Len())
}

func TestHandlersNeverMutateInputs(t *testing.T) {
	npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
	npc.Character.Inventory.Put(testutils.CreateTestWeapon("Club", entities.Attack{Dice: 1}, entities.WeaponEffectCrushing), entities.LocationHand)
	corpse := testutils.CreateTestNpc(entities.SpeciesGoblin, 0)
	trinket := testutils.CreateTestItem(entities.ItemKindTreasure, 3)
	corpse.Character.Inventory.Put(trinket, entities.LocationPack)
	chest := testutils.CreateTestFixture(true, testutils.CreateTestItem(entities.ItemKindTreasure, 5))
	crate := testutils.CreateTestFixture(false, testutils.CreateTestItem(entities.ItemKindTreasure, 7))
	coin := testutils.CreateTestItem(entities.ItemKindTreasure, 1)
	crypt := testutils.CreateTestRoom(npc, corpse)
	crypt.Fixtures = []entities.FixturePosition{
		{Fixture: chest, Position: "by the door"},
		{Fixture: crate, Position: "in the corner"},
	}
	crypt.LooseItems = []entities.Item{coin}
	state := testutils.CreateTestState(crypt)

	player := testutils.CreateTestPlayer()
	sword := testutils.CreateTestWeapon("Sword", entities.Attack{Dice: 1, Modifier: 1}, entities.WeaponEffectAcidic)
	player.Character.Inventory.Put(sword, entities.LocationHand)
	potion := testutils.CreateTestItem(entities.ItemKindPotion, 5)
	player.Character.Inventory.Put(potion, entities.LocationPack)
	missile := learn(&player, entities.SpellMagicMissile, 1)
	heal := learn(&player, entities.SpellHeal, 2)

	beforeState, beforePlayer := state.Clone(), player.Clone()

	acts := []actions.Action{
		actions.Attack{NpcID: npc.ID.String()},
		actions.Exit{ExitID: testutils.TestExitID.String()},
		actions.LootNpc{NpcID: corpse.ID.String(), ItemID: trinket.ID.String()},
		actions.LootFixture{FixtureID: crate.ID.String(), ItemID: crate.Items[0].ID.String()},
		actions.PickUpItem{ItemID: coin.ID.String()},
		actions.InspectNpc{NpcID: npc.ID.String()},
		actions.InspectFixture{FixtureID: chest.ID.String()},
		actions.OpenFixture{FixtureID: chest.ID.String()},
		actions.CastSpellOnNpc{SpellID: missile.ID.String(), NpcID: npc.ID.String()},
		actions.CastSpellOnPlayer{SpellID: heal.ID.String()},
		actions.MoveItem{ItemID: potion.ID.String(), Location: string(entities.LocationHand)},
		actions.UseItem{ItemID: potion.ID.String()},
		actions.Sell{ItemID: sword.ID.String()},
		actions.Throw{ItemID: sword.ID.String(), NpcID: npc.ID.String()},
	}
	for _, a := range acts {
		t.Run(string(a.Kind()), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rooms := roommock.NewMockService(ctrl)
			rooms.EXPECT().
				GenerateRoom(gomock.Any()).
				Return(&room.GenerateRoomOutput{Room: entities.Room{
					ID:    uuid.New(),
					Name:  "Far Cellar",
					Exits: []entities.Exit{{ID: testutils.TestExitID, Kind: entities.ExitKindDoor}},
				}}).
				AnyTimes()
			roller := testutils.NewScriptedRoller(1, 1, 1, 1, 1, 1, 1, 1)
			created, err := New(&Config{Roller: roller, RoomGenerator: rooms})
			require.NoError(t, err)
			e := created.(*engine)

			_, err = e.handle(a, &state, &player)
			require.NoError(t, err)
			_, err = e.react(a, &state, &player)
			require.NoError(t, err)
			assert.Equal(t, beforeState, state)
			assert.Equal(t, beforePlayer, player)
		})
	}
}

func TestReactingNpc(t *testing.T) {
	dead := testutils.CreateTestNpc(entities.SpeciesGoblin, 0)
	alive := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
	room := testutils.CreateTestRoom(dead, alive)

	tests := []struct {
		name   string
		action actions.Action
		want   *entities.NonPlayerCharacter
	}{
		{name: "attack provokes its target", action: actions.Attack{NpcID: alive.ID.String()}, want: &alive},
		{name: "attacking a corpse provokes nobody", action: actions.Attack{NpcID: dead.ID.String()}},
		{name: "malformed target provokes nobody", action: actions.InspectNpc{NpcID: "bad"}},
		{name: "searching provokes the first living npc", action: actions.InspectFixture{FixtureID: uuid.NewString()}, want: &alive},
		{name: "picking up provokes the first living npc", action: actions.PickUpItem{ItemID: uuid.NewString()}, want: &alive},
		{name: "leaving provokes nobody", action: actions.Exit{ExitID: uuid.NewString()}},
		{name: "inventory shuffling provokes nobody", action: actions.Sell{ItemID: uuid.NewString()}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := reactingNpc(tc.action, &room)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want.ID, got.ID)
		})
	}
}
