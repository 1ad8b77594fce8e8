package testutils

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// Fixed identifiers shared by fixtures
var (
	TestPlayerID = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	TestRoomID   = uuid.MustParse("00000000-0000-4000-8000-000000000002")
	TestExitID   = uuid.MustParse("00000000-0000-4000-8000-000000000003")
)

// TestPlayerName is the default player name for fixtures
const TestPlayerName = "Tamsin Reed"

// CreateTestPlayer creates a living human with 10 of 10 health and an
// empty inventory
func CreateTestPlayer() entities.PlayerCharacter {
	c := entities.NewCharacter(entities.SpeciesHuman, entities.LifeModifierNone)
	c.Stats = entities.Stats{Health: 10, MaxHealth: 10}
	return entities.PlayerCharacter{
		ID:        TestPlayerID,
		Name:      TestPlayerName,
		Character: c,
	}
}

// CreateTestNpc creates an npc of a species with the given health
func CreateTestNpc(species entities.Species, health int) entities.NonPlayerCharacter {
	c := entities.NewCharacter(species, entities.LifeModifierNone)
	c.Stats = entities.Stats{Health: health, MaxHealth: health}
	return entities.NonPlayerCharacter{
		ID:        uuid.New(),
		Name:      "Test " + string(species),
		Character: c,
	}
}

// CreateTestWeapon creates a weapon item
func CreateTestWeapon(name string, attack entities.Attack, effect entities.WeaponEffect) entities.Item {
	return entities.Item{
		ID:     uuid.New(),
		Kind:   entities.ItemKindWeapon,
		Name:   name,
		Value:  5,
		Attack: &attack,
		Effect: effect,
	}
}

// CreateTestItem creates a non-weapon item of a kind
func CreateTestItem(kind entities.ItemKind, value int) entities.Item {
	return entities.Item{
		ID:    uuid.New(),
		Kind:  kind,
		Name:  "Test " + string(kind),
		Value: value,
	}
}

// CreateTestFixture creates a fixture holding items
func CreateTestFixture(openable bool, items ...entities.Item) entities.Fixture {
	return entities.Fixture{
		ID:          uuid.New(),
		Kind:        entities.FixtureKindChest,
		Name:        "Test Chest",
		Items:       items,
		CanBeOpened: openable,
	}
}

// CreateTestRoom creates a room with one exit holding the given npcs
func CreateTestRoom(npcs ...entities.NonPlayerCharacter) entities.Room {
	room := entities.Room{
		ID:    TestRoomID,
		Name:  "Test Crypt",
		Exits: []entities.Exit{{ID: TestExitID, Kind: entities.ExitKindDoor}},
	}
	for _, npc := range npcs {
		room.Npcs = append(room.Npcs, entities.NpcPosition{NPC: npc, Position: "in the corner"})
	}
	return room
}

// CreateTestState starts a game in a room
func CreateTestState(room entities.Room) entities.GameState {
	return entities.NewGameState(room)
}
