package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

func lootNpc(a actions.LootNpc, s *entities.GameState) ([]events.Event, error) {
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(a.ItemID)
	if err != nil {
		return nil, err
	}
	if _, ok := npc.Character.Inventory.Find(itemID); !ok {
		return nil, errors.ItemNotFound(a.ItemID)
	}
	return []events.Event{events.PlayerLootedItemFromNpc{NpcID: npc.ID, ItemID: itemID}}, nil
}

// lootFixture only reaches items the player can see: open contents and
// compartments already found
func lootFixture(a actions.LootFixture, s *entities.GameState) ([]events.Event, error) {
	fixture, err := findFixture(s, a.FixtureID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID(a.ItemID)
	if err != nil {
		return nil, err
	}
	reachable := fixture.ReachableItems(s.KnowFixture(fixture.ID).HiddenCompartmentKnown)
	if _, ok := entities.FindItem(reachable, itemID); !ok {
		return nil, errors.ItemNotFound(a.ItemID)
	}
	return []events.Event{events.PlayerLootedItemFromFixture{FixtureID: fixture.ID, ItemID: itemID}}, nil
}

func pickUpItem(a actions.PickUpItem, s *entities.GameState) ([]events.Event, error) {
	itemID, err := parseID(a.ItemID)
	if err != nil {
		return nil, err
	}
	if _, ok := entities.FindItem(s.CurrentRoom().LooseItems, itemID); !ok {
		return nil, errors.ItemNotFound(a.ItemID)
	}
	return []events.Event{events.PlayerPickedUpItem{ItemID: itemID}}, nil
}
