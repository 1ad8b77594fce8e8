package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// defaultPotion heals when a potion carries no dice of its own
var defaultPotion = entities.Attack{Dice: 2}

func moveItem(a actions.MoveItem, p *entities.PlayerCharacter) ([]events.Event, error) {
	ci, err := findCarried(p, a.ItemID)
	if err != nil {
		return nil, err
	}
	location := entities.Location(a.Location)
	if !location.Valid() {
		return nil, errors.InvalidArgumentf("unknown location %q", a.Location).
			WithMeta("item_id", a.ItemID)
	}
	if location == entities.LocationHand && ci.Location != entities.LocationHand && ci.Item.IsWeapon() &&
		len(p.Character.Inventory.ReadiedWeapons()) >= entities.MaxReadiedWeapons {
		return nil, errors.TooManyWeaponsEquipped(a.ItemID)
	}
	return []events.Event{events.PlayerItemMoved{
		ItemID:     ci.Item.ID,
		Location:   location,
		AtTheReady: location.AtTheReady(),
	}}, nil
}

func sell(a actions.Sell, p *entities.PlayerCharacter) ([]events.Event, error) {
	ci, err := findCarried(p, a.ItemID)
	if err != nil {
		return nil, err
	}
	return []events.Event{events.PlayerSoldItem{ItemID: ci.Item.ID, Price: ci.Item.Value}}, nil
}

// useItem consumes a potion, antidote or scroll. A scroll teaches its spell
// under the scroll's own id.
func (e *engine) useItem(a actions.UseItem, p *entities.PlayerCharacter) ([]events.Event, error) {
	ci, err := findCarried(p, a.ItemID)
	if err != nil {
		return nil, err
	}
	item := ci.Item
	if !item.DirectlyUsable() {
		return nil, errors.ItemNotDirectlyUsable(a.ItemID)
	}

	out := []events.Event{events.PlayerItemUsed{ItemID: item.ID}}
	switch item.Kind {
	case entities.ItemKindPotion:
		heal := defaultPotion
		if item.Heal != nil {
			heal = *item.Heal
		}
		amount, err := e.rollAttack(heal)
		if err != nil {
			return nil, err
		}
		out = append(out, events.PlayerHealed{Amount: amount})
	case entities.ItemKindAntidote:
		out = append(out, events.PlayerPoisonCured{})
	case entities.ItemKindScroll:
		out = append(out, events.PlayerSpellLearned{Spell: entities.LearnedSpell{
			ID:    item.ID,
			Spell: item.Spell,
			Uses:  max(1, item.SpellUses),
		}})
	}
	return append(out, events.PlayerItemRemoved{ItemID: item.ID}), nil
}
