package game

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
)

// startingGold is what every new player carries
const startingGold = 5

// newPlayer builds a fresh character carrying a dagger and a potion
func newPlayer(ids idgen.Generator, name string, species entities.Species) entities.PlayerCharacter {
	player := entities.PlayerCharacter{
		ID:        ids.Generate(),
		Name:      name,
		Gold:      startingGold,
		Character: entities.NewCharacter(species, entities.LifeModifierNone),
	}
	player.Character.Inventory.Put(entities.Item{
		ID:     ids.Generate(),
		Kind:   entities.ItemKindWeapon,
		Name:   "Dagger",
		Value:  2,
		Attack: &entities.Attack{Dice: 1},
		Effect: entities.WeaponEffectSharp,
	}, entities.LocationHand)
	player.Character.Inventory.Put(entities.Item{
		ID:    ids.Generate(),
		Kind:  entities.ItemKindPotion,
		Name:  "Healing Draught",
		Value: 3,
		Heal:  &entities.Attack{Dice: 1, Modifier: 2},
	}, entities.LocationPack)
	return player
}
