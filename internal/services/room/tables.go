package room

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

var roomAdjectives = []string{
	"damp", "ruined", "silent", "flooded", "candlelit", "collapsed", "frozen", "ancient",
}

var roomNouns = []string{
	"crypt", "armory", "cellar", "chapel", "guardroom", "library", "cistern", "barracks",
}

var positions = []string{
	"in the corner", "by the far wall", "near the entrance", "in the middle of the room",
	"in the shadows", "beneath a broken window", "against the pillar",
}

type weaponTemplate struct {
	name   string
	attack entities.Attack
	effect entities.WeaponEffect
	value  int
}

var weaponTable = []weaponTemplate{
	{name: "rusty dagger", attack: entities.Attack{Dice: 1}, effect: entities.WeaponEffectSharp, value: 2},
	{name: "short sword", attack: entities.Attack{Dice: 1, Modifier: 2}, effect: entities.WeaponEffectSharp, value: 8},
	{name: "mace", attack: entities.Attack{Dice: 1, Modifier: 1}, effect: entities.WeaponEffectCrushing, value: 6},
	{name: "war hammer", attack: entities.Attack{Dice: 2}, effect: entities.WeaponEffectCrushing, value: 12},
	{name: "envenomed stiletto", attack: entities.Attack{Dice: 1}, effect: entities.WeaponEffectToxic, value: 15},
	{name: "corroded flail", attack: entities.Attack{Dice: 1, Modifier: 1}, effect: entities.WeaponEffectAcidic, value: 14},
	{name: "greataxe", attack: entities.Attack{Dice: 2, Modifier: 1}, effect: entities.WeaponEffectSharp, value: 20},
}

type armorTemplate struct {
	name    string
	defense entities.Defense
	value   int
}

var armorTable = []armorTemplate{
	{name: "leather jerkin", defense: entities.Defense{Modifier: 1}, value: 5},
	{name: "wooden buckler", defense: entities.Defense{Modifier: 2}, value: 7},
	{name: "chain mail", defense: entities.Defense{Dice: 1}, value: 15},
	{name: "plate armor", defense: entities.Defense{Dice: 1, Modifier: 2}, value: 30},
}

var treasureTable = []string{
	"silver ring", "gold coin purse", "jeweled goblet", "ivory figurine", "ruby pendant",
}

type fixtureTemplate struct {
	kind     entities.FixtureKind
	openable bool
}

var fixtureTable = []fixtureTemplate{
	{kind: entities.FixtureKindChest, openable: true},
	{kind: entities.FixtureKindBarrel},
	{kind: entities.FixtureKindCrate, openable: true},
	{kind: entities.FixtureKindWardrobe, openable: true},
	{kind: entities.FixtureKindCoffin, openable: true},
	{kind: entities.FixtureKindBookshelf},
	{kind: entities.FixtureKindTable},
	{kind: entities.FixtureKindWeaponRack},
	{kind: entities.FixtureKindAltar},
}

var exitKinds = []entities.ExitKind{
	entities.ExitKindDoor, entities.ExitKindArchway, entities.ExitKindStairwell, entities.ExitKindHole,
}

var npcNames = []string{
	"grisk", "mollo", "vex", "ardra", "thun", "pell", "skarn", "ivo", "brugg", "nessa",
}
