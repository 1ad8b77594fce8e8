// Package entities provides the data model of the dungeon: the world, its
// rooms and everything the player can meet in them.
package entities

import (
	"github.com/google/uuid"
)

// Species of a character
type Species string

// Species values
const (
	SpeciesHuman  Species = "human"
	SpeciesElf    Species = "elf"
	SpeciesDwarf  Species = "dwarf"
	SpeciesGoblin Species = "goblin"
	SpeciesKobold Species = "kobold"
	SpeciesOrc    Species = "orc"
	SpeciesOgre   Species = "ogre"
)

type speciesTraits struct {
	attack  Attack
	defense Defense
	dodge   int
	health  int
}

var speciesTable = map[Species]speciesTraits{
	SpeciesHuman:  {attack: Attack{Dice: 1}, defense: Defense{Dice: 1}, health: 12},
	SpeciesElf:    {attack: Attack{Dice: 1, Modifier: 1}, defense: Defense{Dice: 1}, dodge: 15, health: 10},
	SpeciesDwarf:  {attack: Attack{Dice: 1, Modifier: 1}, defense: Defense{Dice: 1, Modifier: 2}, health: 14},
	SpeciesGoblin: {attack: Attack{Dice: 1, Modifier: -1}, defense: Defense{Modifier: 1}, dodge: 10, health: 6},
	SpeciesKobold: {attack: Attack{Dice: 1, Modifier: -2}, dodge: 25, health: 4},
	SpeciesOrc:    {attack: Attack{Dice: 2}, defense: Defense{Dice: 1}, health: 12},
	SpeciesOgre:   {attack: Attack{Dice: 3}, defense: Defense{Dice: 1, Modifier: 1}, health: 20},
}

// AllSpecies lists every species in a stable order
var AllSpecies = []Species{
	SpeciesHuman, SpeciesElf, SpeciesDwarf, SpeciesGoblin, SpeciesKobold, SpeciesOrc, SpeciesOgre,
}

// Valid reports whether the species is known
func (s Species) Valid() bool {
	_, ok := speciesTable[s]
	return ok
}

// NaturalAttack is the unarmed attack of the species
func (s Species) NaturalAttack() Attack {
	return speciesTable[s].attack
}

// NaturalDefense is the unarmored defense of the species
func (s Species) NaturalDefense() Defense {
	return speciesTable[s].defense
}

// DodgeChance is the percent chance to avoid a blow entirely
func (s Species) DodgeChance() int {
	return speciesTable[s].dodge
}

// BaseHealth is the starting maximum health of the species
func (s Species) BaseHealth() int {
	return speciesTable[s].health
}

// LifeModifier alters how a creature is alive, if at all
type LifeModifier string

// Life modifiers
const (
	LifeModifierNone     LifeModifier = ""
	LifeModifierSkeleton LifeModifier = "skeleton"
	LifeModifierShadow   LifeModifier = "shadow"
)

// DodgeBonus is added to the species dodge chance
func (m LifeModifier) DodgeBonus() int {
	if m == LifeModifierShadow {
		return 20
	}
	return 0
}

// PoisonImmune reports whether poison has any hold on the creature
func (m LifeModifier) PoisonImmune() bool {
	return m == LifeModifierSkeleton
}

// ReductionKind is how the creature's defense reduces damage
func (m LifeModifier) ReductionKind() ReductionKind {
	if m == LifeModifierNone {
		return ReductionSubtractive
	}
	return ReductionMultiplicative
}

// Stats holds the character's health
type Stats struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
}

// Character is everything shared by the player and non-player characters
type Character struct {
	Species      Species      `json:"species"`
	LifeModifier LifeModifier `json:"life_modifier,omitempty"`
	Stats        Stats        `json:"stats"`
	Effects      Effects      `json:"effects"`
	Spells       SpellMemory  `json:"spells"`
	Inventory    Inventory    `json:"inventory"`
}

// NewCharacter creates a character at full health for its species
func NewCharacter(species Species, modifier LifeModifier) Character {
	health := species.BaseHealth()
	return Character{
		Species:      species,
		LifeModifier: modifier,
		Stats:        Stats{Health: health, MaxHealth: health},
	}
}

// IsDead reports whether health has run out
func (c *Character) IsDead() bool {
	return c.Stats.Health <= 0
}

// Damage lowers health, never below zero
func (c *Character) Damage(amount int) {
	if amount <= 0 {
		return
	}
	c.Stats.Health -= amount
	if c.Stats.Health < 0 {
		c.Stats.Health = 0
	}
}

// Heal raises health, never above the maximum
func (c *Character) Heal(amount int) {
	if amount <= 0 {
		return
	}
	c.Stats.Health += amount
	if c.Stats.Health > c.Stats.MaxHealth {
		c.Stats.Health = c.Stats.MaxHealth
	}
}

// ChangeMaxHealth moves the maximum and keeps health inside it
func (c *Character) ChangeMaxHealth(delta int) {
	c.Stats.MaxHealth += delta
	if c.Stats.MaxHealth < 1 {
		c.Stats.MaxHealth = 1
	}
	if c.Stats.Health > c.Stats.MaxHealth {
		c.Stats.Health = c.Stats.MaxHealth
	}
}

// DodgeChance is the percent chance to avoid a blow entirely
func (c *Character) DodgeChance() int {
	return c.Species.DodgeChance() + c.LifeModifier.DodgeBonus()
}

// Attack is the combined attack of every readied weapon, or the natural
// attack when nothing is readied
func (c *Character) Attack() Attack {
	weapons := c.Inventory.ReadiedWeapons()
	if len(weapons) == 0 {
		return c.Species.NaturalAttack()
	}
	var total Attack
	for _, w := range weapons {
		total = total.Add(*w.Item.Attack)
	}
	return total
}

// WeaponEffects lists the effects of every readied weapon
func (c *Character) WeaponEffects() []WeaponEffect {
	var out []WeaponEffect
	for _, w := range c.Inventory.ReadiedWeapons() {
		if w.Item.Effect != "" {
			out = append(out, w.Item.Effect)
		}
	}
	return out
}

// Defense is the natural defense plus every readied piece of armor
func (c *Character) Defense() Defense {
	total := c.Species.NaturalDefense()
	total.Kind = c.LifeModifier.ReductionKind()
	for _, ci := range c.Inventory.Equipped {
		if ci.Item.Defense != nil {
			total = total.Add(*ci.Item.Defense)
		}
	}
	return total
}

// Clone returns a deep copy
func (c Character) Clone() Character {
	c.Effects = c.Effects.Clone()
	c.Spells = c.Spells.Clone()
	c.Inventory = c.Inventory.Clone()
	return c
}

// PlayerCharacter is the character controlled by the player
type PlayerCharacter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Character Character `json:"character"`
	Gold      int       `json:"gold"`
	Kills     int       `json:"kills"`
}

// IsDead reports whether the player has died
func (p *PlayerCharacter) IsDead() bool {
	return p.Character.IsDead()
}

// Clone returns a deep copy
func (p PlayerCharacter) Clone() PlayerCharacter {
	p.Character = p.Character.Clone()
	return p
}

// NonPlayerCharacter is any other creature in the dungeon
type NonPlayerCharacter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Character Character `json:"character"`
}

// IsDead reports whether the npc has died
func (n *NonPlayerCharacter) IsDead() bool {
	return n.Character.IsDead()
}

// Clone returns a deep copy
func (n NonPlayerCharacter) Clone() NonPlayerCharacter {
	n.Character = n.Character.Clone()
	return n
}
