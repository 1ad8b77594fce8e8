package entities

import (
	"github.com/google/uuid"
)

// Spell names a castable spell
type Spell string

// Spells
const (
	SpellMagicMissile Spell = "magic_missile"
	SpellFireball     Spell = "fireball"
	SpellHeal         Spell = "heal"
	SpellShield       Spell = "shield"
	SpellRetribution  Spell = "retribution"
	SpellResurrection Spell = "resurrection"
	SpellVenom        Spell = "venom"
	SpellDisintegrate Spell = "disintegrate"
)

// AllSpells lists every spell in a stable order
var AllSpells = []Spell{
	SpellMagicMissile, SpellFireball, SpellHeal, SpellShield,
	SpellRetribution, SpellResurrection, SpellVenom, SpellDisintegrate,
}

// SpellCategory groups spells by what they do to their target
type SpellCategory string

// Spell categories
const (
	SpellCategoryDamage      SpellCategory = "damage"
	SpellCategoryHeal        SpellCategory = "heal"
	SpellCategoryAura        SpellCategory = "aura"
	SpellCategoryPoison      SpellCategory = "poison"
	SpellCategoryDestruction SpellCategory = "destruction"
)

// VenomDose is the poison applied by the venom spell
var VenomDose = Poison{Damage: 2, Duration: 3}

// Category of the spell
func (s Spell) Category() SpellCategory {
	switch s {
	case SpellMagicMissile, SpellFireball:
		return SpellCategoryDamage
	case SpellHeal:
		return SpellCategoryHeal
	case SpellShield, SpellRetribution, SpellResurrection:
		return SpellCategoryAura
	case SpellVenom:
		return SpellCategoryPoison
	case SpellDisintegrate:
		return SpellCategoryDestruction
	}
	return ""
}

// Power is the dice rolled by damage and heal spells
func (s Spell) Power() Attack {
	switch s {
	case SpellMagicMissile:
		return Attack{Dice: 2}
	case SpellFireball:
		return Attack{Dice: 4}
	case SpellHeal:
		return Attack{Dice: 3}
	}
	return Attack{}
}

// Aura granted by an aura spell
func (s Spell) Aura() Aura {
	switch s {
	case SpellShield:
		return Aura{Kind: AuraShield, Resistance: 6}
	case SpellRetribution:
		return Aura{Kind: AuraRetribution, Attack: &Attack{Dice: 2}}
	case SpellResurrection:
		return Aura{Kind: AuraResurrection}
	}
	return Aura{}
}

// LearnedSpell is a spell in a character's memory with its remaining uses
type LearnedSpell struct {
	ID    uuid.UUID `json:"id"`
	Spell Spell     `json:"spell"`
	Uses  int       `json:"uses"`
}

// SpellMemory holds every spell a character can cast
type SpellMemory struct {
	Spells []LearnedSpell `json:"spells"`
}

// Find looks up a learned spell by id
func (m SpellMemory) Find(id uuid.UUID) (LearnedSpell, bool) {
	for _, s := range m.Spells {
		if s.ID == id {
			return s, true
		}
	}
	return LearnedSpell{}, false
}

// Learn adds a spell, replacing one with the same id
func (m *SpellMemory) Learn(spell LearnedSpell) {
	m.Forget(spell.ID)
	m.Spells = append(m.Spells, spell)
}

// Use spends one use of a spell and reports the uses left
func (m *SpellMemory) Use(id uuid.UUID) int {
	for i := range m.Spells {
		if m.Spells[i].ID == id {
			if m.Spells[i].Uses > 0 {
				m.Spells[i].Uses--
			}
			return m.Spells[i].Uses
		}
	}
	return 0
}

// Forget removes a spell
func (m *SpellMemory) Forget(id uuid.UUID) {
	for i, s := range m.Spells {
		if s.ID == id {
			m.Spells = append(m.Spells[:i:i], m.Spells[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy
func (m SpellMemory) Clone() SpellMemory {
	if m.Spells == nil {
		return SpellMemory{}
	}
	out := make([]LearnedSpell, len(m.Spells))
	copy(out, m.Spells)
	return SpellMemory{Spells: out}
}
