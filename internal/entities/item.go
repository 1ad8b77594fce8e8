package entities

import (
	"github.com/google/uuid"
)

// ItemKind is the broad category of an item
type ItemKind string

// Item kinds
const (
	ItemKindWeapon   ItemKind = "weapon"
	ItemKindArmor    ItemKind = "armor"
	ItemKindPotion   ItemKind = "potion"
	ItemKindAntidote ItemKind = "antidote"
	ItemKindScroll   ItemKind = "scroll"
	ItemKindTreasure ItemKind = "treasure"
)

// WeaponEffect is the extra behavior of a weapon on a successful hit
type WeaponEffect string

// Weapon effects
const (
	WeaponEffectSharp    WeaponEffect = "sharp"
	WeaponEffectCrushing WeaponEffect = "crushing"
	WeaponEffectToxic    WeaponEffect = "toxic"
	WeaponEffectAcidic   WeaponEffect = "acidic"
)

// Item is anything that can be carried, looted, sold or thrown
type Item struct {
	ID      uuid.UUID    `json:"id"`
	Kind    ItemKind     `json:"kind"`
	Name    string       `json:"name"`
	Value   int          `json:"value"`
	Attack  *Attack      `json:"attack,omitempty"`
	Effect  WeaponEffect `json:"effect,omitempty"`
	Defense *Defense     `json:"defense,omitempty"`
	// Heal is the healing rolled by a potion
	Heal *Attack `json:"heal,omitempty"`
	// Spell and SpellUses describe what a scroll teaches
	Spell     Spell `json:"spell,omitempty"`
	SpellUses int   `json:"spell_uses,omitempty"`
}

// IsWeapon reports whether the item can be wielded to attack
func (i Item) IsWeapon() bool {
	return i.Kind == ItemKindWeapon && i.Attack != nil
}

// IsArmor reports whether the item is worn for defense
func (i Item) IsArmor() bool {
	return i.Kind == ItemKindArmor && i.Defense != nil
}

// DirectlyUsable reports whether the item is consumed by using it
func (i Item) DirectlyUsable() bool {
	switch i.Kind {
	case ItemKindPotion, ItemKindAntidote, ItemKindScroll:
		return true
	}
	return false
}

// Clone returns a deep copy
func (i Item) Clone() Item {
	if i.Attack != nil {
		a := *i.Attack
		i.Attack = &a
	}
	if i.Defense != nil {
		d := *i.Defense
		i.Defense = &d
	}
	if i.Heal != nil {
		h := *i.Heal
		i.Heal = &h
	}
	return i
}

// CloneItems deep copies a slice of items
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// RemoveItem returns items without the one matching id
func RemoveItem(items []Item, id uuid.UUID) ([]Item, Item, bool) {
	for i, item := range items {
		if item.ID == id {
			out := make([]Item, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, item, true
		}
	}
	return items, Item{}, false
}

// FindItem looks up an item by id
func FindItem(items []Item, id uuid.UUID) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Location is where on the character an item sits
type Location string

// Locations
const (
	LocationHand Location = "hand"
	LocationBody Location = "body"
	LocationPack Location = "pack"
)

// Valid reports whether the location is known
func (l Location) Valid() bool {
	switch l {
	case LocationHand, LocationBody, LocationPack:
		return true
	}
	return false
}

// AtTheReady reports whether an item at this location is in use
func (l Location) AtTheReady() bool {
	return l == LocationHand || l == LocationBody
}

// CharacterItem is an item held by a character
type CharacterItem struct {
	Item       Item     `json:"item"`
	Location   Location `json:"location"`
	AtTheReady bool     `json:"at_the_ready"`
}

// MaxReadiedWeapons is how many weapons a character can hold in hand at once
const MaxReadiedWeapons = 2

// Inventory holds readied items in Equipped and the rest in Packed
type Inventory struct {
	Equipped []CharacterItem `json:"equipped"`
	Packed   []CharacterItem `json:"packed"`
}

// Len is the number of items carried
func (inv Inventory) Len() int {
	return len(inv.Equipped) + len(inv.Packed)
}

// All lists every carried item, readied first
func (inv Inventory) All() []CharacterItem {
	out := make([]CharacterItem, 0, inv.Len())
	out = append(out, inv.Equipped...)
	return append(out, inv.Packed...)
}

// Find looks up a carried item by id
func (inv Inventory) Find(id uuid.UUID) (CharacterItem, bool) {
	for _, ci := range inv.All() {
		if ci.Item.ID == id {
			return ci, true
		}
	}
	return CharacterItem{}, false
}

// ReadiedWeapons lists weapons held in hand
func (inv Inventory) ReadiedWeapons() []CharacterItem {
	var out []CharacterItem
	for _, ci := range inv.Equipped {
		if ci.Item.IsWeapon() && ci.Location == LocationHand {
			out = append(out, ci)
		}
	}
	return out
}


// PackedWeapons lists weapons stowed in the pack
func (inv Inventory) PackedWeapons() []CharacterItem {
	var out []CharacterItem
	for _, ci := range inv.Packed {
		if ci.Item.IsWeapon() {
			out = append(out, ci)
		}
	}
	return out
}

// Take removes an item from whichever collection holds it
func (inv *Inventory) Take(id uuid.UUID) (CharacterItem, bool) {
	for i, ci := range inv.Equipped {
		if ci.Item.ID == id {
			inv.Equipped = append(inv.Equipped[:i:i], inv.Equipped[i+1:]...)
			return ci, true
		}
	}
	for i, ci := range inv.Packed {
		if ci.Item.ID == id {
			inv.Packed = append(inv.Packed[:i:i], inv.Packed[i+1:]...)
			return ci, true
		}
	}
	return CharacterItem{}, false
}

// Put stores an item in the collection matching its location
func (inv *Inventory) Put(item Item, location Location) {
	if !location.Valid() {
		location = LocationPack
	}
	ci := CharacterItem{Item: item, Location: location, AtTheReady: location.AtTheReady()}
	if ci.AtTheReady {
		inv.Equipped = append(inv.Equipped, ci)
		return
	}
	inv.Packed = append(inv.Packed, ci)
}

// Items lists every carried item without placement
func (inv Inventory) Items() []Item {
	out := make([]Item, 0, inv.Len())
	for _, ci := range inv.All() {
		out = append(out, ci.Item)
	}
	return out
}

// Clone returns a deep copy
func (inv Inventory) Clone() Inventory {
	return Inventory{
		Equipped: cloneCharacterItems(inv.Equipped),
		Packed:   cloneCharacterItems(inv.Packed),
	}
}

func cloneCharacterItems(items []CharacterItem) []CharacterItem {
	if items == nil {
		return nil
	}
	out := make([]CharacterItem, len(items))
	for i, ci := range items {
		ci.Item = ci.Item.Clone()
		out[i] = ci
	}
	return out
}
