package events

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// Npc event types
const (
	TypeNpcHitPlayer             Type = "npc_hit_player"
	TypeNpcMissedPlayer          Type = "npc_missed_player"
	TypeNpcKilledPlayer          Type = "npc_killed_player"
	TypeNpcWeaponReadied         Type = "npc_weapon_readied"
	TypeNpcWeaponDestroyed       Type = "npc_weapon_destroyed"
	TypeNpcHitBySpell            Type = "npc_hit_by_spell"
	TypeNpcHitByRetribution      Type = "npc_hit_by_retribution"
	TypeNpcHealed                Type = "npc_healed"
	TypeNpcPoisoned              Type = "npc_poisoned"
	TypeNpcPoisonDamaged         Type = "npc_poison_damaged"
	TypeNpcPoisonDurationChanged Type = "npc_poison_duration_changed"
	TypeNpcInspected             Type = "npc_inspected"
	TypeNpcNameDiscovered        Type = "npc_name_discovered"
	TypeNpcHealthDiscovered      Type = "npc_health_discovered"
	TypeNpcInventoryDiscovered   Type = "npc_inventory_discovered"
	TypeNpcDestroyedPlayerWeapon Type = "npc_destroyed_player_weapon"
	TypeNpcPoisonedPlayer        Type = "npc_poisoned_player"
)

// NpcHitPlayer damages the player
type NpcHitPlayer struct {
	NpcID  uuid.UUID `json:"npc_id"`
	Damage int       `json:"damage"`
}

// NpcMissedPlayer records a blow the player dodged
type NpcMissedPlayer struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcKilledPlayer records the blow that killed the player
type NpcKilledPlayer struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcWeaponReadied moves a packed weapon into an npc's hand
type NpcWeaponReadied struct {
	NpcID  uuid.UUID `json:"npc_id"`
	ItemID uuid.UUID `json:"item_id"`
}

// NpcWeaponDestroyed destroys one of an npc's weapons
type NpcWeaponDestroyed struct {
	NpcID  uuid.UUID `json:"npc_id"`
	ItemID uuid.UUID `json:"item_id"`
}

// NpcHitBySpell damages an npc with a spell
type NpcHitBySpell struct {
	NpcID  uuid.UUID      `json:"npc_id"`
	Spell  entities.Spell `json:"spell"`
	Damage int            `json:"damage"`
}

// NpcHitByRetribution damages an npc with the player's retribution aura
type NpcHitByRetribution struct {
	NpcID  uuid.UUID `json:"npc_id"`
	Damage int       `json:"damage"`
}

// NpcHealed restores npc health
type NpcHealed struct {
	NpcID  uuid.UUID `json:"npc_id"`
	Amount int       `json:"amount"`
}

// NpcPoisoned replaces an npc's poison
type NpcPoisoned struct {
	NpcID  uuid.UUID       `json:"npc_id"`
	Poison entities.Poison `json:"poison"`
}

// NpcPoisonDamaged is one tick of poison damage on an npc
type NpcPoisonDamaged struct {
	NpcID  uuid.UUID `json:"npc_id"`
	Damage int       `json:"damage"`
}

// NpcPoisonDurationChanged sets the turns of poison left; zero cures it
type NpcPoisonDurationChanged struct {
	NpcID    uuid.UUID `json:"npc_id"`
	Duration int       `json:"duration"`
}

// NpcInspected records that the player studied an npc
type NpcInspected struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcNameDiscovered marks an npc's name as known
type NpcNameDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcHealthDiscovered marks an npc's health as known
type NpcHealthDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcInventoryDiscovered marks an npc's inventory as known
type NpcInventoryDiscovered struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// NpcDestroyedPlayerWeapon destroys one of the player's readied weapons
type NpcDestroyedPlayerWeapon struct {
	NpcID  uuid.UUID `json:"npc_id"`
	ItemID uuid.UUID `json:"item_id"`
}

// NpcPoisonedPlayer replaces the player's poison after a toxic blow
type NpcPoisonedPlayer struct {
	NpcID  uuid.UUID       `json:"npc_id"`
	Poison entities.Poison `json:"poison"`
}

func (NpcHitPlayer) Type() Type             { return TypeNpcHitPlayer }
func (NpcMissedPlayer) Type() Type          { return TypeNpcMissedPlayer }
func (NpcKilledPlayer) Type() Type          { return TypeNpcKilledPlayer }
func (NpcWeaponReadied) Type() Type         { return TypeNpcWeaponReadied }
func (NpcWeaponDestroyed) Type() Type       { return TypeNpcWeaponDestroyed }
func (NpcHitBySpell) Type() Type            { return TypeNpcHitBySpell }
func (NpcHitByRetribution) Type() Type      { return TypeNpcHitByRetribution }
func (NpcHealed) Type() Type                { return TypeNpcHealed }
func (NpcPoisoned) Type() Type              { return TypeNpcPoisoned }
func (NpcPoisonDamaged) Type() Type         { return TypeNpcPoisonDamaged }
func (NpcPoisonDurationChanged) Type() Type { return TypeNpcPoisonDurationChanged }
func (NpcInspected) Type() Type             { return TypeNpcInspected }
func (NpcNameDiscovered) Type() Type        { return TypeNpcNameDiscovered }
func (NpcHealthDiscovered) Type() Type      { return TypeNpcHealthDiscovered }
func (NpcInventoryDiscovered) Type() Type   { return TypeNpcInventoryDiscovered }
func (NpcDestroyedPlayerWeapon) Type() Type { return TypeNpcDestroyedPlayerWeapon }
func (NpcPoisonedPlayer) Type() Type        { return TypeNpcPoisonedPlayer }

func (NpcHitPlayer) event()             {}
func (NpcMissedPlayer) event()          {}
func (NpcKilledPlayer) event()          {}
func (NpcWeaponReadied) event()         {}
func (NpcWeaponDestroyed) event()       {}
func (NpcHitBySpell) event()            {}
func (NpcHitByRetribution) event()      {}
func (NpcHealed) event()                {}
func (NpcPoisoned) event()              {}
func (NpcPoisonDamaged) event()         {}
func (NpcPoisonDurationChanged) event() {}
func (NpcInspected) event()             {}
func (NpcNameDiscovered) event()        {}
func (NpcHealthDiscovered) event()      {}
func (NpcInventoryDiscovered) event()   {}
func (NpcDestroyedPlayerWeapon) event() {}
func (NpcPoisonedPlayer) event()        {}
