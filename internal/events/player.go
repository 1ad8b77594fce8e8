package events

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// Player combat and health event types
const (
	TypePlayerHitNpc                Type = "player_hit_npc"
	TypePlayerMissedNpc             Type = "player_missed_npc"
	TypePlayerBeatNpcCorpse         Type = "player_beat_npc_corpse"
	TypePlayerKilledNpc             Type = "player_killed_npc"
	TypePlayerMaxHealthChanged      Type = "player_max_health_changed"
	TypePlayerHealed                Type = "player_healed"
	TypePlayerHitBySpell            Type = "player_hit_by_spell"
	TypePlayerPoisoned              Type = "player_poisoned"
	TypePlayerPoisonCured           Type = "player_poison_cured"
	TypePlayerPoisonDamaged         Type = "player_poison_damaged"
	TypePlayerPoisonDurationChanged Type = "player_poison_duration_changed"
	TypePlayerAuraGained            Type = "player_aura_gained"
	TypePlayerAuraDissipated        Type = "player_aura_dissipated"
	TypePlayerShieldAbsorbedDamage  Type = "player_shield_absorbed_damage"
	TypePlayerResurrected           Type = "player_resurrected"
	TypePlayerDied                  Type = "player_died"
	TypePlayerInventoryScattered    Type = "player_inventory_scattered"
)

// Player spell event types
const (
	TypePlayerSpellUsed         Type = "player_spell_used"
	TypePlayerSpellForgotten    Type = "player_spell_forgotten"
	TypePlayerSpellLearned      Type = "player_spell_learned"
	TypePlayerCastSpellOnNpc    Type = "player_cast_spell_on_npc"
	TypePlayerCastSpellOnPlayer Type = "player_cast_spell_on_player"
)

// Player item event types
const (
	TypePlayerItemMoved             Type = "player_item_moved"
	TypePlayerItemUsed              Type = "player_item_used"
	TypePlayerItemRemoved           Type = "player_item_removed"
	TypePlayerItemDestroyed         Type = "player_item_destroyed"
	TypePlayerSoldItem              Type = "player_sold_item"
	TypePlayerThrewItem             Type = "player_threw_item"
	TypePlayerLootedItemFromNpc     Type = "player_looted_item_from_npc"
	TypePlayerLootedItemFromFixture Type = "player_looted_item_from_fixture"
	TypePlayerPickedUpItem          Type = "player_picked_up_item"
)

// PlayerHitNpc damages an npc. AttackerID is the player.
type PlayerHitNpc struct {
	NpcID      uuid.UUID `json:"npc_id"`
	Damage     int       `json:"damage"`
	AttackerID uuid.UUID `json:"attacker_id"`
}

// PlayerMissedNpc records a blow the npc dodged
type PlayerMissedNpc struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// PlayerBeatNpcCorpse records a blow against an npc that was already dead
type PlayerBeatNpcCorpse struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// PlayerKilledNpc marks the npc dead and counts the kill
type PlayerKilledNpc struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// PlayerMaxHealthChanged moves the player's maximum health
type PlayerMaxHealthChanged struct {
	Delta int `json:"delta"`
}

// PlayerHealed restores player health
type PlayerHealed struct {
	Amount int `json:"amount"`
}

// PlayerHitBySpell damages the player with a spell
type PlayerHitBySpell struct {
	Spell  entities.Spell `json:"spell"`
	Damage int            `json:"damage"`
}

// PlayerPoisoned replaces the player's poison
type PlayerPoisoned struct {
	Poison entities.Poison `json:"poison"`
}

// PlayerPoisonCured removes the player's poison
type PlayerPoisonCured struct{}

// PlayerPoisonDamaged is one tick of poison damage on the player
type PlayerPoisonDamaged struct {
	Damage int `json:"damage"`
}

// PlayerPoisonDurationChanged sets the turns of poison left; zero cures it
type PlayerPoisonDurationChanged struct {
	Duration int `json:"duration"`
}

// PlayerAuraGained puts an aura on the player
type PlayerAuraGained struct {
	Aura entities.Aura `json:"aura"`
}

// PlayerAuraDissipated removes an aura from the player
type PlayerAuraDissipated struct {
	Kind entities.AuraKind `json:"kind"`
}

// PlayerShieldAbsorbedDamage records the damage a shield soaked up
type PlayerShieldAbsorbedDamage struct {
	NpcID    uuid.UUID `json:"npc_id"`
	Absorbed int       `json:"absorbed"`
}

// PlayerResurrected brings the player back at full health
type PlayerResurrected struct {
	NpcID uuid.UUID `json:"npc_id"`
}

// PlayerDied is the end-of-game record of the player
type PlayerDied struct {
	Name      string             `json:"name"`
	Character entities.Character `json:"character"`
	Gold      int                `json:"gold"`
	Kills     int                `json:"kills"`
}

// PlayerInventoryScattered drops everything the player carried in a room
type PlayerInventoryScattered struct {
	RoomID uuid.UUID `json:"room_id"`
}

// PlayerSpellUsed spends one use of a spell
type PlayerSpellUsed struct {
	SpellID uuid.UUID `json:"spell_id"`
}

// PlayerSpellForgotten removes a spell with no uses left
type PlayerSpellForgotten struct {
	SpellID uuid.UUID `json:"spell_id"`
}

// PlayerSpellLearned adds a spell to the player's memory
type PlayerSpellLearned struct {
	Spell entities.LearnedSpell `json:"spell"`
}

// PlayerCastSpellOnNpc records a spell cast at an npc
type PlayerCastSpellOnNpc struct {
	SpellID uuid.UUID      `json:"spell_id"`
	Spell   entities.Spell `json:"spell"`
	NpcID   uuid.UUID      `json:"npc_id"`
}

// PlayerCastSpellOnPlayer records a spell cast at the player
type PlayerCastSpellOnPlayer struct {
	SpellID uuid.UUID      `json:"spell_id"`
	Spell   entities.Spell `json:"spell"`
}

// PlayerItemMoved re-seats a carried item at a new location
type PlayerItemMoved struct {
	ItemID     uuid.UUID         `json:"item_id"`
	Location   entities.Location `json:"location"`
	AtTheReady bool              `json:"at_the_ready"`
}

// PlayerItemUsed records that a consumable was used
type PlayerItemUsed struct {
	ItemID uuid.UUID `json:"item_id"`
}

// PlayerItemRemoved drops a carried item from existence
type PlayerItemRemoved struct {
	ItemID uuid.UUID `json:"item_id"`
}

// PlayerItemDestroyed destroys a carried item
type PlayerItemDestroyed struct {
	ItemID uuid.UUID `json:"item_id"`
}

// PlayerSoldItem trades a carried item for gold
type PlayerSoldItem struct {
	ItemID uuid.UUID `json:"item_id"`
	Price  int       `json:"price"`
}

// PlayerThrewItem moves a carried item to the room floor
type PlayerThrewItem struct {
	ItemID uuid.UUID `json:"item_id"`
	NpcID  uuid.UUID `json:"npc_id"`
}

// PlayerLootedItemFromNpc moves an item from an npc to the player's pack
type PlayerLootedItemFromNpc struct {
	NpcID  uuid.UUID `json:"npc_id"`
	ItemID uuid.UUID `json:"item_id"`
}

// PlayerLootedItemFromFixture moves an item from a fixture to the player's pack
type PlayerLootedItemFromFixture struct {
	FixtureID uuid.UUID `json:"fixture_id"`
	ItemID    uuid.UUID `json:"item_id"`
}

// PlayerPickedUpItem moves a loose item to the player's pack
type PlayerPickedUpItem struct {
	ItemID uuid.UUID `json:"item_id"`
}

func (PlayerHitNpc) Type() Type                { return TypePlayerHitNpc }
func (PlayerMissedNpc) Type() Type             { return TypePlayerMissedNpc }
func (PlayerBeatNpcCorpse) Type() Type         { return TypePlayerBeatNpcCorpse }
func (PlayerKilledNpc) Type() Type             { return TypePlayerKilledNpc }
func (PlayerMaxHealthChanged) Type() Type      { return TypePlayerMaxHealthChanged }
func (PlayerHealed) Type() Type                { return TypePlayerHealed }
func (PlayerHitBySpell) Type() Type            { return TypePlayerHitBySpell }
func (PlayerPoisoned) Type() Type              { return TypePlayerPoisoned }
func (PlayerPoisonCured) Type() Type           { return TypePlayerPoisonCured }
func (PlayerPoisonDamaged) Type() Type         { return TypePlayerPoisonDamaged }
func (PlayerPoisonDurationChanged) Type() Type { return TypePlayerPoisonDurationChanged }
func (PlayerAuraGained) Type() Type            { return TypePlayerAuraGained }
func (PlayerAuraDissipated) Type() Type        { return TypePlayerAuraDissipated }
func (PlayerShieldAbsorbedDamage) Type() Type  { return TypePlayerShieldAbsorbedDamage }
func (PlayerResurrected) Type() Type           { return TypePlayerResurrected }
func (PlayerDied) Type() Type                  { return TypePlayerDied }
func (PlayerInventoryScattered) Type() Type    { return TypePlayerInventoryScattered }
func (PlayerSpellUsed) Type() Type             { return TypePlayerSpellUsed }
func (PlayerSpellForgotten) Type() Type        { return TypePlayerSpellForgotten }
func (PlayerSpellLearned) Type() Type          { return TypePlayerSpellLearned }
func (PlayerCastSpellOnNpc) Type() Type        { return TypePlayerCastSpellOnNpc }
func (PlayerCastSpellOnPlayer) Type() Type     { return TypePlayerCastSpellOnPlayer }
func (PlayerItemMoved) Type() Type             { return TypePlayerItemMoved }
func (PlayerItemUsed) Type() Type              { return TypePlayerItemUsed }
func (PlayerItemRemoved) Type() Type           { return TypePlayerItemRemoved }
func (PlayerItemDestroyed) Type() Type         { return TypePlayerItemDestroyed }
func (PlayerSoldItem) Type() Type              { return TypePlayerSoldItem }
func (PlayerThrewItem) Type() Type             { return TypePlayerThrewItem }
func (PlayerLootedItemFromNpc) Type() Type     { return TypePlayerLootedItemFromNpc }
func (PlayerLootedItemFromFixture) Type() Type { return TypePlayerLootedItemFromFixture }
func (PlayerPickedUpItem) Type() Type          { return TypePlayerPickedUpItem }

func (PlayerHitNpc) event()                {}
func (PlayerMissedNpc) event()             {}
func (PlayerBeatNpcCorpse) event()         {}
func (PlayerKilledNpc) event()             {}
func (PlayerMaxHealthChanged) event()      {}
func (PlayerHealed) event()                {}
func (PlayerHitBySpell) event()            {}
func (PlayerPoisoned) event()              {}
func (PlayerPoisonCured) event()           {}
func (PlayerPoisonDamaged) event()         {}
func (PlayerPoisonDurationChanged) event() {}
func (PlayerAuraGained) event()            {}
func (PlayerAuraDissipated) event()        {}
func (PlayerShieldAbsorbedDamage) event()  {}
func (PlayerResurrected) event()           {}
func (PlayerDied) event()                  {}
func (PlayerInventoryScattered) event()    {}
func (PlayerSpellUsed) event()             {}
func (PlayerSpellForgotten) event()        {}
func (PlayerSpellLearned) event()          {}
func (PlayerCastSpellOnNpc) event()        {}
func (PlayerCastSpellOnPlayer) event()     {}
func (PlayerItemMoved) event()             {}
func (PlayerItemUsed) event()              {}
func (PlayerItemRemoved) event()           {}
func (PlayerItemDestroyed) event()         {}
func (PlayerSoldItem) event()              {}
func (PlayerThrewItem) event()             {}
func (PlayerLootedItemFromNpc) event()     {}
func (PlayerLootedItemFromFixture) event() {}
func (PlayerPickedUpItem) event()          {}
