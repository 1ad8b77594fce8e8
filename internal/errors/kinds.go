package errors

// Kind is the closed set of reasons a player action can be rejected
type Kind string

// Game failure kinds
const (
	KindExitNotFound           Kind = "EXIT_NOT_FOUND"
	KindFixtureNotFound        Kind = "FIXTURE_NOT_FOUND"
	KindItemNotFound           Kind = "ITEM_NOT_FOUND"
	KindNpcNotFound            Kind = "NPC_NOT_FOUND"
	KindSpellNotFound          Kind = "SPELL_NOT_FOUND"
	KindInvalidID              Kind = "INVALID_ID"
	KindTooManyWeaponsEquipped Kind = "TOO_MANY_WEAPONS_EQUIPPED"
	KindItemNotDirectlyUsable  Kind = "ITEM_NOT_DIRECTLY_USABLE"
	KindPlayerIsDead           Kind = "PLAYER_IS_DEAD"
)

// metaID is the metadata key holding the identifier a failure refers to
const metaID = "id"

// ExitNotFound is returned when an exit is not part of the current room
func ExitNotFound(id string) *Error {
	return NotFoundf("exit %s not found", id).WithKind(KindExitNotFound).WithMeta(metaID, id)
}

// FixtureNotFound is returned when a fixture is not part of the current room
func FixtureNotFound(id string) *Error {
	return NotFoundf("fixture %s not found", id).WithKind(KindFixtureNotFound).WithMeta(metaID, id)
}

// ItemNotFound is returned when an item cannot be reached
func ItemNotFound(id string) *Error {
	return NotFoundf("item %s not found", id).WithKind(KindItemNotFound).WithMeta(metaID, id)
}

// NpcNotFound is returned when an npc is not in the current room
func NpcNotFound(id string) *Error {
	return NotFoundf("npc %s not found", id).WithKind(KindNpcNotFound).WithMeta(metaID, id)
}

// SpellNotFound is returned when the player does not remember a spell
func SpellNotFound(id string) *Error {
	return NotFoundf("spell %s not found", id).WithKind(KindSpellNotFound).WithMeta(metaID, id)
}

// InvalidID is returned when an identifier is not a canonical UUID
func InvalidID(id string) *Error {
	return InvalidArgumentf("invalid id %q", id).WithKind(KindInvalidID).WithMeta(metaID, id)
}

// TooManyWeaponsEquipped is returned when a third weapon would be readied
func TooManyWeaponsEquipped(id string) *Error {
	return FailedPreconditionf("cannot ready item %s: two weapons already at the ready", id).
		WithKind(KindTooManyWeaponsEquipped).WithMeta(metaID, id)
}

// ItemNotDirectlyUsable is returned when using an item that is not consumable
func ItemNotDirectlyUsable(id string) *Error {
	return FailedPreconditionf("item %s cannot be used directly", id).
		WithKind(KindItemNotDirectlyUsable).WithMeta(metaID, id)
}

// PlayerIsDead is returned for any action attempted by a dead player
func PlayerIsDead(id string) *Error {
	return FailedPreconditionf("player %s is dead", id).WithKind(KindPlayerIsDead).WithMeta(metaID, id)
}
