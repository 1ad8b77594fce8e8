package entities

import (
	"github.com/google/uuid"
)

// FixtureKind is the sort of furniture a fixture is
type FixtureKind string

// Fixture kinds
const (
	FixtureKindChest      FixtureKind = "chest"
	FixtureKindBarrel     FixtureKind = "barrel"
	FixtureKindCrate      FixtureKind = "crate"
	FixtureKindWardrobe   FixtureKind = "wardrobe"
	FixtureKindCoffin     FixtureKind = "coffin"
	FixtureKindBookshelf  FixtureKind = "bookshelf"
	FixtureKindTable      FixtureKind = "table"
	FixtureKindWeaponRack FixtureKind = "weapon_rack"
	FixtureKindAltar      FixtureKind = "altar"
)

// HiddenCompartment holds items that stay invisible until discovered
type HiddenCompartment struct {
	Items []Item `json:"items"`
}

// Fixture is a piece of furniture that may hold items
type Fixture struct {
	ID                uuid.UUID          `json:"id"`
	Kind              FixtureKind        `json:"kind"`
	Name              string             `json:"name"`
	Items             []Item             `json:"items"`
	CanBeOpened       bool               `json:"can_be_opened"`
	Open              bool               `json:"open"`
	HiddenCompartment *HiddenCompartment `json:"hidden_compartment,omitempty"`
}

// ContentsVisible reports whether the main contents can be seen
func (f Fixture) ContentsVisible() bool {
	return !f.CanBeOpened || f.Open
}

// ReachableItems lists the items the player can take right now
func (f Fixture) ReachableItems(compartmentKnown bool) []Item {
	var out []Item
	if f.ContentsVisible() {
		out = append(out, f.Items...)
	}
	if compartmentKnown && f.HiddenCompartment != nil {
		out = append(out, f.HiddenCompartment.Items...)
	}
	return out
}

// TakeItem removes an item from the fixture or its hidden compartment
func (f *Fixture) TakeItem(id uuid.UUID) (Item, bool) {
	var (
		item Item
		ok   bool
	)
	if f.Items, item, ok = RemoveItem(f.Items, id); ok {
		return item, true
	}
	if f.HiddenCompartment != nil {
		if f.HiddenCompartment.Items, item, ok = RemoveItem(f.HiddenCompartment.Items, id); ok {
			return item, true
		}
	}
	return Item{}, false
}

// Clone returns a deep copy
func (f Fixture) Clone() Fixture {
	f.Items = CloneItems(f.Items)
	if f.HiddenCompartment != nil {
		f.HiddenCompartment = &HiddenCompartment{Items: CloneItems(f.HiddenCompartment.Items)}
	}
	return f
}

// FixturePosition places a fixture in the room with a short description
type FixturePosition struct {
	Fixture  Fixture `json:"fixture"`
	Position string  `json:"position"`
}

// NpcPosition places an npc in the room. Position is cleared once the npc dies.
type NpcPosition struct {
	NPC      NonPlayerCharacter `json:"npc"`
	Position string             `json:"position,omitempty"`
}

// ExitKind is the sort of passage an exit is
type ExitKind string

// Exit kinds
const (
	ExitKindDoor      ExitKind = "door"
	ExitKindArchway   ExitKind = "archway"
	ExitKindStairwell ExitKind = "stairwell"
	ExitKindHole      ExitKind = "hole"
)

// Exit is a passage out of a room
type Exit struct {
	ID   uuid.UUID `json:"id"`
	Kind ExitKind  `json:"kind"`
}

// Room is one place in the dungeon
type Room struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Fixtures   []FixturePosition `json:"fixtures"`
	Npcs       []NpcPosition     `json:"npcs"`
	Exits      []Exit            `json:"exits"`
	LooseItems []Item            `json:"loose_items"`
}

// FindNpc looks up an npc in the room
func (r *Room) FindNpc(id uuid.UUID) (*NpcPosition, bool) {
	for i := range r.Npcs {
		if r.Npcs[i].NPC.ID == id {
			return &r.Npcs[i], true
		}
	}
	return nil, false
}

// FindFixture looks up a fixture in the room
func (r *Room) FindFixture(id uuid.UUID) (*FixturePosition, bool) {
	for i := range r.Fixtures {
		if r.Fixtures[i].Fixture.ID == id {
			return &r.Fixtures[i], true
		}
	}
	return nil, false
}

// HasExit reports whether the room has the exit
func (r *Room) HasExit(id uuid.UUID) bool {
	for _, e := range r.Exits {
		if e.ID == id {
			return true
		}
	}
	return false
}

// FirstLivingNpc is the first npc in the room that is still alive
func (r *Room) FirstLivingNpc() (*NpcPosition, bool) {
	for i := range r.Npcs {
		if !r.Npcs[i].NPC.IsDead() {
			return &r.Npcs[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy
func (r Room) Clone() Room {
	if r.Fixtures != nil {
		fixtures := make([]FixturePosition, len(r.Fixtures))
		for i, fp := range r.Fixtures {
			fixtures[i] = FixturePosition{Fixture: fp.Fixture.Clone(), Position: fp.Position}
		}
		r.Fixtures = fixtures
	}
	if r.Npcs != nil {
		npcs := make([]NpcPosition, len(r.Npcs))
		for i, np := range r.Npcs {
			npcs[i] = NpcPosition{NPC: np.NPC.Clone(), Position: np.Position}
		}
		r.Npcs = npcs
	}
	if r.Exits != nil {
		exits := make([]Exit, len(r.Exits))
		copy(exits, r.Exits)
		r.Exits = exits
	}
	r.LooseItems = CloneItems(r.LooseItems)
	return r
}
