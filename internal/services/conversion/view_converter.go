// Package conversion provides centralized conversion logic between the
// authoritative game state and the views handed to players.
package conversion

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

// viewConverter is the concrete implementation of ViewConverter
type viewConverter struct{}

// NewViewConverter creates a new view converter instance
func NewViewConverter() ViewConverter {
	return &viewConverter{}
}

// ToGameView converts the current room and the player into a view
func (c *viewConverter) ToGameView(state *entities.GameState, player *entities.PlayerCharacter) *GameView {
	if state == nil || player == nil {
		return nil
	}

	view := &GameView{
		Player:      c.ToPlayerView(player),
		DangerLevel: state.DangerLevel,
	}
	for _, visited := range state.VisitedRooms {
		if visited {
			view.RoomsVisited++
		}
	}
	if room, ok := state.World.Room(state.CurrentRoomID); ok {
		view.Room = toRoomView(state, room)
	}
	return view
}

// ToPlayerView converts the player
func (c *viewConverter) ToPlayerView(player *entities.PlayerCharacter) *PlayerView {
	if player == nil {
		return nil
	}

	ch := player.Character
	view := &PlayerView{
		ID:           player.ID,
		Name:         player.Name,
		Species:      ch.Species,
		LifeModifier: ch.LifeModifier,
		Health:       ch.Stats.Health,
		MaxHealth:    ch.Stats.MaxHealth,
		Gold:         player.Gold,
		Kills:        player.Kills,
		Dead:         player.IsDead(),
		Items:        toCharacterItemViews(ch.Inventory.All()),
	}
	if ch.Effects.IsPoisoned() {
		poison := *ch.Effects.Poison
		view.Poison = &poison
	}
	for _, kind := range []entities.AuraKind{entities.AuraShield, entities.AuraRetribution, entities.AuraResurrection} {
		if ch.Effects.Aura(kind) != nil {
			view.Auras = append(view.Auras, kind)
		}
	}
	for _, s := range ch.Spells.Spells {
		view.Spells = append(view.Spells, SpellView{ID: s.ID, Spell: s.Spell, Uses: s.Uses})
	}
	return view
}

func toRoomView(state *entities.GameState, room *entities.Room) *RoomView {
	view := &RoomView{
		ID:         room.ID,
		Name:       room.Name,
		Exits:      make([]ExitView, 0, len(room.Exits)),
		Fixtures:   make([]FixtureView, 0, len(room.Fixtures)),
		Npcs:       make([]NpcView, 0, len(room.Npcs)),
		LooseItems: toItemViews(room.LooseItems),
	}

	for _, exit := range room.Exits {
		_, explored := state.World.Exits[exit.ID].FarSide(room.ID)
		view.Exits = append(view.Exits, ExitView{ID: exit.ID, Kind: exit.Kind, Explored: explored})
	}

	for _, pos := range room.Npcs {
		view.Npcs = append(view.Npcs, toNpcView(pos, state.KnowNpc(pos.NPC.ID)))
	}

	for _, pos := range room.Fixtures {
		view.Fixtures = append(view.Fixtures, toFixtureView(pos, state.KnowFixture(pos.Fixture.ID)))
	}

	return view
}

func toNpcView(pos entities.NpcPosition, known entities.NpcKnowledge) NpcView {
	npc := pos.NPC
	view := NpcView{
		ID:           npc.ID,
		Species:      npc.Character.Species,
		LifeModifier: npc.Character.LifeModifier,
		Position:     pos.Position,
		Dead:         npc.IsDead(),
	}
	if known.NameKnown {
		view.Name = npc.Name
	}
	if known.HealthKnown {
		health, maxHealth := npc.Character.Stats.Health, npc.Character.Stats.MaxHealth
		view.Health = &health
		view.MaxHealth = &maxHealth
	}
	if known.InventoryKnown {
		view.Items = toCharacterItemViews(npc.Character.Inventory.All())
		if view.Items == nil {
			view.Items = []ItemView{}
		}
	}
	return view
}

func toFixtureView(pos entities.FixturePosition, known entities.FixtureKnowledge) FixtureView {
	f := pos.Fixture
	view := FixtureView{
		ID:          f.ID,
		Kind:        f.Kind,
		Name:        f.Name,
		Position:    pos.Position,
		CanBeOpened: f.CanBeOpened,
		Open:        f.Open,
	}
	if known.ContentsKnown && f.ContentsVisible() {
		view.Items = toItemViews(f.Items)
		if view.Items == nil {
			view.Items = []ItemView{}
		}
	}
	if known.HiddenCompartmentKnown && f.HiddenCompartment != nil {
		view.HiddenItems = toItemViews(f.HiddenCompartment.Items)
		if view.HiddenItems == nil {
			view.HiddenItems = []ItemView{}
		}
	}
	return view
}

func toItemViews(items []entities.Item) []ItemView {
	if len(items) == 0 {
		return nil
	}
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		out = append(out, ItemView{ID: item.ID, Kind: item.Kind, Name: item.Name, Value: item.Value})
	}
	return out
}

func toCharacterItemViews(items []entities.CharacterItem) []ItemView {
	if len(items) == 0 {
		return nil
	}
	out := make([]ItemView, 0, len(items))
	for _, ci := range items {
		out = append(out, ItemView{
			ID:         ci.Item.ID,
			Kind:       ci.Item.Kind,
			Name:       ci.Item.Name,
			Value:      ci.Item.Value,
			Location:   ci.Location,
			AtTheReady: ci.AtTheReady,
		})
	}
	return out
}
