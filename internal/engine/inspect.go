package engine

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// inspectNpc reveals whatever is not yet known about the npc
func inspectNpc(a actions.InspectNpc, s *entities.GameState) ([]events.Event, error) {
	npc, err := findNpc(s, a.NpcID)
	if err != nil {
		return nil, err
	}

	out := []events.Event{events.NpcInspected{NpcID: npc.ID}}
	known := s.KnowNpc(npc.ID)
	if !known.NameKnown {
		out = append(out, events.NpcNameDiscovered{NpcID: npc.ID})
	}
	if !known.HealthKnown {
		out = append(out, events.NpcHealthDiscovered{NpcID: npc.ID})
	}
	if !known.InventoryKnown {
		out = append(out, events.NpcInventoryDiscovered{NpcID: npc.ID})
	}
	return out, nil
}

// inspectFixture searches a fixture. Visible contents are revealed and a
// hidden compartment is always found.
func inspectFixture(a actions.InspectFixture, s *entities.GameState) ([]events.Event, error) {
	fixture, err := findFixture(s, a.FixtureID)
	if err != nil {
		return nil, err
	}

	out := []events.Event{events.FixtureInspected{FixtureID: fixture.ID}}
	known := s.KnowFixture(fixture.ID)
	if fixture.ContentsVisible() && !known.ContentsKnown {
		out = append(out, events.FixtureContentsRevealed{FixtureID: fixture.ID})
	}
	if fixture.HiddenCompartment != nil && !known.HiddenCompartmentKnown {
		out = append(out, events.FixtureHiddenCompartmentFound{FixtureID: fixture.ID})
	}
	return out, nil
}

func openFixture(a actions.OpenFixture, s *entities.GameState) ([]events.Event, error) {
	fixture, err := findFixture(s, a.FixtureID)
	if err != nil {
		return nil, err
	}

	var out []events.Event
	if fixture.CanBeOpened && !fixture.Open {
		out = append(out, events.FixtureOpened{FixtureID: fixture.ID})
	}
	if !s.KnowFixture(fixture.ID).ContentsKnown {
		out = append(out, events.FixtureContentsRevealed{FixtureID: fixture.ID})
	}
	return out, nil
}
