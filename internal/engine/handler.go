package engine

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

// handle resolves the primary action. It reads state and player and never
// writes to them.
func (e *engine) handle(a actions.Action, s *entities.GameState, p *entities.PlayerCharacter) ([]events.Event, error) {
	switch act := a.(type) {
	case actions.Attack:
		return e.attack(act, s, p)
	case actions.Exit:
		return e.exit(act, s)
	case actions.LootNpc:
		return lootNpc(act, s)
	case actions.LootFixture:
		return lootFixture(act, s)
	case actions.PickUpItem:
		return pickUpItem(act, s)
	case actions.InspectNpc:
		return inspectNpc(act, s)
	case actions.InspectFixture:
		return inspectFixture(act, s)
	case actions.OpenFixture:
		return openFixture(act, s)
	case actions.CastSpellOnNpc:
		return e.castSpellOnNpc(act, s, p)
	case actions.CastSpellOnPlayer:
		return e.castSpellOnPlayer(act, p)
	case actions.MoveItem:
		return moveItem(act, p)
	case actions.Sell:
		return sell(act, p)
	case actions.Throw:
		return e.throw(act, s, p)
	case actions.UseItem:
		return e.useItem(act, p)
	}
	return nil, errors.InvalidArgumentf("unsupported action %T", a)
}

// canonicalIDLen is the length of the hyphenated 8-4-4-4-12 form
const canonicalIDLen = 36

// parseID accepts only the canonical hyphenated form. uuid.Parse also takes
// urn, braced and bare hex forms, which never cross the boundary.
func parseID(raw string) (uuid.UUID, error) {
	if len(raw) != canonicalIDLen {
		return uuid.Nil, errors.InvalidID(raw)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.InvalidID(raw)
	}
	return id, nil
}

func findNpc(s *entities.GameState, raw string) (*entities.NonPlayerCharacter, error) {
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	pos, ok := s.CurrentRoom().FindNpc(id)
	if !ok {
		return nil, errors.NpcNotFound(raw)
	}
	return &pos.NPC, nil
}

func findFixture(s *entities.GameState, raw string) (*entities.Fixture, error) {
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	pos, ok := s.CurrentRoom().FindFixture(id)
	if !ok {
		return nil, errors.FixtureNotFound(raw)
	}
	return &pos.Fixture, nil
}

func findCarried(p *entities.PlayerCharacter, raw string) (entities.CharacterItem, error) {
	id, err := parseID(raw)
	if err != nil {
		return entities.CharacterItem{}, err
	}
	ci, ok := p.Character.Inventory.Find(id)
	if !ok {
		return entities.CharacterItem{}, errors.ItemNotFound(raw)
	}
	return ci, nil
}

func findSpell(p *entities.PlayerCharacter, raw string) (entities.LearnedSpell, error) {
	id, err := parseID(raw)
	if err != nil {
		return entities.LearnedSpell{}, err
	}
	spell, ok := p.Character.Spells.Find(id)
	if !ok {
		return entities.LearnedSpell{}, errors.SpellNotFound(raw)
	}
	return spell, nil
}
