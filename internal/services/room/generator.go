package room

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
)

// Config holds the dependencies of the table driven generator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type generator struct {
	roller dice.Roller
	ids    idgen.Generator
	title  cases.Caser
}

// New creates a generator that draws rooms from fixed content tables
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &generator{
		roller: cfg.Roller,
		ids:    cfg.IDGenerator,
		title:  cases.Title(language.English),
	}, nil
}

// GenerateRoom builds a room. Dice failures fall back to the lowest roll.
func (g *generator) GenerateRoom(input *GenerateRoomInput) *GenerateRoomOutput {
	if input == nil {
		input = &GenerateRoomInput{}
	}
	room := entities.Room{
		ID:   g.ids.Generate(),
		Name: g.title.String(fmt.Sprintf("%s %s", pick(g, roomAdjectives), pick(g, roomNouns))),
	}

	if input.EntranceExitID != uuid.Nil {
		room.Exits = append(room.Exits, entities.Exit{ID: input.EntranceExitID, Kind: pick(g, exitKinds)})
	}
	for i := g.roll(3); i > 0; i-- {
		room.Exits = append(room.Exits, entities.Exit{ID: g.ids.Generate(), Kind: pick(g, exitKinds)})
	}

	for i := g.roll(4) - 1; i > 0; i-- {
		room.Fixtures = append(room.Fixtures, entities.FixturePosition{
			Fixture:  g.fixture(),
			Position: pick(g, positions),
		})
	}

	for i := g.npcCount(input.DangerLevel); i > 0; i-- {
		room.Npcs = append(room.Npcs, entities.NpcPosition{
			NPC:      g.npc(input.DangerLevel),
			Position: pick(g, positions),
		})
	}

	slog.Debug("generated room",
		"room_id", room.ID,
		"name", room.Name,
		"npcs", len(room.Npcs),
		"fixtures", len(room.Fixtures),
		"exits", len(room.Exits),
		"danger_level", input.DangerLevel)

	return &GenerateRoomOutput{Room: room}
}

func (g *generator) npcCount(danger int) int {
	limit := 2 + danger/3
	if limit > 4 {
		limit = 4
	}
	return g.roll(limit+1) - 1
}

func (g *generator) npc(danger int) entities.NonPlayerCharacter {
	// Higher danger shifts the draw toward the stronger end of the species list.
	span := len(entities.AllSpecies)
	idx := g.roll(span) - 1 + danger/4
	if idx >= span {
		idx = span - 1
	}
	species := entities.AllSpecies[idx]

	modifier := entities.LifeModifierNone
	switch r := g.roll(100); {
	case r <= 5:
		modifier = entities.LifeModifierShadow
	case r <= 15:
		modifier = entities.LifeModifierSkeleton
	}

	name := pick(g, npcNames)
	if modifier != entities.LifeModifierNone {
		name = fmt.Sprintf("%s the %s", name, modifier)
	}

	character := entities.NewCharacter(species, modifier)
	character.ChangeMaxHealth(danger)
	character.Heal(danger)

	for i := g.roll(3) - 1; i > 0; i-- {
		character.Inventory.Put(g.weapon(), entities.LocationPack)
	}
	if g.roll(100) <= 30 {
		character.Inventory.Put(g.armor(), entities.LocationBody)
	}
	if g.roll(100) <= 40 {
		character.Inventory.Put(g.treasure(), entities.LocationPack)
	}

	return entities.NonPlayerCharacter{
		ID:        g.ids.Generate(),
		Name:      g.title.String(name),
		Character: character,
	}
}

func (g *generator) fixture() entities.Fixture {
	tmpl := pick(g, fixtureTable)
	f := entities.Fixture{
		ID:          g.ids.Generate(),
		Kind:        tmpl.kind,
		Name:        g.title.String(string(tmpl.kind)),
		CanBeOpened: tmpl.openable,
	}
	for i := g.roll(3) - 1; i > 0; i-- {
		f.Items = append(f.Items, g.item())
	}
	if g.roll(100) <= 20 {
		f.HiddenCompartment = &entities.HiddenCompartment{Items: []entities.Item{g.item()}}
	}
	return f
}

func (g *generator) item() entities.Item {
	switch g.roll(6) {
	case 1:
		return g.weapon()
	case 2:
		return g.armor()
	case 3:
		return g.potion()
	case 4:
		return g.scroll()
	case 5:
		return g.antidote()
	default:
		return g.treasure()
	}
}

func (g *generator) weapon() entities.Item {
	tmpl := pick(g, weaponTable)
	attack := tmpl.attack
	return entities.Item{
		ID:     g.ids.Generate(),
		Kind:   entities.ItemKindWeapon,
		Name:   g.title.String(tmpl.name),
		Value:  tmpl.value,
		Attack: &attack,
		Effect: tmpl.effect,
	}
}

func (g *generator) armor() entities.Item {
	tmpl := pick(g, armorTable)
	defense := tmpl.defense
	return entities.Item{
		ID:      g.ids.Generate(),
		Kind:    entities.ItemKindArmor,
		Name:    g.title.String(tmpl.name),
		Value:   tmpl.value,
		Defense: &defense,
	}
}

func (g *generator) potion() entities.Item {
	return entities.Item{
		ID:    g.ids.Generate(),
		Kind:  entities.ItemKindPotion,
		Name:  "Healing Potion",
		Value: 10,
		Heal:  &entities.Attack{Dice: 2, Modifier: 2},
	}
}

func (g *generator) antidote() entities.Item {
	return entities.Item{
		ID:    g.ids.Generate(),
		Kind:  entities.ItemKindAntidote,
		Name:  "Antidote",
		Value: 8,
	}
}

func (g *generator) scroll() entities.Item {
	spell := pick(g, entities.AllSpells)
	return entities.Item{
		ID:        g.ids.Generate(),
		Kind:      entities.ItemKindScroll,
		Name:      g.title.String("scroll of " + strings.ReplaceAll(string(spell), "_", " ")),
		Value:     25,
		Spell:     spell,
		SpellUses: g.roll(3),
	}
}

func (g *generator) treasure() entities.Item {
	return entities.Item{
		ID:    g.ids.Generate(),
		Kind:  entities.ItemKindTreasure,
		Name:  g.title.String(pick(g, treasureTable)),
		Value: 10 * g.roll(10),
	}
}

// roll returns a value in [1, size], or 1 when the roller fails
func (g *generator) roll(size int) int {
	if size <= 1 {
		return 1
	}
	v, err := g.roller.Roll(size)
	if err != nil || v < 1 || v > size {
		slog.Warn("room generator roll failed", "size", size, "value", v, "error", err)
		return 1
	}
	return v
}

func pick[T any](g *generator, options []T) T {
	return options[g.roll(len(options))-1]
}
