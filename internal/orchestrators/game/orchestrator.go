// Package game implements the game orchestrator: it loads a session,
// runs one action through the engine, journals the events and stores the
// next snapshot.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
)

const tracerName = "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"

// Service defines the interface for game operations
type Service interface {
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)
	PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionOutput, error)
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
}

// EventPublisher receives every committed batch of events
type EventPublisher interface {
	Publish(ctx context.Context, input *rpgtoolkit.PublishInput) error
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Engine        engine.Engine
	RoomGenerator room.Service
	SessionRepo   session.Repository
	EventLog      eventlog.Repository
	// Publisher is optional; without one events are only journaled
	Publisher     EventPublisher
	ViewConverter conversion.ViewConverter
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.RoomGenerator == nil {
		vb.RequiredField("RoomGenerator")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.EventLog == nil {
		vb.RequiredField("EventLog")
	}
	if c.ViewConverter == nil {
		vb.RequiredField("ViewConverter")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine    engine.Engine
	rooms     room.Service
	sessions  session.Repository
	eventLog  eventlog.Repository
	publisher EventPublisher
	converter conversion.ViewConverter
	idGen     idgen.Generator
	clock     clock.Clock
	title     cases.Caser
	tracer    trace.Tracer

	locks gameLocks
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		engine:    cfg.Engine,
		rooms:     cfg.RoomGenerator,
		sessions:  cfg.SessionRepo,
		eventLog:  cfg.EventLog,
		publisher: cfg.Publisher,
		converter: cfg.ViewConverter,
		idGen:     cfg.IDGenerator,
		clock:     clk,
		title:     cases.Title(language.English),
		tracer:    otel.Tracer(tracerName),
	}, nil
}

// StartGame creates a player, generates the first room and stores the session
func (o *orchestrator) StartGame(ctx context.Context, input *StartGameInput) (_ *StartGameOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "game.StartGame")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.PlayerName)
	species := entities.Species(strings.ToLower(strings.TrimSpace(input.Species)))
	if species == "" {
		species = entities.SpeciesHuman
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerName", name, vb)
	if !species.Valid() {
		vb.Field("Species", "is not a known species")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	player := newPlayer(o.idGen, o.title.String(name), species)
	start := o.rooms.GenerateRoom(&room.GenerateRoomInput{EntranceExitID: uuid.Nil})

	gameID := o.idGen.Generate().String()
	span.SetAttributes(
		attribute.String("game.id", gameID),
		attribute.String("player.species", string(species)),
	)

	now := o.clock.Now()
	created, err := o.sessions.Create(ctx, session.CreateInput{
		Session: &session.Session{
			GameID:    gameID,
			State:     entities.NewGameState(start.Room),
			Player:    player,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Game started",
		"game_id", gameID,
		"player", player.Name,
		"species", species,
		"room", start.Room.Name)

	return &StartGameOutput{
		GameID: gameID,
		View:   o.converter.ToGameView(&created.Session.State, &created.Session.Player),
	}, nil
}

// PerformAction runs one action against the stored snapshot. Nothing is
// stored when the engine rejects the action.
func (o *orchestrator) PerformAction(ctx context.Context, input *PerformActionInput) (_ *PerformActionOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "game.PerformAction")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("GameID", input.GameID, vb)
	if input.Action == nil {
		vb.RequiredField("Action")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("game.id", input.GameID),
		attribute.String("action.kind", string(input.Action.Kind())),
	)

	unlock := o.locks.lock(input.GameID)
	defer unlock()

	got, err := o.sessions.Get(ctx, session.GetInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}
	current := got.Session

	result, err := o.engine.HandleAction(ctx, &engine.HandleActionInput{
		Action: input.Action,
		State:  current.State,
		Player: current.Player,
	})
	if err != nil {
		slog.Info("Action rejected",
			"game_id", input.GameID,
			"action", input.Action.Kind(),
			"kind", errors.GetKind(err),
			"error", err)
		return nil, err
	}

	next := *current
	next.State = result.State
	next.Player = result.Player

	var first int64
	if len(result.Events) > 0 {
		appended, err := o.eventLog.Append(ctx, eventlog.AppendInput{
			GameID: input.GameID,
			Events: result.Events,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to journal events")
		}
		first = appended.FirstSequence
		next.Sequence = appended.LastSequence
	}

	if _, err := o.sessions.Update(ctx, session.UpdateInput{Session: &next}); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	span.SetAttributes(attribute.Int("events.count", len(result.Events)))
	slog.Info("Action performed",
		"game_id", input.GameID,
		"action", input.Action.Kind(),
		"events", len(result.Events),
		"sequence", next.Sequence,
		"player_dead", next.Player.IsDead())

	if o.publisher != nil && len(result.Events) > 0 {
		if err := o.publisher.Publish(ctx, &rpgtoolkit.PublishInput{
			GameID: input.GameID,
			Player: &next.Player,
			Events: result.Events,
		}); err != nil {
			// The action is already committed.
			slog.Warn("Failed to publish events",
				"game_id", input.GameID,
				"error", err)
		}
	}

	return &PerformActionOutput{
		Events:        result.Events,
		FirstSequence: first,
		View:          o.converter.ToGameView(&next.State, &next.Player),
	}, nil
}

// GetGame returns the player's view of a stored game
func (o *orchestrator) GetGame(ctx context.Context, input *GetGameInput) (_ *GetGameOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "game.GetGame")
	defer func() { endSpan(span, err) }()

	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game id is required")
	}
	span.SetAttributes(attribute.String("game.id", input.GameID))

	got, err := o.sessions.Get(ctx, session.GetInput{GameID: input.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}

	return &GetGameOutput{
		View:     o.converter.ToGameView(&got.Session.State, &got.Session.Player),
		Sequence: got.Session.Sequence,
	}, nil
}

// ListEvents pages through a game's journal
func (o *orchestrator) ListEvents(ctx context.Context, input *ListEventsInput) (_ *ListEventsOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "game.ListEvents")
	defer func() { endSpan(span, err) }()

	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game id is required")
	}
	if input.AfterSequence < 0 {
		return nil, errors.InvalidArgumentf("after sequence must not be negative, got %d", input.AfterSequence)
	}
	span.SetAttributes(attribute.String("game.id", input.GameID))

	listed, err := o.eventLog.List(ctx, eventlog.ListInput{
		GameID:        input.GameID,
		AfterSequence: input.AfterSequence,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return &ListEventsOutput{Records: listed.Records}, nil
}

// EndGame deletes the session. The journal is kept.
func (o *orchestrator) EndGame(ctx context.Context, input *EndGameInput) (_ *EndGameOutput, err error) {
	ctx, span := o.tracer.Start(ctx, "game.EndGame")
	defer func() { endSpan(span, err) }()

	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game id is required")
	}
	span.SetAttributes(attribute.String("game.id", input.GameID))

	unlock := o.locks.lock(input.GameID)
	defer unlock()

	if _, err := o.sessions.Delete(ctx, session.DeleteInput{GameID: input.GameID}); err != nil {
		return nil, errors.Wrapf(err, "failed to end game %s", input.GameID)
	}

	slog.Info("Game ended", "game_id", input.GameID)
	return &EndGameOutput{}, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
