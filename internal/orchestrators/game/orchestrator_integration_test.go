package game_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

func TestOrchestrator_Integration(t *testing.T) {
	ctx := context.Background()
	clk := &clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	ids := idgen.NewSequential("integration")
	roller := rng.NewSeeded(42)

	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	sessions, err := session.NewRedisRepository(&session.Config{Client: client, Clock: clk})
	require.NoError(t, err)

	journal, err := eventlog.NewSQLiteRepository(&eventlog.Config{Path: ":memory:", Clock: clk})
	require.NoError(t, err)
	defer func() { _ = journal.Close() }()

	generator, err := room.New(&room.Config{Roller: roller, IDGenerator: ids})
	require.NoError(t, err)

	eng, err := engine.New(&engine.Config{Roller: roller, RoomGenerator: generator})
	require.NoError(t, err)

	bus := toolkitevents.NewBus()
	var moved atomic.Int32
	bus.SubscribeFunc(rpgtoolkit.ToolkitType(events.TypePlayerItemMoved), 0,
		func(_ context.Context, e toolkitevents.Event) error {
			moved.Add(1)
			return nil
		})

	publisher, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	require.NoError(t, err)

	svc, err := game.NewOrchestrator(&game.Config{
		Engine:        eng,
		RoomGenerator: generator,
		SessionRepo:   sessions,
		EventLog:      journal,
		Publisher:     publisher,
		ViewConverter: conversion.NewViewConverter(),
		IDGenerator:   ids,
		Clock:         clk,
	})
	require.NoError(t, err)

	started, err := svc.StartGame(ctx, &game.StartGameInput{PlayerName: "ada", Species: "elf"})
	require.NoError(t, err)
	require.Equal(t, "Ada", started.View.Player.Name)

	var dagger conversion.ItemView
	for _, item := range started.View.Player.Items {
		if item.Kind == entities.ItemKindWeapon {
			dagger = item
		}
	}
	require.Equal(t, entities.LocationHand, dagger.Location)

	performed, err := svc.PerformAction(ctx, &game.PerformActionInput{
		GameID: started.GameID,
		Action: actions.MoveItem{ItemID: dagger.ID.String(), Location: string(entities.LocationPack)},
	})
	require.NoError(t, err)
	require.NotEmpty(t, performed.Events)
	require.Equal(t, int64(1), performed.FirstSequence)
	var wantMoved int32
	for _, e := range performed.Events {
		if e.Type() == events.TypePlayerItemMoved {
			wantMoved++
		}
	}
	// a reaction can kill the player before the move happens
	if !performed.View.Player.Dead {
		require.Contains(t, performed.Events, events.Event(events.PlayerItemMoved{ItemID: dagger.ID, Location: entities.LocationPack}))
	}

	got, err := svc.GetGame(ctx, &game.GetGameInput{GameID: started.GameID})
	require.NoError(t, err)
	require.Equal(t, int64(len(performed.Events)), got.Sequence)

	listed, err := svc.ListEvents(ctx, &game.ListEventsInput{GameID: started.GameID})
	require.NoError(t, err)
	require.Len(t, listed.Records, len(performed.Events))
	for i, record := range listed.Records {
		require.Equal(t, int64(i+1), record.Sequence)
		require.Equal(t, performed.Events[i], record.Event)
	}

	require.Eventually(t, func() bool { return moved.Load() == wantMoved }, time.Second, 10*time.Millisecond)

	_, err = svc.EndGame(ctx, &game.EndGameInput{GameID: started.GameID})
	require.NoError(t, err)

	_, err = svc.GetGame(ctx, &game.GetGameInput{GameID: started.GameID})
	require.Error(t, err)
}
