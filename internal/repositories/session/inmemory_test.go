package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	clk := &clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := session.NewInMemory(clk)

	var _ session.Repository = repo

	sess := &session.Session{
		GameID: "game-1",
		State:  testutils.CreateTestState(testutils.CreateTestRoom()),
		Player: testutils.CreateTestPlayer(),
	}

	t.Run("create stamps times", func(t *testing.T) {
		out, err := repo.Create(ctx, session.CreateInput{Session: sess})
		require.NoError(t, err)
		assert.Equal(t, clk.At, out.Session.CreatedAt)
		assert.Equal(t, clk.At, out.Session.UpdatedAt)
	})

	t.Run("create twice", func(t *testing.T) {
		_, err := repo.Create(ctx, session.CreateInput{Session: sess})
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
	})

	t.Run("get returns a copy", func(t *testing.T) {
		out, err := repo.Get(ctx, session.GetInput{GameID: "game-1"})
		require.NoError(t, err)
		out.Session.Player.Character.Stats.Health = 1
		out.Session.State.VisitedRooms[testutils.TestExitID] = true

		again, err := repo.Get(ctx, session.GetInput{GameID: "game-1"})
		require.NoError(t, err)
		assert.Equal(t, 10, again.Session.Player.Character.Stats.Health)
		assert.False(t, again.Session.State.Visited(testutils.TestExitID))
	})

	t.Run("update", func(t *testing.T) {
		clk.At = clk.At.Add(time.Minute)
		next := *sess
		next.Sequence = 3
		_, err := repo.Update(ctx, session.UpdateInput{Session: &next})
		require.NoError(t, err)

		out, err := repo.Get(ctx, session.GetInput{GameID: "game-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.Session.Sequence)
		assert.Equal(t, clk.At, out.Session.UpdatedAt)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := repo.Update(ctx, session.UpdateInput{Session: &session.Session{GameID: "nope"}})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		_, err := repo.Delete(ctx, session.DeleteInput{GameID: "game-1"})
		require.NoError(t, err)

		_, err = repo.Get(ctx, session.GetInput{GameID: "game-1"})
		assert.True(t, errors.IsNotFound(err))

		_, err = repo.Delete(ctx, session.DeleteInput{GameID: "game-1"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := repo.Get(ctx, session.GetInput{})
		assert.True(t, errors.IsInvalidArgument(err))
		_, err = repo.Create(ctx, session.CreateInput{})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
