package eventlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Fixed
	repo  eventlog.Repository
	ctx   context.Context
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)}
	repo, err := eventlog.NewSQLiteRepository(&eventlog.Config{Path: ":memory:", Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteRepository_Validation() {
	_, err := eventlog.NewSQLiteRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = eventlog.NewSQLiteRepository(&eventlog.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Path: is required")
	s.Contains(err.Error(), "Clock: is required")
}

func (s *SQLiteRepositoryTestSuite) TestAppendAssignsContiguousSequences() {
	npcID := uuid.New()
	first, err := s.repo.Append(s.ctx, eventlog.AppendInput{
		GameID: "game-a",
		Events: []events.Event{
			events.NpcHitPlayer{NpcID: npcID, Damage: 2},
			events.PlayerPoisoned{Poison: entities.Poison{Damage: 1, Duration: 3}},
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), first.FirstSequence)
	s.Equal(int64(2), first.LastSequence)

	second, err := s.repo.Append(s.ctx, eventlog.AppendInput{
		GameID: "game-a",
		Events: []events.Event{events.PlayerPoisonCured{}},
	})
	s.Require().NoError(err)
	s.Equal(int64(3), second.FirstSequence)
	s.Equal(int64(3), second.LastSequence)

	other, err := s.repo.Append(s.ctx, eventlog.AppendInput{
		GameID: "game-b",
		Events: []events.Event{events.GameDangerLevelIncreased{Amount: 1}},
	})
	s.Require().NoError(err)
	s.Equal(int64(1), other.FirstSequence)

	out, err := s.repo.List(s.ctx, eventlog.ListInput{GameID: "game-a"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal(events.NpcHitPlayer{NpcID: npcID, Damage: 2}, out.Records[0].Event)
	s.Equal(events.PlayerPoisoned{Poison: entities.Poison{Damage: 1, Duration: 3}}, out.Records[1].Event)
	s.Equal(events.PlayerPoisonCured{}, out.Records[2].Event)
	for i, rec := range out.Records {
		s.Equal(int64(i+1), rec.Sequence)
		s.Equal("game-a", rec.GameID)
		s.True(s.clock.At.Equal(rec.RecordedAt))
	}
}

func (s *SQLiteRepositoryTestSuite) TestAppendEmptyBatch() {
	out, err := s.repo.Append(s.ctx, eventlog.AppendInput{GameID: "game-a"})
	s.Require().NoError(err)
	s.Equal(int64(0), out.LastSequence)
}

func (s *SQLiteRepositoryTestSuite) TestListPages() {
	batch := make([]events.Event, 0, 5)
	for i := 1; i <= 5; i++ {
		batch = append(batch, events.PlayerHealed{Amount: i})
	}
	_, err := s.repo.Append(s.ctx, eventlog.AppendInput{GameID: "game-a", Events: batch})
	s.Require().NoError(err)

	page, err := s.repo.List(s.ctx, eventlog.ListInput{GameID: "game-a", AfterSequence: 2, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page.Records, 2)
	s.Equal(int64(3), page.Records[0].Sequence)
	s.Equal(events.PlayerHealed{Amount: 4}, page.Records[1].Event)

	empty, err := s.repo.List(s.ctx, eventlog.ListInput{GameID: "nobody"})
	s.Require().NoError(err)
	s.Empty(empty.Records)
}

func (s *SQLiteRepositoryTestSuite) TestRequiresGameID() {
	_, err := s.repo.Append(s.ctx, eventlog.AppendInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, eventlog.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestSQLiteRepositoryPersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	cfg := &eventlog.Config{Path: path, Clock: &clock.Fixed{At: time.Unix(0, 0)}}

	repo, err := eventlog.NewSQLiteRepository(cfg)
	require.NoError(t, err)
	_, err = repo.Append(context.Background(), eventlog.AppendInput{
		GameID: "game-a",
		Events: []events.Event{events.RoomFirstSeen{RoomID: uuid.New()}},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := eventlog.NewSQLiteRepository(cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	out, err := reopened.List(context.Background(), eventlog.ListInput{GameID: "game-a"})
	require.NoError(t, err)
	assert.Len(t, out.Records, 1)
}
