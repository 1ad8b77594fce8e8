package rpgtoolkit

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	dungeonevents "github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

// recordingEventBus keeps every published event
type recordingEventBus struct {
	published []events.Event
	failAfter int
}

func (s *recordingEventBus) Publish(_ context.Context, e events.Event) error {
	if s.failAfter > 0 && len(s.published) == s.failAfter {
		return errors.Internal("bus closed")
	}
	s.published = append(s.published, e)
	return nil
}
func (s *recordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (s *recordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (s *recordingEventBus) Unsubscribe(_ string) error { return nil }
func (s *recordingEventBus) Clear(_ string)             {}
func (s *recordingEventBus) ClearAll()                  {}

type AdapterTestSuite struct {
	suite.Suite
	bus     *recordingEventBus
	adapter *Adapter
	player  entities.PlayerCharacter
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.bus = &recordingEventBus{}
	adapter, err := NewAdapter(&AdapterConfig{EventBus: s.bus})
	s.Require().NoError(err)
	s.adapter = adapter
	s.player = testutils.CreateTestPlayer()
}

func (s *AdapterTestSuite) TestNewAdapter_Validation() {
	_, err := NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewAdapter(&AdapterConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestPublish_SourcesAndTargets() {
	npc := testutils.CreateTestNpc(entities.SpeciesOrc, 12)
	err := s.adapter.Publish(context.Background(), &PublishInput{
		GameID: "game-1",
		Player: &s.player,
		Events: []dungeonevents.Event{
			dungeonevents.PlayerHitNpc{NpcID: npc.ID, Damage: 4, AttackerID: s.player.ID},
			dungeonevents.GameDangerLevelIncreased{Amount: 1},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(s.bus.published, 2)

	hit := s.bus.published[0]
	s.Equal("dungeon.player_hit_npc", hit.Type())
	s.Equal(testutils.TestPlayerID.String(), hit.Source().GetID())
	s.Equal("player", hit.Source().GetType())
	s.Require().NotNil(hit.Target())
	s.Equal(npc.ID.String(), hit.Target().GetID())

	gameID, ok := hit.Context().Get(ContextKeyGameID)
	s.True(ok)
	s.Equal("game-1", gameID)

	raw, ok := hit.Context().Get(ContextKeyPayload)
	s.Require().True(ok)
	var decoded dungeonevents.PlayerHitNpc
	s.Require().NoError(json.Unmarshal(raw.(json.RawMessage), &decoded))
	s.Equal(4, decoded.Damage)

	danger := s.bus.published[1]
	s.Equal(ToolkitType(dungeonevents.TypeGameDangerLevelIncreased), danger.Type())
	s.Nil(danger.Target())
}

func (s *AdapterTestSuite) TestPublish_StopsOnBusError() {
	s.bus.failAfter = 1
	err := s.adapter.Publish(context.Background(), &PublishInput{
		Player: &s.player,
		Events: []dungeonevents.Event{
			dungeonevents.PlayerHealed{Amount: 1},
			dungeonevents.PlayerHealed{Amount: 2},
			dungeonevents.PlayerHealed{Amount: 3},
		},
	})
	s.True(errors.IsInternal(err))
	s.Len(s.bus.published, 1)
}

func (s *AdapterTestSuite) TestPublish_RequiresPlayer() {
	err := s.adapter.Publish(context.Background(), &PublishInput{})
	s.True(errors.IsInvalidArgument(err))
}
