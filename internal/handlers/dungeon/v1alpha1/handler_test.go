package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGame *gamemock.MockService
	handler  *v1alpha1.Handler
	ctx      context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = gamemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: s.mockGame})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestStartGame() {
	view := &conversion.GameView{DangerLevel: 0, RoomsVisited: 1}
	s.mockGame.EXPECT().
		StartGame(s.ctx, &game.StartGameInput{PlayerName: "Ada", Species: "elf"}).
		Return(&game.StartGameOutput{GameID: "game-1", View: view}, nil)

	resp, err := s.handler.StartGame(s.ctx, &v1alpha1.StartGameRequest{PlayerName: "Ada", Species: "elf"})
	s.Require().NoError(err)
	s.Equal("game-1", resp.GameID)
	s.Same(view, resp.Game)
}

func (s *HandlerTestSuite) TestStartGame_MissingName() {
	_, err := s.handler.StartGame(s.ctx, &v1alpha1.StartGameRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestPerformAction() {
	npcID := uuid.New()
	produced := []events.Event{events.PlayerMissedNpc{NpcID: npcID}}
	s.mockGame.EXPECT().
		PerformAction(s.ctx, &game.PerformActionInput{GameID: "game-1", Action: actions.Attack{NpcID: npcID.String()}}).
		Return(&game.PerformActionOutput{Events: produced, FirstSequence: 7}, nil)

	resp, err := s.handler.PerformAction(s.ctx, &v1alpha1.PerformActionRequest{
		GameID: "game-1",
		Action: actions.Envelope{
			Kind:    actions.KindAttack,
			Payload: json.RawMessage(`{"npc_id":"` + npcID.String() + `"}`),
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(7), resp.FirstSequence)
	s.Require().Len(resp.Events, 1)
	s.Equal(events.TypePlayerMissedNpc, resp.Events[0].Type)

	decoded, err := events.Decode(resp.Events[0])
	s.Require().NoError(err)
	s.Equal(produced[0], decoded)
}

func (s *HandlerTestSuite) TestPerformAction_BadAction() {
	testCases := []struct {
		name string
		req  *v1alpha1.PerformActionRequest
	}{
		{
			name: "missing game id",
			req:  &v1alpha1.PerformActionRequest{Action: actions.Envelope{Kind: actions.KindSell}},
		},
		{
			name: "unknown kind",
			req:  &v1alpha1.PerformActionRequest{GameID: "game-1", Action: actions.Envelope{Kind: "dance"}},
		},
		{
			name: "malformed payload",
			req: &v1alpha1.PerformActionRequest{
				GameID: "game-1",
				Action: actions.Envelope{Kind: actions.KindSell, Payload: json.RawMessage(`{"item_id":7}`)},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.PerformAction(s.ctx, tc.req)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestPerformAction_GameErrorsKeepTheirKind() {
	itemID := uuid.NewString()
	s.mockGame.EXPECT().
		PerformAction(s.ctx, gomock.Any()).
		Return(nil, errors.ItemNotFound(itemID))

	_, err := s.handler.PerformAction(s.ctx, &v1alpha1.PerformActionRequest{
		GameID: "game-1",
		Action: actions.Envelope{Kind: actions.KindSell, Payload: json.RawMessage(`{"item_id":"` + itemID + `"}`)},
	})
	s.Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsKind(back, errors.KindItemNotFound))
	s.Equal(itemID, errors.GetMeta(back)["id"])
}

func (s *HandlerTestSuite) TestListEvents() {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockGame.EXPECT().
		ListEvents(s.ctx, &game.ListEventsInput{GameID: "game-1", AfterSequence: 1, Limit: 5}).
		Return(&game.ListEventsOutput{Records: []eventlog.Record{
			{GameID: "game-1", Sequence: 2, Event: events.PlayerHealed{Amount: 3}, RecordedAt: at},
		}}, nil)

	resp, err := s.handler.ListEvents(s.ctx, &v1alpha1.ListEventsRequest{GameID: "game-1", AfterSequence: 1, Limit: 5})
	s.Require().NoError(err)
	s.Require().Len(resp.Events, 1)
	s.Equal(int64(2), resp.Events[0].Sequence)
	s.Equal(at, resp.Events[0].RecordedAt)
	s.Equal(events.TypePlayerHealed, resp.Events[0].Event.Type)
}

func (s *HandlerTestSuite) TestGetAndEndGame() {
	s.mockGame.EXPECT().
		GetGame(s.ctx, &game.GetGameInput{GameID: "game-1"}).
		Return(&game.GetGameOutput{Sequence: 4}, nil)
	s.mockGame.EXPECT().
		EndGame(s.ctx, &game.EndGameInput{GameID: "game-1"}).
		Return(nil, errors.NotFoundf("session not found"))

	got, err := s.handler.GetGame(s.ctx, &v1alpha1.GetGameRequest{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(int64(4), got.Sequence)

	_, err = s.handler.EndGame(s.ctx, &v1alpha1.EndGameRequest{GameID: "game-1"})
	s.Equal(codes.NotFound, status.Code(err))
}

// TestOverTheWire drives the handler through a real grpc server and client
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterGameServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewGameServiceClient(conn)

	s.mockGame.EXPECT().
		StartGame(gomock.Any(), &game.StartGameInput{PlayerName: "Ada"}).
		Return(&game.StartGameOutput{
			GameID: "game-1",
			View:   &conversion.GameView{Player: &conversion.PlayerView{Name: "Ada", Health: 12}},
		}, nil)

	started, err := client.StartGame(s.ctx, &v1alpha1.StartGameRequest{PlayerName: "Ada"})
	s.Require().NoError(err)
	s.Equal("game-1", started.GameID)
	s.Require().NotNil(started.Game)
	s.Equal(12, started.Game.Player.Health)

	s.mockGame.EXPECT().
		PerformAction(gomock.Any(), gomock.Any()).
		Return(nil, errors.PlayerIsDead("player-1"))

	_, err = client.PerformAction(s.ctx, &v1alpha1.PerformActionRequest{
		GameID: "game-1",
		Action: actions.Envelope{Kind: actions.KindSell, Payload: json.RawMessage(`{"item_id":"` + uuid.NewString() + `"}`)},
	})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsKind(errors.FromGRPCError(err), errors.KindPlayerIsDead))
}
