// Package v1alpha1 handles the dungeon game grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-dungeon/internal/actions"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GameServiceServer
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

// StartGame starts a new game
func (h *Handler) StartGame(ctx context.Context, req *StartGameRequest) (*StartGameResponse, error) {
	if req.PlayerName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_name is required"))
	}

	out, err := h.gameService.StartGame(ctx, &game.StartGameInput{
		PlayerName: req.PlayerName,
		Species:    req.Species,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartGameResponse{
		GameID: out.GameID,
		Game:   out.View,
	}, nil
}

// PerformAction runs one action
func (h *Handler) PerformAction(ctx context.Context, req *PerformActionRequest) (*PerformActionResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	action, err := actions.Decode(req.Action.Kind, req.Action.Payload)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.gameService.PerformAction(ctx, &game.PerformActionInput{
		GameID: req.GameID,
		Action: action,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	envelopes := make([]events.Envelope, 0, len(out.Events))
	for _, e := range out.Events {
		env, err := events.Encode(e)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		envelopes = append(envelopes, env)
	}

	return &PerformActionResponse{
		Events:        envelopes,
		FirstSequence: out.FirstSequence,
		Game:          out.View,
	}, nil
}

// GetGame returns the player's view of a game
func (h *Handler) GetGame(ctx context.Context, req *GetGameRequest) (*GetGameResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.GetGame(ctx, &game.GetGameInput{GameID: req.GameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetGameResponse{
		Game:     out.View,
		Sequence: out.Sequence,
	}, nil
}

// ListEvents returns a page of a game's journal
func (h *Handler) ListEvents(ctx context.Context, req *ListEventsRequest) (*ListEventsResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	out, err := h.gameService.ListEvents(ctx, &game.ListEventsInput{
		GameID:        req.GameID,
		AfterSequence: req.AfterSequence,
		Limit:         int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	recorded := make([]RecordedEvent, 0, len(out.Records))
	for _, record := range out.Records {
		env, err := events.Encode(record.Event)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		recorded = append(recorded, RecordedEvent{
			Sequence:   record.Sequence,
			RecordedAt: record.RecordedAt,
			Event:      env,
		})
	}

	return &ListEventsResponse{Events: recorded}, nil
}

// EndGame ends a game
func (h *Handler) EndGame(ctx context.Context, req *EndGameRequest) (*EndGameResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	if _, err := h.gameService.EndGame(ctx, &game.EndGameInput{GameID: req.GameID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EndGameResponse{}, nil
}
