// Package session provides repository interface and types for game session snapshots
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/session Repository

// Session is the latest committed snapshot of one game
type Session struct {
	// GameID identifies the game; it doubles as the storage key
	GameID string `json:"game_id"`

	State  entities.GameState       `json:"state"`
	Player entities.PlayerCharacter `json:"player"`

	// Sequence is the number of events committed to the game so far
	Sequence int64 `json:"sequence"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *Session
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	GameID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// UpdateInput contains the replacement snapshot
type UpdateInput struct {
	Session *Session
}

// UpdateOutput contains the stored session
type UpdateOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	GameID string
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Repository defines the interface for session storage operations
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for missing fields
	// Returns errors.AlreadyExists if the game id is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by game id
	// Returns errors.NotFound if the session does not exist or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session and refreshes its TTL
	// Returns errors.NotFound if the session does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
