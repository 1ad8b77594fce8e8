package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Sessions never expire.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]Session
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]Session),
		clock: clk,
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil || input.Session.GameID == "" {
		return nil, errors.InvalidArgument("session with game id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.GameID]; exists {
		return nil, errors.AlreadyExistsf("session %s already exists", input.Session.GameID)
	}

	stored := copySession(*input.Session)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	r.store[stored.GameID] = stored

	out := copySession(stored)
	return &CreateOutput{Session: &out}, nil
}

// Get retrieves a session by game id
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument("game id is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.store[input.GameID]
	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.GameID)
	}

	// Return a copy to prevent external modification
	out := copySession(stored)
	return &GetOutput{Session: &out}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil || input.Session.GameID == "" {
		return nil, errors.InvalidArgument("session with game id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.GameID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.Session.GameID)
	}

	stored := copySession(*input.Session)
	stored.UpdatedAt = r.clock.Now()
	r.store[stored.GameID] = stored

	out := copySession(stored)
	return &UpdateOutput{Session: &out}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument("game id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.GameID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.GameID)
	}
	delete(r.store, input.GameID)

	return &DeleteOutput{}, nil
}

func copySession(s Session) Session {
	s.State = s.State.Clone()
	s.Player = s.Player.Clone()
	return s
}
