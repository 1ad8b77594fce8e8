// Package eventlog provides the append-only journal of committed game events
package eventlog

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/events"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=eventlogmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog Repository

// Record is one journaled event
type Record struct {
	GameID string
	// Sequence starts at 1 and has no gaps within a game
	Sequence   int64
	Event      events.Event
	RecordedAt time.Time
}

// AppendInput contains the events one action committed
type AppendInput struct {
	GameID string
	Events []events.Event
}

// AppendOutput reports the sequence range assigned to the batch
type AppendOutput struct {
	FirstSequence int64
	LastSequence  int64
}

// ListInput selects a page of a game's events
type ListInput struct {
	GameID string
	// AfterSequence skips events up to and including this sequence
	AfterSequence int64
	// Limit caps the page size; zero means the default page size
	Limit int
}

// ListOutput contains a page of records in sequence order
type ListOutput struct {
	Records []Record
}

// Repository defines the interface for event journal operations
type Repository interface {
	// Append stores a batch atomically after the game's last event
	// Returns errors.InvalidArgument for a missing game id
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns events in sequence order
	// Returns errors.InvalidArgument for a missing game id
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Close releases the underlying database
	Close() error
}
