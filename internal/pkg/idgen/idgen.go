// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() uuid.UUID
}

// UUIDGenerator generates random version 4 UUIDs
type UUIDGenerator struct{}

// NewUUID creates a new random UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new random UUID
func (g *UUIDGenerator) Generate() uuid.UUID {
	return uuid.New()
}

// SequentialGenerator generates reproducible UUIDs for testing and seeded games
type SequentialGenerator struct {
	namespace uuid.UUID
	counter   uint64
}

// NewSequential creates a new sequential generator. Generators sharing a
// prefix produce the same sequence.
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte(prefix))}
}

// Generate creates the next UUID in the sequence
func (g *SequentialGenerator) Generate() uuid.UUID {
	n := atomic.AddUint64(&g.counter, 1)
	return uuid.NewSHA1(g.namespace, []byte(fmt.Sprintf("%d", n)))
}
