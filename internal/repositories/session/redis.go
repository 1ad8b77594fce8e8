package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

const (
	// Key pattern: dungeon_session:{game_id}
	sessionKeyPrefix = "dungeon_session:"
	defaultTTL       = 24 * time.Hour

	// Error messages
	errSessionNil   = "session cannot be nil"
	errGameIDEmpty  = "game ID cannot be empty"
	errSessionGone  = "session %s not found"
	errSessionTaken = "session %s already exists"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is how long an idle session lives; zero means a day
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for game sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new session; an existing key is never overwritten
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	session := *input.Session
	now := r.clock.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	ok, err := r.client.SetNX(ctx, r.buildKey(session.GameID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExistsf(errSessionTaken, session.GameID)
	}

	return &CreateOutput{Session: &session}, nil
}

// Get retrieves a session by game id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.GameID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errSessionGone, input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

// Update replaces an existing session and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	session := *input.Session
	session.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	ok, err := r.client.SetXX(ctx, r.buildKey(session.GameID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session in Redis")
	}
	if !ok {
		return nil, errors.NotFoundf(errSessionGone, session.GameID)
	}

	return &UpdateOutput{Session: &session}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.GameID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf(errSessionGone, input.GameID)
	}

	return &DeleteOutput{}, nil
}

// buildKey creates the Redis key for a session
func (r *redisRepository) buildKey(gameID string) string {
	return sessionKeyPrefix + gameID
}
